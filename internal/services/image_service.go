package services

import (
	"log"
	"os"
	"path/filepath"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/assets"
	"catalog/pkg/rabbitmq"
)

// assetFolder is the logical folder on the remote asset host under which
// migrated product images are stored.
const assetFolder = "products"

// ImageService handles business logic for product images: source
// validation, the effective-URL rule and the optional one-shot migration
// of uploaded files to a remote asset host.
type ImageService struct {
	imageRepo   repositories.ImageRepository
	productRepo repositories.ProductRepository
	uploader    assets.Uploader
	mqClient    *rabbitmq.Client
	mediaRoot   string
	mediaURL    string
}

// NewImageService creates a new ImageService. A nil uploader disables
// remote asset hosting; a nil RabbitMQ client disables operator events.
func NewImageService(imageRepo repositories.ImageRepository, productRepo repositories.ProductRepository, uploader assets.Uploader, mqClient *rabbitmq.Client, mediaRoot, mediaURL string) *ImageService {
	return &ImageService{
		imageRepo:   imageRepo,
		productRepo: productRepo,
		uploader:    uploader,
		mqClient:    mqClient,
		mediaRoot:   mediaRoot,
		mediaURL:    mediaURL,
	}
}

// ListImages retrieves a product's images in display order.
func (s *ImageService) ListImages(productID string) ([]models.ProductImage, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}
	return s.imageRepo.ListByProduct(productID)
}

// GetImage retrieves one of a product's images. An image belonging to a
// different product is reported as not found.
func (s *ImageService) GetImage(productID, imageID string) (*models.ProductImage, error) {
	image, err := s.imageRepo.GetByID(imageID)
	if err != nil {
		return nil, err
	}
	if image.ProductID != productID {
		return nil, repositories.ErrImageNotFound
	}
	return image, nil
}

// SaveImage validates and persists an image, running the remote
// migration first when it applies. The migration is best-effort: an
// upload failure is reported to the operator channel and the save
// proceeds with the local file retained.
func (s *ImageService) SaveImage(image *models.ProductImage) error {
	if _, err := s.productRepo.GetByID(image.ProductID); err != nil {
		return err
	}
	if !image.HasSource() {
		return &ValidationError{Field: "image", Message: "upload a file or provide an image URL"}
	}

	s.migrate(image)

	return s.imageRepo.Save(image)
}

// DeleteImage removes one of a product's images.
func (s *ImageService) DeleteImage(productID, imageID string) error {
	if _, err := s.GetImage(productID, imageID); err != nil {
		return err
	}
	return s.imageRepo.Delete(imageID)
}

// ResolveURL returns the image's effective display URL under this
// deployment's media base.
func (s *ImageService) ResolveURL(image *models.ProductImage) string {
	return image.ResolveURL(s.mediaURL)
}

// migrate uploads a file-only image to the remote asset host, stores the
// returned secure URL and clears the local file reference. Once a URL is
// set the migration is a no-op, so it runs at most once per image.
func (s *ImageService) migrate(image *models.ProductImage) {
	if s.uploader == nil || image.FilePath == "" || image.ImageURL != "" {
		return
	}

	file, err := os.Open(filepath.Join(s.mediaRoot, image.FilePath))
	if err != nil {
		s.reportUploadFailure(image, err)
		return
	}
	defer file.Close()

	secureURL, err := s.uploader.Upload(filepath.Base(image.FilePath), file, assetFolder)
	if err != nil {
		s.reportUploadFailure(image, err)
		return
	}

	image.ImageURL = secureURL
	image.FilePath = ""
}

// reportUploadFailure surfaces an asset host failure to the operator
// channel. The caller never sees the error.
func (s *ImageService) reportUploadFailure(image *models.ProductImage, err error) {
	log.Printf("Warning: Failed to upload image for product %s to asset host: %v", image.ProductID, err)
	if s.mqClient == nil {
		return
	}
	if pubErr := s.mqClient.PublishEvent("image.upload_failed", map[string]interface{}{
		"product_id": image.ProductID,
		"file_path":  image.FilePath,
		"error":      err.Error(),
	}); pubErr != nil {
		log.Printf("Warning: Failed to publish image.upload_failed event: %v", pubErr)
	}
}
