package service

import (
	"context"
	"festival/app_error"
	"festival/poster"
	"festival/repository"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	galleryFolder  = "gallery"
	carouselFolder = "carousel"
)

type GalleryService struct {
	galleryRepository *repository.GalleryRepository
	publisher         poster.Publisher
}

func NewGalleryService(db *gorm.DB, publisher poster.Publisher) *GalleryService {
	return &GalleryService{
		galleryRepository: repository.NewGalleryRepository(db),
		publisher:         publisher,
	}
}

func (e *GalleryService) GetGalleryImages(year *int) ([]*repository.GalleryImage, error) {
	return e.galleryRepository.GetGalleryImages(year)
}

func (e *GalleryService) GetCarouselImages() ([]*repository.CarouselImage, error) {
	return e.galleryRepository.GetActiveCarouselImages()
}

func (e *GalleryService) UploadGalleryImage(ctx context.Context, image *repository.GalleryImage, data []byte) (*repository.GalleryImage, error) {
	validationErr := &app_error.ValidationError{}
	if image.Year <= 0 {
		validationErr.Add("year is required")
	}
	checkImage(data, validationErr)
	if err := validationErr.OrNil(); err != nil {
		return nil, err
	}
	imageURL, err := e.store(ctx, data, galleryFolder)
	if err != nil {
		return nil, err
	}
	image.ImageURL = imageURL
	return e.galleryRepository.SaveGalleryImage(image)
}

func (e *GalleryService) UploadCarouselImage(ctx context.Context, image *repository.CarouselImage, data []byte) (*repository.CarouselImage, error) {
	validationErr := &app_error.ValidationError{}
	checkImage(data, validationErr)
	if err := validationErr.OrNil(); err != nil {
		return nil, err
	}
	imageURL, err := e.store(ctx, data, carouselFolder)
	if err != nil {
		return nil, err
	}
	image.ImageURL = imageURL
	return e.galleryRepository.SaveCarouselImage(image)
}

// store publishes an upload under a fresh random key, uploads never overwrite each other.
func (e *GalleryService) store(ctx context.Context, data []byte, folder string) (string, error) {
	return e.publisher.Publish(ctx, data, folder, uuid.NewString())
}

func checkImage(data []byte, validationErr *app_error.ValidationError) {
	if len(data) == 0 {
		validationErr.Add("image is required")
		return
	}
	if contentType := http.DetectContentType(data); !strings.HasPrefix(contentType, "image/") {
		validationErr.Add("file of type %s is not an image", contentType)
	}
}
