package repository

import (
	"time"

	"gorm.io/gorm"
)

type GalleryImage struct {
	Id         int       `gorm:"primaryKey"`
	Caption    string    `gorm:"not null"`
	Year       int       `gorm:"not null;index"`
	ImageURL   string    `gorm:"not null"`
	UploadedAt time.Time `gorm:"not null;autoCreateTime"`
}

type CarouselImage struct {
	Id         int       `gorm:"primaryKey"`
	Title      string    `gorm:"not null"`
	ImageURL   string    `gorm:"not null"`
	IsActive   bool      `gorm:"not null"`
	Order      int       `gorm:"not null;default:0"`
	UploadedAt time.Time `gorm:"not null;autoCreateTime"`
}

type GalleryRepository struct {
	DB *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{DB: db}
}

// GetGalleryImages returns the newest images first, optionally restricted to one year.
func (r *GalleryRepository) GetGalleryImages(year *int) ([]*GalleryImage, error) {
	images := make([]*GalleryImage, 0)
	query := r.DB.Order("uploaded_at DESC, id DESC")
	if year != nil {
		query = query.Where("year = ?", *year)
	}
	if err := query.Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GalleryRepository) SaveGalleryImage(image *GalleryImage) (*GalleryImage, error) {
	if err := r.DB.Save(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

func (r *GalleryRepository) GetActiveCarouselImages() ([]*CarouselImage, error) {
	images := make([]*CarouselImage, 0)
	err := r.DB.Where("is_active = ?", true).
		Order(r.DB.Statement.Quote("order")).
		Order("uploaded_at").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GalleryRepository) SaveCarouselImage(image *CarouselImage) (*CarouselImage, error) {
	if err := r.DB.Save(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}
