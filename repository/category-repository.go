package repository

import (
	"gorm.io/gorm"
)

// Category is an eligibility bracket, e.g. "Girls" or "UG".
type Category struct {
	Id   int    `gorm:"primaryKey"`
	Name string `gorm:"not null;uniqueIndex"`
}

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) GetCategoryById(categoryId int) (*Category, error) {
	var category Category
	result := r.DB.First(&category, categoryId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) GetCategoryByName(name string) (*Category, error) {
	var category Category
	result := r.DB.First(&category, "name = ?", name)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) GetCategoriesByIds(categoryIds []int) ([]*Category, error) {
	categories := make([]*Category, 0)
	if len(categoryIds) == 0 {
		return categories, nil
	}
	result := r.DB.Find(&categories, "id IN ?", categoryIds)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (r *CategoryRepository) FindAll() ([]*Category, error) {
	categories := make([]*Category, 0)
	result := r.DB.Order("name").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (r *CategoryRepository) Save(category *Category) (*Category, error) {
	result := r.DB.Save(category)
	if result.Error != nil {
		return nil, result.Error
	}
	return category, nil
}

func (r *CategoryRepository) Delete(categoryId int) error {
	result := r.DB.Delete(&Category{}, categoryId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
