package service

import (
	"festival/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	categoryRepository *repository.CategoryRepository
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{
		categoryRepository: repository.NewCategoryRepository(db),
	}
}

func (e *CategoryService) GetCategories() ([]*repository.Category, error) {
	return e.categoryRepository.FindAll()
}

func (e *CategoryService) GetCategoryById(categoryId int) (*repository.Category, error) {
	return e.categoryRepository.GetCategoryById(categoryId)
}

func (e *CategoryService) SaveCategory(category *repository.Category) (*repository.Category, error) {
	return e.categoryRepository.Save(category)
}

func (e *CategoryService) DeleteCategory(categoryId int) error {
	return e.categoryRepository.Delete(categoryId)
}
