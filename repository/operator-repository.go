package repository

import (
	"strings"

	"gorm.io/gorm"
)

type Permission string

const (
	PermissionAdmin Permission = "admin"
)

// Operator is a staff account allowed to mutate festival data.
type Operator struct {
	Id           int    `gorm:"primaryKey"`
	Username     string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	Permissions  string `gorm:"not null;default:''"`
}

func (o *Operator) PermissionList() []string {
	permissions := make([]string, 0)
	for _, permission := range strings.Split(o.Permissions, ",") {
		if permission != "" {
			permissions = append(permissions, permission)
		}
	}
	return permissions
}

type OperatorRepository struct {
	DB *gorm.DB
}

func NewOperatorRepository(db *gorm.DB) *OperatorRepository {
	return &OperatorRepository{DB: db}
}

func (r *OperatorRepository) GetOperatorByUsername(username string) (*Operator, error) {
	var operator Operator
	result := r.DB.First(&operator, "username = ?", username)
	if result.Error != nil {
		return nil, result.Error
	}
	return &operator, nil
}

func (r *OperatorRepository) Save(operator *Operator) (*Operator, error) {
	result := r.DB.Save(operator)
	if result.Error != nil {
		return nil, result.Error
	}
	return operator, nil
}
