package service

import (
	"errors"
	"festival/app_error"
	"festival/auth"
	"festival/repository"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = app_error.WithStatus(errors.New("invalid username or password"), http.StatusUnauthorized)

type OperatorService struct {
	operatorRepository *repository.OperatorRepository
}

func NewOperatorService(db *gorm.DB) *OperatorService {
	return &OperatorService{
		operatorRepository: repository.NewOperatorRepository(db),
	}
}

// Login checks the operator's password and returns a signed token.
func (e *OperatorService) Login(username string, password string) (string, error) {
	operator, err := e.operatorRepository.GetOperatorByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return auth.CreateToken(operator)
}

// SaveOperator creates the operator or resets the password and permissions of an existing one.
func (e *OperatorService) SaveOperator(username string, password string, permissions []repository.Permission) (*repository.Operator, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, &app_error.ValidationError{Messages: []string{"username and password are required"}}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	operator, err := e.operatorRepository.GetOperatorByUsername(username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		operator = &repository.Operator{Username: username}
	}
	names := make([]string, len(permissions))
	for i, permission := range permissions {
		names[i] = string(permission)
	}
	operator.PasswordHash = string(hash)
	operator.Permissions = strings.Join(names, ",")
	return e.operatorRepository.Save(operator)
}
