package auth

import (
	"time"

	"festival/config"
	"festival/repository"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 12 * time.Hour

type Claims struct {
	OperatorId  int      `json:"operator_id"`
	Permissions []string `json:"permissions"`
	Exp         int64    `json:"exp"`
}

func (claims *Claims) FromJWTClaims(jwtClaims jwt.Claims) {
	mapClaims, ok := jwtClaims.(jwt.MapClaims)
	if !ok {
		return
	}
	permissions := []string{}
	if perms, ok := mapClaims["permissions"].([]interface{}); ok {
		for _, perm := range perms {
			if s, ok := perm.(string); ok {
				permissions = append(permissions, s)
			}
		}
	}
	claims.Permissions = permissions
	if operatorId, ok := mapClaims["operator_id"].(float64); ok {
		claims.OperatorId = int(operatorId)
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.Exp = int64(exp)
	}
}

func (claims *Claims) Valid() error {
	if time.Now().Unix() > claims.Exp {
		return jwt.ErrTokenExpired
	}
	return nil
}

func (claims *Claims) HasPermission(permission string) bool {
	for _, p := range claims.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

func CreateToken(operator *repository.Operator) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"operator_id": operator.Id,
			"permissions": operator.PermissionList(),
			"exp":         time.Now().Add(tokenLifetime).Unix(),
		})

	tokenString, err := token.SignedString([]byte(config.Env().JWTSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Env().JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}
	return token, nil
}
