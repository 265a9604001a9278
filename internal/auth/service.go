package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"learnhub/be/internal/config"
	"learnhub/be/internal/user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type ServiceImpl struct {
	userService user.Service
	config      config.JWTConfig
}

func NewServiceImpl(userService user.Service, config config.JWTConfig) *ServiceImpl {
	return &ServiceImpl{
		userService: userService,
		config:      config,
	}
}

func (s *ServiceImpl) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := s.userService.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(u.ID, u.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token}, nil
}

// Verify parses and validates a token, returning the embedded claims.
func (s *ServiceImpl) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	username, _ := mapClaims["username"].(string)
	id, _ := mapClaims["id"].(float64)
	if username == "" {
		return nil, errors.New("invalid token claims")
	}

	return &Claims{UserID: int(id), Username: username}, nil
}

func (s *ServiceImpl) generateToken(id int, username string) (string, error) {
	expiry := s.config.Expiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       id,
		"username": username,
		"exp":      time.Now().Add(expiry).Unix(),
		"iat":      time.Now().Unix(),
	})

	return token.SignedString([]byte(s.config.SecretKey))
}
