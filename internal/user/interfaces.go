package user

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
)

var ErrUsernameTaken = errors.New("username already exists")

type Controller interface {
	Signup(ctx *gin.Context)
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	GetByUsername(ctx context.Context, username string) (User, error)
}

type Repository interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, user *User) error
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
