package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	IsAuthenticated(ctx *gin.Context)
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Verify(token string) (*Claims, error)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Claims is what the rest of the system is allowed to know about a session:
// a user identifier and a username, nothing else.
type Claims struct {
	UserID   int
	Username string
}
