package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ControllerImpl struct {
	service Service
}

func NewControllerImpl(service Service) *ControllerImpl {
	return &ControllerImpl{service: service}
}

func (c *ControllerImpl) Signup(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	if err := c.service.Register(ctx.Request.Context(), req); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "failed to register user"})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (c *ControllerImpl) RegisterRoutes(router *gin.Engine) {
	router.POST("/signup", c.Signup)
}
