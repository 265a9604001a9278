package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey   = "userId"
	ctxUsernameKey = "username"
)

type ControllerImpl struct {
	service Service
}

func NewControllerImpl(service Service) *ControllerImpl {
	return &ControllerImpl{service: service}
}

func (c *ControllerImpl) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	resp, err := c.service.Login(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": resp.Token})
}

// Logout is an acknowledgment only: sessions are stateless JWTs, the client
// discards its token.
func (c *ControllerImpl) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (c *ControllerImpl) IsAuthenticated(ctx *gin.Context) {
	username := ctx.GetString(ctxUsernameKey)
	ctx.JSON(http.StatusOK, gin.H{"authenticated": true, "username": username})
}

// RequireAuth extracts a Bearer token, verifies it and stores the user identity
// on the request context.
func RequireAuth(service Service) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"authenticated": false})
			return
		}

		claims, err := service.Verify(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"authenticated": false})
			return
		}

		ctx.Set(ctxUserIDKey, claims.UserID)
		ctx.Set(ctxUsernameKey, claims.Username)
		ctx.Next()
	}
}

func (c *ControllerImpl) RegisterRoutes(router *gin.Engine) {
	router.POST("/login", c.Login)
	router.POST("/logout", c.Logout)
	router.GET("/is-authenticated", RequireAuth(c.service), c.IsAuthenticated)
}
