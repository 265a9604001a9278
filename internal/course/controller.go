package course

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

func (c *ControllerImpl) Save(ctx *gin.Context) {
	var req SaveCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title and link are required"})
		return
	}

	if err := c.service.Save(ctx.Request.Context(), req); err != nil {
		if errors.Is(err, ErrMissingField) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title and link are required"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save course"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Course saved successfully!"})
}

func (c *ControllerImpl) List(ctx *gin.Context) {
	courses, err := c.service.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list saved courses"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"savedCourses": courses})
}

func (c *ControllerImpl) Remove(ctx *gin.Context) {
	var req RemoveCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	if err := c.service.Remove(ctx.Request.Context(), req.Title); err != nil {
		if errors.Is(err, ErrMissingField) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove course"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Course removed successfully!"})
}

func (c *ControllerImpl) RegisterRoutes(router *gin.Engine) {
	router.POST("/save-course", c.Save)
	router.GET("/saved-courses", c.List)
	router.DELETE("/remove-course", c.Remove)
}
