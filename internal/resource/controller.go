package resource

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ControllerImpl struct {
	service Service
}

func NewControllerImpl(service Service) *ControllerImpl {
	return &ControllerImpl{service: service}
}

func (c *ControllerImpl) Search(ctx *gin.Context) {
	query := strings.TrimSpace(ctx.Query("query"))
	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	category, err := ParseCategory(ctx.Query("category"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := c.service.Search(ctx.Request.Context(), query, category)
	if err != nil {
		if errors.Is(err, ErrEmptyQuery) || errors.Is(err, ErrUnknownCategory) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search resources"})
		return
	}

	if results == nil {
		results = []Resource{}
	}
	ctx.JSON(http.StatusOK, SearchResponse{
		Category: string(category),
		Query:    query,
		Results:  results,
	})
}

func (c *ControllerImpl) RegisterRoutes(router *gin.Engine) {
	router.GET("/search", c.Search)
}
