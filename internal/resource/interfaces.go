package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// Category tags one upstream source. The set is closed; dispatch goes through a
// lookup table instead of string comparison at call sites.
type Category string

const (
	CategoryCourse     Category = "Course"
	CategoryBlog       Category = "Blog"
	CategoryVideo      Category = "Video"
	CategoryJob        Category = "Job"
	CategoryInternship Category = "Internship"
)

// Categories is the fixed presentation order for "all categories" searches.
var Categories = []Category{
	CategoryCourse,
	CategoryBlog,
	CategoryVideo,
	CategoryJob,
	CategoryInternship,
}

var (
	ErrEmptyQuery      = errors.New("query is required")
	ErrUnknownCategory = errors.New("unknown category")
)

// ParseCategory validates a raw category string. Empty input means "all categories".
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", nil
	}
	for _, c := range Categories {
		if Category(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Resource is the normalized item every provider maps into.
// All three fields are non-empty; Thumbnail falls back to a category default.
type Resource struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail"`
}

// Provider adapts one upstream source to the normalized shape.
type Provider interface {
	Category() Category
	Fetch(ctx context.Context, query string) ([]Resource, error)
}

// Cache memoizes assembled result sets keyed by (query, category).
type Cache interface {
	Get(ctx context.Context, query string, category Category) ([]Resource, bool)
	Put(ctx context.Context, query string, category Category, results []Resource) error
}

type Service interface {
	Search(ctx context.Context, query string, category Category) ([]Resource, error)
}

type Controller interface {
	Search(ctx *gin.Context)
}

type SearchResponse struct {
	Category string     `json:"category"`
	Query    string     `json:"query"`
	Results  []Resource `json:"results"`
}
