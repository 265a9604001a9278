package course

import (
	"context"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	Save(ctx *gin.Context)
	List(ctx *gin.Context)
	Remove(ctx *gin.Context)
}

type Service interface {
	Save(ctx context.Context, req SaveCourseRequest) error
	Remove(ctx context.Context, title string) error
	List(ctx context.Context) ([]SavedCourse, error)
}

type Repository interface {
	Insert(ctx context.Context, title, link string) error
	DeleteByTitle(ctx context.Context, title string) error
	GetAll(ctx context.Context) ([]SavedCourse, error)
}

// SavedCourse is a user-saved item, unique by title.
type SavedCourse struct {
	ID    int    `db:"id" json:"-"`
	Title string `db:"title" json:"title"`
	Link  string `db:"link" json:"link"`
}

type SaveCourseRequest struct {
	Title string `json:"title" binding:"required"`
	Link  string `json:"link" binding:"required"`
}

type RemoveCourseRequest struct {
	Title string `json:"title" binding:"required"`
}
