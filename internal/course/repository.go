package course

import (
	"context"

	"learnhub/be/internal/db"
)

type RepositoryImpl struct {
	db *db.LDb
}

func NewRepositoryImpl(db *db.LDb) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

// Insert is idempotent: a duplicate title leaves the existing row untouched.
func (r *RepositoryImpl) Insert(ctx context.Context, title, link string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO saved_course (title, link) VALUES ($1, $2) ON CONFLICT (title) DO NOTHING",
		title, link)
	return err
}

func (r *RepositoryImpl) DeleteByTitle(ctx context.Context, title string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM saved_course WHERE title = $1", title)
	return err
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]SavedCourse, error) {
	var courses []SavedCourse
	err := r.db.SelectContext(ctx, &courses, "SELECT id, title, link FROM saved_course ORDER BY id")
	return courses, err
}
