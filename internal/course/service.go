package course

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrMissingField = errors.New("title and link are required")

type ServiceImpl struct {
	repo Repository
}

func NewServiceImpl(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Save(ctx context.Context, req SaveCourseRequest) error {
	title := strings.TrimSpace(req.Title)
	link := strings.TrimSpace(req.Link)
	if title == "" || link == "" {
		return ErrMissingField
	}
	if err := s.repo.Insert(ctx, title, link); err != nil {
		return fmt.Errorf("save course: %w", err)
	}
	return nil
}

func (s *ServiceImpl) Remove(ctx context.Context, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrMissingField
	}
	// Deleting an absent title is a no-op, same as the insert side.
	if err := s.repo.DeleteByTitle(ctx, title); err != nil {
		return fmt.Errorf("remove course: %w", err)
	}
	return nil
}

func (s *ServiceImpl) List(ctx context.Context) ([]SavedCourse, error) {
	courses, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	if courses == nil {
		courses = []SavedCourse{}
	}
	return courses, nil
}
