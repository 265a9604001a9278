package course

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository mirrors the ON CONFLICT DO NOTHING semantics of the Postgres
// repository: first insert for a title wins, deletes of absent titles succeed.
type fakeRepository struct {
	order []string
	links map[string]string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{links: make(map[string]string)}
}

func (r *fakeRepository) Insert(_ context.Context, title, link string) error {
	if _, ok := r.links[title]; ok {
		return nil
	}
	r.links[title] = link
	r.order = append(r.order, title)
	return nil
}

func (r *fakeRepository) DeleteByTitle(_ context.Context, title string) error {
	if _, ok := r.links[title]; !ok {
		return nil
	}
	delete(r.links, title)
	for i, t := range r.order {
		if t == title {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeRepository) GetAll(_ context.Context) ([]SavedCourse, error) {
	var out []SavedCourse
	for i, t := range r.order {
		out = append(out, SavedCourse{ID: i + 1, Title: t, Link: r.links[t]})
	}
	return out, nil
}

func TestSaveDuplicateKeepsOriginalLink(t *testing.T) {
	repo := newFakeRepository()
	svc := NewServiceImpl(repo)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, SaveCourseRequest{Title: "X", Link: "Y"}))
	require.NoError(t, svc.Save(ctx, SaveCourseRequest{Title: "X", Link: "Z"}))

	courses, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "X", courses[0].Title)
	assert.Equal(t, "Y", courses[0].Link)
}

func TestSaveMissingFields(t *testing.T) {
	svc := NewServiceImpl(newFakeRepository())
	ctx := context.Background()

	assert.ErrorIs(t, svc.Save(ctx, SaveCourseRequest{Title: "", Link: "Y"}), ErrMissingField)
	assert.ErrorIs(t, svc.Save(ctx, SaveCourseRequest{Title: "  ", Link: "Y"}), ErrMissingField)
	assert.ErrorIs(t, svc.Save(ctx, SaveCourseRequest{Title: "X", Link: ""}), ErrMissingField)
}

func TestRemoveMissingTitleIsNoop(t *testing.T) {
	repo := newFakeRepository()
	svc := NewServiceImpl(repo)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, SaveCourseRequest{Title: "X", Link: "Y"}))
	require.NoError(t, svc.Remove(ctx, "no-such-title"))

	courses, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestRemoveThenList(t *testing.T) {
	repo := newFakeRepository()
	svc := NewServiceImpl(repo)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, SaveCourseRequest{Title: "A", Link: "1"}))
	require.NoError(t, svc.Save(ctx, SaveCourseRequest{Title: "B", Link: "2"}))
	require.NoError(t, svc.Remove(ctx, "A"))

	courses, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "B", courses[0].Title)
}

func TestListEmptyIsNotNil(t *testing.T) {
	svc := NewServiceImpl(newFakeRepository())

	courses, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}
