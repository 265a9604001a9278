package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/be/internal/resource"
)

func TestJobProviderFetch(t *testing.T) {
	items, err := JobProvider{}.Fetch(context.Background(), "machine learning")
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "machine learning Jobs on LinkedIn", items[0].Title)
	assert.Equal(t, "https://www.linkedin.com/jobs/search/?keywords=machine+learning", items[0].Link)
	assert.Equal(t, defaultJobThumbnail, items[0].Thumbnail)
	assert.Equal(t, resource.CategoryJob, JobProvider{}.Category())
}

func TestInternshipProviderFetch(t *testing.T) {
	items, err := InternshipProvider{}.Fetch(context.Background(), "data science")
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Internships in data science (Internshala)", items[0].Title)
	assert.Equal(t, "https://internshala.com/internships/data%20science-internship", items[0].Link)
	assert.Equal(t, defaultInternshipThumbnail, items[0].Thumbnail)
	assert.Equal(t, resource.CategoryInternship, InternshipProvider{}.Category())
}
