package provider

import (
	"context"
	"fmt"
	"net/url"

	"learnhub/be/internal/resource"
)

// JobProvider synthesizes a single LinkedIn search link. There is no upstream
// call, so it can never fail.
type JobProvider struct{}

func (JobProvider) Category() resource.Category {
	return resource.CategoryJob
}

func (JobProvider) Fetch(_ context.Context, query string) ([]resource.Resource, error) {
	return []resource.Resource{
		{
			Title:     fmt.Sprintf("%s Jobs on LinkedIn", query),
			Link:      "https://www.linkedin.com/jobs/search/?keywords=" + url.QueryEscape(query),
			Thumbnail: defaultJobThumbnail,
		},
	}, nil
}

// InternshipProvider synthesizes a single Internshala search link.
type InternshipProvider struct{}

func (InternshipProvider) Category() resource.Category {
	return resource.CategoryInternship
}

func (InternshipProvider) Fetch(_ context.Context, query string) ([]resource.Resource, error) {
	return []resource.Resource{
		{
			Title:     fmt.Sprintf("Internships in %s (Internshala)", query),
			Link:      "https://internshala.com/internships/" + url.PathEscape(query) + "-internship",
			Thumbnail: defaultInternshipThumbnail,
		},
	}, nil
}
