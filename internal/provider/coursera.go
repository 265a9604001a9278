package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"learnhub/be/internal/resource"
)

const courseraBaseURL = "https://www.coursera.org"

// CourseraProvider queries the public Coursera course catalog.
type CourseraProvider struct {
	baseURL string
	client  *http.Client
	thumbs  Resolver
}

func NewCourseraProvider(thumbs Resolver) *CourseraProvider {
	return &CourseraProvider{
		baseURL: courseraBaseURL,
		client:  newHTTPClient(),
		thumbs:  thumbs,
	}
}

func (p *CourseraProvider) Category() resource.Category {
	return resource.CategoryCourse
}

type courseraResponse struct {
	Elements []struct {
		Name     string `json:"name"`
		Slug     string `json:"slug"`
		PhotoURL string `json:"photoUrl"`
	} `json:"elements"`
}

func (p *CourseraProvider) Fetch(ctx context.Context, query string) ([]resource.Resource, error) {
	u := fmt.Sprintf("%s/api/courses.v1?q=search&query=%s&includes=photoUrl",
		p.baseURL, url.QueryEscape(query))

	var data courseraResponse
	if err := getJSON(ctx, p.client, u, &data); err != nil {
		return nil, fmt.Errorf("coursera: %w", err)
	}

	items := make([]resource.Resource, 0, len(data.Elements))
	for _, el := range data.Elements {
		if el.Name == "" || el.Slug == "" {
			continue
		}
		thumb := el.PhotoURL
		if thumb == "" {
			thumb = p.thumbs.Resolve(ctx, el.Name)
		}
		items = append(items, resource.Resource{
			Title:     el.Name,
			Link:      p.baseURL + "/learn/" + el.Slug,
			Thumbnail: thumb,
		})
	}
	return items, nil
}
