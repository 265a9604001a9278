package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"learnhub/be/internal/resource"
)

const devtoBaseURL = "https://dev.to"

// DevtoProvider queries the dev.to article feed, filtered by tag.
type DevtoProvider struct {
	baseURL string
	client  *http.Client
}

func NewDevtoProvider() *DevtoProvider {
	return &DevtoProvider{
		baseURL: devtoBaseURL,
		client:  newHTTPClient(),
	}
}

func (p *DevtoProvider) Category() resource.Category {
	return resource.CategoryBlog
}

type devtoArticle struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	CoverImage string `json:"cover_image"`
}

func (p *DevtoProvider) Fetch(ctx context.Context, query string) ([]resource.Resource, error) {
	u := fmt.Sprintf("%s/api/articles?tag=%s", p.baseURL, url.QueryEscape(query))

	var articles []devtoArticle
	if err := getJSON(ctx, p.client, u, &articles); err != nil {
		return nil, fmt.Errorf("devto: %w", err)
	}

	items := make([]resource.Resource, 0, len(articles))
	for _, a := range articles {
		if a.Title == "" || a.URL == "" {
			continue
		}
		thumb := a.CoverImage
		if thumb == "" {
			thumb = defaultBlogThumbnail
		}
		items = append(items, resource.Resource{
			Title:     a.Title,
			Link:      a.URL,
			Thumbnail: thumb,
		})
	}
	return items, nil
}
