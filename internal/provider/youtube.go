package provider

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"learnhub/be/internal/resource"
)

const youtubeMaxResults = 5

// YouTubeProvider searches YouTube through the Data API v3.
type YouTubeProvider struct {
	svc *youtube.Service
}

func NewYouTubeProvider(ctx context.Context, apiKey string) (*YouTubeProvider, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("youtube: init service: %w", err)
	}
	return &YouTubeProvider{svc: svc}, nil
}

func (p *YouTubeProvider) Category() resource.Category {
	return resource.CategoryVideo
}

func (p *YouTubeProvider) Fetch(ctx context.Context, query string) ([]resource.Resource, error) {
	resp, err := p.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(youtubeMaxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube: search: %w", err)
	}

	items := make([]resource.Resource, 0, len(resp.Items))
	for _, it := range resp.Items {
		if it.Id == nil || it.Id.VideoId == "" || it.Snippet == nil {
			continue
		}
		thumb := defaultVideoThumbnail
		if it.Snippet.Thumbnails != nil && it.Snippet.Thumbnails.High != nil && it.Snippet.Thumbnails.High.Url != "" {
			thumb = it.Snippet.Thumbnails.High.Url
		}
		items = append(items, resource.Resource{
			Title:     it.Snippet.Title,
			Link:      "https://www.youtube.com/watch?v=" + it.Id.VideoId,
			Thumbnail: thumb,
		})
	}
	return items, nil
}
