package provider

import (
	"context"
	"log"

	serpapi "github.com/serpapi/google-search-results-golang"
)

// PlaceholderThumbnail is returned whenever image search cannot produce a link.
const PlaceholderThumbnail = "https://via.placeholder.com/150"

// Resolver turns free text into a best-effort image URL. Implementations are
// total: they always return a usable URL, never an error.
type Resolver interface {
	Resolve(ctx context.Context, text string) string
}

// SerpApiResolver looks the text up on Google Images through SerpApi and takes
// the first hit.
type SerpApiResolver struct {
	apiKey string
}

func NewSerpApiResolver(apiKey string) *SerpApiResolver {
	return &SerpApiResolver{apiKey: apiKey}
}

func (r *SerpApiResolver) Resolve(ctx context.Context, text string) string {
	if r.apiKey == "" || text == "" {
		return PlaceholderThumbnail
	}

	search := serpapi.NewGoogleSearch(map[string]string{
		"q":   text,
		"tbm": "isch",
		"num": "1",
	}, r.apiKey)

	// The serpapi client has no context plumbing, so the lookup runs on the side
	// and the caller's deadline stays authoritative.
	type lookup struct {
		data map[string]interface{}
		err  error
	}
	ch := make(chan lookup, 1)
	go func() {
		data, err := search.GetJSON()
		ch <- lookup{data: data, err: err}
	}()

	var data map[string]interface{}
	select {
	case <-ctx.Done():
		log.Printf("thumbnail lookup %q abandoned: %v", text, ctx.Err())
		return PlaceholderThumbnail
	case res := <-ch:
		if res.err != nil {
			log.Printf("thumbnail lookup %q failed: %v", text, res.err)
			return PlaceholderThumbnail
		}
		data = res.data
	}

	images, ok := data["images_results"].([]interface{})
	if !ok || len(images) == 0 {
		return PlaceholderThumbnail
	}
	first, ok := images[0].(map[string]interface{})
	if !ok {
		return PlaceholderThumbnail
	}
	if link, ok := first["original"].(string); ok && link != "" {
		return link
	}
	if link, ok := first["thumbnail"].(string); ok && link != "" {
		return link
	}
	return PlaceholderThumbnail
}
