package provider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSerpApiResolverWithoutKey(t *testing.T) {
	r := NewSerpApiResolver("")
	assert.Equal(t, PlaceholderThumbnail, r.Resolve(context.Background(), "golang"))
}

func TestSerpApiResolverEmptyText(t *testing.T) {
	r := NewSerpApiResolver("some-key")
	assert.Equal(t, PlaceholderThumbnail, r.Resolve(context.Background(), ""))
}

func TestSerpApiResolverExpiredContext(t *testing.T) {
	r := NewSerpApiResolver("some-key")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A spent deadline yields the placeholder immediately instead of waiting on
	// the image-search connection.
	done := make(chan string, 1)
	go func() { done <- r.Resolve(ctx, "golang") }()

	select {
	case got := <-done:
		assert.Equal(t, PlaceholderThumbnail, got)
	case <-time.After(2 * time.Second):
		t.Fatal("Resolve did not honor the canceled context")
	}
}
