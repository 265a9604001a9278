package resource

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

const defaultProviderTimeout = 5 * time.Second

type ServiceImpl struct {
	providers map[Category]Provider
	cache     Cache
	timeout   time.Duration
}

func NewServiceImpl(providers []Provider, cache Cache, timeout time.Duration) *ServiceImpl {
	byCategory := make(map[Category]Provider, len(providers))
	for _, p := range providers {
		byCategory[p.Category()] = p
	}
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return &ServiceImpl{
		providers: byCategory,
		cache:     cache,
		timeout:   timeout,
	}
}

// Search returns normalized results for (query, category), consulting the cache
// first. An empty category fans out across every provider. Provider failures are
// absorbed; only validation errors reach the caller.
func (s *ServiceImpl) Search(ctx context.Context, query string, category Category) ([]Resource, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if category != "" {
		if _, ok := s.providers[category]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
		}
	}

	if cached, ok := s.cache.Get(ctx, query, category); ok && len(cached) > 0 {
		return cached, nil
	}

	var results []Resource
	if category != "" {
		results = s.fetchOne(ctx, s.providers[category], query)
	} else {
		results = s.fetchAll(ctx, query)
	}

	// Only non-empty sets are cached so a transient all-providers outage does not
	// stick around as a cached empty answer.
	if len(results) > 0 {
		if err := s.cache.Put(ctx, query, category, results); err != nil {
			log.Printf("cache put (%s, %s) failed: %v", query, category, err)
		}
	}

	return results, nil
}

// fetchOne invokes a single provider with a bounded timeout. Any error, timeout
// included, surfaces as an empty contribution.
func (s *ServiceImpl) fetchOne(ctx context.Context, p Provider, query string) []Resource {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	items, err := p.Fetch(ctx, query)
	if err != nil {
		log.Printf("fetch %s error: %v", p.Category(), err)
		return nil
	}
	return items
}

// fetchAll runs every provider concurrently and concatenates the results in the
// fixed Categories order, buffering by provider slot rather than arrival order.
func (s *ServiceImpl) fetchAll(ctx context.Context, query string) []Resource {
	buckets := make([][]Resource, len(Categories))

	var wg sync.WaitGroup
	for i, c := range Categories {
		p, ok := s.providers[c]
		if !ok {
			continue
		}
		wg.Add(1)
		go func(slot int, p Provider) {
			defer wg.Done()
			buckets[slot] = s.fetchOne(ctx, p, query)
		}(i, p)
	}
	wg.Wait()

	var out []Resource
	for _, b := range buckets {
		out = append(out, b...)
	}
	return out
}
