package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/patrickmn/go-cache"

	"ai-answer-engine-be/internal/dto"
	"ai-answer-engine-be/internal/pkg/logger"
	"ai-answer-engine-be/pkg/search"
)

const discoverCacheKey = "discover:feed"

// discoverTopics are queried round-robin against tech news sites to build
// the discover feed.
var discoverTopics = []string{"AI", "tech"}

var discoverSites = []string{
	"businessinsider.com",
	"www.exchangewire.com",
	"yahoo.com",
}

type IDiscoverService interface {
	GetFeed(ctx context.Context) (*dto.DiscoverResponse, error)
}

type discoverService struct {
	search *search.Client
	cache  *cache.Cache
	ttl    time.Duration
	logger logger.ILogger
}

func NewDiscoverService(searchClient *search.Client, ttl time.Duration, log logger.ILogger) IDiscoverService {
	return &discoverService{
		search: searchClient,
		cache:  cache.New(ttl, 10*time.Minute),
		ttl:    ttl,
		logger: log,
	}
}

func (s *discoverService) GetFeed(ctx context.Context) (*dto.DiscoverResponse, error) {
	if cached, found := s.cache.Get(discoverCacheKey); found {
		return cached.(*dto.DiscoverResponse), nil
	}

	var items []dto.DiscoverItem
	for _, topic := range discoverTopics {
		for _, site := range discoverSites {
			results, _, err := s.search.Search(ctx, "site:"+site+" "+topic, &search.Options{
				Engines:    []string{"bing news"},
				PageNumber: 1,
			})
			if err != nil {
				s.logger.Warn("discover", "news query failed", map[string]interface{}{
					"site":  site,
					"topic": topic,
					"error": err.Error(),
				})
				continue
			}
			for _, r := range results {
				if r.Content == "" {
					continue
				}
				items = append(items, dto.DiscoverItem{
					Title:     r.Title,
					URL:       r.URL,
					Content:   r.Content,
					Thumbnail: r.ImgSrc,
				})
			}
		}
	}

	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	res := &dto.DiscoverResponse{Blogs: items}
	s.cache.Set(discoverCacheKey, res, s.ttl)
	return res, nil
}
