package service

import (
	"fmt"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/senior-care-guide/internal/domain"
	"github.com/senior-care-guide/internal/i18n"
)

// Recommender is what the bindings depend on to turn answers into advice.
type Recommender interface {
	Recommend(a domain.Assessment, lang i18n.Language) domain.Recommendation
}

// Observer is notified of every recommendation served.
type Observer interface {
	ObserveRecommendation(path domain.CarePath, cached bool)
}

type recommendationKey struct {
	assessment domain.Assessment
	lang       i18n.Language
}

// RecommendationService memoizes engine results per (assessment, language).
// The input space is small and closed, so a bounded LRU holds all of it in practice.
type RecommendationService struct {
	engine   *CarePathEngine
	cache    *lru.Cache[recommendationKey, domain.Recommendation]
	observer Observer
	logger   *logrus.Logger

	statsMu sync.Mutex
	stats   CacheStats
}

// CacheStats represents cache performance statistics
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// NewRecommendationService creates a service backed by an LRU of maxItems
// entries. maxItems <= 0 disables caching.
func NewRecommendationService(logger *logrus.Logger, maxItems int, observer Observer) (*RecommendationService, error) {
	svc := &RecommendationService{
		engine:   NewCarePathEngine(logger),
		observer: observer,
		logger:   logger,
	}

	if maxItems > 0 {
		cache, err := lru.New[recommendationKey, domain.Recommendation](maxItems)
		if err != nil {
			return nil, fmt.Errorf("failed to create recommendation cache: %w", err)
		}
		svc.cache = cache
	}

	return svc, nil
}

// Recommend returns the localized recommendation for the assessment. The
// returned value never shares slices with the cache.
func (s *RecommendationService) Recommend(a domain.Assessment, lang i18n.Language) domain.Recommendation {
	if s.cache == nil {
		rec := s.engine.Recommend(a, lang)
		s.observe(rec.Path, false)
		return rec
	}

	key := recommendationKey{assessment: a, lang: lang}
	if rec, ok := s.cache.Get(key); ok {
		s.record(true)
		s.observe(rec.Path, true)
		return cloneRecommendation(rec)
	}

	rec := s.engine.Recommend(a, lang)
	s.cache.Add(key, rec)
	s.record(false)
	s.observe(rec.Path, false)
	return cloneRecommendation(rec)
}

// Stats returns cache hit/miss counters.
func (s *RecommendationService) Stats() CacheStats {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	stats := s.stats
	if s.cache != nil {
		stats.Size = s.cache.Len()
	}
	return stats
}

func (s *RecommendationService) record(hit bool) {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	if hit {
		s.stats.Hits++
	} else {
		s.stats.Misses++
	}
}

func (s *RecommendationService) observe(path domain.CarePath, cached bool) {
	if s.observer != nil {
		s.observer.ObserveRecommendation(path, cached)
	}
}

func cloneRecommendation(r domain.Recommendation) domain.Recommendation {
	r.Reason = slices.Clone(r.Reason)
	r.NextSteps = slices.Clone(r.NextSteps)
	r.Cautions = slices.Clone(r.Cautions)
	return r
}
