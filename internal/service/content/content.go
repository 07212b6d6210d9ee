package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nexcraft-service/internal/domain/content"
	xerrors "nexcraft-service/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	cacheKey = "content:website"
	cacheTTL = 5 * time.Minute
)

// Store is the persistence surface for the singleton content document.
type Store interface {
	Get(ctx context.Context) (*content.Document, error)
	UpdateSection(ctx context.Context, section string, data json.RawMessage) error
}

// Service serves the website content document with default-fallback
// semantics and an optional Redis read cache. A nil cache client
// disables caching.
type Service struct {
	store  Store
	cache  *redis.Client
	logger *zap.Logger
}

func NewService(store Store, cache *redis.Client, logger *zap.Logger) *Service {
	return &Service{store: store, cache: cache, logger: logger}
}

// Get returns the persisted document, or the hardcoded default when
// nothing has been written yet. The default is never persisted.
func (s *Service) Get(ctx context.Context) (content.Document, error) {
	if doc, ok := s.cached(ctx); ok {
		return doc, nil
	}

	doc, err := s.store.Get(ctx)
	if errors.Is(err, xerrors.ErrNotFound) {
		return content.Default(), nil
	}
	if err != nil {
		return content.Document{}, fmt.Errorf("failed to load content: %w", err)
	}

	s.fillCache(ctx, *doc)
	return *doc, nil
}

// UpdateSection overwrites one named section and drops the cache entry.
func (s *Service) UpdateSection(ctx context.Context, req *content.UpdateRequest) error {
	if err := s.store.UpdateSection(ctx, req.Section, req.Data); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Warn("failed to invalidate content cache", zap.Error(err))
		}
	}

	s.logger.Info("content section updated", zap.String("section", req.Section))
	return nil
}

func (s *Service) cached(ctx context.Context) (content.Document, bool) {
	if s.cache == nil {
		return content.Document{}, false
	}

	raw, err := s.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("content cache read failed", zap.Error(err))
		}
		return content.Document{}, false
	}

	var doc content.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Warn("content cache entry corrupt", zap.Error(err))
		return content.Document{}, false
	}
	return doc, true
}

func (s *Service) fillCache(ctx context.Context, doc content.Document) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
		s.logger.Warn("content cache write failed", zap.Error(err))
	}
}
