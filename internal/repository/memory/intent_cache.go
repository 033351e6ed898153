package memory

import (
	"context"
	"time"

	"student-guide-be/internal/entity"
	"student-guide-be/internal/repository/contract"
	"student-guide-be/internal/repository/specification"

	"github.com/patrickmn/go-cache"
)

const enabledIntentsKey = "intents:enabled"

// CachedIntentRepository fronts the intent store with a short-lived cache of
// the enabled-intent list, which every chat message needs. Writes (admin CRUD
// and auto-learn) invalidate the cache, so keyword growth becomes visible on
// the next request.
type CachedIntentRepository struct {
	inner contract.IntentRepository
	cache *cache.Cache
}

func NewCachedIntentRepository(inner contract.IntentRepository) *CachedIntentRepository {
	return &CachedIntentRepository{
		inner: inner,
		cache: cache.New(60*time.Second, 5*time.Minute),
	}
}

var _ contract.IntentRepository = (*CachedIntentRepository)(nil)

func (r *CachedIntentRepository) Create(ctx context.Context, intent *entity.Intent) error {
	r.cache.Delete(enabledIntentsKey)
	return r.inner.Create(ctx, intent)
}

func (r *CachedIntentRepository) Update(ctx context.Context, intent *entity.Intent) error {
	r.cache.Delete(enabledIntentsKey)
	return r.inner.Update(ctx, intent)
}

func (r *CachedIntentRepository) Delete(ctx context.Context, id string) error {
	r.cache.Delete(enabledIntentsKey)
	return r.inner.Delete(ctx, id)
}

func (r *CachedIntentRepository) FindOne(ctx context.Context, id string) (*entity.Intent, error) {
	return r.inner.FindOne(ctx, id)
}

func (r *CachedIntentRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Intent, error) {
	// Only the plain enabled-only listing is cached; anything more specific
	// goes straight through.
	if cacheable(specs) {
		if x, found := r.cache.Get(enabledIntentsKey); found {
			return x.([]*entity.Intent), nil
		}
		intents, err := r.inner.FindAll(ctx, specs...)
		if err != nil {
			return nil, err
		}
		r.cache.Set(enabledIntentsKey, intents, cache.DefaultExpiration)
		return intents, nil
	}
	return r.inner.FindAll(ctx, specs...)
}

func (r *CachedIntentRepository) UnionKeywords(ctx context.Context, id string, keywords []string) error {
	r.cache.Delete(enabledIntentsKey)
	return r.inner.UnionKeywords(ctx, id, keywords)
}

// cacheable accepts only listings that actually filter to enabled intents.
// An OrderBy-only listing (the admin list-all) must never share the enabled
// cache key: it would hide disabled intents behind a stale enabled-only
// slice, or prime the key with the unfiltered list.
func cacheable(specs []specification.Specification) bool {
	hasEnabledOnly := false
	for _, s := range specs {
		switch s.(type) {
		case specification.EnabledOnly:
			hasEnabledOnly = true
		case specification.OrderBy:
		default:
			return false
		}
	}
	return hasEnabledOnly
}
