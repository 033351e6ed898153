package memory

import (
	"context"
	"testing"

	"student-guide-be/internal/entity"
	"student-guide-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
)

type countingRepo struct {
	intents  []*entity.Intent
	findAlls int
}

func (f *countingRepo) Create(ctx context.Context, intent *entity.Intent) error { return nil }
func (f *countingRepo) Update(ctx context.Context, intent *entity.Intent) error { return nil }
func (f *countingRepo) Delete(ctx context.Context, id string) error             { return nil }
func (f *countingRepo) FindOne(ctx context.Context, id string) (*entity.Intent, error) {
	return nil, nil
}
func (f *countingRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Intent, error) {
	f.findAlls++
	enabledOnly := false
	for _, s := range specs {
		if _, ok := s.(specification.EnabledOnly); ok {
			enabledOnly = true
		}
	}
	if !enabledOnly {
		return f.intents, nil
	}
	var out []*entity.Intent
	for _, in := range f.intents {
		if in.Enabled {
			out = append(out, in)
		}
	}
	return out, nil
}
func (f *countingRepo) UnionKeywords(ctx context.Context, id string, keywords []string) error {
	return nil
}

func enabledListing() []specification.Specification {
	return []specification.Specification{
		specification.EnabledOnly{},
		specification.OrderBy{Field: "created_at"},
	}
}

func TestCachedFindAllServesFromCache(t *testing.T) {
	inner := &countingRepo{intents: []*entity.Intent{{Id: "enrollment", Enabled: true}}}
	repo := NewCachedIntentRepository(inner)
	ctx := context.Background()

	first, err := repo.FindAll(ctx, enabledListing()...)
	assert.NoError(t, err)
	second, err := repo.FindAll(ctx, enabledListing()...)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.findAlls, "second listing must come from cache")
}

func TestListAllSeesDisabledIntentsAfterEnabledListing(t *testing.T) {
	inner := &countingRepo{intents: []*entity.Intent{
		{Id: "enrollment", Enabled: true},
		{Id: "grading", Enabled: false},
	}}
	repo := NewCachedIntentRepository(inner)
	ctx := context.Background()

	// chat path primes the enabled cache
	enabled, err := repo.FindAll(ctx, enabledListing()...)
	assert.NoError(t, err)
	assert.Len(t, enabled, 1)

	// the unfiltered listing must not be served from the enabled cache
	all, err := repo.FindAll(ctx, specification.OrderBy{Field: "created_at"})
	assert.NoError(t, err)
	assert.Len(t, all, 2, "list-all must include disabled intents")
	assert.Equal(t, 2, inner.findAlls)
}

func TestEnabledListingUnaffectedByPriorListAll(t *testing.T) {
	inner := &countingRepo{intents: []*entity.Intent{
		{Id: "enrollment", Enabled: true},
		{Id: "grading", Enabled: false},
	}}
	repo := NewCachedIntentRepository(inner)
	ctx := context.Background()

	all, err := repo.FindAll(ctx, specification.OrderBy{Field: "created_at"})
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	enabled, err := repo.FindAll(ctx, enabledListing()...)
	assert.NoError(t, err)
	assert.Len(t, enabled, 1, "enabled listing must not inherit the unfiltered list")
}

func TestCachedFindAllOtherSpecsBypassCache(t *testing.T) {
	inner := &countingRepo{}
	repo := NewCachedIntentRepository(inner)
	ctx := context.Background()

	_, _ = repo.FindAll(ctx, specification.ByIntentId{IntentId: "enrollment"})
	_, _ = repo.FindAll(ctx, specification.ByIntentId{IntentId: "enrollment"})

	assert.Equal(t, 2, inner.findAlls)
}

func TestWritesInvalidateCache(t *testing.T) {
	inner := &countingRepo{intents: []*entity.Intent{{Id: "enrollment", Enabled: true}}}
	repo := NewCachedIntentRepository(inner)
	ctx := context.Background()

	_, _ = repo.FindAll(ctx, enabledListing()...)
	assert.NoError(t, repo.UnionKeywords(ctx, "enrollment", []string{"register"}))
	_, _ = repo.FindAll(ctx, enabledListing()...)

	assert.Equal(t, 2, inner.findAlls, "keyword growth must be visible after invalidation")
}
