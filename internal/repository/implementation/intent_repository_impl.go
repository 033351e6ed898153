package implementation

import (
	"context"
	"errors"
	"time"

	"student-guide-be/internal/entity"
	"student-guide-be/internal/mapper"
	"student-guide-be/internal/model"
	"student-guide-be/internal/repository/contract"
	"student-guide-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IntentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.IntentMapper
}

func NewIntentRepository(db *gorm.DB) contract.IntentRepository {
	return &IntentRepositoryImpl{
		db:     db,
		mapper: mapper.NewIntentMapper(),
	}
}

func (r *IntentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *IntentRepositoryImpl) Create(ctx context.Context, intent *entity.Intent) error {
	m := r.mapper.ToModel(intent)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*intent = *r.mapper.ToEntity(m)
	return nil
}

func (r *IntentRepositoryImpl) Update(ctx context.Context, intent *entity.Intent) error {
	m := r.mapper.ToModel(intent)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*intent = *r.mapper.ToEntity(m)
	return nil
}

func (r *IntentRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Intent{}, "id = ?", id).Error
}

func (r *IntentRepositoryImpl) FindOne(ctx context.Context, id string) (*entity.Intent, error) {
	var m model.Intent
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *IntentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Intent, error) {
	var models []*model.Intent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// UnionKeywords is a read-modify-write under a row lock so concurrent
// auto-learn writers for the same intent don't drop each other's tokens.
func (r *IntentRepositoryImpl) UnionKeywords(ctx context.Context, id string, keywords []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.Intent
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // Intent deleted mid-flight: nothing to learn into
			}
			return err
		}

		e := r.mapper.ToEntity(&m)
		existing := make(map[string]struct{}, len(e.Keywords))
		for _, kw := range e.Keywords {
			existing[kw] = struct{}{}
		}

		changed := false
		for _, kw := range keywords {
			if _, ok := existing[kw]; !ok {
				e.Keywords = append(e.Keywords, kw)
				existing[kw] = struct{}{}
				changed = true
			}
		}
		if !changed {
			return nil
		}

		updated := r.mapper.ToModel(e)
		return tx.Model(&model.Intent{}).Where("id = ?", id).Updates(map[string]interface{}{
			"keywords":   updated.Keywords,
			"updated_at": time.Now(),
		}).Error
	})
}
