package specification

import "gorm.io/gorm"

type ByIntentId struct {
	IntentId string
}

func (s ByIntentId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("intent_id = ?", s.IntentId)
}

type EnabledOnly struct{}

func (s EnabledOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("enabled = ?", true)
}
