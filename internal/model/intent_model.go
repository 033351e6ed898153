package model

import (
	"time"

	"gorm.io/datatypes"
)

type Intent struct {
	Id        string         `gorm:"type:text;primaryKey"`
	Label     string         `gorm:"type:text;not null"`
	Keywords  datatypes.JSON `gorm:"type:jsonb"` // normalized phrase list
	Enabled   bool           `gorm:"not null;default:true;index"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Intent) TableName() string {
	return "intents"
}
