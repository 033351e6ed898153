package mapper

import (
	"encoding/json"

	"student-guide-be/internal/entity"
	"student-guide-be/internal/model"

	"gorm.io/datatypes"
)

type IntentMapper struct{}

func NewIntentMapper() *IntentMapper {
	return &IntentMapper{}
}

func (m *IntentMapper) ToEntity(in *model.Intent) *entity.Intent {
	var keywords []string
	if len(in.Keywords) > 0 {
		// A corrupt keyword payload degrades to no keywords, not an error
		_ = json.Unmarshal(in.Keywords, &keywords)
	}

	e := &entity.Intent{
		Id:        in.Id,
		Label:     in.Label,
		Keywords:  keywords,
		Enabled:   in.Enabled,
		CreatedAt: in.CreatedAt,
	}
	if !in.UpdatedAt.IsZero() {
		updatedAt := in.UpdatedAt
		e.UpdatedAt = &updatedAt
	}
	return e
}

func (m *IntentMapper) ToModel(in *entity.Intent) *model.Intent {
	raw, _ := json.Marshal(in.Keywords)
	out := &model.Intent{
		Id:        in.Id,
		Label:     in.Label,
		Keywords:  datatypes.JSON(raw),
		Enabled:   in.Enabled,
		CreatedAt: in.CreatedAt,
	}
	if in.UpdatedAt != nil {
		out.UpdatedAt = *in.UpdatedAt
	}
	return out
}

func (m *IntentMapper) ToEntities(models []*model.Intent) []*entity.Intent {
	entities := make([]*entity.Intent, len(models))
	for i, mdl := range models {
		entities[i] = m.ToEntity(mdl)
	}
	return entities
}
