package service

import (
	"context"

	"student-guide-be/internal/repository/contract"
	"student-guide-be/pkg/engine/knowledge"
)

// knowledgeSource adapts the snippet repository to the engine's Source
// contract, exposing only ordered contents.
type knowledgeSource struct {
	repo contract.KnowledgeRepository
}

func NewKnowledgeSource(repo contract.KnowledgeRepository) knowledge.Source {
	return &knowledgeSource{repo: repo}
}

func (ks *knowledgeSource) ContentsByIntentId(ctx context.Context, intentId string) ([]string, error) {
	snippets, err := ks.repo.FindAllByIntentId(ctx, intentId)
	if err != nil {
		return nil, err
	}
	contents := make([]string, len(snippets))
	for i, sn := range snippets {
		contents[i] = sn.Content
	}
	return contents, nil
}
