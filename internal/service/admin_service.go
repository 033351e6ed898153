package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"student-guide-be/internal/constant"
	"student-guide-be/internal/dto"
	"student-guide-be/internal/entity"
	"student-guide-be/internal/pkg/logger"
	"student-guide-be/internal/repository/contract"
	"student-guide-be/internal/repository/specification"
	"student-guide-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const suggestionTemperature = 0.2

type IAdminService interface {
	// Intent curation
	SuggestIntent(ctx context.Context, req *dto.SuggestIntentRequest) (*dto.IntentSuggestionResponse, error)
	CreateIntent(ctx context.Context, req *dto.CreateIntentRequest) (*dto.IntentResponse, error)
	UpdateIntent(ctx context.Context, req *dto.UpdateIntentRequest) (*dto.IntentResponse, error)
	DeleteIntent(ctx context.Context, id string) error
	GetAllIntents(ctx context.Context) ([]*dto.IntentResponse, error)

	// Knowledge curation
	CreateKnowledge(ctx context.Context, req *dto.CreateKnowledgeRequest) (*dto.KnowledgeResponse, error)
	GetKnowledgeByIntent(ctx context.Context, intentId string) ([]*dto.KnowledgeResponse, error)
	DeleteKnowledge(ctx context.Context, id uuid.UUID) error
}

type adminService struct {
	intentRepo    contract.IntentRepository
	knowledgeRepo contract.KnowledgeRepository
	provider      llm.LLMProvider
	llmTimeout    time.Duration
	log           logger.ILogger
}

func NewAdminService(
	intentRepo contract.IntentRepository,
	knowledgeRepo contract.KnowledgeRepository,
	provider llm.LLMProvider,
	llmTimeout time.Duration,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		intentRepo:    intentRepo,
		knowledgeRepo: knowledgeRepo,
		provider:      provider,
		llmTimeout:    llmTimeout,
		log:           log,
	}
}

// SuggestIntent asks the model which intent a knowledge passage belongs to.
// The model is pushed hard toward reuse, and the reuse decision is enforced
// again here: a suggested id that already exists is always treated as a
// reuse regardless of what the model claimed.
func (s *adminService) SuggestIntent(ctx context.Context, req *dto.SuggestIntentRequest) (*dto.IntentSuggestionResponse, error) {
	existing, err := s.intentRepo.FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, fmt.Errorf("list intents: %w", err)
	}

	lines := make([]string, 0, len(existing))
	byId := make(map[string]*entity.Intent, len(existing))
	for _, in := range existing {
		lines = append(lines, fmt.Sprintf("- %s (%s): %s", in.Id, in.Label, strings.Join(in.Keywords, ", ")))
		byId[in.Id] = in
	}

	prompt := fmt.Sprintf(constant.IntentSuggestionPromptTemplate, strings.Join(lines, "\n"), req.Knowledge)

	callCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	raw, err := s.provider.Chat(callCtx, []llm.Message{
		{Role: constant.ChatRoleSystem, Content: constant.IntentSuggestionSystemPrompt},
		{Role: constant.ChatRoleUser, Content: prompt},
	}, llm.WithTemperature(suggestionTemperature))
	if err != nil {
		return nil, fmt.Errorf("intent suggestion call: %w", err)
	}

	var suggestion dto.IntentSuggestionResponse
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &suggestion); err != nil {
		s.log.Warn("admin", "unparseable intent suggestion", map[string]interface{}{
			"raw":   raw,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("parse intent suggestion: %w", err)
	}

	if suggestion.IntentId == "" {
		suggestion.IntentId = "unknown"
	}
	if suggestion.Label == "" {
		suggestion.Label = "Uncategorized"
	}
	if suggestion.Keywords == nil {
		suggestion.Keywords = []string{}
	}

	if stored, ok := byId[suggestion.IntentId]; ok {
		suggestion.UseExistingIntent = true
		suggestion.Label = stored.Label
	} else {
		suggestion.UseExistingIntent = false
	}

	return &suggestion, nil
}

func (s *adminService) CreateIntent(ctx context.Context, req *dto.CreateIntentRequest) (*dto.IntentResponse, error) {
	existing, err := s.intentRepo.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fiber.NewError(fiber.StatusConflict, "intent already exists")
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	intent := &entity.Intent{
		Id:        req.Id,
		Label:     req.Label,
		Keywords:  req.Keywords,
		Enabled:   enabled,
		CreatedAt: time.Now(),
	}
	if err := s.intentRepo.Create(ctx, intent); err != nil {
		return nil, err
	}
	return toIntentResponse(intent), nil
}

func (s *adminService) UpdateIntent(ctx context.Context, req *dto.UpdateIntentRequest) (*dto.IntentResponse, error) {
	intent, err := s.intentRepo.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "intent not found")
	}

	now := time.Now()
	intent.Label = req.Label
	intent.Keywords = req.Keywords
	intent.Enabled = req.Enabled
	intent.UpdatedAt = &now

	if err := s.intentRepo.Update(ctx, intent); err != nil {
		return nil, err
	}
	return toIntentResponse(intent), nil
}

func (s *adminService) DeleteIntent(ctx context.Context, id string) error {
	intent, err := s.intentRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if intent == nil {
		return fiber.NewError(fiber.StatusNotFound, "intent not found")
	}
	return s.intentRepo.Delete(ctx, id)
}

func (s *adminService) GetAllIntents(ctx context.Context) ([]*dto.IntentResponse, error) {
	intents, err := s.intentRepo.FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.IntentResponse, len(intents))
	for i, in := range intents {
		responses[i] = toIntentResponse(in)
	}
	return responses, nil
}

func (s *adminService) CreateKnowledge(ctx context.Context, req *dto.CreateKnowledgeRequest) (*dto.KnowledgeResponse, error) {
	intent, err := s.intentRepo.FindOne(ctx, req.IntentId)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "intent not found")
	}

	snippet := &entity.KnowledgeSnippet{
		Id:        uuid.New(),
		IntentId:  req.IntentId,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.knowledgeRepo.Create(ctx, snippet); err != nil {
		return nil, err
	}
	return toKnowledgeResponse(snippet), nil
}

func (s *adminService) GetKnowledgeByIntent(ctx context.Context, intentId string) ([]*dto.KnowledgeResponse, error) {
	snippets, err := s.knowledgeRepo.FindAllByIntentId(ctx, intentId)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.KnowledgeResponse, len(snippets))
	for i, sn := range snippets {
		responses[i] = toKnowledgeResponse(sn)
	}
	return responses, nil
}

func (s *adminService) DeleteKnowledge(ctx context.Context, id uuid.UUID) error {
	return s.knowledgeRepo.Delete(ctx, id)
}

func toIntentResponse(in *entity.Intent) *dto.IntentResponse {
	return &dto.IntentResponse{
		Id:        in.Id,
		Label:     in.Label,
		Keywords:  in.Keywords,
		Enabled:   in.Enabled,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

func toKnowledgeResponse(sn *entity.KnowledgeSnippet) *dto.KnowledgeResponse {
	return &dto.KnowledgeResponse{
		Id:        sn.Id,
		IntentId:  sn.IntentId,
		Content:   sn.Content,
		CreatedAt: sn.CreatedAt,
	}
}

// stripCodeFences removes a leading/trailing markdown fence the model may
// wrap JSON in despite instructions.
func stripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}
