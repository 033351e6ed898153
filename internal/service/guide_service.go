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
	"student-guide-be/pkg/engine/classify"
	"student-guide-be/pkg/engine/compose"
	"student-guide-be/pkg/engine/gate"
	"student-guide-be/pkg/engine/knowledge"
	"student-guide-be/pkg/events"
	"student-guide-be/pkg/llm"
)

// IGuideService is the conversation entrypoint. Chat never surfaces a
// dependency failure as an error: every recoverable path produces a reply.
type IGuideService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

// EventPublisher is the best-effort analytics sink (NATS in production).
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type guideService struct {
	intentRepo   contract.IntentRepository
	sessionRepo  contract.SessionRepository
	patternGate  *gate.PatternGate
	matcher      *classify.KeywordMatcher
	classifier   *classify.AIClassifier
	confidence   *classify.ConfidenceGate
	resolver     *knowledge.Resolver
	composer     *compose.Composer
	learnPub     IPublisherService
	eventPub     EventPublisher // nil when NATS is unavailable
	log          logger.ILogger
}

// LLMTimeouts bounds the two model calls independently. Classification is a
// short structured call; generation streams a full reply.
type LLMTimeouts struct {
	Classify time.Duration
	Generate time.Duration
}

func NewGuideService(
	intentRepo contract.IntentRepository,
	sessionRepo contract.SessionRepository,
	knowledgeSource knowledge.Source,
	provider llm.LLMProvider,
	timeouts LLMTimeouts,
	learnPub IPublisherService,
	eventPub EventPublisher,
	log logger.ILogger,
) IGuideService {
	return &guideService{
		intentRepo:  intentRepo,
		sessionRepo: sessionRepo,
		patternGate: gate.NewPatternGate(constant.GreetingPatterns, constant.BlockedPatterns, constant.VagueFollowUpPatterns),
		matcher:     classify.NewKeywordMatcher(),
		classifier:  classify.NewAIClassifier(provider, timeouts.Classify, log),
		confidence:  classify.NewConfidenceGate(),
		resolver:    knowledge.NewResolver(knowledgeSource),
		composer:    compose.NewComposer(provider, timeouts.Generate, log),
		learnPub:    learnPub,
		eventPub:    eventPub,
		log:         log,
	}
}

// chatState names each step of the pipeline so every terminal branch's
// persistence behavior is an explicit decision, not an accident of
// early-return placement.
type chatState int

const (
	stateStart chatState = iota
	stateClassify
	stateGateConfidence
	stateClarify
	stateResolveKnowledge
	stateFallback
	stateCompose
	statePersist
	stateEnd
)

// chatFlow carries the intermediates of one request through the state
// machine.
type chatFlow struct {
	request *dto.ChatRequest
	session *entity.SessionState
	intents []classify.Intent

	detected classify.Result
	resolved classify.Result
	snippets []string

	reply   string
	persist bool // greeting/blocked short-circuits never touch the session
}

func (s *guideService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	flow := &chatFlow{request: request}

	state := stateStart
	for state != stateEnd {
		var err error
		switch state {
		case stateStart:
			state = s.runStart(flow)
		case stateClassify:
			state, err = s.runClassify(ctx, flow)
		case stateGateConfidence:
			state = s.runGateConfidence(flow)
		case stateClarify:
			state = s.runClarify(flow)
		case stateResolveKnowledge:
			state = s.runResolveKnowledge(ctx, flow)
		case stateFallback:
			state = s.runFallback(flow)
		case stateCompose:
			state = s.runCompose(ctx, flow)
		case statePersist:
			state = s.runPersist(ctx, flow)
		default:
			return nil, fmt.Errorf("invalid chat state %d", state)
		}
		if err != nil {
			return nil, err
		}
	}

	return &dto.ChatResponse{Reply: flow.reply}, nil
}

// runStart applies the deterministic short-circuits. Greeting and blocked
// replies end the pipeline without loading or writing the session, so
// non-substantive turns never pollute memory.
func (s *guideService) runStart(flow *chatFlow) chatState {
	if s.patternGate.IsGreeting(flow.request.Message) {
		flow.reply = constant.GreetingReply
		return stateEnd
	}
	if s.patternGate.IsBlockedQuestion(flow.request.Message) {
		flow.reply = constant.BlockedReply
		return stateEnd
	}
	return stateClassify
}

// runClassify loads session memory and the enabled intents, then tries the
// cheap keyword path before spending a model call. A session-store failure
// is the one error that aborts the request (memory is load-bearing for the
// rest of the pipeline); an intent-store failure degrades to an empty set.
func (s *guideService) runClassify(ctx context.Context, flow *chatFlow) (chatState, error) {
	session, err := s.sessionRepo.Get(ctx, flow.request.SessionId)
	if err != nil {
		return stateEnd, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		session = &entity.SessionState{SessionId: flow.request.SessionId}
	}
	flow.session = session

	stored, err := s.intentRepo.FindAll(ctx, specification.EnabledOnly{}, specification.OrderBy{Field: "created_at"})
	if err != nil {
		s.log.Error("guide", "intent list unavailable, classifying against empty set", map[string]interface{}{
			"error": err.Error(),
		})
		stored = nil
	}
	flow.intents = make([]classify.Intent, 0, len(stored))
	for _, in := range stored {
		flow.intents = append(flow.intents, classify.Intent{
			Id:       in.Id,
			Label:    in.Label,
			Keywords: in.Keywords,
			Enabled:  in.Enabled,
		})
	}

	if match := s.matcher.Match(flow.request.Message, flow.intents); match != nil {
		flow.detected = *match
	} else {
		flow.detected = s.classifier.Classify(ctx, flow.request.Message, flow.intents)
	}

	return stateGateConfidence, nil
}

func (s *guideService) runGateConfidence(flow *chatFlow) chatState {
	decision := s.confidence.Apply(
		flow.detected,
		flow.session.LastIntent,
		s.patternGate.IsVagueFollowUp(flow.request.Message),
	)
	flow.resolved = decision.Result

	if decision.NeedsClarification {
		return stateClarify
	}
	return stateResolveKnowledge
}

// runClarify asks the student to rephrase. The turn pair is persisted like
// any other so session history stays a faithful audit trail.
func (s *guideService) runClarify(flow *chatFlow) chatState {
	flow.reply = constant.ClarifyReply
	flow.persist = true
	return statePersist
}

// runResolveKnowledge fetches snippets and applies the answerability
// predicates. Store failures degrade to empty knowledge — an intent deleted
// mid-request lands here too.
func (s *guideService) runResolveKnowledge(ctx context.Context, flow *chatFlow) chatState {
	snippets, err := s.resolver.Resolve(ctx, flow.resolved.IntentId)
	if err != nil {
		s.log.Error("guide", "knowledge fetch failed, falling back", map[string]interface{}{
			"intent_id": flow.resolved.IntentId,
			"error":     err.Error(),
		})
		snippets = nil
	}
	flow.snippets = snippets

	if !knowledge.CanAnswer(flow.resolved.IntentId, snippets) || !knowledge.HasSufficientKnowledge(snippets) {
		return stateFallback
	}
	return stateCompose
}

func (s *guideService) runFallback(flow *chatFlow) chatState {
	flow.reply = constant.FallbackReply
	flow.persist = true
	return statePersist
}

// runCompose builds the grounded reply and fires the post-answer side
// effects. Generation failure produces the apologetic fixed reply; it never
// propagates.
func (s *guideService) runCompose(ctx context.Context, flow *chatFlow) chatState {
	raw, err := s.composer.Compose(ctx, s.historyForGeneration(flow.session), flow.snippets, flow.request.Message)
	if err != nil {
		flow.reply = constant.GenerationFailureReply
		flow.persist = true
		return statePersist
	}

	flow.reply = compose.FormatReply(raw, flow.resolved.Confidence)
	flow.persist = true

	// Auto-learn only from confident AI classifications: keyword hits teach
	// nothing new and context reuse would reinforce the wrong message.
	if flow.resolved.Method == classify.MethodAI && flow.resolved.Confidence >= classify.ConfidenceThreshold {
		s.publishAutoLearn(ctx, flow)
	}

	if s.eventPub != nil {
		evt := events.ConversationAnswered(
			flow.request.SessionId,
			flow.resolved.IntentId,
			flow.resolved.Method,
			flow.resolved.Confidence,
		)
		if err := s.eventPub.Publish(ctx, evt); err != nil {
			s.log.Warn("guide", "analytics event publish failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return statePersist
}

// runPersist appends the turn pair and advances lastIntent. lastIntent only
// moves to a real intent id — an unknown outcome keeps the previous topic
// available for follow-ups. A write failure is logged, not surfaced: the
// reply was already composed and the student should receive it.
func (s *guideService) runPersist(ctx context.Context, flow *chatFlow) chatState {
	if !flow.persist {
		return stateEnd
	}

	lastIntent := ""
	if flow.resolved.IntentId != classify.IntentUnknown {
		lastIntent = flow.resolved.IntentId
	}

	turns := []entity.Turn{
		{Role: constant.ChatRoleUser, Content: flow.request.Message},
		{Role: constant.ChatRoleAssistant, Content: flow.reply},
	}

	if err := s.sessionRepo.Merge(ctx, flow.request.SessionId, turns, lastIntent); err != nil {
		s.log.Error("guide", "session persist failed", map[string]interface{}{
			"session_id": flow.request.SessionId,
			"error":      err.Error(),
		})
	}

	return stateEnd
}

// historyForGeneration trims stored history to the most recent MaxHistory
// turns and drops assistant turns carrying the no-information marker, so
// past non-answers don't get reinforced by the model.
func (s *guideService) historyForGeneration(session *entity.SessionState) []llm.Message {
	var filtered []entity.Turn
	for _, turn := range session.History {
		if turn.Role == constant.ChatRoleAssistant && containsNoInfoMarker(turn.Content) {
			continue
		}
		filtered = append(filtered, turn)
	}

	if len(filtered) > constant.MaxHistory {
		filtered = filtered[len(filtered)-constant.MaxHistory:]
	}

	messages := make([]llm.Message, len(filtered))
	for i, turn := range filtered {
		messages[i] = llm.Message{Role: turn.Role, Content: turn.Content}
	}
	return messages
}

func (s *guideService) publishAutoLearn(ctx context.Context, flow *chatFlow) {
	payload := dto.AutoLearnMessage{
		IntentId:   flow.resolved.IntentId,
		Message:    flow.request.Message,
		Confidence: flow.resolved.Confidence,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		s.log.Warn("guide", "auto-learn marshal failed", map[string]interface{}{
			"intent_id": payload.IntentId,
			"error":     err.Error(),
		})
		return
	}
	if err := s.learnPub.Publish(ctx, data); err != nil {
		s.log.Warn("guide", "auto-learn publish failed", map[string]interface{}{
			"intent_id": payload.IntentId,
			"error":     err.Error(),
		})
	}
}

func containsNoInfoMarker(content string) bool {
	return strings.Contains(content, constant.NoInfoMarker)
}
