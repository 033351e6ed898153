package service

import (
	"context"
	"encoding/json"
	"time"

	"student-guide-be/internal/constant"
	"student-guide-be/internal/dto"
	"student-guide-be/internal/pkg/logger"
	"student-guide-be/internal/repository/contract"
	"student-guide-be/pkg/engine/textutil"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	unionMaxAttempts = 3
	unionRetryDelay  = 200 * time.Millisecond
)

// ILearnerService consumes auto-learn events and grows intent keyword sets
// in the background. A learner failure never affects the chat that
// triggered it.
type ILearnerService interface {
	Consume(ctx context.Context) error
}

type learnerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	intentRepo contract.IntentRepository
	log        logger.ILogger
}

func NewLearnerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	intentRepo contract.IntentRepository,
	log logger.ILogger,
) ILearnerService {
	return &learnerService{
		pubSub:     pubSub,
		topicName:  topicName,
		intentRepo: intentRepo,
		log:        log,
	}
}

func (ls *learnerService) Consume(ctx context.Context) error {
	messages, err := ls.pubSub.Subscribe(ctx, ls.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ls.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ls *learnerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AutoLearnMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		ls.log.Error("learner", "failed to unmarshal auto-learn message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed payloads would fail forever, drop them
		return
	}

	tokens := textutil.Tokens(payload.Message, constant.AutoLearnMinTokenLength, constant.AutoLearnMaxTokens)
	if len(tokens) == 0 {
		msg.Ack()
		return
	}

	// Bounded in-place retries: Nack on a gochannel subscriber redelivers
	// immediately and would hot-loop against a down store. After the last
	// attempt the message is dropped; auto-learn is best-effort.
	var err error
	for attempt := 1; attempt <= unionMaxAttempts; attempt++ {
		if err = ls.intentRepo.UnionKeywords(ctx, payload.IntentId, tokens); err == nil {
			break
		}
		if attempt < unionMaxAttempts {
			time.Sleep(unionRetryDelay)
		}
	}
	if err != nil {
		ls.log.Error("learner", "failed to union keywords, dropping message", map[string]interface{}{
			"intent_id": payload.IntentId,
			"attempts":  unionMaxAttempts,
			"error":     err.Error(),
		})
		msg.Ack()
		return
	}

	ls.log.Info("learner", "keywords learned", map[string]interface{}{
		"intent_id": payload.IntentId,
		"tokens":    tokens,
	})
	msg.Ack()
}
