package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"student-guide-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
)

func newLearnerFixture(t *testing.T) (*gochannel.GoChannel, IPublisherService, *fakeIntentRepo) {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	repo := &fakeIntentRepo{}
	learner := NewLearnerService(pubSub, "guide.autolearn.test", repo, nopLogger{})
	assert.NoError(t, learner.Consume(context.Background()))

	return pubSub, NewPublisherService(pubSub, "guide.autolearn.test"), repo
}

func waitForUnions(t *testing.T, repo *fakeIntentRepo, want int) []unionCall {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if calls := repo.unionCalls(); len(calls) >= want {
			return calls
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d union calls, got %d", want, len(repo.unionCalls()))
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestLearnerHarvestsKeywords(t *testing.T) {
	_, pub, repo := newLearnerFixture(t)

	payload, _ := json.Marshal(dto.AutoLearnMessage{
		IntentId:   "scholarship",
		Message:    "is there help paying for my tuition fees",
		Confidence: 0.7,
	})
	assert.NoError(t, pub.Publish(context.Background(), payload))

	calls := waitForUnions(t, repo, 1)
	assert.Equal(t, "scholarship", calls[0].id)
	// tokens longer than three characters, capped at five
	assert.Equal(t, []string{"there", "help", "paying", "tuition", "fees"}, calls[0].keywords)
}

func TestLearnerSkipsShortMessages(t *testing.T) {
	_, pub, repo := newLearnerFixture(t)

	payload, _ := json.Marshal(dto.AutoLearnMessage{
		IntentId:   "scholarship",
		Message:    "how do I go",
		Confidence: 0.7,
	})
	assert.NoError(t, pub.Publish(context.Background(), payload))

	// nothing qualifies; give the consumer a beat and confirm no writes
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, repo.unionCalls())
}

func TestLearnerBoundsRetriesOnStoreFailure(t *testing.T) {
	_, pub, repo := newLearnerFixture(t)
	repo.unionErr = fmt.Errorf("store down")

	payload, _ := json.Marshal(dto.AutoLearnMessage{
		IntentId:   "scholarship",
		Message:    "is there help paying for my tuition fees",
		Confidence: 0.7,
	})
	assert.NoError(t, pub.Publish(context.Background(), payload))

	waitForUnions(t, repo, 3)

	// the message is dropped after the final attempt, never redelivered
	time.Sleep(300 * time.Millisecond)
	assert.Len(t, repo.unionCalls(), 3)
}

func TestLearnerDropsMalformedPayloads(t *testing.T) {
	_, pub, repo := newLearnerFixture(t)

	assert.NoError(t, pub.Publish(context.Background(), []byte("not json")))

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, repo.unionCalls())
}
