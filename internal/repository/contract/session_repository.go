package contract

import (
	"context"

	"student-guide-be/internal/entity"
)

// SessionRepository is the conversation-memory collaborator. Get returns
// (nil, nil) for an unseen session id. Merge appends the given turns and
// updates lastIntent/updatedAt without clobbering unrelated fields; when
// lastIntent is empty the stored value is kept. Concurrent merges for the
// same session id are last-writer-wins.
type SessionRepository interface {
	Get(ctx context.Context, sessionId string) (*entity.SessionState, error)
	Merge(ctx context.Context, sessionId string, turns []entity.Turn, lastIntent string) error
}
