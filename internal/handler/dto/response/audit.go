package response

import (
	"time"

	"library-circulation/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuditResponse struct {
	ID         uuid.UUID  `json:"id"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty"`
	ActorEmail string     `json:"actor_email"`
	Action     string     `json:"action"`
	Entity     string     `json:"entity"`
	EntityID   *uuid.UUID `json:"entity_id,omitempty"`
	Detail     string     `json:"detail,omitempty"`
	RecordedAt time.Time  `json:"recorded_at"`
}

func FromAuditViews(vs []queries.AuditView) ([]AuditResponse, error) {
	return copyList[queries.AuditView, AuditResponse](vs)
}
