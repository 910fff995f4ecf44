package repository

import (
	"context"
	"encoding/json"

	"library-circulation/internal/infra/db"
	"library-circulation/internal/usecase/shared"

	"github.com/google/uuid"
)

type AuditRepository struct{}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

func (r *AuditRepository) Record(ctx context.Context, dbtx db.DBTX, entry shared.AuditEntry) error {
	var detail []byte
	if entry.Detail != nil {
		var err error
		detail, err = json.Marshal(entry.Detail)
		if err != nil {
			return wrapWriteErr("failed to encode audit detail", err)
		}
	}

	_, err := dbtx.Exec(ctx,
		`INSERT INTO audit_log (id, actor_id, actor_email, action, entity, entity_id, detail, recorded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.New(), entry.ActorID, entry.ActorEmail, entry.Action, entry.Entity, entry.EntityID, detail, entry.RecordedAt,
	)
	if err != nil {
		return wrapWriteErr("failed to record audit entry", err)
	}
	return nil
}
