package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a single helpful/not-helpful vote. At most one exists per
// (kind, content, ip address).
type Feedback struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	Kind      ContentKind `db:"content_kind" json:"kind"`
	ContentID uuid.UUID   `db:"content_id" json:"content_id"`
	IsHelpful bool        `db:"is_helpful" json:"is_helpful"`
	Comment   string      `db:"comment" json:"comment"`
	IPAddress string      `db:"ip_address" json:"-"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}
