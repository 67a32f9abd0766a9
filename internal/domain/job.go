package domain

import (
	"time"

	"github.com/google/uuid"
)

// Job statuses, pending through completed/failed.
const (
	StatusPending   = "pending"
	StatusRendering = "rendering"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ExportJob tracks one background render-and-export of a resume through a
// chosen template. Resume holds the raw payload as received; Metadata
// accumulates artifact paths and warnings as the job progresses.
type ExportJob struct {
	ID          uuid.UUID              `json:"id"`
	UserID      uuid.UUID              `json:"user_id"`
	TemplateKey string                 `json:"template_key"`
	Language    string                 `json:"language"`
	Resume      map[string]interface{} `json:"resume"`
	Status      string                 `json:"status"`
	Metadata    map[string]interface{} `json:"metadata"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
