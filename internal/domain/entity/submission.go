package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubmissionKind tipo de formulario enviado al backend.
type SubmissionKind string

const (
	SubmissionOrder    SubmissionKind = "order"
	SubmissionDelivery SubmissionKind = "delivery"
	SubmissionProduct  SubmissionKind = "product"
	SubmissionStaff    SubmissionKind = "staff"
)

// Submission entrada del diario de envíos: qué se mandó, quién lo mandó y cómo terminó.
type Submission struct {
	ID        uuid.UUID       `json:"id"`
	Kind      SubmissionKind  `json:"kind"`
	Endpoint  string          `json:"endpoint"`
	ActorID   string          `json:"actor_id"`
	Amount    decimal.Decimal `json:"amount"`
	Payload   json.RawMessage `json:"payload"`
	Succeeded bool            `json:"succeeded"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
