package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Payment is the outcome of a committed job payment: the client was
// debited and the contractor credited by exactly Amount.
type Payment struct {
	JobID        uuid.UUID
	ContractID   uuid.UUID
	ClientID     uuid.UUID
	ContractorID uuid.UUID
	Amount       decimal.Decimal
	PaidAt       time.Time
}
