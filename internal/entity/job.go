package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Job is a priced unit of work under a contract, payable exactly once.
// Once Paid is set the price and contract are immutable and PaymentDate
// holds the moment of the transfer.
type Job struct {
	ID          uuid.UUID
	ContractID  uuid.UUID
	Description string
	Price       decimal.Decimal
	Paid        bool
	PaymentDate *time.Time
	CreatedAt   time.Time
}

// DepositCeilingPercent caps a client deposit relative to the sum of
// prices of their unpaid jobs.
const DepositCeilingPercent = 25

// DepositCeiling returns the maximum admissible deposit for a client with
// the given outstanding unpaid work, truncated to 2 decimal places.
// Zero outstanding work means a zero ceiling: any positive deposit is
// rejected.
//
//nolint:mnd
func DepositCeiling(outstanding decimal.Decimal) decimal.Decimal {
	if outstanding.Sign() <= 0 {
		return decimal.Zero
	}

	percent := decimal.New(DepositCeilingPercent, 0)
	oneHundred := decimal.New(100, 0)

	return outstanding.Mul(percent).Div(oneHundred).RoundDown(2)
}
