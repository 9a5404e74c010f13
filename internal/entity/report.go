package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ReportWindow is an inclusive [Start, End] time window for the ledger
// aggregates. Both bounds are required.
type ReportWindow struct {
	Start time.Time
	End   time.Time
}

// ProfessionEarnings is the total earned by contractors of one profession
// over a window of payment dates.
type ProfessionEarnings struct {
	Profession string
	Earned     decimal.Decimal
}

// ClientSpend is the total a client paid over jobs of contracts created
// within a window.
type ClientSpend struct {
	ID       uuid.UUID
	FullName string
	Paid     decimal.Decimal
}

// LedgerTotals is a whole-ledger snapshot logged by the reconcile job.
type LedgerTotals struct {
	Balances   decimal.Decimal
	PaidJobs   int64
	PaidVolume decimal.Decimal
}
