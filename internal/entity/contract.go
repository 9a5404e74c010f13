package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type ContractStatus string

const (
	ContractStatusNew        ContractStatus = "new"
	ContractStatusInProgress ContractStatus = "in_progress"
	ContractStatusTerminated ContractStatus = "terminated"
)

func (c ContractStatus) String() string {
	return string(c)
}

// Contract binds exactly one client profile and one contractor profile.
type Contract struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	ContractorID uuid.UUID
	Status       ContractStatus
	Terms        string
	CreatedAt    time.Time
}

// IsParty reports whether the profile takes part in the contract
// on either side.
func (c Contract) IsParty(profileID uuid.UUID) bool {
	return c.ClientID == profileID || c.ContractorID == profileID
}
