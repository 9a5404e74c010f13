package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type ProfileType string

const (
	ProfileTypeClient     ProfileType = "client"
	ProfileTypeContractor ProfileType = "contractor"
)

func (p ProfileType) String() string {
	return string(p)
}

func (p ProfileType) IsValid() bool {
	switch p {
	case ProfileTypeClient, ProfileTypeContractor:
		return true
	}

	return false
}

// Profile is a party in the system holding a monetary balance.
// Balance never goes negative: every debit is checked inside the same
// transaction that applies it.
type Profile struct {
	ID         uuid.UUID
	Type       ProfileType
	FirstName  string
	LastName   string
	Profession string
	Balance    decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p Profile) IsClient() bool {
	return p.Type == ProfileTypeClient
}
