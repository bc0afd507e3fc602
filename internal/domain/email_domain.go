package domain

import (
	"strconv"
	"time"
)

// DomainStatus is the moderation status of an email domain.
type DomainStatus int

const (
	DomainStatusNew       DomainStatus = 1
	DomainStatusModerated DomainStatus = 2
	DomainStatusVerified  DomainStatus = 3
	DomainStatusBlocked   DomainStatus = 4
)

func (s DomainStatus) IsValid() bool {
	return s >= DomainStatusNew && s <= DomainStatusBlocked
}

// Name returns the lower-case label used in the search index.
func (s DomainStatus) Name() string {
	switch s {
	case DomainStatusModerated:
		return "moderated"
	case DomainStatusVerified:
		return "verified"
	case DomainStatusBlocked:
		return "blocked"
	default:
		return "new"
	}
}

// Domain is an email domain known to the platform. Its primary key is the
// domain name itself.
type Domain struct {
	Name          string
	TLD           string
	Status        DomainStatus
	Category      *string
	Flagged       bool
	FlaggedSource string
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// String returns the numeric status the way it is stored.
func (s DomainStatus) String() string {
	return strconv.Itoa(int(s))
}
