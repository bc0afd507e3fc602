package domain

import (
	"hash/fnv"
	"time"

	"github.com/google/uuid"
)

// AvatarColors is the palette avatar colors are picked from.
var AvatarColors = []string{
	"#e06055", "#ff8a65", "#e91e63", "#f06292", "#673ab7", "#ba68c8",
	"#7986cb", "#3f51b5", "#5e97f6", "#00a4e4", "#4dd0e1", "#0097a7",
	"#d4e157", "#aed581", "#57bb8a", "#4db6ac", "#607d8b", "#795548",
	"#a1887f", "#fdd835", "#a3a3a3", "#556c60", "#605264", "#923035",
	"#915a30", "#55526f", "#67635a",
}

// DomainInfo is the email-domain classification embedded in a user aggregate.
type DomainInfo struct {
	Domain   string  `json:"domain"`
	TLD      string  `json:"tld"`
	Status   string  `json:"status"`
	Category *string `json:"category"`
	Flagged  bool    `json:"flagged"`
}

// UserAggregate is the read projection of a user: the account row, its
// profile and the fields computed from them.
type UserAggregate struct {
	ID           uuid.UUID         `json:"id"`
	Email        string            `json:"email"`
	Username     *string           `json:"username"`
	FullName     string            `json:"full_name"`
	Affiliations string            `json:"affiliations"`
	Active       bool              `json:"active"`
	Confirmed    bool              `json:"confirmed"`
	Verified     bool              `json:"verified"`
	Blocked      bool              `json:"blocked"`
	BlockedAt    *time.Time        `json:"blocked_at,omitempty"`
	VerifiedAt   *time.Time        `json:"verified_at,omitempty"`
	Status       AccountStatus     `json:"status"`
	Visibility   ProfileVisibility `json:"visibility"`
	AvatarColor  string            `json:"avatar_color"`
	Domain       DomainInfo        `json:"domain_info"`
	Preferences  UserPreferences   `json:"preferences"`
	Revision     int               `json:"revision_id"`
	CreatedAt    time.Time         `json:"created"`
	UpdatedAt    time.Time         `json:"updated"`
}

// NewUserAggregate materializes a user aggregate. profile and dom may be nil.
func NewUserAggregate(u User, profile *UserProfile, dom *Domain) UserAggregate {
	agg := UserAggregate{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		Active:      u.Active,
		Confirmed:   u.IsConfirmed(),
		Verified:    u.IsVerified(),
		Blocked:     u.IsBlocked(),
		BlockedAt:   u.BlockedAt,
		VerifiedAt:  u.VerifiedAt,
		Status:      ComputeAccountStatus(u),
		Visibility:  ComputeVisibility(u.Preferences),
		AvatarColor: AvatarColor(u.ID),
		Domain:      ClassifyDomain(u.Domain, dom),
		Preferences: u.Preferences,
		Revision:    u.Version,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	if profile != nil {
		agg.FullName = profile.FullName
		agg.Affiliations = profile.Affiliations
	}
	return agg
}

// ComputeAccountStatus combines the activity, confirmation, verification and
// block flags into one status value.
func ComputeAccountStatus(u User) AccountStatus {
	if !u.Active {
		if u.IsBlocked() {
			return AccountStatusBlocked
		}
		return AccountStatusInactive
	}
	switch {
	case u.IsConfirmed() && u.IsVerified():
		return AccountStatusVerified
	case u.IsConfirmed():
		return AccountStatusConfirmed
	default:
		return AccountStatusNew
	}
}

// ComputeVisibility derives how much of the profile other users may see.
func ComputeVisibility(p UserPreferences) ProfileVisibility {
	switch {
	case p.EmailVisibility == VisibilityPublic:
		return ProfileVisibilityFull
	case p.Visibility == VisibilityPublic:
		return ProfileVisibilityProfile
	default:
		return ProfileVisibilityHidden
	}
}

// AvatarColor picks a stable palette color for the given id.
func AvatarColor(id uuid.UUID) string {
	h := fnv.New32a()
	h.Write(id[:]) //nolint:errcheck
	return AvatarColors[h.Sum32()%uint32(len(AvatarColors))]
}

// ClassifyDomain builds the domain info for a user. Unknown domains are
// reported with the "new" status and no tld.
func ClassifyDomain(name string, dom *Domain) DomainInfo {
	if dom == nil {
		return DomainInfo{Domain: name, Status: "1"}
	}
	return DomainInfo{
		Domain:   dom.Name,
		TLD:      dom.TLD,
		Status:   dom.Status.String(),
		Category: dom.Category,
		Flagged:  dom.Flagged,
	}
}

// GroupAggregate is the read projection of a group.
type GroupAggregate struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsManaged   bool      `json:"is_managed"`
	NumMembers  int       `json:"num_members"`
	Revision    int       `json:"revision_id"`
	CreatedAt   time.Time `json:"created"`
	UpdatedAt   time.Time `json:"updated"`
}

// NewGroupAggregate materializes a group aggregate.
func NewGroupAggregate(g Group, numMembers int) GroupAggregate {
	return GroupAggregate{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		IsManaged:   g.IsManaged,
		NumMembers:  numMembers,
		Revision:    g.Version,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// DomainAggregate is the read projection of an email domain.
type DomainAggregate struct {
	Domain        string    `json:"domain"`
	TLD           string    `json:"tld"`
	Status        int       `json:"status"`
	StatusName    string    `json:"status_name"`
	Category      *string   `json:"category"`
	Flagged       bool      `json:"flagged"`
	FlaggedSource string    `json:"flagged_source"`
	NumUsers      int       `json:"num_users"`
	NumActive     int       `json:"num_active"`
	NumBlocked    int       `json:"num_blocked"`
	Revision      int       `json:"revision_id"`
	CreatedAt     time.Time `json:"created"`
	UpdatedAt     time.Time `json:"updated"`
}

// DomainUserCounts are per-domain account counters.
type DomainUserCounts struct {
	Total   int
	Active  int
	Blocked int
}

// NewDomainAggregate materializes a domain aggregate.
func NewDomainAggregate(d Domain, counts DomainUserCounts) DomainAggregate {
	return DomainAggregate{
		Domain:        d.Name,
		TLD:           d.TLD,
		Status:        int(d.Status),
		StatusName:    d.Status.Name(),
		Category:      d.Category,
		Flagged:       d.Flagged,
		FlaggedSource: d.FlaggedSource,
		NumUsers:      counts.Total,
		NumActive:     counts.Active,
		NumBlocked:    counts.Blocked,
		Revision:      d.Version,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
