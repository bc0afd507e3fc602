package domain

// EntityType names an indexed entity family. Values double as index aliases
// and as the entity type of change notifications.
type EntityType string

const (
	EntityUsers   EntityType = "users"
	EntityGroups  EntityType = "groups"
	EntityDomains EntityType = "domains"
)

func (t EntityType) String() string { return string(t) }

func (t EntityType) IsValid() bool {
	switch t {
	case EntityUsers, EntityGroups, EntityDomains:
		return true
	}
	return false
}

// Visibility is a user-controlled visibility preference.
type Visibility string

const (
	VisibilityPublic     Visibility = "public"
	VisibilityRestricted Visibility = "restricted"
)

func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityRestricted
}

// AccountStatus is the combined status computed from the account row.
type AccountStatus string

const (
	AccountStatusNew       AccountStatus = "new"
	AccountStatusConfirmed AccountStatus = "confirmed"
	AccountStatusVerified  AccountStatus = "verified"
	AccountStatusBlocked   AccountStatus = "blocked"
	AccountStatusInactive  AccountStatus = "inactive"
)

// ProfileVisibility is the combined visibility computed from preferences.
type ProfileVisibility string

const (
	ProfileVisibilityFull    ProfileVisibility = "full"
	ProfileVisibilityProfile ProfileVisibility = "profile"
	ProfileVisibilityHidden  ProfileVisibility = "hidden"
)

// ModerationAction names an administrative state transition on a user.
type ModerationAction string

const (
	ActionBlock      ModerationAction = "block"
	ActionApprove    ModerationAction = "approve"
	ActionRestore    ModerationAction = "restore"
	ActionDeactivate ModerationAction = "deactivate"
)

func (a ModerationAction) String() string { return string(a) }

func (a ModerationAction) IsValid() bool {
	switch a {
	case ActionBlock, ActionApprove, ActionRestore, ActionDeactivate:
		return true
	}
	return false
}
