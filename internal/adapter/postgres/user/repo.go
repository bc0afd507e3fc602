// Package user implements the User repository using PostgreSQL.
// It covers the account rows and the dependent profile rows.
package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/users-resources/internal/adapter/postgres"
	"github.com/heartmarshall/users-resources/internal/domain"
)

const (
	usersTable    = "users"
	profilesTable = "user_profiles"
)

var userColumns = []string{
	"id", "email", "username", "active", "confirmed_at", "verified_at", "blocked_at",
	"domain", "preferences", "version", "created_at", "updated_at",
}

var profileColumns = []string{"id", "user_id", "full_name", "affiliations", "updated_at"}

// Repo provides user and user-profile persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new user repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	query := postgres.Builder.Select(userColumns...).From(usersTable).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain()
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	query := postgres.Builder.Select(userColumns...).From(usersTable).Where(squirrel.Eq{"email": email})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return row.toDomain()
}

// GetByIDs returns the users with the given ids. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []userRow
	query := postgres.Builder.Select(userColumns...).From(usersTable).
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id")
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query); err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		u, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

// ListIDs returns up to limit user ids greater than after, in id order.
// Pass uuid.Nil to start from the beginning.
func (r *Repo) ListIDs(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := postgres.Builder.Select("id").From(usersTable).
		Where(squirrel.Gt{"id": after}).
		OrderBy("id").
		Limit(uint64(limit))
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &ids, query); err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	return ids, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	prefs, err := json.Marshal(u.Preferences)
	if err != nil {
		return nil, fmt.Errorf("user %s marshal preferences: %w", u.ID, err)
	}

	var row userRow
	query := postgres.Builder.Insert(usersTable).
		Columns("id", "email", "username", "active", "confirmed_at", "verified_at", "blocked_at",
			"domain", "preferences", "created_at", "updated_at").
		Values(u.ID, u.Email, u.Username, u.Active, u.ConfirmedAt, u.VerifiedAt, u.BlockedAt,
			u.Domain, prefs, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	created, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	postgres.TrackNew(ctx, created)
	return created, nil
}

// Update writes every mutable column of u and bumps the row version. When
// u.Version is set the write only applies to that version; a row changed
// since it was read yields domain.ErrConflict.
func (r *Repo) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	prefs, err := json.Marshal(u.Preferences)
	if err != nil {
		return nil, fmt.Errorf("user %s marshal preferences: %w", u.ID, err)
	}

	var row userRow
	query := postgres.Builder.Update(usersTable).
		Set("email", u.Email).
		Set("username", u.Username).
		Set("active", u.Active).
		Set("confirmed_at", u.ConfirmedAt).
		Set("verified_at", u.VerifiedAt).
		Set("blocked_at", u.BlockedAt).
		Set("domain", u.Domain).
		Set("preferences", prefs).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": u.ID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))
	if u.Version > 0 {
		query = query.Where(squirrel.Eq{"version": u.Version})
	}
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query); err != nil {
		mapped := postgres.MapError(err, "user", u.ID)
		if u.Version > 0 && errors.Is(mapped, domain.ErrNotFound) {
			return nil, r.staleOrMissing(ctx, u.ID, u.Version)
		}
		return nil, mapped
	}

	updated, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	postgres.TrackDirty(ctx, updated)
	return updated, nil
}

// staleOrMissing explains a versioned update that matched no row.
func (r *Repo) staleOrMissing(ctx context.Context, id uuid.UUID, version int) error {
	var current int
	query := postgres.Builder.Select("version").From(usersTable).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &current, query); err != nil {
		return postgres.MapError(err, "user", id)
	}
	return fmt.Errorf("user %s: version %d is stale, current is %d: %w", id, version, current, domain.ErrConflict)
}

// Delete removes a user. Profile and membership rows cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.q),
		postgres.Builder.Delete(usersTable).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	postgres.TrackDeleted(ctx, &domain.User{ID: id})
	return nil
}

// CountByDomains returns account counters per email domain.
func (r *Repo) CountByDomains(ctx context.Context, domains []string) (map[string]domain.DomainUserCounts, error) {
	out := make(map[string]domain.DomainUserCounts, len(domains))
	if len(domains) == 0 {
		return out, nil
	}

	var rows []struct {
		Domain  string `db:"domain"`
		Total   int    `db:"total"`
		Active  int    `db:"active"`
		Blocked int    `db:"blocked"`
	}
	query := postgres.Builder.
		Select("domain", "count(*) AS total",
			"count(*) FILTER (WHERE active) AS active",
			"count(*) FILTER (WHERE blocked_at IS NOT NULL) AS blocked").
		From(usersTable).
		Where(squirrel.Eq{"domain": domains}).
		GroupBy("domain")
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query); err != nil {
		return nil, fmt.Errorf("count users by domain: %w", err)
	}

	for _, row := range rows {
		out[row.Domain] = domain.DomainUserCounts{Total: row.Total, Active: row.Active, Blocked: row.Blocked}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Profile operations
// ---------------------------------------------------------------------------

// GetProfile returns the profile owned by userID.
func (r *Repo) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	var row profileRow
	query := postgres.Builder.Select(profileColumns...).From(profilesTable).Where(squirrel.Eq{"user_id": userID})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query); err != nil {
		return nil, postgres.MapError(err, "user_profile", userID)
	}
	p := row.toDomain()
	return &p, nil
}

// GetProfilesByUserIDs returns profiles keyed by owning user id.
func (r *Repo) GetProfilesByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]domain.UserProfile, error) {
	out := make(map[uuid.UUID]domain.UserProfile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var rows []profileRow
	query := postgres.Builder.Select(profileColumns...).From(profilesTable).Where(squirrel.Eq{"user_id": userIDs})
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query); err != nil {
		return nil, fmt.Errorf("get profiles by user ids: %w", err)
	}
	for _, row := range rows {
		out[row.UserID] = row.toDomain()
	}
	return out, nil
}

// UpsertProfile creates or replaces the profile of p.UserID.
func (r *Repo) UpsertProfile(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	var row profileRow
	query := postgres.Builder.Insert(profilesTable).
		Columns("id", "user_id", "full_name", "affiliations", "updated_at").
		Values(p.ID, p.UserID, p.FullName, p.Affiliations, time.Now().UTC()).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET full_name = EXCLUDED.full_name, " +
			"affiliations = EXCLUDED.affiliations, updated_at = EXCLUDED.updated_at " +
			"RETURNING " + strings.Join(profileColumns, ", "))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query); err != nil {
		return nil, postgres.MapError(err, "user_profile", p.UserID)
	}

	saved := row.toDomain()
	postgres.TrackDirty(ctx, &saved)
	return &saved, nil
}

// UpdateProfile patches a profile addressed by its own id. Inside a session
// the write is deferred until flush; the tracked row only carries the profile
// id, so the owner is resolved after the write reaches the database.
func (r *Repo) UpdateProfile(ctx context.Context, profileID uuid.UUID, fullName, affiliations string) error {
	query := postgres.Builder.Update(profilesTable).
		Set("full_name", fullName).
		Set("affiliations", affiliations).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": profileID})
	if err := postgres.Queue(ctx, postgres.QuerierFromCtx(ctx, r.q), query); err != nil {
		return postgres.MapError(err, "user_profile", profileID)
	}
	postgres.TrackDirty(ctx, &domain.UserProfile{ID: profileID, FullName: fullName, Affiliations: affiliations})
	return nil
}

// UserIDByProfileID resolves the owner of a profile row.
func (r *Repo) UserIDByProfileID(ctx context.Context, profileID uuid.UUID) (uuid.UUID, error) {
	var userID uuid.UUID
	query := postgres.Builder.Select("user_id").From(profilesTable).Where(squirrel.Eq{"id": profileID})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &userID, query); err != nil {
		return uuid.Nil, postgres.MapError(err, "user_profile", profileID)
	}
	return userID, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type userRow struct {
	ID          uuid.UUID  `db:"id"`
	Email       string     `db:"email"`
	Username    *string    `db:"username"`
	Active      bool       `db:"active"`
	ConfirmedAt *time.Time `db:"confirmed_at"`
	VerifiedAt  *time.Time `db:"verified_at"`
	BlockedAt   *time.Time `db:"blocked_at"`
	Domain      string     `db:"domain"`
	Preferences []byte     `db:"preferences"`
	Version     int        `db:"version"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (row userRow) toDomain() (*domain.User, error) {
	u := &domain.User{
		ID:          row.ID,
		Email:       row.Email,
		Username:    row.Username,
		Active:      row.Active,
		ConfirmedAt: row.ConfirmedAt,
		VerifiedAt:  row.VerifiedAt,
		BlockedAt:   row.BlockedAt,
		Domain:      row.Domain,
		Preferences: domain.DefaultUserPreferences(),
		Version:     row.Version,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if len(row.Preferences) > 0 {
		if err := json.Unmarshal(row.Preferences, &u.Preferences); err != nil {
			return nil, fmt.Errorf("user %s unmarshal preferences: %w", row.ID, err)
		}
	}
	return u, nil
}

type profileRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	FullName     string    `db:"full_name"`
	Affiliations string    `db:"affiliations"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (row profileRow) toDomain() domain.UserProfile {
	return domain.UserProfile{
		ID:           row.ID,
		UserID:       row.UserID,
		FullName:     row.FullName,
		Affiliations: row.Affiliations,
		UpdatedAt:    row.UpdatedAt,
	}
}
