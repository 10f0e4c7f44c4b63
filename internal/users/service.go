// Package users implements registration, login and profile management over
// the users collection.
//
// Passwords are stored and compared in plaintext. That mirrors the system
// this replaces and is an explicit non-goal here; see DESIGN.md before
// borrowing any of this for something real.
package users

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tdnguyen/luxauto/internal/common"
	"github.com/tdnguyen/luxauto/internal/logging"
	"github.com/tdnguyen/luxauto/internal/models"
	"github.com/tdnguyen/luxauto/internal/records"
	"github.com/tdnguyen/luxauto/internal/session"
	"github.com/tdnguyen/luxauto/internal/storage"
	"github.com/tdnguyen/luxauto/internal/validate"
)

type Service struct {
	store    *records.Store[models.User]
	sessions *session.Store
	log      logging.Logger

	now func() time.Time
}

func NewService(db *sql.DB, sessions *session.Store, log logging.Logger) *Service {
	return &Service{
		store:    records.NewStore[models.User](db, storage.KeyUsers, log),
		sessions: sessions,
		log:      log.With("component", "users"),
		now:      time.Now,
	}
}

// NormalizeEmail applies the natural-key normalization: trim, lower-case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. The normalized email must be unique; a
// duplicate is rejected without touching the collection, and the rejection
// names the date the existing account was created.
func (s *Service) Register(ctx context.Context, fullName, email, password string) (*models.User, error) {
	fullName = strings.TrimSpace(fullName)
	normalized := NormalizeEmail(email)
	password = strings.TrimSpace(password)

	if validate.Length(fullName) < validate.MinFullNameLen {
		return nil, common.NewValidationError("fullname",
			fmt.Sprintf("full name must be at least %d characters", validate.MinFullNameLen))
	}
	if !validate.Email(normalized) {
		return nil, common.NewValidationError("email", "please enter a valid email address")
	}
	if validate.Length(password) < validate.MinPasswordLen {
		return nil, common.NewValidationError("password",
			fmt.Sprintf("password must be at least %d characters", validate.MinPasswordLen))
	}

	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range all {
		if strings.ToLower(u.Email) == normalized {
			return nil, fmt.Errorf("%w (account created %s)", common.ErrEmailTaken, u.CreatedAt)
		}
	}

	user := models.User{
		ID:        records.NewID(),
		FullName:  fullName,
		Email:     normalized,
		Password:  password,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}

	if err := s.store.Append(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user registered", "email", normalized)
	return &user, nil
}

// Login checks the credentials and, on success, establishes the session
// principal. A failure is common.ErrInvalidCredentials and leaves the
// session untouched.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Principal, error) {
	normalized := NormalizeEmail(email)
	password = strings.TrimSpace(password)

	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range all {
		if strings.ToLower(u.Email) != normalized || u.Password != password {
			continue
		}

		p := models.Principal{ID: u.ID, FullName: u.FullName, Email: u.Email}
		if err := s.sessions.Establish(ctx, p); err != nil {
			return nil, err
		}
		s.log.Info(ctx, "login successful", "email", u.Email)
		return &p, nil
	}

	return nil, common.ErrInvalidCredentials
}

// Logout clears the session; the remembered email survives.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Profile returns the user by ID with the password stripped.
func (s *Service) Profile(ctx context.Context, id int64) (*models.Profile, error) {
	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range all {
		if u.ID == id {
			return &models.Profile{
				ID: u.ID, FullName: u.FullName, Email: u.Email,
				CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
			}, nil
		}
	}
	return nil, common.ErrNotFound
}

// ProfileUpdate carries the fields a user may change about themselves.
// Nil pointers mean "leave as is".
type ProfileUpdate struct {
	FullName *string
	Email    *string
}

// UpdateProfile changes name and/or email, stamps updatedAt, and refreshes
// the live session copy when it belongs to the same user.
func (s *Service) UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) error {
	var updated models.User

	found, err := s.store.UpdateByID(ctx, id, func(u *models.User) {
		if upd.FullName != nil {
			u.FullName = strings.TrimSpace(*upd.FullName)
		}
		if upd.Email != nil {
			u.Email = NormalizeEmail(*upd.Email)
		}
		u.UpdatedAt = s.now().UTC().Format(time.RFC3339)
		updated = *u
	})
	if err != nil {
		return err
	}
	if !found {
		return common.ErrNotFound
	}

	current, err := s.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if current != nil && current.ID == id {
		if err := s.sessions.Refresh(ctx, updated.FullName, updated.Email); err != nil {
			return err
		}
	}
	return nil
}
