// Package session manages the single current-principal record and the
// independent remembered-email convenience value.
//
// Reads are defensive: the storage may contain any JSON shape (or none), so
// corrupt or missing data always reads as "no session" rather than an error.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/tdnguyen/luxauto/internal/logging"
	"github.com/tdnguyen/luxauto/internal/models"
	"github.com/tdnguyen/luxauto/internal/storage"
)

type Store struct {
	kv  storage.KV
	log logging.Logger

	now func() time.Time
}

func NewStore(kv storage.KV, log logging.Logger) *Store {
	return &Store{kv: kv, log: log.With("component", "session"), now: time.Now}
}

// Current returns the logged-in principal, or nil when there is none.
func (s *Store) Current(ctx context.Context) (*models.Principal, error) {
	value, ok, err := s.kv.Get(ctx, storage.KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if !ok || value == "null" {
		return nil, nil
	}

	var p models.Principal
	if err := json.Unmarshal([]byte(value), &p); err != nil {
		s.log.Warn(ctx, "session record is corrupt, treating as logged out")
		return nil, nil
	}
	if p.ID == 0 && p.Email == "" {
		// Some other JSON value was written under the session key.
		return nil, nil
	}
	return &p, nil
}

// Establish writes p as the current session, stamping the login time and a
// fresh session identifier.
func (s *Store) Establish(ctx context.Context, p models.Principal) error {
	p.LoginAt = s.now().UTC().Format(time.RFC3339)
	p.SessionID = uuid.NewString()

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, storage.KeyCurrentUser, string(data))
}

// Refresh overwrites the stored principal's name and email in place,
// keeping the login stamp and session identifier.
func (s *Store) Refresh(ctx context.Context, fullName, email string) error {
	current, err := s.Current(ctx)
	if err != nil || current == nil {
		return err
	}
	current.FullName = fullName
	current.Email = email

	data, err := json.Marshal(current)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, storage.KeyCurrentUser, string(data))
}

// Clear removes the session. The remembered email survives.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, storage.KeyCurrentUser)
}

// RememberedEmail returns the persisted "remember me" email, if any.
func (s *Store) RememberedEmail(ctx context.Context) (string, bool) {
	value, ok, err := s.kv.Get(ctx, storage.KeyRememberedEmail)
	if err != nil || !ok || value == "" {
		return "", false
	}
	return value, true
}

// Remember persists email independently of the session lifecycle.
func (s *Store) Remember(ctx context.Context, email string) error {
	return s.kv.Set(ctx, storage.KeyRememberedEmail, email)
}

// Forget removes the remembered email.
func (s *Store) Forget(ctx context.Context) error {
	return s.kv.Delete(ctx, storage.KeyRememberedEmail)
}
