// Package contacts implements the contact desk: message intake with
// validation, the filtered table view, the replies feed, status lifecycle
// and JSON export.
package contacts

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tdnguyen/luxauto/internal/common"
	"github.com/tdnguyen/luxauto/internal/logging"
	"github.com/tdnguyen/luxauto/internal/models"
	"github.com/tdnguyen/luxauto/internal/records"
	"github.com/tdnguyen/luxauto/internal/storage"
	"github.com/tdnguyen/luxauto/internal/validate"
)

// TableWindow caps how many messages the main table renders. The replies
// feed is unbounded.
const TableWindow = 20

// Input carries the raw contact-form fields.
type Input struct {
	Name     string
	Email    string
	Phone    string
	Subject  string
	Message  string
	Priority models.Priority
}

type Service struct {
	store *records.Store[models.ContactMessage]
	log   logging.Logger

	now func() time.Time
}

func NewService(db *sql.DB, log logging.Logger) *Service {
	return &Service{
		store: records.NewStore[models.ContactMessage](db, storage.KeyContacts, log),
		log:   log.With("component", "contacts"),
		now:   time.Now,
	}
}

// Create validates in, normalizes it and prepends the message to the
// collection. Validation failures come back as *common.ValidationError.
func (s *Service) Create(ctx context.Context, in Input) (*models.ContactMessage, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)
	subject := strings.TrimSpace(in.Subject)
	message := strings.TrimSpace(in.Message)

	switch {
	case !validate.Required(name):
		return nil, common.NewValidationError("name", "please complete all required fields")
	case !validate.Required(email):
		return nil, common.NewValidationError("email", "please complete all required fields")
	case !validate.Required(subject):
		return nil, common.NewValidationError("subject", "please complete all required fields")
	case !validate.Required(message):
		return nil, common.NewValidationError("message", "please complete all required fields")
	}

	if !validate.Email(email) {
		return nil, common.NewValidationError("email", "please enter a valid email address")
	}
	if !validate.Phone(phone) {
		return nil, common.NewValidationError("phone", "please enter a valid phone number")
	}
	if validate.Length(message) < validate.MinMessageLen {
		return nil, common.NewValidationError("message",
			fmt.Sprintf("message must be at least %d characters", validate.MinMessageLen))
	}
	if validate.Length(message) > validate.MaxMessageLen {
		return nil, common.NewValidationError("message",
			fmt.Sprintf("message must be at most %d characters", validate.MaxMessageLen))
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}

	msg := models.ContactMessage{
		ID:        records.NewID(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Subject:   subject,
		Message:   message,
		Priority:  priority,
		Status:    models.StatusNew,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}

	if err := s.store.Append(ctx, msg); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "contact message saved", "id", msg.ID, "priority", string(priority))
	return &msg, nil
}

// List returns the whole collection, newest first.
func (s *Service) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.store.Load(ctx)
}

// MarkRead flips a message to the read status.
func (s *Service) MarkRead(ctx context.Context, id int64) (bool, error) {
	return s.SetStatus(ctx, id, models.StatusRead)
}

// SetStatus updates the lifecycle status of one message.
func (s *Service) SetStatus(ctx context.Context, id int64, status models.ContactStatus) (bool, error) {
	return s.store.UpdateByID(ctx, id, func(m *models.ContactMessage) {
		m.Status = status
	})
}

// Delete removes one message by ID.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteByID(ctx, id)
}

// ClearAll wipes the collection.
func (s *Service) ClearAll(ctx context.Context) error {
	return s.store.Save(ctx, nil)
}

// Export serializes the full collection as pretty-printed JSON and suggests
// a download filename.
func (s *Service) Export(ctx context.Context) ([]byte, string, error) {
	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(all) == 0 {
		return nil, "", common.ErrNotFound
	}

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return nil, "", err
	}

	name := fmt.Sprintf("luxauto-contacts-%d.json", s.now().UnixMilli())
	return data, name, nil
}
