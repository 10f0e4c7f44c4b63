// Package listings implements the sell-car flow: the single-slot draft, the
// final submission, the reservation checker and the expected-reach figures
// shown beside the form.
package listings

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tdnguyen/luxauto/internal/common"
	"github.com/tdnguyen/luxauto/internal/logging"
	"github.com/tdnguyen/luxauto/internal/models"
	"github.com/tdnguyen/luxauto/internal/records"
	"github.com/tdnguyen/luxauto/internal/storage"
	"github.com/tdnguyen/luxauto/internal/validate"
)

type Service struct {
	kv       storage.KV
	listings *records.Store[models.Listing]
	log      logging.Logger

	now func() time.Time
}

func NewService(db *sql.DB, log logging.Logger) *Service {
	return &Service{
		kv:       storage.NewSQLiteKV(db),
		listings: records.NewStore[models.Listing](db, storage.KeyListings, log),
		log:      log.With("component", "listings"),
		now:      time.Now,
	}
}

// SaveDraft overwrites the single draft slot, stamping the save time.
func (s *Service) SaveDraft(ctx context.Context, draft models.DraftListing) error {
	draft.SavedAt = s.now().UTC().Format(time.RFC3339)

	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, storage.KeyListingDraft, string(data)); err != nil {
		return err
	}
	s.log.Info(ctx, "draft saved")
	return nil
}

// LoadDraft returns the saved draft, or common.ErrNoDraft when none exists.
// A corrupt draft reads as absent.
func (s *Service) LoadDraft(ctx context.Context) (*models.DraftListing, error) {
	value, ok, err := s.kv.Get(ctx, storage.KeyListingDraft)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrNoDraft
	}

	var draft models.DraftListing
	if err := json.Unmarshal([]byte(value), &draft); err != nil {
		s.log.Warn(ctx, "draft is corrupt, discarding")
		return nil, common.ErrNoDraft
	}
	return &draft, nil
}

// ClearDraft removes the draft slot.
func (s *Service) ClearDraft(ctx context.Context) error {
	return s.kv.Delete(ctx, storage.KeyListingDraft)
}

// Submission is what a successful Submit hands back to the seller.
type Submission struct {
	Listing         models.Listing
	PotentialBuyers int
}

// Submit validates the draft, stores it as a listing and consumes the
// draft slot. The seller phone must match the strict Vietnamese shape;
// the general phone validator is not accepted here.
func (s *Service) Submit(ctx context.Context, draft models.DraftListing) (*Submission, error) {
	title := strings.TrimSpace(draft.Title)
	phone := strings.TrimSpace(draft.SellerPhone)
	email := strings.TrimSpace(draft.SellerEmail)

	switch {
	case !validate.Required(title):
		return nil, common.NewValidationError("title", "please complete all required fields")
	case !validate.Required(draft.Brand):
		return nil, common.NewValidationError("brand", "please complete all required fields")
	case draft.Year == 0:
		return nil, common.NewValidationError("year", "please complete all required fields")
	case !validate.Required(draft.Condition):
		return nil, common.NewValidationError("condition", "please complete all required fields")
	case !validate.Required(draft.SellerName):
		return nil, common.NewValidationError("sellerName", "please complete all required fields")
	}

	if validate.Length(title) > validate.MaxTitleLen {
		return nil, common.NewValidationError("title",
			fmt.Sprintf("title must be at most %d characters", validate.MaxTitleLen))
	}
	if validate.Length(draft.Description) > validate.MaxDescriptionLen {
		return nil, common.NewValidationError("description",
			fmt.Sprintf("description must be at most %d characters", validate.MaxDescriptionLen))
	}
	if !validate.VNPhone(phone) {
		return nil, common.NewValidationError("sellerPhone", "please enter a valid Vietnamese phone number")
	}
	if !validate.Email(email) {
		return nil, common.NewValidationError("sellerEmail", "please enter a valid email address")
	}

	draft.Title = title
	draft.SellerPhone = phone
	draft.SellerEmail = email

	listing := models.Listing{
		ID:           records.NewID(),
		Reference:    uuid.NewString(),
		DraftListing: draft,
		SubmittedAt:  s.now().UTC().Format(time.RFC3339),
	}

	if err := s.listings.Append(ctx, listing); err != nil {
		return nil, err
	}
	if err := s.ClearDraft(ctx); err != nil {
		// the listing is already stored; a stale draft is an annoyance,
		// not a failure
		s.log.Warn(ctx, "failed to clear draft after submit", "error", err)
	}

	s.log.Info(ctx, "listing submitted", "id", listing.ID, "reference", listing.Reference)
	return &Submission{
		Listing:         listing,
		PotentialBuyers: potentialBuyers(listing.ID),
	}, nil
}

// potentialBuyers derives the 500-1999 confirmation figure from the listing
// identity, so it is stable for a given listing.
func potentialBuyers(id int64) int {
	return 500 + int(id%1500)
}

// FindReservation looks up a reservation by exact, case-insensitive VIN or
// plate match. The carReservations collection is written by an external
// process; absence of the key means no reservations.
func (s *Service) FindReservation(ctx context.Context, query string) (*models.Reservation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, common.NewValidationError("query", "please enter a VIN or plate number")
	}

	value, ok, err := s.kv.Get(ctx, storage.KeyReservations)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrNotFound
	}
	for _, r := range records.UnmarshalCollection[models.Reservation](value) {
		if r.Matches(query) {
			return &r, nil
		}
	}
	return nil, common.ErrNotFound
}

// Reach is the expected-views figure shown while composing a listing.
type Reach struct {
	Views    int
	Interest int
}

// EstimateReach reproduces the original attention heuristic: newer cars,
// more photos and sub-billion pricing all add expected views; interest is
// 30% of views.
func EstimateReach(year, images int, price int64) Reach {
	views := 50

	if year != 0 {
		switch age := time.Now().Year() - year; {
		case age <= 3:
			views += 30
		case age <= 5:
			views += 20
		case age <= 10:
			views += 10
		}
	}

	switch {
	case images >= 5:
		views += 25
	case images >= 3:
		views += 15
	case images >= 1:
		views += 5
	}

	if price > 0 && price < 1_000_000_000 {
		views += 15
	}

	return Reach{Views: views, Interest: int(math.Round(float64(views) * 0.3))}
}
