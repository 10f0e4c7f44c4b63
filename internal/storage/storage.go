// Package storage implements the durable medium underneath the record and
// session stores: a flat set of named keys, each holding one JSON-encoded
// value, persisted in a local sqlite database.
package storage

import "context"

// Well-known top-level keys. Values under collection keys are JSON arrays;
// the remaining keys hold a single JSON value or a plain string.
const (
	KeyContacts        = "contacts"
	KeyUsers           = "users"
	KeyCurrentUser     = "currentUser"
	KeyRememberedEmail = "rememberedEmail"
	KeyListingDraft    = "carListingDraft"
	KeyReservations    = "carReservations"
	KeyListings        = "carListings"
)

// KV is the key/value contract the stores are built on.
//
// Get reports presence explicitly: a missing key is (_, false, nil), not an
// error. Set upserts. Delete and Clear are idempotent.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
