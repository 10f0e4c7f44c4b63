package records

import (
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a record identifier: the millisecond wall-clock timestamp,
// bumped past the previously issued ID when the clock has not advanced.
// Two records created in the same millisecond therefore still get distinct
// IDs, while the persisted shape stays a plain timestamp.
func NewID() int64 {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
