package contacts

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tdnguyen/luxauto/internal/models"
)

// Query narrows the main table view. Search is a case-insensitive substring
// matched against name, email, message body and subject; Priority, when
// non-empty, requires an exact match.
type Query struct {
	Search   string
	Priority models.Priority
}

// Filter applies q over all, preserving the input order of matches.
func Filter(all []models.ContactMessage, q Query) []models.ContactMessage {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	matched := make([]models.ContactMessage, 0, len(all))
	for _, m := range all {
		if search != "" && !matchesSearch(m, search) {
			continue
		}
		if q.Priority != "" && priorityOf(m) != q.Priority {
			continue
		}
		matched = append(matched, m)
	}
	return matched
}

func matchesSearch(m models.ContactMessage, search string) bool {
	return strings.Contains(strings.ToLower(m.Name), search) ||
		strings.Contains(strings.ToLower(m.Email), search) ||
		strings.Contains(strings.ToLower(m.Message), search) ||
		strings.Contains(strings.ToLower(m.Subject), search)
}

// priorityOf normalizes a missing priority to normal, the way the original
// table did.
func priorityOf(m models.ContactMessage) models.Priority {
	if m.Priority == "" {
		return models.PriorityNormal
	}
	return m.Priority
}

// SortMode orders the replies feed.
type SortMode string

const (
	SortNewest   SortMode = "newest"
	SortOldest   SortMode = "oldest"
	SortPriority SortMode = "priority"
)

// Replies returns the messages carrying a non-empty reply, optionally
// narrowed to one priority, ordered by mode (newest when unrecognized).
// The feed is unbounded.
func (s *Service) Replies(ctx context.Context, priority models.Priority, mode SortMode) ([]models.ContactMessage, error) {
	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	replies := make([]models.ContactMessage, 0, len(all))
	for _, m := range all {
		if m.Reply == "" {
			continue
		}
		if priority != "" && priorityOf(m) != priority {
			continue
		}
		replies = append(replies, m)
	}

	sort.SliceStable(replies, func(i, j int) bool {
		a, b := replies[i], replies[j]
		switch mode {
		case SortOldest:
			return createdAt(a).Before(createdAt(b))
		case SortPriority:
			if ra, rb := priorityOf(a).Rank(), priorityOf(b).Rank(); ra != rb {
				return ra > rb
			}
			return createdAt(a).After(createdAt(b))
		default:
			return createdAt(a).After(createdAt(b))
		}
	})

	return replies, nil
}

func createdAt(m models.ContactMessage) time.Time {
	t, err := time.Parse(time.RFC3339, m.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
