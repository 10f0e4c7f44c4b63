package contacts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/luxauto/internal/models"
)

func msg(id int64, name, email, subject, body string, p models.Priority) models.ContactMessage {
	return models.ContactMessage{
		ID: id, Name: name, Email: email, Subject: subject, Message: body,
		Priority: p, Status: models.StatusNew,
	}
}

func TestFilter_SearchMatchesAnyTextField(t *testing.T) {
	all := []models.ContactMessage{
		msg(1, "Anna", "anna@x.vn", "general", "about the C300", models.PriorityNormal),
		msg(2, "Binh", "binh@x.vn", "warranty", "paperwork question", models.PriorityNormal),
		msg(3, "Chi", "chi@x.vn", "general", "is the GLC still available", models.PriorityNormal),
	}

	assert.Len(t, Filter(all, Query{Search: "ANNA"}), 1)      // name, case-insensitive
	assert.Len(t, Filter(all, Query{Search: "binh@"}), 1)     // email
	assert.Len(t, Filter(all, Query{Search: "warranty"}), 1)  // subject
	assert.Len(t, Filter(all, Query{Search: "glc"}), 1)       // body
	assert.Len(t, Filter(all, Query{Search: "zzz"}), 0)       // no match
	assert.Len(t, Filter(all, Query{}), 3)                    // no criteria
}

func TestFilter_PriorityExactMatch(t *testing.T) {
	all := []models.ContactMessage{
		msg(1, "a", "a@x.y", "s", "m", models.PriorityUrgent),
		msg(2, "b", "b@x.y", "s", "m", models.PriorityLow),
		msg(3, "c", "c@x.y", "s", "m", ""), // missing priority reads as normal
	}

	assert.Len(t, Filter(all, Query{Priority: models.PriorityUrgent}), 1)
	assert.Len(t, Filter(all, Query{Priority: models.PriorityNormal}), 1)
	assert.Len(t, Filter(all, Query{Priority: models.PriorityHigh}), 0)
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	all := []models.ContactMessage{
		msg(5, "match one", "a@x.y", "s", "m", models.PriorityNormal),
		msg(3, "skip", "b@x.y", "s", "m", models.PriorityLow),
		msg(9, "match two", "c@x.y", "s", "m", models.PriorityNormal),
		msg(1, "match three", "d@x.y", "s", "m", models.PriorityNormal),
	}

	got := Filter(all, Query{Search: "match"})
	require.Len(t, got, 3)
	assert.Equal(t, []int64{5, 9, 1}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

func reply(id int64, createdAt string, p models.Priority, replyText string) models.ContactMessage {
	return models.ContactMessage{
		ID: id, Name: "n", Email: "e@x.y", Subject: "s", Message: "m",
		Priority: p, CreatedAt: createdAt, Reply: replyText,
	}
}

func seedReplies(t *testing.T, s *Service) {
	t.Helper()
	require.NoError(t, s.store.Save(context.Background(), []models.ContactMessage{
		reply(1, "2025-03-01T10:00:00Z", models.PriorityLow, "thanks"),
		reply(2, "2025-03-03T10:00:00Z", models.PriorityUrgent, "calling you now"),
		reply(3, "2025-03-02T10:00:00Z", models.PriorityUrgent, "we checked"),
		reply(4, "2025-03-04T10:00:00Z", models.PriorityNormal, ""), // no reply: excluded
	}))
}

func ids(msgs []models.ContactMessage) []int64 {
	out := make([]int64, len(msgs))
	for i, m := range msgs {
		out[i] = m.ID
	}
	return out
}

func TestReplies_OnlyMessagesWithReply(t *testing.T) {
	s := setupService(t)
	seedReplies(t, s)

	got, err := s.Replies(context.Background(), "", SortNewest)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 1}, ids(got))
}

func TestReplies_Oldest(t *testing.T) {
	s := setupService(t)
	seedReplies(t, s)

	got, err := s.Replies(context.Background(), "", SortOldest)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 2}, ids(got))
}

func TestReplies_PriorityRankThenNewest(t *testing.T) {
	s := setupService(t)
	seedReplies(t, s)

	got, err := s.Replies(context.Background(), "", SortPriority)
	require.NoError(t, err)
	// both urgent messages first (newest of the two leading), low last
	assert.Equal(t, []int64{2, 3, 1}, ids(got))
}

func TestReplies_PriorityFilter(t *testing.T) {
	s := setupService(t)
	seedReplies(t, s)

	got, err := s.Replies(context.Background(), models.PriorityUrgent, SortNewest)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, ids(got))
}

func TestReplies_UnknownSortModeDefaultsToNewest(t *testing.T) {
	s := setupService(t)
	seedReplies(t, s)

	got, err := s.Replies(context.Background(), "", SortMode("whatever"))
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 1}, ids(got))
}
