package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/tdnguyen/luxauto/internal/common"
	"github.com/tdnguyen/luxauto/internal/contacts"
	"github.com/tdnguyen/luxauto/internal/models"
)

// Messages renders the contact-desk table: optional search and priority
// narrowing, newest first, capped at the table window.
func (a *App) Messages(ctx context.Context) {
	search, err := GetSimpleText(a.reader, "Search (optional)", a.out)
	if err != nil {
		return
	}
	priority, err := GetSimpleText(a.reader, "Priority filter (low/normal/high/urgent, empty for all)", a.out)
	if err != nil {
		return
	}

	all, err := a.contacts.List(ctx)
	if err != nil {
		a.printErr(err)
		return
	}

	matched := contacts.Filter(all, contacts.Query{
		Search:   search,
		Priority: models.Priority(priority),
	})
	if len(matched) == 0 {
		fmt.Fprintln(a.out, "No messages")
		return
	}

	shown := matched
	if len(shown) > contacts.TableWindow {
		shown = shown[:contacts.TableWindow]
	}

	fmt.Fprintf(a.out, "%-15s %-17s %-20s %-8s %-8s %s\n",
		"ID", "DATE", "FROM", "PRIORITY", "STATUS", "SUBJECT")
	for _, m := range shown {
		priority := m.Priority
		if priority == "" {
			priority = models.PriorityNormal
		}
		fmt.Fprintf(a.out, "%-15d %-17s %-20s %-8s %-8s %s\n",
			m.ID, formatDate(m.CreatedAt), m.Name, priority, m.Status, m.Subject)
	}
	fmt.Fprintf(a.out, "Showing %d of %d messages\n", len(shown), len(matched))
}

// messageID resolves the target ID either from the command arguments
// ("read 17005…") or by prompting.
func (a *App) messageID(args []string) (int64, bool) {
	if len(args) > 0 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintln(a.out, "Error: please enter a numeric message ID")
			return 0, false
		}
		return id, true
	}
	id, err := GetInt(a.reader, "Message ID", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error: please enter a numeric message ID")
		return 0, false
	}
	return int64(id), true
}

// ReadMessage prints one message in full and marks it read.
func (a *App) ReadMessage(ctx context.Context, args []string) {
	id, ok := a.messageID(args)
	if !ok {
		return
	}

	all, err := a.contacts.List(ctx)
	if err != nil {
		a.printErr(err)
		return
	}

	for _, m := range all {
		if m.ID != id {
			continue
		}

		fmt.Fprintf(a.out, "From:     %s <%s>\n", m.Name, m.Email)
		if m.Phone != "" {
			fmt.Fprintf(a.out, "Phone:    %s\n", m.Phone)
		}
		fmt.Fprintf(a.out, "Date:     %s\n", formatDate(m.CreatedAt))
		fmt.Fprintf(a.out, "Subject:  %s\n", m.Subject)
		fmt.Fprintf(a.out, "Priority: %s\n", m.Priority)
		fmt.Fprintf(a.out, "\n%s\n", m.Message)
		if m.Reply != "" {
			fmt.Fprintf(a.out, "\nReply:\n%s\n", m.Reply)
		}

		if _, err := a.contacts.MarkRead(ctx, m.ID); err != nil {
			a.log.Warn(ctx, "could not mark message read", "id", m.ID, "error", err)
		}
		return
	}
	fmt.Fprintln(a.out, "Message not found")
}

// DeleteMessage removes one message after confirmation.
func (a *App) DeleteMessage(ctx context.Context, args []string) {
	id, ok := a.messageID(args)
	if !ok {
		return
	}

	confirmed, err := GetYesNo(a.reader, fmt.Sprintf("Delete message %d?", id), a.out)
	if err != nil || !confirmed {
		return
	}

	found, err := a.contacts.Delete(ctx, id)
	if err != nil {
		a.printErr(err)
		return
	}
	if !found {
		fmt.Fprintln(a.out, "Message not found")
		return
	}
	fmt.Fprintln(a.out, "Message deleted")
}

// Replies prints the replied-to feed, optionally narrowed and reordered.
func (a *App) Replies(ctx context.Context) {
	priority, err := GetSimpleText(a.reader, "Priority filter (empty for all)", a.out)
	if err != nil {
		return
	}
	mode, err := GetSimpleText(a.reader, "Sort (newest/oldest/priority) [newest]", a.out)
	if err != nil {
		return
	}

	replies, err := a.contacts.Replies(ctx, models.Priority(priority), contacts.SortMode(mode))
	if err != nil {
		a.printErr(err)
		return
	}
	if len(replies) == 0 {
		fmt.Fprintln(a.out, "No replies yet")
		return
	}

	for _, m := range replies {
		fmt.Fprintf(a.out, "--- %s | %s | %s\n", formatDate(m.CreatedAt), m.Subject, m.Priority)
		fmt.Fprintf(a.out, "You wrote: %s\n", m.Message)
		fmt.Fprintf(a.out, "Reply:     %s\n\n", m.Reply)
	}
	fmt.Fprintf(a.out, "%d replies\n", len(replies))
}

// Export writes all messages to a timestamped JSON file in the current
// directory.
func (a *App) Export(ctx context.Context) {
	data, filename, err := a.contacts.Export(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "No messages to export")
		} else {
			a.printErr(err)
		}
		return
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Exported to %s\n", filename)
}

// ClearMessages wipes the whole collection after confirmation.
func (a *App) ClearMessages(ctx context.Context) {
	confirmed, err := GetYesNo(a.reader, "Delete ALL messages? This cannot be undone", a.out)
	if err != nil || !confirmed {
		return
	}
	if err := a.contacts.ClearAll(ctx); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "All messages deleted")
}
