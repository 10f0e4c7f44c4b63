package cli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/luxauto/internal/common"
	"github.com/tdnguyen/luxauto/internal/config"
	"github.com/tdnguyen/luxauto/internal/contacts"
	"github.com/tdnguyen/luxauto/internal/listings"
	"github.com/tdnguyen/luxauto/internal/logging"
	"github.com/tdnguyen/luxauto/internal/models"
	"github.com/tdnguyen/luxauto/internal/session"
	"github.com/tdnguyen/luxauto/internal/storage"
	"github.com/tdnguyen/luxauto/internal/users"

	_ "modernc.org/sqlite"
)

// newTestApp wires an App over an in-memory store, a scripted reader and a
// capturing writer. input is the terminal session, one answer per line.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, storage.RunMigrations(context.Background(), db))

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	kv := storage.NewSQLiteKV(db)
	sessions := session.NewStore(kv, log)

	out := &bytes.Buffer{}
	app := &App{
		config:   &config.Config{DatabasePath: ":memory:", LogLevel: "info", SubmitDelay: 0},
		log:      log,
		db:       db,
		sessions: sessions,
		contacts: contacts.NewService(db, log),
		users:    users.NewService(db, sessions, log),
		listings: listings.NewService(db, log),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      out,
	}
	return app, out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = orig })
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func TestRegisterLoginLogout(t *testing.T) {
	ctx := context.Background()
	stubPassword(t, "Passw0rd!")

	app, out := newTestApp(t, lines(
		"Jane Doe",         // register: full name
		"JANE@Example.com", // register: email
		"jane@example.com", // login: email
		"y",                // login: remember email
	))

	app.Register(ctx)
	assert.Contains(t, out.String(), "Password strength: strong")
	assert.Contains(t, out.String(), "Account created for jane@example.com")

	app.Login(ctx)
	assert.Contains(t, out.String(), "Welcome back, Jane Doe!")
	require.NotNil(t, app.principal)
	assert.Equal(t, "jane@example.com", app.principal.Email)

	remembered, ok := app.sessions.RememberedEmail(ctx)
	assert.True(t, ok)
	assert.Equal(t, "jane@example.com", remembered)

	app.Logout(ctx)
	assert.Nil(t, app.principal)
	assert.Contains(t, out.String(), "Logged out")

	// the remembered email survives logout
	remembered, ok = app.sessions.RememberedEmail(ctx)
	assert.True(t, ok)
	assert.Equal(t, "jane@example.com", remembered)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	stubPassword(t, "Passw0rd!")

	app, out := newTestApp(t, lines(
		"Jane Doe",
		"jane@example.com",
	))
	app.Register(ctx)

	stubPassword(t, "wrong")
	app.reader = bufio.NewReader(strings.NewReader(lines("jane@example.com")))
	app.Login(ctx)

	assert.Contains(t, out.String(), "incorrect email or password")
	assert.Nil(t, app.principal)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	ctx := context.Background()

	calls := 0
	orig := readPassword
	readPassword = func(int) ([]byte, error) {
		calls++
		if calls == 1 {
			return []byte("Passw0rd!"), nil
		}
		return []byte("different"), nil
	}
	t.Cleanup(func() { readPassword = orig })

	app, out := newTestApp(t, lines("Jane Doe", "jane@example.com"))
	app.Register(ctx)

	assert.Contains(t, out.String(), "passwords do not match")
}

func TestProfile_ViewAndUpdate(t *testing.T) {
	ctx := context.Background()

	app, out := newTestApp(t, lines(
		"y",         // update profile?
		"Janet Doe", // new name
		"",          // keep email
	))
	user, err := app.users.Register(ctx, "Jane Doe", "jane@example.com", "Passw0rd!")
	require.NoError(t, err)
	app.principal = &models.Principal{ID: user.ID, FullName: user.FullName, Email: user.Email}

	app.Profile(ctx)

	assert.Contains(t, out.String(), "jane@example.com")
	assert.Contains(t, out.String(), "Profile updated")

	profile, err := app.users.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Janet Doe", profile.FullName)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.NotEmpty(t, profile.UpdatedAt)
}

func TestExportWritesFile(t *testing.T) {
	ctx := context.Background()
	t.Chdir(t.TempDir())

	app, out := newTestApp(t, "")
	_, err := app.contacts.Create(ctx, contacts.Input{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "general",
		Message: "Do you deliver to Da Nang province?",
	})
	require.NoError(t, err)

	app.Export(ctx)
	assert.Contains(t, out.String(), "Exported to luxauto-contacts-")

	entries, err := os.ReadDir(".")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "luxauto-contacts-"))

	data, err := os.ReadFile(entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Da Nang")
}

func TestContactAndMessages(t *testing.T) {
	ctx := context.Background()

	app, out := newTestApp(t, lines(
		"Jane Doe",           // contact: name
		"jane@example.com",   // contact: email
		"",                   // contact: phone
		"test drive",         // contact: subject
		"I would like to book a test drive for the GLC.", // contact: message
		"", // contact: end of message
		"high", // contact: priority
		"",     // messages: search
		"",     // messages: priority filter
	))

	app.Contact(ctx)
	assert.Contains(t, out.String(), "Message sent. Reference ID:")

	app.principal = &models.Principal{ID: 1, FullName: "Jane Doe", Email: "jane@example.com"}
	app.Messages(ctx)
	assert.Contains(t, out.String(), "test drive")
	assert.Contains(t, out.String(), "high")
	assert.Contains(t, out.String(), "Showing 1 of 1 messages")
}

func TestReadAndDeleteMessage(t *testing.T) {
	ctx := context.Background()

	app, out := newTestApp(t, lines("y")) // delete confirmation
	app.principal = &models.Principal{ID: 1, FullName: "Jane Doe", Email: "jane@example.com"}

	msg, err := app.contacts.Create(ctx, contacts.Input{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "warranty",
		Message: "Does the extended warranty transfer to a new owner?",
	})
	require.NoError(t, err)

	app.ReadMessage(ctx, []string{strconv.FormatInt(msg.ID, 10)})
	assert.Contains(t, out.String(), "warranty transfer")

	all, err := app.contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.StatusRead, all[0].Status)

	app.DeleteMessage(ctx, []string{strconv.FormatInt(msg.ID, 10)})
	assert.Contains(t, out.String(), "Message deleted")

	all, err = app.contacts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteMessage_BadID(t *testing.T) {
	app, out := newTestApp(t, "")
	app.DeleteMessage(context.Background(), []string{"seventeen"})
	assert.Contains(t, out.String(), "numeric message ID")
}

func TestSellSubmitFlow(t *testing.T) {
	ctx := context.Background()

	app, out := newTestApp(t, lines(
		"Toyota Camry 2.5Q 2020",       // title
		"Toyota",                       // brand
		"Camry",                        // model
		"2020",                         // year
		"35,000",                       // mileage
		"Excellent",                    // condition
		"820,000,000",                  // asking price
		"y",                            // negotiable
		"Automatic",                    // transmission
		"Gasoline",                     // fuel
		"Black",                        // color
		"Well maintained, one owner.",  // description
		"",                             // end of description
		"",                             // seller name (keep account default)
		"0912345678",                   // seller phone
		"",                             // seller email (keep account default)
		"Ho Chi Minh City",             // location
		"4",                            // planned photos
		"submit",                       // action
	))
	app.principal = &models.Principal{ID: 1, FullName: "Jane Doe", Email: "jane@example.com"}

	app.Sell(ctx)

	output := out.String()
	assert.Contains(t, output, "Suggested price range:")
	assert.Contains(t, output, "Expected reach:")
	assert.Contains(t, output, "Listing submitted!")
	assert.Contains(t, output, "Reference:")
	assert.Contains(t, output, "potential buyers")

	// the draft slot is consumed by a successful submit
	draft, err := app.listings.LoadDraft(ctx)
	assert.ErrorIs(t, err, common.ErrNoDraft)
	assert.Nil(t, draft)
}

func TestSellSaveAndResume(t *testing.T) {
	ctx := context.Background()

	app, out := newTestApp(t, lines(
		"Mazda CX-5 Deluxe", // title
		"Mazda",             // brand
		"CX-5",              // model
		"2022",              // year
		"12,000",            // mileage
		"Good",              // condition
		"",                  // price (skip)
		"n",                 // negotiable
		"", "", "",          // transmission, fuel, color
		"",                  // description (empty)
		"",                  // seller name
		"",                  // seller phone
		"",                  // seller email
		"",                  // location
		"0",                 // photos
		"save",              // action
	))
	app.principal = &models.Principal{ID: 1, FullName: "Jane Doe", Email: "jane@example.com"}

	app.Sell(ctx)
	assert.Contains(t, out.String(), "Draft saved")

	draft, err := app.listings.LoadDraft(ctx)
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, "Mazda CX-5 Deluxe", draft.Title)
	assert.Equal(t, 2022, draft.Year)
	assert.NotEmpty(t, draft.SavedAt)
}

func TestCheckReservation(t *testing.T) {
	ctx := context.Background()

	app, out := newTestApp(t, lines("51A-123.45", "NOPE"))

	kv := storage.NewSQLiteKV(app.db)
	require.NoError(t, kv.Set(ctx, storage.KeyReservations,
		`[{"vin":"VF1234567890","plate":"51A-123.45","buyerName":"Tran Van B","date":"2026-08-30"}]`))

	app.CheckReservation(ctx)
	assert.Contains(t, out.String(), "Reservation found:")
	assert.Contains(t, out.String(), "Tran Van B")

	app.CheckReservation(ctx)
	assert.Contains(t, out.String(), "No reservation found")
}

func TestRoot_HelpAndExit(t *testing.T) {
	ctx := context.Background()

	app, out := newTestApp(t, lines("help", "bogus", "exit"))
	app.Root(ctx)

	output := out.String()
	assert.Contains(t, output, "Welcome to LuxAuto")
	assert.Contains(t, output, "register, login, contact, check, exit")
	assert.Contains(t, output, "Unknown command: bogus")
}

func TestRoot_GatesMemberCommands(t *testing.T) {
	ctx := context.Background()

	app, out := newTestApp(t, lines("sell", "messages", "exit"))
	app.Root(ctx)

	assert.Equal(t, 2, strings.Count(out.String(), "Please login first"))
}

func TestRoot_ExitsOnEOF(t *testing.T) {
	app, _ := newTestApp(t, "")
	done := make(chan struct{})
	go func() {
		app.Root(context.Background())
		close(done)
	}()
	<-done
}
