package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/tdnguyen/luxauto/internal/common"
	"github.com/tdnguyen/luxauto/internal/contacts"
	"github.com/tdnguyen/luxauto/internal/models"
)

// Contact walks the contact-desk form and files the message. Name and
// email default to the logged-in account when one exists.
func (a *App) Contact(ctx context.Context) {
	var in contacts.Input

	namePrompt, emailPrompt := "Your name", "Email"
	if a.isLoggedIn() {
		namePrompt = fmt.Sprintf("Your name [%s]", a.principal.FullName)
		emailPrompt = fmt.Sprintf("Email [%s]", a.principal.Email)
	}

	name, err := GetSimpleText(a.reader, namePrompt, a.out)
	if err != nil {
		return
	}
	if name == "" && a.isLoggedIn() {
		name = a.principal.FullName
	}
	in.Name = name

	email, err := GetSimpleText(a.reader, emailPrompt, a.out)
	if err != nil {
		return
	}
	if email == "" && a.isLoggedIn() {
		email = a.principal.Email
	}
	in.Email = email

	if in.Phone, err = GetSimpleText(a.reader, "Phone (optional)", a.out); err != nil {
		return
	}
	if in.Subject, err = GetSimpleText(a.reader, "Subject", a.out); err != nil {
		return
	}
	if in.Message, err = GetMultiline(a.reader, "Message", a.out); err != nil {
		return
	}

	priority, err := GetSimpleText(a.reader, "Priority (low/normal/high/urgent) [normal]", a.out)
	if err != nil {
		return
	}
	in.Priority = models.Priority(priority)

	msg, err := a.contacts.Create(ctx, in)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Message sent. Reference ID: %d\n", msg.ID)
}

// CheckReservation looks up a reservation by VIN or plate number.
func (a *App) CheckReservation(ctx context.Context) {
	query, err := GetSimpleText(a.reader, "VIN or plate number", a.out)
	if err != nil {
		return
	}

	r, err := a.listings.FindReservation(ctx, query)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "No reservation found for that vehicle")
		} else {
			a.printErr(err)
		}
		return
	}

	fmt.Fprintln(a.out, "Reservation found:")
	fmt.Fprintf(a.out, "  VIN:    %s\n", r.VIN)
	fmt.Fprintf(a.out, "  Plate:  %s\n", r.Plate)
	fmt.Fprintf(a.out, "  Buyer:  %s\n", r.Buyer)
	fmt.Fprintf(a.out, "  Date:   %s\n", r.Date)
}
