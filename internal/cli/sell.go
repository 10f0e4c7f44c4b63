package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tdnguyen/luxauto/internal/common"
	"github.com/tdnguyen/luxauto/internal/listings"
	"github.com/tdnguyen/luxauto/internal/models"
	"github.com/tdnguyen/luxauto/internal/pricing"
)

// promptWithDefault prompts for a field, showing the current value when
// there is one. An empty answer keeps the default.
func (a *App) promptWithDefault(prompt, def string) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	text, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if text == "" {
		return def, nil
	}
	return text, nil
}

func (a *App) promptIntWithDefault(prompt string, def int) (int, error) {
	if def != 0 {
		prompt = fmt.Sprintf("%s [%d]", prompt, def)
	}
	v, err := GetInt(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return def, nil
	}
	return v, nil
}

// Sell walks the sell-car wizard: resume or start a draft, collect the
// form, show the suggested price band and the expected reach, then submit,
// save for later, or discard.
func (a *App) Sell(ctx context.Context) {
	draft := models.DraftListing{}

	saved, err := a.listings.LoadDraft(ctx)
	if err != nil && !errors.Is(err, common.ErrNoDraft) {
		a.printErr(err)
		return
	}
	if saved != nil {
		resume, err := GetYesNo(a.reader,
			fmt.Sprintf("Resume draft saved %s?", formatDate(saved.SavedAt)), a.out)
		if err != nil {
			return
		}
		if resume {
			draft = *saved
		} else if err := a.listings.ClearDraft(ctx); err != nil {
			a.log.Warn(ctx, "could not discard old draft", "error", err)
		}
	}

	if draft.Title, err = a.promptWithDefault("Listing title", draft.Title); err != nil {
		return
	}
	if draft.Brand, err = a.promptWithDefault("Brand", draft.Brand); err != nil {
		return
	}
	if draft.Model, err = a.promptWithDefault("Model", draft.Model); err != nil {
		return
	}
	if draft.Year, err = a.promptIntWithDefault("Year", draft.Year); err != nil {
		fmt.Fprintln(a.out, "Error: please enter a numeric year")
		return
	}
	if draft.MileageKm, err = a.promptIntWithDefault("Mileage (km)", draft.MileageKm); err != nil {
		fmt.Fprintln(a.out, "Error: please enter a numeric mileage")
		return
	}
	if draft.Condition, err = a.promptWithDefault("Condition (Excellent/Good/Fair/Poor)", draft.Condition); err != nil {
		return
	}

	// With year, mileage and condition in hand the suggested band can be
	// shown before the seller names a price.
	band := pricing.Estimate(draft.Year, draft.MileageKm, draft.Condition)
	fmt.Fprintf(a.out, "Suggested price range: %s - %s\n",
		formatPrice(band.Min), formatPrice(band.Max))

	price, err := a.promptIntWithDefault("Asking price (VND)", int(draft.Price))
	if err != nil {
		fmt.Fprintln(a.out, "Error: please enter a numeric price")
		return
	}
	draft.Price = int64(price)

	if draft.Price > 0 {
		switch v := pricing.Compare(draft.Price, band); v.Band {
		case pricing.BandAbove:
			fmt.Fprintf(a.out, "Your price is %d%% above the market average\n", v.DiffPercent)
		case pricing.BandBelow:
			fmt.Fprintf(a.out, "Your price is %d%% below the market average\n", v.DiffPercent)
		default:
			fmt.Fprintln(a.out, "Your price is within the suggested range")
		}
	}

	if draft.Negotiable, err = GetYesNo(a.reader, "Price negotiable?", a.out); err != nil {
		return
	}
	if draft.Transmission, err = a.promptWithDefault("Transmission", draft.Transmission); err != nil {
		return
	}
	if draft.FuelType, err = a.promptWithDefault("Fuel type", draft.FuelType); err != nil {
		return
	}
	if draft.Color, err = a.promptWithDefault("Color", draft.Color); err != nil {
		return
	}
	if draft.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return
	}

	sellerName, sellerEmail := draft.SellerName, draft.SellerEmail
	if sellerName == "" {
		sellerName = a.principal.FullName
	}
	if sellerEmail == "" {
		sellerEmail = a.principal.Email
	}
	if draft.SellerName, err = a.promptWithDefault("Seller name", sellerName); err != nil {
		return
	}
	if draft.SellerPhone, err = a.promptWithDefault("Seller phone", draft.SellerPhone); err != nil {
		return
	}
	if draft.SellerEmail, err = a.promptWithDefault("Seller email", sellerEmail); err != nil {
		return
	}
	if draft.Location, err = a.promptWithDefault("Location", draft.Location); err != nil {
		return
	}

	images, err := GetInt(a.reader, "Number of photos you plan to upload", a.out)
	if err != nil {
		images = 0
	}
	reach := listings.EstimateReach(draft.Year, images, draft.Price)
	fmt.Fprintf(a.out, "Expected reach: ~%d views, ~%d interested buyers in the first week\n",
		reach.Views, reach.Interest)

	action, err := GetSimpleText(a.reader, "submit / save / discard", a.out)
	if err != nil {
		return
	}

	switch action {
	case "save":
		if err := a.listings.SaveDraft(ctx, draft); err != nil {
			a.printErr(err)
			return
		}
		fmt.Fprintln(a.out, "Draft saved. Run 'sell' again to resume.")

	case "discard":
		if err := a.listings.ClearDraft(ctx); err != nil {
			a.printErr(err)
			return
		}
		fmt.Fprintln(a.out, "Draft discarded")

	case "submit":
		a.submitListing(ctx, draft)

	default:
		fmt.Fprintln(a.out, "Unknown choice, saving draft to be safe")
		if err := a.listings.SaveDraft(ctx, draft); err != nil {
			a.printErr(err)
		}
	}
}

func (a *App) submitListing(ctx context.Context, draft models.DraftListing) {
	if a.config.SubmitDelay > 0 {
		fmt.Fprintln(a.out, "Submitting your listing...")
		select {
		case <-time.After(a.config.SubmitDelay):
		case <-ctx.Done():
			return
		}
	}

	sub, err := a.listings.Submit(ctx, draft)
	if err != nil {
		a.printErr(err)
		// an invalid draft is worth keeping around for another attempt
		if saveErr := a.listings.SaveDraft(ctx, draft); saveErr != nil {
			a.log.Warn(ctx, "could not keep draft after failed submit", "error", saveErr)
		}
		return
	}

	fmt.Fprintln(a.out, "Listing submitted!")
	fmt.Fprintf(a.out, "  Reference: %s\n", sub.Listing.Reference)
	fmt.Fprintf(a.out, "  Price:     %s\n", formatPrice(sub.Listing.Price))
	fmt.Fprintf(a.out, "  Around %d potential buyers will see your listing\n", sub.PotentialBuyers)
}
