// Package tui implements the interactive terminal front end: a menu
// loop over the provider client and the address store. Presentation
// only; all provider and persistence behavior lives in the packages it
// calls into.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	tempmail "github.com/geortick/temp-email-cli"
	"github.com/geortick/temp-email-cli/store"
)

// App is the interactive menu over a provider client and address store.
type App struct {
	client *tempmail.Client
	store  *store.Store
	log    *zap.Logger
}

// NewApp creates the menu app.
func NewApp(client *tempmail.Client, st *store.Store, log *zap.Logger) *App {
	return &App{client: client, store: st, log: log}
}

const (
	actionCreate  = "create"
	actionList    = "list"
	actionInbox   = "inbox"
	actionDelete  = "delete"
	actionCleanup = "cleanup"
	actionExit    = "exit"
)

// Run drives the menu loop until the user exits or aborts.
func (a *App) Run(ctx context.Context) error {
	fmt.Println(titleStyle.Render("temp-email — disposable addresses"))

	for {
		var action string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Create a new address", actionCreate),
					huh.NewOption("List my addresses", actionList),
					huh.NewOption("Check an inbox", actionInbox),
					huh.NewOption("Delete an address", actionDelete),
					huh.NewOption("Clean up expired addresses", actionCleanup),
					huh.NewOption("Exit", actionExit),
				).
				Value(&action),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		var err error
		switch action {
		case actionCreate:
			err = a.createAddress(ctx)
		case actionList:
			err = a.listAddresses()
		case actionInbox:
			err = a.checkInbox(ctx)
		case actionDelete:
			err = a.deleteAddress(ctx)
		case actionCleanup:
			err = a.cleanupExpired()
		case actionExit:
			return nil
		}
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			fmt.Println(errorStyle.Render("Error: ") + err.Error())
		}
	}
}

func (a *App) createAddress(ctx context.Context) error {
	var password string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Password").
			Description("Leave empty to generate one").
			EchoMode(huh.EchoModePassword).
			Value(&password),
	))
	if err := form.Run(); err != nil {
		return err
	}

	fmt.Println(dimStyle.Render("Provisioning address, this takes a few seconds..."))
	addr, err := a.client.ProvisionAddress(ctx, password)
	if err != nil {
		return fmt.Errorf("provision address: %w", err)
	}

	rec := store.AddressRecord{
		Address:          addr.Address,
		ProviderID:       addr.ProviderID,
		CredentialSecret: addr.Password,
		AuthToken:        addr.Token,
	}
	if err := a.store.Save(rec); err != nil {
		// The address exists on the provider even if we failed to save
		// it; surface everything the user needs to keep it.
		a.log.Error("failed to persist address record",
			zap.String("address", addr.Address),
			zap.Error(err),
		)
		fmt.Println(errorStyle.Render("Could not save locally!") +
			fmt.Sprintf(" Keep these: address=%s password=%s", addr.Address, addr.Password))
		return err
	}

	fmt.Println(successStyle.Render("Created ") + addressStyle.Render(addr.Address))
	return nil
}

func (a *App) listAddresses() error {
	records, err := a.store.List(true)
	if err != nil {
		return err
	}
	fmt.Println(renderAddresses(records, time.Now()))
	return nil
}

func (a *App) checkInbox(ctx context.Context) error {
	rec, err := a.selectAddress(false, "Which inbox?")
	if err != nil || rec == nil {
		return err
	}

	msgs, err := a.client.ListMessages(ctx, rec.Address, rec.CredentialSecret)
	if err != nil {
		return fmt.Errorf("list messages: %w", err)
	}

	fmt.Println(renderSummaries(msgs))
	if len(msgs) == 0 {
		return nil
	}
	return a.browseMessages(ctx, rec, msgs)
}

func (a *App) browseMessages(ctx context.Context, rec *store.AddressRecord, msgs []tempmail.MessageSummary) error {
	opts := make([]huh.Option[string], 0, len(msgs)+1)
	for _, m := range msgs {
		label := fmt.Sprintf("%s — %s", truncate(m.Subject, 40), m.From)
		opts = append(opts, huh.NewOption(label, m.ID))
	}
	opts = append(opts, huh.NewOption("Back", ""))

	var messageID string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Read a message").Options(opts...).Value(&messageID),
	))
	if err := form.Run(); err != nil {
		return err
	}
	if messageID == "" {
		return nil
	}

	msg, err := a.client.FetchMessage(ctx, messageID, rec.Address, rec.CredentialSecret)
	if err != nil {
		return fmt.Errorf("fetch message: %w", err)
	}
	fmt.Println(renderMessage(msg))

	var del bool
	confirm := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title("Delete this message?").Value(&del),
	))
	if err := confirm.Run(); err != nil {
		return err
	}
	if !del {
		return nil
	}

	token, err := a.client.Authenticate(ctx, rec.Address, rec.CredentialSecret)
	if err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}
	if err := a.client.DeleteMessage(ctx, messageID, token); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	fmt.Println(successStyle.Render("Message deleted."))
	return nil
}

func (a *App) deleteAddress(ctx context.Context) error {
	rec, err := a.selectAddress(true, "Delete which address?")
	if err != nil || rec == nil {
		return err
	}

	var sure bool
	confirm := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete %s?", rec.Address)).
			Description("Removes the provider account and the local record.").
			Value(&sure),
	))
	if err := confirm.Run(); err != nil {
		return err
	}
	if !sure {
		return nil
	}

	// Best effort on the provider side: the local record goes away
	// regardless, a stale provider account just expires on its own.
	token, err := a.client.Authenticate(ctx, rec.Address, rec.CredentialSecret)
	if err == nil {
		err = a.client.DeleteAccount(ctx, rec.ProviderID, token)
	}
	if err != nil {
		a.log.Warn("provider-side account deletion failed",
			zap.String("address", rec.Address),
			zap.Error(err),
		)
	}

	removed, err := a.store.Remove(rec.Address)
	if err != nil {
		return err
	}
	if removed {
		fmt.Println(successStyle.Render("Address deleted."))
	}
	return nil
}

func (a *App) cleanupExpired() error {
	count, err := a.store.CleanupExpired()
	if err != nil {
		return err
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("Removed %d expired address(es).", count)))
	return nil
}

// selectAddress prompts for one of the stored addresses. It returns
// nil with no error when there is nothing to pick or the user backs out.
func (a *App) selectAddress(includeExpired bool, title string) (*store.AddressRecord, error) {
	records, err := a.store.List(includeExpired)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		fmt.Println(dimStyle.Render("No addresses available."))
		return nil, nil
	}

	opts := make([]huh.Option[string], 0, len(records)+1)
	for _, rec := range records {
		opts = append(opts, huh.NewOption(rec.Address, rec.Address))
	}
	opts = append(opts, huh.NewOption("Back", ""))

	var address string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(opts...).Value(&address),
	))
	if err := form.Run(); err != nil {
		return nil, err
	}
	if address == "" {
		return nil, nil
	}

	return a.store.Get(address)
}
