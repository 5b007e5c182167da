package models

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/monzoclient/internal/client/provider"
	"github.com/dmitrijs2005/monzoclient/internal/jsonx"
	"github.com/dmitrijs2005/monzoclient/internal/logging"
)

// AccountType classifies an account.
type AccountType int

const (
	AccountTypeUnknown AccountType = iota
	AccountTypePrepaid
	AccountTypeCurrent
)

// ParseAccountType maps the API's raw type code. Unrecognised codes are
// AccountTypeUnknown, never an error.
func ParseAccountType(raw string) AccountType {
	switch raw {
	case "uk_prepaid":
		return AccountTypePrepaid
	case "uk_retail":
		return AccountTypeCurrent
	default:
		return AccountTypeUnknown
	}
}

func (t AccountType) String() string {
	switch t {
	case AccountTypePrepaid:
		return "prepaid"
	case AccountTypeCurrent:
		return "current"
	default:
		return "unknown"
	}
}

type webhookCacheState int

const (
	webhookCacheNotLoaded webhookCacheState = iota
	webhookCacheLoaded
	// webhookCacheFailed means the last load attempt failed and nothing
	// has been loaded since; the next access retries.
	webhookCacheFailed
)

// Account is a bank account belonging to a User.
type Account struct {
	user   *User
	logger logging.Logger

	Type        AccountType
	ID          string
	Description string
	Created     time.Time

	mu           sync.Mutex
	webhookState webhookCacheState
	webhooks     []*Webhook
}

func NewAccount(user *User, typ AccountType, id, description string, created time.Time) *Account {
	return &Account{
		user:        user,
		logger:      user.logger.With("account_id", id),
		Type:        typ,
		ID:          id,
		Description: description,
		Created:     created,
	}
}

// NewAccountFromJSON maps an API account object. The created timestamp is
// required; on failure no account is returned.
func NewAccountFromJSON(user *User, obj jsonx.Object) (*Account, error) {
	created, err := obj.Time("created")
	if err != nil {
		return nil, err
	}
	return NewAccount(user, ParseAccountType(obj.String("type")), obj.String("id"), obj.String("description"), created), nil
}

// User returns the owner of the account.
func (a *Account) User() *User {
	return a.user
}

// Balance returns the currently available balance.
func (a *Account) Balance(ctx context.Context) (Amount, error) {
	return a.balanceField(ctx, "balance")
}

// SpentToday returns how much the account has spent today (counted from
// roughly 4am local time by the API).
func (a *Account) SpentToday(ctx context.Context) (Amount, error) {
	return a.balanceField(ctx, "spend_today")
}

func (a *Account) balanceField(ctx context.Context, field string) (Amount, error) {
	raw, err := a.user.provider.Request(ctx, provider.Balance{AccountID: a.ID})
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(raw.Int64(field), raw.String("currency")), nil
}

// Transactions is not backed by the API yet and always returns an empty
// slice, whatever the limit.
func (a *Account) Transactions(limit int) []Transaction {
	return []Transaction{}
}

// Webhooks returns the account's webhooks, loading them on first use. Load
// errors are logged and swallowed; the next call retries until a load
// succeeds. The returned slice is a copy.
func (a *Account) Webhooks(ctx context.Context) []*Webhook {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.webhookState != webhookCacheLoaded {
		if err := a.loadWebhooksLocked(ctx); err != nil {
			a.webhookState = webhookCacheFailed
			a.logger.Warn(ctx, "loading webhooks failed, will retry on next access", "error", err)
		}
	}
	return slices.Clone(a.webhooks)
}

// ReloadWebhooks replaces the cache with the server's list. On failure the
// cache keeps its previous contents and the error is returned.
func (a *Account) ReloadWebhooks(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	err := a.loadWebhooksLocked(ctx)
	if err != nil && a.webhookState != webhookCacheLoaded {
		a.webhookState = webhookCacheFailed
	}
	return err
}

func (a *Account) loadWebhooksLocked(ctx context.Context) error {
	raw, err := a.user.provider.RequestArray(ctx, provider.Webhooks{AccountID: a.ID})
	if err != nil {
		return err
	}

	webhooks := make([]*Webhook, 0, len(raw))
	for _, obj := range raw {
		webhooks = append(webhooks, NewWebhookFromJSON(a, obj))
	}
	a.webhooks = webhooks
	a.webhookState = webhookCacheLoaded
	return nil
}

// AddWebhook registers url on the account. A loaded cache gets the new
// webhook appended; an unloaded one is left alone, since its first load
// will fetch the webhook from the server anyway.
func (a *Account) AddWebhook(ctx context.Context, url string) (*Webhook, error) {
	raw, err := a.user.provider.Request(ctx, provider.RegisterWebhook{AccountID: a.ID, URL: url})
	if err != nil {
		return nil, err
	}
	w := NewWebhookFromJSON(a, raw)

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.webhookState == webhookCacheLoaded && !slices.ContainsFunc(a.webhooks, sameID(w.ID)) {
		a.webhooks = append(a.webhooks, w)
	}
	a.logger.Info(ctx, "webhook registered", "webhook_id", w.ID, "url", w.URL)
	return w, nil
}

// RemoveWebhook deletes webhook on the server, then drops the first cached
// entry with the same id. An id missing from the cache is not an error. If
// the server call fails the cache is untouched.
func (a *Account) RemoveWebhook(ctx context.Context, webhook *Webhook) error {
	if err := a.user.provider.Deliver(ctx, provider.DeleteWebhook{WebhookID: webhook.ID}); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if i := slices.IndexFunc(a.webhooks, sameID(webhook.ID)); i >= 0 {
		a.webhooks = slices.Delete(a.webhooks, i, i+1)
	}
	a.logger.Info(ctx, "webhook removed", "webhook_id", webhook.ID)
	return nil
}

func sameID(id string) func(*Webhook) bool {
	return func(w *Webhook) bool { return w.ID == id }
}
