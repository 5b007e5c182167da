package models

import "github.com/dmitrijs2005/monzoclient/internal/jsonx"

// Webhook is a server-side subscription delivering account events to URL.
type Webhook struct {
	account *Account

	ID        string
	AccountID string
	URL       string
}

// NewWebhookFromJSON maps an API webhook object. All fields are optional.
func NewWebhookFromJSON(account *Account, obj jsonx.Object) *Webhook {
	return &Webhook{
		account:   account,
		ID:        obj.String("id"),
		AccountID: obj.String("account_id"),
		URL:       obj.String("url"),
	}
}

// Account returns the account the webhook belongs to.
func (w *Webhook) Account() *Account {
	return w.account
}
