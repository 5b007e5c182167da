package provider

import (
	"net/http"
	"net/url"
)

// Route describes one API operation. The set of implementations is closed.
type Route interface {
	// Name is a short identifier used in logs and errors.
	Name() string
	endpoint() endpoint
}

type endpoint struct {
	method string
	path   string
	query  url.Values
	form   url.Values

	// envelope is the response key wrapping the payload; "" means the
	// payload is the top-level object.
	envelope string
	list     bool
}

// Accounts lists the accounts visible to the access token.
type Accounts struct{}

func (Accounts) Name() string { return "accounts" }

func (Accounts) endpoint() endpoint {
	return endpoint{method: http.MethodGet, path: "/accounts", envelope: "accounts", list: true}
}

// Balance fetches balance and today's spend for one account.
type Balance struct {
	AccountID string
}

func (Balance) Name() string { return "balance" }

func (r Balance) endpoint() endpoint {
	return endpoint{
		method: http.MethodGet,
		path:   "/balance",
		query:  url.Values{"account_id": {r.AccountID}},
	}
}

// Webhooks lists the webhooks registered on an account.
type Webhooks struct {
	AccountID string
}

func (Webhooks) Name() string { return "webhooks" }

func (r Webhooks) endpoint() endpoint {
	return endpoint{
		method:   http.MethodGet,
		path:     "/webhooks",
		query:    url.Values{"account_id": {r.AccountID}},
		envelope: "webhooks",
		list:     true,
	}
}

// RegisterWebhook subscribes URL to events on an account.
type RegisterWebhook struct {
	AccountID string
	URL       string
}

func (RegisterWebhook) Name() string { return "register_webhook" }

func (r RegisterWebhook) endpoint() endpoint {
	return endpoint{
		method:   http.MethodPost,
		path:     "/webhooks",
		form:     url.Values{"account_id": {r.AccountID}, "url": {r.URL}},
		envelope: "webhook",
	}
}

// DeleteWebhook removes a webhook by id.
type DeleteWebhook struct {
	WebhookID string
}

func (DeleteWebhook) Name() string { return "delete_webhook" }

func (r DeleteWebhook) endpoint() endpoint {
	return endpoint{method: http.MethodDelete, path: "/webhooks/" + url.PathEscape(r.WebhookID)}
}
