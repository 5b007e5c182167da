// Package models holds the client-side domain entities: User, Account,
// Webhook, Transaction and Amount.
//
// A User owns the provider.Provider every network call goes through.
// Accounts keep a non-owning pointer back to their User and Webhooks a
// non-owning pointer back to their Account; children never close or mutate
// their parents.
//
// # Webhook cache
//
// Account.Webhooks loads the webhook list on first use and serves it from
// memory afterwards. A failed load is logged and swallowed: the caller gets
// whatever is cached (initially nothing) and the next call tries again.
// Account.ReloadWebhooks is the error-returning way to refresh the cache.
// AddWebhook and RemoveWebhook keep a loaded cache in step with the server
// after each successful call.
//
// Accounts are safe for concurrent use.
package models
