// Package cli implements an interactive shell over the banking client.
//
// The shell lists the user's accounts, selects one with "use", and then
// runs account operations against it: balance, spent, transactions,
// webhooks, reload, addwebhook, rmwebhook. Type "help" for the list.
//
// If no access token is configured the user is prompted for one; the input
// is read without echo.
package cli
