package models

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/monzoclient/internal/client/provider"
	"github.com/dmitrijs2005/monzoclient/internal/jsonx"
	"github.com/dmitrijs2005/monzoclient/internal/logging"
)

// fakeProvider answers routes from canned values and counts calls per route.
type fakeProvider struct {
	mu sync.Mutex

	balance    jsonx.Object
	balanceErr error

	accounts    []jsonx.Object
	accountsErr error

	webhooks    []jsonx.Object
	webhooksErr error

	registered  jsonx.Object
	registerErr error

	deleteErr error

	calls  map[string]int
	routes []provider.Route
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{calls: map[string]int{}}
}

func (f *fakeProvider) record(route provider.Route) {
	f.calls[route.Name()]++
	f.routes = append(f.routes, route)
}

func (f *fakeProvider) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeProvider) Request(ctx context.Context, route provider.Route) (jsonx.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(route)

	switch route.(type) {
	case provider.Balance:
		return f.balance, f.balanceErr
	case provider.RegisterWebhook:
		return f.registered, f.registerErr
	default:
		return nil, fmt.Errorf("%w: %s", provider.ErrUnsupportedRoute, route.Name())
	}
}

func (f *fakeProvider) RequestArray(ctx context.Context, route provider.Route) ([]jsonx.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(route)

	switch route.(type) {
	case provider.Accounts:
		return f.accounts, f.accountsErr
	case provider.Webhooks:
		return f.webhooks, f.webhooksErr
	default:
		return nil, fmt.Errorf("%w: %s", provider.ErrUnsupportedRoute, route.Name())
	}
}

func (f *fakeProvider) Deliver(ctx context.Context, route provider.Route) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(route)

	if _, ok := route.(provider.DeleteWebhook); !ok {
		return fmt.Errorf("%w: %s", provider.ErrUnsupportedRoute, route.Name())
	}
	return f.deleteErr
}

func newTestUser(p provider.Provider) *User {
	return NewUser("user_1", p, logging.Discard())
}

func webhookJSON(id, url string) jsonx.Object {
	return jsonx.Object{"id": id, "account_id": "acc_1", "url": url}
}
