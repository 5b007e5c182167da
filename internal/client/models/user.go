package models

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/monzoclient/internal/client/provider"
	"github.com/dmitrijs2005/monzoclient/internal/logging"
)

// User is the authenticated API user and the owner of the provider.
type User struct {
	ID string

	provider provider.Provider
	logger   logging.Logger
}

func NewUser(id string, p provider.Provider, logger logging.Logger) *User {
	return &User{ID: id, provider: p, logger: logger.With("user_id", id)}
}

// Accounts lists the user's accounts. One undecodable account fails the call.
func (u *User) Accounts(ctx context.Context) ([]*Account, error) {
	raw, err := u.provider.RequestArray(ctx, provider.Accounts{})
	if err != nil {
		return nil, err
	}

	accounts := make([]*Account, 0, len(raw))
	for i, obj := range raw {
		a, err := NewAccountFromJSON(u, obj)
		if err != nil {
			return nil, fmt.Errorf("account #%d: %w", i, err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
