package provider

import (
	"context"

	"github.com/dmitrijs2005/monzoclient/internal/jsonx"
)

// Provider executes routes against the remote API.
type Provider interface {
	Request(ctx context.Context, route Route) (jsonx.Object, error)
	RequestArray(ctx context.Context, route Route) ([]jsonx.Object, error)
	Deliver(ctx context.Context, route Route) error
}
