package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/monzoclient/internal/client/models"
)

func (a *App) WhoAmI(ctx context.Context) error {
	if a.user.ID == "" {
		fmt.Fprintln(a.out, "User id unknown (opaque access token)")
		return nil
	}
	fmt.Fprintf(a.out, "User: %s\n", a.user.ID)
	return nil
}

func (a *App) loadAccounts(ctx context.Context) error {
	accounts, err := a.user.Accounts(ctx)
	if err != nil {
		return err
	}
	a.accounts = accounts
	return nil
}

func (a *App) Accounts(ctx context.Context) error {
	if err := a.loadAccounts(ctx); err != nil {
		return err
	}
	if len(a.accounts) == 0 {
		fmt.Fprintln(a.out, "No accounts")
		return nil
	}
	for _, acc := range a.accounts {
		fmt.Fprintf(a.out, "%s\t%s\t%s\t%s\n", acc.ID, acc.Type, acc.Description, acc.Created.Format("2006-01-02"))
	}
	return nil
}

func (a *App) Use(ctx context.Context, id string) error {
	if a.accounts == nil {
		if err := a.loadAccounts(ctx); err != nil {
			return err
		}
	}
	for _, acc := range a.accounts {
		if acc.ID == id {
			a.current = acc
			fmt.Fprintf(a.out, "Using account %s (%s)\n", acc.ID, acc.Description)
			return nil
		}
	}
	return fmt.Errorf("account %q not found", id)
}

func (a *App) Balance(ctx context.Context) error {
	acc, err := a.account()
	if err != nil {
		return err
	}
	amount, err := acc.Balance(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Balance: %s\n", amount)
	return nil
}

func (a *App) Spent(ctx context.Context) error {
	acc, err := a.account()
	if err != nil {
		return err
	}
	amount, err := acc.SpentToday(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Spent today: %s\n", amount)
	return nil
}

func (a *App) Transactions(ctx context.Context, limit string) error {
	acc, err := a.account()
	if err != nil {
		return err
	}
	n := models.DefaultTransactionLimit
	if limit != "" {
		if n, err = strconv.Atoi(limit); err != nil {
			return fmt.Errorf("invalid limit %q: %w", limit, err)
		}
	}

	txs := acc.Transactions(n)
	if len(txs) == 0 {
		fmt.Fprintln(a.out, "No transactions")
		return nil
	}
	for _, tx := range txs {
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", tx.ID, tx.Amount, tx.Created.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) Webhooks(ctx context.Context) error {
	acc, err := a.account()
	if err != nil {
		return err
	}
	printWebhooks(a, acc.Webhooks(ctx))
	return nil
}

func (a *App) Reload(ctx context.Context) error {
	acc, err := a.account()
	if err != nil {
		return err
	}
	if err := acc.ReloadWebhooks(ctx); err != nil {
		return err
	}
	printWebhooks(a, acc.Webhooks(ctx))
	return nil
}

func printWebhooks(a *App, hooks []*models.Webhook) {
	if len(hooks) == 0 {
		fmt.Fprintln(a.out, "No webhooks")
		return
	}
	for _, w := range hooks {
		fmt.Fprintf(a.out, "%s\t%s\n", w.ID, w.URL)
	}
}

func (a *App) AddWebhook(ctx context.Context, url string) error {
	acc, err := a.account()
	if err != nil {
		return err
	}
	w, err := acc.AddWebhook(ctx, url)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered webhook %s\n", w.ID)
	return nil
}

func (a *App) RemoveWebhook(ctx context.Context, id string) error {
	acc, err := a.account()
	if err != nil {
		return err
	}

	target := &models.Webhook{ID: id}
	for _, w := range acc.Webhooks(ctx) {
		if w.ID == id {
			target = w
			break
		}
	}

	if err := acc.RemoveWebhook(ctx, target); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed webhook %s\n", id)
	return nil
}
