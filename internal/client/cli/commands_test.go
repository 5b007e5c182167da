package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/monzoclient/internal/client/models"
	"github.com/dmitrijs2005/monzoclient/internal/client/provider"
	"github.com/dmitrijs2005/monzoclient/internal/common"
	"github.com/dmitrijs2005/monzoclient/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a minimal in-memory stand-in for the banking API.
type fakeAPI struct {
	mu       sync.Mutex
	webhooks []map[string]string
	nextID   int
	failList bool
	lists    int
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{webhooks: []map[string]string{{"id": "wh_1", "account_id": "acc_1", "url": "https://a.example"}}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /accounts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"accounts": []map[string]string{
			{"id": "acc_1", "type": "uk_retail", "description": "Current", "created": "2020-01-01T00:00:00Z"},
			{"id": "acc_2", "type": "uk_prepaid", "description": "Prepaid", "created": "2019-05-05T10:00:00.000Z"},
		}})
	})
	mux.HandleFunc("GET /balance", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"balance": 123456, "spend_today": -2500, "currency": "GBP"})
	})
	mux.HandleFunc("GET /webhooks", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		api.lists++
		if api.failList {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"code": "internal", "message": "try later"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"webhooks": api.webhooks})
	})
	mux.HandleFunc("POST /webhooks", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		api.mu.Lock()
		defer api.mu.Unlock()
		api.nextID++
		hook := map[string]string{"id": fmt.Sprintf("wh_new_%d", api.nextID), "account_id": r.PostForm.Get("account_id"), "url": r.PostForm.Get("url")}
		api.webhooks = append(api.webhooks, hook)
		writeJSON(w, http.StatusOK, map[string]any{"webhook": hook})
	})
	mux.HandleFunc("DELETE /webhooks/{id}", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		id := r.PathValue("id")
		for i, h := range api.webhooks {
			if h["id"] == id {
				api.webhooks = append(api.webhooks[:i], api.webhooks[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]any{})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"code": "not_found", "message": "no such webhook"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return api, srv
}

func (api *fakeAPI) listCount() int {
	api.mu.Lock()
	defer api.mu.Unlock()
	return api.lists
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestApp(t *testing.T) (*App, *fakeAPI, *bytes.Buffer) {
	t.Helper()
	api, srv := newFakeAPI(t)
	logger := logging.Discard()
	p := provider.NewHTTPProvider(srv.URL, "tok", 5*time.Second, logger)
	var out bytes.Buffer
	app := newApp(models.NewUser("user_1", p, logger), logger, bufio.NewReader(strings.NewReader("")), &out)
	return app, api, &out
}

func TestApp_CommandsNeedAccount(t *testing.T) {
	app, _, _ := newTestApp(t)
	ctx := context.Background()

	assert.ErrorIs(t, app.Balance(ctx), ErrNoAccountSelected)
	assert.ErrorIs(t, app.Spent(ctx), ErrNoAccountSelected)
	assert.ErrorIs(t, app.Transactions(ctx, ""), ErrNoAccountSelected)
	assert.ErrorIs(t, app.Webhooks(ctx), ErrNoAccountSelected)
	assert.ErrorIs(t, app.Reload(ctx), ErrNoAccountSelected)
	assert.ErrorIs(t, app.AddWebhook(ctx, "u"), ErrNoAccountSelected)
	assert.ErrorIs(t, app.RemoveWebhook(ctx, "wh_1"), ErrNoAccountSelected)
}

func TestApp_AccountsAndUse(t *testing.T) {
	app, _, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Accounts(ctx))
	assert.Contains(t, out.String(), "acc_1\tcurrent\tCurrent\t2020-01-01")
	assert.Contains(t, out.String(), "acc_2\tprepaid\tPrepaid\t2019-05-05")

	require.Error(t, app.Use(ctx, "acc_404"))
	require.NoError(t, app.Use(ctx, "acc_2"))
	assert.Equal(t, "(user_1 acc_2)", app.status())
}

func TestApp_UseLoadsAccountsLazily(t *testing.T) {
	app, _, _ := newTestApp(t)

	require.NoError(t, app.Use(context.Background(), "acc_1"))
	assert.Equal(t, "acc_1", app.current.ID)
}

func TestApp_BalanceSpentTransactions(t *testing.T) {
	app, _, out := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Use(ctx, "acc_1"))

	require.NoError(t, app.Balance(ctx))
	require.NoError(t, app.Spent(ctx))
	require.NoError(t, app.Transactions(ctx, "3"))
	require.Error(t, app.Transactions(ctx, "many"))

	s := out.String()
	assert.Contains(t, s, "Balance: 1234.56 GBP")
	assert.Contains(t, s, "Spent today: -25.00 GBP")
	assert.Contains(t, s, "No transactions")
}

func TestApp_WebhookLifecycle(t *testing.T) {
	app, api, out := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Use(ctx, "acc_1"))

	require.NoError(t, app.Webhooks(ctx))
	assert.Contains(t, out.String(), "wh_1\thttps://a.example")

	require.NoError(t, app.AddWebhook(ctx, "https://new.example"))
	assert.Contains(t, out.String(), "Registered webhook wh_new_1")
	assert.Len(t, app.current.Webhooks(ctx), 2)

	require.NoError(t, app.RemoveWebhook(ctx, "wh_1"))
	hooks := app.current.Webhooks(ctx)
	require.Len(t, hooks, 1)
	assert.Equal(t, "wh_new_1", hooks[0].ID)

	err := app.RemoveWebhook(ctx, "wh_gone")
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.Equal(t, 1, api.listCount(), "cache served everything after the first load")
}

func TestApp_WebhooksLoadFailureIsSilent(t *testing.T) {
	app, api, out := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Use(ctx, "acc_1"))

	api.mu.Lock()
	api.failList = true
	api.mu.Unlock()

	require.NoError(t, app.Webhooks(ctx))
	assert.Contains(t, out.String(), "No webhooks")

	err := app.Reload(ctx)
	assert.ErrorIs(t, err, common.ErrUnavailable)

	api.mu.Lock()
	api.failList = false
	api.mu.Unlock()

	require.NoError(t, app.Reload(ctx))
	assert.Contains(t, out.String(), "wh_1\thttps://a.example")
	assert.Equal(t, 3, api.listCount())
}

func TestApp_WhoAmI(t *testing.T) {
	app, _, out := newTestApp(t)
	require.NoError(t, app.WhoAmI(context.Background()))
	assert.Equal(t, "User: user_1\n", out.String())

	anon := newApp(models.NewUser("", nil, logging.Discard()), logging.Discard(), rdr(""), out)
	out.Reset()
	require.NoError(t, anon.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "unknown")
	assert.Equal(t, "", anon.status())
}
