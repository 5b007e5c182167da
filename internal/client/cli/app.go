package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/monzoclient/internal/client/auth"
	"github.com/dmitrijs2005/monzoclient/internal/client/config"
	"github.com/dmitrijs2005/monzoclient/internal/client/models"
	"github.com/dmitrijs2005/monzoclient/internal/client/provider"
	"github.com/dmitrijs2005/monzoclient/internal/logging"
)

var (
	ErrNoAccountSelected = errors.New("no account selected, run 'use <id>' first")
	ErrNoAccessToken     = errors.New("no access token")
)

type App struct {
	logger   logging.Logger
	user     *models.User
	accounts []*models.Account
	current  *models.Account
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp resolves the access token (prompting for it if unset), reads the
// session claims and wires the HTTP provider.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	token := c.AccessToken
	if token == "" {
		var err error
		token, err = GetSecret("Access token", os.Stdout)
		if err != nil {
			return nil, fmt.Errorf("reading access token: %w", err)
		}
	}
	if token == "" {
		return nil, ErrNoAccessToken
	}

	userID := sessionUserID(ctx, token, logger, time.Now())
	p := provider.NewHTTPProvider(c.APIBaseURL, token, c.RequestTimeout, logger)
	user := models.NewUser(userID, p, logger)

	return newApp(user, logger, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(user *models.User, logger logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	return &App{user: user, logger: logger, reader: reader, out: out}
}

// sessionUserID extracts the user id from a JWT access token. Opaque tokens
// are accepted and yield "".
func sessionUserID(ctx context.Context, token string, logger logging.Logger, now time.Time) string {
	s, err := auth.ParseSession(token)
	if err != nil {
		logger.Debug(ctx, "access token is not a readable JWT, user id unknown", "error", err)
		return ""
	}
	if s.Expired(now) {
		logger.Warn(ctx, "access token has expired, requests will be rejected", "expired_at", s.ExpiresAt)
	}
	return s.UserID
}

// Run starts the interactive loop and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Banking CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
}

func (a *App) status() string {
	s := a.user.ID
	if a.current != nil {
		if s != "" {
			s += " "
		}
		s += a.current.ID
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) account() (*models.Account, error) {
	if a.current == nil {
		return nil, ErrNoAccountSelected
	}
	return a.current, nil
}
