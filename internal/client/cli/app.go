package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/eventhive/internal/client/api"
	"github.com/dmitrijs2005/eventhive/internal/client/config"
	"github.com/dmitrijs2005/eventhive/internal/client/dashboard"
	"github.com/dmitrijs2005/eventhive/internal/client/services"
	"github.com/dmitrijs2005/eventhive/internal/client/session"
	"github.com/dmitrijs2005/eventhive/internal/logging"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	events services.EventService
	reader *bufio.Reader
	cursor *dashboard.Cursor
	tab    dashboard.Tab
	search string
}

func NewApp(c *config.Config, logger logging.Logger) *App {
	sessions := session.NewManager(session.NewFileStore(c.SessionFile))

	apiClient := api.NewHTTPClient(c.ServerBaseURL, sessions, logger,
		api.WithTimeout(c.RequestTimeout),
		api.WithUnauthorizedHook(func(status int) {
			log.Printf("Your session has expired, please log in again")
		}),
	)

	cursor := dashboard.NewCursor()
	cursor.SetSize(c.PageSize)

	return &App{
		config: c,
		auth:   services.NewAuthService(apiClient, sessions),
		events: services.NewEventService(apiClient, sessions),
		reader: bufio.NewReader(os.Stdin),
		cursor: cursor,
		tab:    dashboard.TabUpcoming,
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

// getStatus renders the prompt suffix: the logged-in user's name, if any.
func (a *App) getStatus() string {
	s, err := a.auth.Current()
	if err != nil || s == nil || !a.isLoggedIn() {
		return ""
	}
	if s.Name != "" {
		return fmt.Sprintf("(%s)", s.Name)
	}
	return fmt.Sprintf("(%s)", s.Email)
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	log.Println("Welcome to EventHive CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
