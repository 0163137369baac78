package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dsmirnov/promoboard/internal/client/api"
	"github.com/dsmirnov/promoboard/internal/client/config"
)

type App struct {
	config   *config.Config
	client   *api.Client
	token    string
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: api.New(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to PromoBoard CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
