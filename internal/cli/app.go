package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/walterobrien/authsim/internal/config"
	"github.com/walterobrien/authsim/internal/filex"
	"github.com/walterobrien/authsim/internal/logging"
	"github.com/walterobrien/authsim/internal/users"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// App is the interactive console shell. It collects input, renders menus and
// dispatches to the account service; it never touches the repository
// directly.
type App struct {
	config  *config.Config
	service *users.Service
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp binds the account store to the configured storage file and wires it
// into an App reading from stdin and writing to stdout.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	if _, err := filex.EnsureParentDir(cfg.StorageFile); err != nil {
		return nil, err
	}

	repo, err := users.NewCSVRepository(cfg.StorageFile)
	if err != nil {
		log.Error(ctx, "error initializing store", "path", cfg.StorageFile, "error", err)
		return nil, err
	}

	log.Info(ctx, "store bound", "path", cfg.StorageFile)

	return &App{
		config:  cfg,
		service: users.NewService(repo),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run starts the top-level menu loop and blocks until the user exits or
// input reaches EOF.
func (a *App) Run(ctx context.Context) {
	for {
		fmt.Fprint(a.out, topMenu)

		choice, err := getSimpleText(a.reader, "> ", a.out)
		if err != nil {
			a.exiting()
			return
		}

		switch choice {
		case "1":
			a.createAccount(ctx)
		case "2":
			a.login(ctx)
		case "3":
			a.exiting()
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice. Try again.")
		}
	}
}

func (a *App) exiting() {
	fmt.Fprintln(a.out, "Exiting...\nThank you for your time spent with us.")
}
