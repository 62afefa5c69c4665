package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"luxe_haven/internal/app"
	"luxe_haven/internal/shared"
	"luxe_haven/internal/storage"
	"luxe_haven/internal/storage/store"
)

type cli struct {
	cfg          shared.Config
	out          io.Writer
	readPassword func(prompt string) (string, error)

	backend *storage.Backend
	store   *store.Store
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "hotelctl",
		Short:         "Operate the Luxe Haven booking store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.open(cmd.Context())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.close()
		},
	}
	root.PersistentFlags().StringVar(&c.cfg.StoreDriver, "driver", c.cfg.StoreDriver, "storage backend: redis, mysql or sqlite")
	root.PersistentFlags().StringVar(&c.cfg.SQLitePath, "sqlite-path", c.cfg.SQLitePath, "SQLite database file")
	root.SetOut(c.out)

	root.AddCommand(
		newSeedCmd(c),
		newCreateAdminCmd(c),
		newStatsCmd(c),
		newBookingsCmd(c),
		newMigrateCmd(c),
	)
	return root
}

func (c *cli) open(ctx context.Context) error {
	b, err := storage.Open(ctx, c.cfg)
	if err != nil {
		return err
	}
	c.backend = b
	c.store = store.New(b, app.DefaultRooms())
	return nil
}

func (c *cli) close() error {
	if c.backend == nil {
		return nil
	}
	err := c.backend.Close()
	c.backend, c.store = nil, nil
	return err
}

// readPassword reads a password from the terminal without echoing it.
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
