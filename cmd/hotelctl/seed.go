package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"luxe_haven/internal/app"
	"luxe_haven/internal/domain"
)

func newSeedCmd(c *cli) *cobra.Command {
	var (
		file  string
		reset bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the room catalog if none is stored yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rooms := app.DefaultRooms()
			if file != "" {
				var err error
				if rooms, err = loadRooms(file); err != nil {
					return err
				}
			}
			ctx := cmd.Context()
			if reset {
				if err := c.store.ReplaceRooms(ctx, rooms); err != nil {
					return err
				}
				fmt.Fprintf(c.out, "Catalog replaced with %d rooms.\n", len(rooms))
				return nil
			}
			wrote, err := c.store.SeedRooms(ctx, rooms)
			if err != nil {
				return err
			}
			if !wrote {
				fmt.Fprintln(c.out, "Catalog already present; use --reset to overwrite it.")
				return nil
			}
			fmt.Fprintf(c.out, "Seeded %d rooms.\n", len(rooms))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file with a list of rooms (defaults to the built-in catalog)")
	cmd.Flags().BoolVar(&reset, "reset", false, "overwrite the stored catalog")
	return cmd
}

func loadRooms(path string) ([]domain.Room, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rooms []domain.Room
	if err := json.Unmarshal(b, &rooms); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	seen := map[int64]bool{}
	for i, r := range rooms {
		if r.ID <= 0 || seen[r.ID] {
			return nil, fmt.Errorf("parse %s: room ids must be positive and unique (got %d)", path, r.ID)
		}
		checked, err := app.CheckRoom(r)
		if err != nil {
			return nil, fmt.Errorf("parse %s: room %d: %w", path, r.ID, err)
		}
		rooms[i] = checked
		seen[r.ID] = true
	}
	return rooms, nil
}
