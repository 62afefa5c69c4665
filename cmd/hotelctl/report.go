package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"luxe_haven/internal/app"
)

func newStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := app.NewAdminService(c.store, c.store).Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Total bookings:     %d\n", st.TotalBookings)
			fmt.Fprintf(c.out, "Total revenue:      $%.2f\n", st.TotalRevenue)
			fmt.Fprintf(c.out, "Rooms available:    %d/%d (%d%%)\n", st.AvailableRooms, st.TotalRooms, st.AvailabilityRate)
			fmt.Fprintf(c.out, "Upcoming check-ins: %d\n", st.UpcomingCheckIns)

			if len(st.RecentBookings) == 0 {
				fmt.Fprintln(c.out, "\nNo bookings yet.")
				return nil
			}
			fmt.Fprintln(c.out, "\nRecent bookings:")
			fmt.Fprintf(c.out, "%-15s %-25s %-22s %-10s %-10s\n", "ID", "Guest", "Room", "Check-in", "Check-out")
			fmt.Fprintln(c.out, strings.Repeat("-", 86))
			for _, b := range st.RecentBookings {
				room := b.RoomName
				if room == "" {
					room = "#" + b.RoomID
				}
				fmt.Fprintf(c.out, "%-15d %-25s %-22s %-10s %-10s\n",
					b.ID, truncate(b.FullName(), 25), truncate(room, 22),
					b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newBookingsCmd(c *cli) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List bookings, optionally filtered by guest name or email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bs, err := app.NewAdminService(c.store, c.store).SearchBookings(cmd.Context(), query)
			if err != nil {
				return err
			}
			if len(bs) == 0 {
				fmt.Fprintln(c.out, "No bookings found.")
				return nil
			}
			fmt.Fprintf(c.out, "%-15s %-25s %-30s %-22s %-6s %s\n", "ID", "Guest", "Email", "Room", "Guests", "Stay")
			fmt.Fprintln(c.out, strings.Repeat("-", 120))
			for _, b := range bs {
				room := b.RoomName
				if room == "" {
					room = "#" + b.RoomID
				}
				fmt.Fprintf(c.out, "%-15d %-25s %-30s %-22s %-6d %s to %s\n",
					b.ID, truncate(b.FullName(), 25), truncate(b.Email, 30), truncate(room, 22), b.Guests,
					b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"))
			}
			fmt.Fprintf(c.out, "\n%d booking(s)\n", len(bs))
			return nil
		},
	}
	cmd.Flags().StringVar(&query, "q", "", "search term")
	return cmd
}

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the key/value table on SQL backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.backend.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Schema ready (%s).\n", c.backend.Driver)
			return nil
		},
	}
}
