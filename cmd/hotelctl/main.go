// Command hotelctl is the operator tool for the booking store: seeding the
// room catalog, managing the admin account and printing dashboard reports.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"luxe_haven/internal/adapters/observability"
	"luxe_haven/internal/shared"
)

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLoggerTo(os.Stderr, cfg.AppEnv).Level(zerolog.WarnLevel)

	c := &cli{cfg: cfg, out: os.Stdout, readPassword: readPassword}
	err := newRootCmd(c).Execute()
	_ = c.close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
