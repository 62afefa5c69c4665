package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"luxe_haven/internal/app"
)

func newCreateAdminCmd(c *cli) *cobra.Command {
	var form app.RegisterForm
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account, or reset the password of an existing one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if form.Password == "" {
				pw, err := c.readPassword(fmt.Sprintf("Password for %s: ", form.Email))
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				form.Password = pw
			}
			auth := app.NewAuthService(c.store, c.store, c.cfg.SessionTTL, c.cfg.BcryptCost)
			u, err := auth.SetAdmin(cmd.Context(), form)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Admin %s <%s> saved (id %s).\n", u.Name, u.Email, u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&form.Name, "name", "Admin User", "display name")
	cmd.Flags().StringVar(&form.Password, "password", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
