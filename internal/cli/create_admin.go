package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/sibro/pawhaven/internal/dependencies/clock"
	"github.com/sibro/pawhaven/internal/model"
	"github.com/sibro/pawhaven/internal/storage/postgres"
)

func newCreateAdminCmd() *cobra.Command {
	var (
		password   string
		bcryptCost int
	)

	cmd := &cobra.Command{
		Use:   "create-admin <username>",
		Short: "Create an admin account",
		Long: `Create an admin account with a bcrypt-hashed password.

Unlike the web bootstrap endpoint this works regardless of how many
admin accounts already exist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			if password == "" {
				return errors.New("password required (set --password)")
			}

			pgCfg, err := cfg.StorageConfig()
			if err != nil {
				return err
			}

			store, err := postgres.New(cmd.Context(), pgCfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(cmd.Context()); err != nil {
				return err
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
			if err != nil {
				return err
			}

			admin := &model.AdminAccount{
				Username:     username,
				PasswordHash: string(hash),
				CreatedAt:    clock.New().Now(),
			}
			if err := store.CreateAdmin(cmd.Context(), admin); err != nil {
				if errors.Is(err, model.ErrUsernameTaken) {
					return fmt.Errorf("username %q already taken", username)
				}
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(AdminCreated{
				ID:       int64(admin.ID),
				Username: admin.Username,
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password for the new admin")
	cmd.Flags().IntVar(&bcryptCost, "bcrypt-cost", bcrypt.DefaultCost, "Bcrypt work factor")

	return cmd
}
