package cli

import (
	"github.com/spf13/cobra"

	"github.com/sibro/pawhaven/internal/storage/postgres"
)

func newLoginsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "logins",
		Short: "Show the login audit history, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			pgCfg, err := cfg.StorageConfig()
			if err != nil {
				return err
			}

			store, err := postgres.New(cmd.Context(), pgCfg)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.ListLoginRecords(cmd.Context())
			if err != nil {
				return err
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}

			rows := make([]LoginRow, 0, len(records))
			for _, r := range records {
				rows = append(rows, LoginRow{
					ID:        int64(r.ID),
					Email:     r.Email,
					Role:      r.Role,
					LoginTime: r.LoginTime.Format("2006-01-02 15:04:05"),
				})
			}

			out := NewOutput(cfg.Output)
			out.Print(LoginHistory{Logins: rows})
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many records (0 for all)")

	return cmd
}
