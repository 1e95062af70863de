package cli

import (
	"log"

	intconfig "booking-service/internal/config"
	intdb "booking-service/internal/db"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the bookings table and its secondary indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			db, err := intconfig.ConnectDB(cmd.Context(), env)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := intdb.EnsureBookingTable(cmd.Context(), db, env.DBTable); err != nil {
				return err
			}
			log.Printf("[MIGRATE] table %s ready", env.DBTable)
			return nil
		},
	}
}
