package cli

import (
	intconfig "booking-service/internal/config"

	"github.com/spf13/cobra"
)

// NewRootCommand wires the serve and migrate subcommands. Running the binary
// with no subcommand serves HTTP.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "booking-service",
		Short:         "Booking record service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serve := newServeCommand()
	root.AddCommand(serve, newMigrateCommand())
	root.RunE = serve.RunE
	return root
}

func loadEnv() (intconfig.Env, error) {
	return intconfig.LoadEnv()
}
