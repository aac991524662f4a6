package command

import (
	commandHandler "talentops/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(
	NewCommand,
	commandHandler.NewSnapshotHandler,
	commandHandler.NewTargetPolicyHandler,
)

type Command struct {
	snapshotCommandHandler     *commandHandler.SnapshotHandler
	targetPolicyCommandHandler *commandHandler.TargetPolicyHandler
}

// NewCommand .
func NewCommand(
	snapshotCommandHandler *commandHandler.SnapshotHandler,
	targetPolicyCommandHandler *commandHandler.TargetPolicyHandler,
) *Command {
	return &Command{
		snapshotCommandHandler:     snapshotCommandHandler,
		targetPolicyCommandHandler: targetPolicyCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	var from, to string
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "backfill daily metrics snapshots for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()

			return command.snapshotCommandHandler.Backfill(cmd, from, to)
		},
	}
	snapshotCmd.Flags().StringVar(&from, "from", "", "first date, YYYY-MM-DD")
	snapshotCmd.Flags().StringVar(&to, "to", "", "last date, YYYY-MM-DD (default: --from)")
	_ = snapshotCmd.MarkFlagRequired("from")

	rootCmd.AddCommand(
		snapshotCmd,
		&cobra.Command{
			Use:   "target-policy",
			Short: "print the daily required-resumes policy table",
			RunE: func(cmd *cobra.Command, args []string) error {
				command, cleanup, err := newCmd()
				if err != nil {
					return err
				}
				defer cleanup()

				return command.targetPolicyCommandHandler.Print(cmd)
			},
		},
	)
}
