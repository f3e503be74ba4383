package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/packex/pkg/config"
	"github.com/arthur-debert/packex/pkg/console"
	"github.com/arthur-debert/packex/pkg/logging"
	"github.com/arthur-debert/packex/pkg/session"
	"github.com/arthur-debert/packex/pkg/shipping"
)

func newEstimateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estimate",
		Short: MsgEstimateShort,
		Long:  MsgEstimateLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd)
		},
	}
}

// runEstimate wires one session against the command's streams. A session
// that aborts on validation is a normal outcome and exits 0; only a
// failed input stream returns an error.
func runEstimate(cmd *cobra.Command) error {
	logger := logging.GetLogger("cmd.estimate")

	settings, err := config.Load()
	if err != nil {
		return err
	}
	logger.Debug().
		Float64("maxWeight", settings.Limits.MaxWeight).
		Float64("maxDimensionSum", settings.Limits.MaxDimensionSum).
		Float64("divisor", settings.Divisor).
		Msg("Loaded shipping settings")

	gateway := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
	sess := session.New(
		gateway,
		shipping.NewValidator(settings.Limits),
		shipping.NewCalculator(settings.Divisor),
	)

	if err := sess.Run(); err != nil {
		return err
	}

	logger.Info().Str("state", string(sess.State())).Msg("Session finished")
	return nil
}
