package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/trufnetwork/poa-extradata/cmd/version"
	"github.com/trufnetwork/poa-extradata/internal/config"
	"github.com/trufnetwork/poa-extradata/internal/extradata"
)

// RootCmd creates the extradata command. Run without a subcommand it prints the
// extraData for the signer in MINER_ADDRESS.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "extradata",
		Short: "Encode proof-of-authority genesis extraData",
		Long: `Prints the extraData value for a proof-of-authority genesis configuration.

Without a subcommand the signer is read from the ` + config.MinerAddressKey + ` environment
variable, which may be prefixed with "0x". The output is 32 zero bytes, the signer
address and 65 zero bytes, hex encoded.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			logger, err := newLogger(zap.DebugLevel)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			zap.ReplaceGlobals(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			extra := extradata.Encode(cfg.MinerAddress)
			zap.L().Debug("encoded extra data",
				zap.String("signer", cfg.MinerAddress),
				zap.Int("length", len(extra)))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), extra)
			return err
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newSignersCmd(),
		newInspectCmd(),
		version.NewVersionCmd(),
	)

	return cmd
}
