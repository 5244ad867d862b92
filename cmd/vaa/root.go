package vaa

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wormhole-foundation/vaa/sdk"
)

func BuildVAACmd() *cobra.Command {
	var verbose bool

	cmd := cobra.Command{
		Use:           "vaa",
		Short:         "Parse, generate and submit wormhole VAAs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewDevelopmentConfig()
			if !verbose {
				cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return err
			}
			cmd.SetContext(sdk.WithLogger(cmd.Context(), logger.Sugar()))

			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")

	cmd.AddCommand(buildParseCmd())
	cmd.AddCommand(buildRecoverCmd())
	cmd.AddCommand(buildGenerateCmd())
	cmd.AddCommand(buildChainIDCmd())
	cmd.AddCommand(buildContractCmd())
	cmd.AddCommand(buildSubmitCmd())

	return &cmd
}
