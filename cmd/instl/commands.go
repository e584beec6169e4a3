package instl

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/instl/internal/version"
	"github.com/arthur-debert/instl/pkg/errors"
	"github.com/arthur-debert/instl/pkg/filesystem"
	"github.com/arthur-debert/instl/pkg/install"
	"github.com/arthur-debert/instl/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		opts      requestOptions
	)

	rootCmd := &cobra.Command{
		Use:     "instl [flags] <src> <dst>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New(errors.ErrInvalidInput, MsgErrArgCount)
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(args[0], args[1], opts)
			if err != nil {
				return err
			}

			installer := install.New(filesystem.NewOS())
			return installer.Install(req)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.Flags().BoolVarP(&opts.parents, "parents", "D", false, MsgFlagParents)
	rootCmd.Flags().StringVarP(&opts.group, "group", "g", "", MsgFlagGroup)
	rootCmd.Flags().BoolVarP(&opts.symbolic, "link", "l", false, MsgFlagLink)
	rootCmd.Flags().StringVarP(&opts.mode, "mode", "m", "", MsgFlagMode)
	rootCmd.Flags().StringVarP(&opts.owner, "owner", "o", "", MsgFlagOwner)

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "instl version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
