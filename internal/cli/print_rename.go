package cli

import (
	"fmt"

	"github.com/arthur-debert/batch-rename/pkg/errors"
	"github.com/spf13/cobra"
)

// NewPrintRenameCmd creates the print-rename command
func NewPrintRenameCmd() *cobra.Command {
	var (
		opts   globalOptions
		dryRun bool
	)

	cmd := newCommand("print-rename [flags] <rename-command> [args...] <file>")
	cmd.Short = MsgPrintRenameShort
	cmd.Long = MsgPrintRenameLong
	cmd.Example = MsgPrintRenameExample
	cmd.PersistentPreRun = opts.setupLogging

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := opts.load(cmd, nil)
		if err != nil {
			return err
		}
		if opts.printConfig {
			return printConfig(cmd.OutOrStdout(), cfg)
		}

		if len(args) < 2 {
			return errors.New(errors.ErrInvalidInput, "expected a rename command followed by a file").
				WithDetail("usage", cmd.UseLine())
		}
		command, file := args[:len(args)-1], args[len(args)-1]

		target, err := newSimulator(cfg).Rename(cmd.Context(), file, command, dryRun)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), target)
		return err
	}

	opts.register(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)

	return cmd
}
