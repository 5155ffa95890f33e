package cli

import (
	"github.com/arthur-debert/batch-rename/pkg/batch"
	"github.com/arthur-debert/batch-rename/pkg/confirm"
	"github.com/arthur-debert/batch-rename/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewBatchRenameCmd creates the batch-rename command
func NewBatchRenameCmd() *cobra.Command {
	var (
		opts       globalOptions
		dryRunJobs int
		renameJobs int
	)

	cmd := newCommand("batch-rename [flags] <rename-command> [args...] -- <files...>")
	cmd.Short = MsgBatchRenameShort
	cmd.Long = MsgBatchRenameLong
	cmd.Example = MsgBatchRenameExample
	cmd.PersistentPreRun = opts.setupLogging

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		extra := map[string]interface{}{}
		if cmd.Flags().Changed("dry-run-jobs") {
			extra["concurrency.dry_run"] = dryRunJobs
		}
		if cmd.Flags().Changed("rename-jobs") {
			extra["concurrency.rename"] = renameJobs
		}

		cfg, err := opts.load(cmd, extra)
		if err != nil {
			return err
		}
		if opts.printConfig {
			return printConfig(cmd.OutOrStdout(), cfg)
		}

		command, files, err := SplitArgs(args, cmd.ArgsLenAtDash())
		if err != nil {
			return err
		}
		if len(files) == 0 {
			log.Info().Msg("No files given, nothing to do")
			return nil
		}

		out := cmd.OutOrStdout()
		styles.SetupWriter(out, cfg.ColorMode())

		orchestrator := batch.New(batch.Options{
			Renamer:     newSimulator(cfg),
			Confirmer:   confirm.New(confirm.NewStreamKeys(cmd.InOrStdin()), out),
			DryRunLimit: cfg.Concurrency.DryRun,
			RenameLimit: cfg.Concurrency.Rename,
		})

		_, err = orchestrator.Run(cmd.Context(), files, command)
		return err
	}

	opts.register(cmd)
	cmd.Flags().IntVar(&dryRunJobs, "dry-run-jobs", batch.DefaultDryRunLimit, MsgFlagDryRunJobs)
	cmd.Flags().IntVar(&renameJobs, "rename-jobs", batch.DefaultRenameLimit, MsgFlagRenameJobs)

	return cmd
}
