package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/arthur-debert/batch-rename/internal/version"
	"github.com/arthur-debert/batch-rename/pkg/config"
	"github.com/arthur-debert/batch-rename/pkg/logging"
	"github.com/arthur-debert/batch-rename/pkg/process"
	"github.com/arthur-debert/batch-rename/pkg/rename"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions are the flags shared by both binaries
type globalOptions struct {
	verbosity   int
	configPath  string
	printConfig bool
	timeout     time.Duration
	tempDir     string
	color       string
}

func (o *globalOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.CountVarP(&o.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&o.configPath, "config", "", MsgFlagConfig)
	flags.BoolVar(&o.printConfig, "print-config", false, MsgFlagPrintConfig)
	flags.DurationVar(&o.timeout, "timeout", 0, MsgFlagTimeout)
	flags.StringVar(&o.tempDir, "temp-dir", "", MsgFlagTempDir)
	flags.StringVar(&o.color, "color", "auto", MsgFlagColor)
}

// overrides collects flags the user actually set, keyed by config path
func (o *globalOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	out := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("timeout") {
		out["command.timeout"] = o.timeout.String()
	}
	if flags.Changed("temp-dir") {
		out["temp.dir"] = o.tempDir
	}
	if flags.Changed("color") {
		out["prompt.color"] = o.color
	}
	return out
}

func (o *globalOptions) load(cmd *cobra.Command, extra map[string]interface{}) (*config.Config, error) {
	overrides := o.overrides(cmd)
	for k, v := range extra {
		overrides[k] = v
	}
	cfg, err := config.Load(config.Options{Path: o.configPath, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("dry_run_jobs", cfg.Concurrency.DryRun).
		Int("rename_jobs", cfg.Concurrency.Rename).
		Dur("timeout", cfg.Timeout()).
		Str("temp_dir", cfg.Temp.Dir).
		Msg("Configuration loaded")
	return cfg, nil
}

func (o *globalOptions) setupLogging(cmd *cobra.Command, _ []string) {
	logging.SetupLogger(o.verbosity)
	log.Debug().Str("command", cmd.Name()).Str("version", version.Version).Msg("Command started")
}

func newSimulator(cfg *config.Config) *rename.Simulator {
	return rename.New(rename.Options{
		Runner:  process.NewExecRunner(cfg.Timeout()),
		TempDir: cfg.Temp.Dir,
	})
}

func printConfig(w io.Writer, cfg *config.Config) error {
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(out))
	return err
}

func newCommand(use string) *cobra.Command {
	initTemplateFormatting()
	cmd := &cobra.Command{
		Use:           use,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	cmd.Flags().SetInterspersed(false)
	cmd.SetUsageTemplate(MsgUsageTemplate)
	cmd.SetVersionTemplate(MsgVersionTemplate)
	return cmd
}
