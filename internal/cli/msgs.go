package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgBatchRenameShort = "Rename files interactively using an arbitrary command"
	MsgPrintRenameShort = "Print the path a command would rename a file to"

	MsgBatchRenameUsage = "Usage: batch-rename <rename-command-and-args> -- <files...>"
	MsgEmptyCommand     = "no rename command given"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Read configuration from this file instead of the user config directory"
	MsgFlagPrintConfig = "Print the effective configuration as TOML and exit"
	MsgFlagTimeout     = "Abort the rename command after this long (0 disables)"
	MsgFlagTempDir     = "Create scratch directories under this directory"
	MsgFlagColor       = "Color the prompt: auto, always or never"
	MsgFlagDryRunJobs  = "Maximum number of simultaneous dry-runs"
	MsgFlagRenameJobs  = "Maximum number of simultaneous renames"
	MsgFlagDryRun      = "Do not actually perform the rename"

	MsgVersionTemplate = "{{.Name}} version {{.Version}}\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/batch-rename-long.txt
	msgBatchRenameLongRaw string
	MsgBatchRenameLong    = strings.TrimSpace(msgBatchRenameLongRaw)

	//go:embed msgs/batch-rename-example.txt
	msgBatchRenameExampleRaw string
	MsgBatchRenameExample    = strings.TrimRight(msgBatchRenameExampleRaw, "\n")

	//go:embed msgs/print-rename-long.txt
	msgPrintRenameLongRaw string
	MsgPrintRenameLong    = strings.TrimSpace(msgPrintRenameLongRaw)

	//go:embed msgs/print-rename-example.txt
	msgPrintRenameExampleRaw string
	MsgPrintRenameExample    = strings.TrimRight(msgPrintRenameExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
