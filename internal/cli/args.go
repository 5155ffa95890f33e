package cli

import (
	"github.com/arthur-debert/batch-rename/pkg/errors"
)

const separator = "--"

// SplitArgs separates the rename command from the files. dashAt is the
// position of a "--" already consumed by flag parsing, or -1; otherwise the
// first literal "--" in args is the separator. Later "--" belong to the
// file list.
func SplitArgs(args []string, dashAt int) ([]string, []string, error) {
	idx := -1
	files := 0
	switch {
	case dashAt >= 0 && dashAt <= len(args):
		idx, files = dashAt, dashAt
	default:
		for i, arg := range args {
			if arg == separator {
				idx, files = i, i+1
				break
			}
		}
	}

	if idx < 0 {
		return nil, nil, errors.New(errors.ErrInvalidInput, MsgBatchRenameUsage)
	}

	command := args[:idx]
	if len(command) == 0 || command[0] == "" {
		return nil, nil, errors.New(errors.ErrInvalidInput, MsgEmptyCommand).
			WithDetail("usage", MsgBatchRenameUsage)
	}

	return command, args[files:], nil
}
