// Package rename learns what an external rename command would do to a file
// by running it against a zero-byte placeholder in a private temporary
// directory, and optionally applies the same command to the real file.
package rename

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/batch-rename/pkg/errors"
	"github.com/arthur-debert/batch-rename/pkg/filesystem"
	"github.com/arthur-debert/batch-rename/pkg/logging"
	"github.com/arthur-debert/batch-rename/pkg/process"
	"github.com/rs/zerolog"
)

const tempPattern = "batch-rename-*"

// Request pairs a rename command with the file it should act on. It is
// shared read-only between concurrent simulations.
type Request struct {
	Command []string
	File    string
}

// Result is the outcome of a dry-run: the canonical source path and the
// path the command proposes. Both live in the same directory.
type Result struct {
	Source string
	Target string
}

// Changed reports whether the proposed name differs from the current one
func (r Result) Changed() bool {
	return filepath.Base(r.Source) != filepath.Base(r.Target)
}

// Options contains configuration for the simulator
type Options struct {
	Runner process.Runner
	FS     filesystem.FS
	// TempDir is the parent for scratch directories; empty means the OS default
	TempDir string
	// Logger defaults to the "rename" component logger
	Logger *zerolog.Logger
}

// Simulator runs rename commands in isolation
type Simulator struct {
	runner  process.Runner
	fs      filesystem.FS
	tempDir string
	logger  zerolog.Logger
}

// New creates a simulator, filling in OS-backed defaults
func New(opts Options) *Simulator {
	logger := logging.GetLogger("rename")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	runner := opts.Runner
	if runner == nil {
		runner = process.NewExecRunner(0)
	}

	return &Simulator{
		runner:  runner,
		fs:      fs,
		tempDir: opts.TempDir,
		logger:  logger,
	}
}

// Simulate performs a dry-run for req
func (s *Simulator) Simulate(ctx context.Context, req Request) (Result, error) {
	path, target, err := s.rename(ctx, req.File, req.Command, true)
	if err != nil {
		return Result{}, err
	}
	return Result{Source: path, Target: target}, nil
}

// Apply renames the real file by running req's command in its directory,
// after re-checking the command's effect on a placeholder.
func (s *Simulator) Apply(ctx context.Context, req Request) (string, error) {
	return s.Rename(ctx, req.File, req.Command, false)
}

// Rename returns the path file would have after running command on it. The
// real file is only touched when dryRun is false.
func (s *Simulator) Rename(ctx context.Context, file string, command []string, dryRun bool) (string, error) {
	_, target, err := s.rename(ctx, file, command, dryRun)
	return target, err
}

func (s *Simulator) rename(ctx context.Context, file string, command []string, dryRun bool) (string, string, error) {
	if len(command) == 0 || command[0] == "" {
		return "", "", errors.New(errors.ErrInvalidInput, "rename command is missing")
	}

	path, err := s.fs.Canonicalize(file)
	if err != nil {
		return "", "", errors.Wrapf(err, errors.ErrPath, "failed to canonicalize `%s`", file)
	}
	dir := filepath.Dir(path)
	if dir == path {
		return "", "", errors.Newf(errors.ErrPath, "`%s` does not contain a parent", path)
	}
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return "", "", errors.Newf(errors.ErrPath, "path `%s` does not have file name", path)
	}

	logger := s.logger.With().Str("file", path).Bool("dry_run", dryRun).Logger()
	defer logging.LogOperationStart(logger, "rename")()

	tmp, err := s.fs.MkdirTemp(s.tempDir, tempPattern)
	if err != nil {
		return "", "", errors.Wrap(err, errors.ErrTempDir, "failed to create temporary directory")
	}
	defer func() {
		if rmErr := s.fs.RemoveAll(tmp); rmErr != nil {
			logger.Warn().Err(rmErr).Str("dir", tmp).Msg("Failed to remove temporary directory")
		}
	}()

	placeholder := filepath.Join(tmp, name)
	if err := s.fs.WriteFile(placeholder, nil, 0600); err != nil {
		return "", "", errors.Wrapf(err, errors.ErrTempDir, "failed to create `%s`", placeholder)
	}

	// Copy so concurrent callers sharing command never see each other's trailing argument.
	args := make([]string, 0, len(command))
	args = append(args, command[1:]...)
	args = append(args, name)
	cmd := process.Command{Program: command[0], Args: args, Dir: tmp}

	if _, err := s.runner.Run(ctx, cmd); err != nil {
		return "", "", err
	}

	entries, err := s.fs.ReadDir(tmp)
	if err != nil {
		return "", "", errors.Wrapf(err, errors.ErrTempDir, "failed to read contents of directory `%s`", tmp)
	}
	switch len(entries) {
	case 0:
		return "", "", errors.Newf(errors.ErrVanished,
			"no file found in `%s`; did the rename operation delete instead?", tmp).
			WithDetail("command", cmd.String())
	case 1:
	default:
		return "", "", errors.Newf(errors.ErrExtraEntries,
			"`%s` left %d entries in `%s`; expected exactly one", cmd.String(), len(entries), tmp).
			WithDetail("count", len(entries))
	}
	proposed := entries[0].Name()

	logger.Debug().Str("proposed", proposed).Msg("Simulated rename")

	if !dryRun {
		cmd.Dir = dir
		if _, err := s.runner.Run(ctx, cmd); err != nil {
			return "", "", err
		}
		logger.Info().Str("to", proposed).Msg("Renamed file")
	}

	return path, filepath.Join(dir, proposed), nil
}
