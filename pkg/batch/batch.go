// Package batch drives a whole batch: concurrent dry-runs, sequential
// confirmation, and concurrent real renames whose failures are collected.
package batch

import (
	"context"
	stderrors "errors"
	"path/filepath"

	"github.com/arthur-debert/batch-rename/pkg/confirm"
	"github.com/arthur-debert/batch-rename/pkg/logging"
	"github.com/arthur-debert/batch-rename/pkg/rename"
	"github.com/arthur-debert/batch-rename/pkg/workers"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultDryRunLimit caps simultaneous dry-run simulations
	DefaultDryRunLimit = 32
	// DefaultRenameLimit caps simultaneous real renames
	DefaultRenameLimit = 64
)

// Renamer simulates and applies renames
type Renamer interface {
	Simulate(ctx context.Context, req rename.Request) (rename.Result, error)
	Apply(ctx context.Context, req rename.Request) (string, error)
}

// Confirmer decides whether a proposed rename goes ahead
type Confirmer interface {
	Confirm(src, dst string) (confirm.Decision, error)
}

// Options contains configuration for the orchestrator
type Options struct {
	Renamer     Renamer
	Confirmer   Confirmer
	DryRunLimit int
	RenameLimit int
	// Logger defaults to the "batch" component logger
	Logger *zerolog.Logger
}

// Orchestrator runs batches
type Orchestrator struct {
	renamer     Renamer
	confirmer   Confirmer
	dryRunLimit int
	renameLimit int
	logger      zerolog.Logger
}

// Summary counts what happened during a batch
type Summary struct {
	Simulated int
	Unchanged int
	Accepted  int
	Rejected  int
	Failed    int
	Quit      bool
}

// New creates an orchestrator. Zero limits fall back to the defaults.
func New(opts Options) *Orchestrator {
	logger := logging.GetLogger("batch")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	dryRunLimit := opts.DryRunLimit
	if dryRunLimit <= 0 {
		dryRunLimit = DefaultDryRunLimit
	}
	renameLimit := opts.RenameLimit
	if renameLimit <= 0 {
		renameLimit = DefaultRenameLimit
	}

	return &Orchestrator{
		renamer:     opts.Renamer,
		confirmer:   opts.Confirmer,
		dryRunLimit: dryRunLimit,
		renameLimit: renameLimit,
		logger:      logger,
	}
}

type simulation struct {
	req    rename.Request
	result rename.Result
	err    error
}

// Run processes files with command. A dry-run or confirmation failure stops
// the batch; renames that were already accepted still run to completion and
// their failures are reported alongside it.
func (o *Orchestrator) Run(ctx context.Context, files []string, command []string) (Summary, error) {
	defer logging.LogOperationStart(o.logger, "batch")()

	simCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	simulations := o.simulate(simCtx, files, command)
	pool := workers.NewPool(o.renameLimit)

	var summary Summary
	var loopErr error

consume:
	for sim := range simulations {
		if sim.err != nil {
			loopErr = sim.err
			break
		}
		summary.Simulated++

		if !sim.result.Changed() {
			summary.Unchanged++
			o.logger.Debug().Str("file", sim.result.Source).Msg("Name unchanged, skipping")
			continue
		}

		decision, err := o.confirmer.Confirm(filepath.Base(sim.result.Source), filepath.Base(sim.result.Target))
		if err != nil {
			loopErr = err
			break
		}

		o.logger.Debug().
			Str("file", sim.result.Source).
			Str("target", sim.result.Target).
			Stringer("decision", decision).
			Msg("Rename decided")

		switch decision {
		case confirm.Accept:
			summary.Accepted++
			req := sim.req
			pool.Go(req.File, func() error {
				_, err := o.renamer.Apply(ctx, req)
				return err
			})
		case confirm.Reject:
			summary.Rejected++
		case confirm.Quit:
			summary.Quit = true
			break consume
		}
	}

	// Stop pending dry-runs and let their goroutines finish.
	cancel()
	for range simulations {
	}

	renameErr := pool.Wait()
	for _, task := range pool.Tasks() {
		if err := task.Wait(); err != nil {
			summary.Failed++
			o.logger.Warn().Err(err).Str("file", task.Name).Msg("Rename failed")
		}
	}

	o.logger.Info().
		Int("files", len(files)).
		Int("simulated", summary.Simulated).
		Int("unchanged", summary.Unchanged).
		Int("accepted", summary.Accepted).
		Int("rejected", summary.Rejected).
		Int("failed", summary.Failed).
		Bool("quit", summary.Quit).
		Msg("Batch finished")

	switch {
	case loopErr != nil && renameErr != nil:
		return summary, stderrors.Join(loopErr, renameErr)
	case loopErr != nil:
		return summary, loopErr
	default:
		return summary, renameErr
	}
}

// simulate dry-runs every file with at most dryRunLimit in flight and
// delivers outcomes in completion order. The channel is closed once all
// started simulations have finished.
func (o *Orchestrator) simulate(ctx context.Context, files []string, command []string) <-chan simulation {
	out := make(chan simulation)

	go func() {
		defer close(out)

		var g errgroup.Group
		g.SetLimit(o.dryRunLimit)

		for _, file := range files {
			if ctx.Err() != nil {
				break
			}
			req := rename.Request{Command: command, File: file}
			g.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				result, err := o.renamer.Simulate(ctx, req)
				select {
				case out <- simulation{req: req, result: result, err: err}:
				case <-ctx.Done():
				}
				return nil
			})
		}

		_ = g.Wait()
	}()

	return out
}
