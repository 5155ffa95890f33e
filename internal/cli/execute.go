package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/batch-rename/pkg/errors"
	"github.com/arthur-debert/batch-rename/pkg/ui/styles"
	"github.com/spf13/cobra"
)

// Execute runs cmd with a context that is canceled on SIGINT or SIGTERM and
// reports any error on stderr. It returns the process exit code.
func Execute(cmd *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Render("Error", "Error: "+describe(err)))
		return 1
	}
	return 0
}

// describe renders err for the user. Usage problems print their message
// without the error code.
func describe(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) && e.Code == errors.ErrInvalidInput {
		if usage, ok := e.Details["usage"].(string); ok {
			return e.Message + "\n" + usage
		}
		return e.Message
	}
	return err.Error()
}
