package generator

import (
	"context"
	"fmt"
	"io"
	"os"
)

// OpError reports which operation failed and why. The underlying cause is
// available through errors.Unwrap.
type OpError struct {
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// ExecuteOptions configures execution behavior.
type ExecuteOptions struct {
	DryRun bool
	Writer io.Writer // Where to write progress output (defaults to os.Stdout)
}

// Execute runs operations in order, stopping at the first failure.
//
// On failure the returned error is an *OpError naming the operation's
// target path. Operations already executed are left in place; rollback
// policy belongs to the caller.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	for _, op := range ops {
		if opts.DryRun {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
			continue
		}
		if err := op.Execute(ctx); err != nil {
			return &OpError{Path: op.Target(), Err: err}
		}
		fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
	}

	return nil
}
