package project

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pyskel/pyskel/internal/generator"
	"github.com/pyskel/pyskel/internal/naming"
	"github.com/pyskel/pyskel/internal/output"
)

// Options configures a single scaffold run.
type Options struct {
	Docs   bool      // create a docs/ directory
	DryRun bool      // print the plan without touching the filesystem
	Dir    string    // parent directory; working directory when empty
	Out    io.Writer // progress output; defaults to os.Stdout when verbose, discarded otherwise
}

// Scaffolder builds Python project skeletons.
type Scaffolder struct{}

// NewScaffolder creates a new project scaffolder.
func NewScaffolder() *Scaffolder {
	return &Scaffolder{}
}

// Scaffold validates the raw names and builds the project tree. It
// returns the normalized root name on success.
//
// Failure modes, in order:
//   - *NameError before any side effect;
//   - *IOError (PhaseResolve) if the working directory cannot be
//     resolved or the plan cannot be rendered; nothing to roll back;
//   - *IOError (PhaseDirs) after a best-effort non-recursive removal of
//     the root, which at that point has at most empty children;
//   - *IOError (PhaseFiles) after a best-effort recursive removal of the
//     root, safe because only this build's output lives under it.
func (s *Scaffolder) Scaffold(ctx context.Context, projectName, packageName string, opts Options) (naming.Name, error) {
	output.Debug(fmt.Sprintf("Validating %q as Train-Case", projectName))
	root, err := naming.Check(projectName, naming.TrainCase)
	if err != nil {
		return "", &NameError{Arg: "project", Value: projectName, Err: err}
	}

	output.Debug(fmt.Sprintf("Validating %q as snake_case", packageName))
	pkg, err := naming.Check(packageName, naming.SnakeCase)
	if err != nil {
		return "", &NameError{Arg: "package", Value: packageName, Err: err}
	}

	base := opts.Dir
	if base == "" {
		base, err = os.Getwd()
		if err != nil {
			return "", &IOError{Phase: PhaseResolve, Err: err}
		}
	}

	plan, err := Plan(root, pkg, opts.Docs)
	if err != nil {
		return "", &IOError{Phase: PhaseResolve, Err: err}
	}

	if err := s.build(ctx, base, plan, opts); err != nil {
		return "", err
	}
	return root, nil
}

// build executes an already-computed plan: directories first, then
// files, with the rollback policy described on Scaffold.
func (s *Scaffolder) build(ctx context.Context, base string, plan *BuildPlan, opts Options) error {
	execOpts := generator.ExecuteOptions{DryRun: opts.DryRun, Writer: s.progressWriter(opts)}
	rootPath := filepath.Join(base, string(plan.Root))

	if err := generator.Execute(ctx, plan.DirOps(base), execOpts); err != nil {
		output.Debug("Rolling back: removing project root")
		// Best effort: with only empty children possible, removing the
		// bare root is the most that can be undone. The rollback's own
		// failure is discarded so it cannot mask the build error.
		removeRootDir(rootPath)
		return s.ioError(PhaseDirs, err)
	}

	if err := generator.Execute(ctx, plan.FileOps(base), execOpts); err != nil {
		output.Debug("Rolling back: removing project tree")
		// Recursive removal is safe here: everything under the root was
		// created by this build. Failure discarded for the same reason.
		_ = os.RemoveAll(rootPath)
		return s.ioError(PhaseFiles, err)
	}

	return nil
}

func (s *Scaffolder) progressWriter(opts Options) io.Writer {
	if opts.Out != nil {
		return opts.Out
	}
	if opts.DryRun || output.Verbose() {
		return os.Stdout
	}
	return io.Discard
}

// removeRootDir removes path only when it is an (empty) directory.
// os.Remove alone would also unlink a plain file, and a file sitting at
// the root path belongs to the user, not to this build.
func removeRootDir(path string) {
	info, err := os.Lstat(path)
	if err != nil || !info.IsDir() {
		return
	}
	_ = os.Remove(path)
}

func (s *Scaffolder) ioError(phase Phase, err error) error {
	if opErr, ok := err.(*generator.OpError); ok {
		return &IOError{Phase: phase, Path: opErr.Path, Err: opErr.Err}
	}
	return &IOError{Phase: phase, Err: err}
}
