package project

import "fmt"

// Phase identifies where in the build a failure happened.
type Phase int

const (
	// PhaseResolve covers plan computation and working-directory lookup,
	// before anything touches the filesystem.
	PhaseResolve Phase = iota
	// PhaseDirs covers directory creation.
	PhaseDirs
	// PhaseFiles covers boilerplate file writes.
	PhaseFiles
)

func (p Phase) String() string {
	switch p {
	case PhaseResolve:
		return "resolving the build"
	case PhaseDirs:
		return "creating directories"
	case PhaseFiles:
		return "creating files"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// NameError reports that a raw input name failed its casing grammar.
// The wrapped cause is one of the naming sentinels, so callers can
// branch with errors.Is.
type NameError struct {
	Arg   string // which argument: "project" or "package"
	Value string // the raw input
	Err   error
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s name %q: %v", e.Arg, e.Value, e.Err)
}

func (e *NameError) Unwrap() error { return e.Err }

// IOError reports a filesystem failure during the build. By the time an
// IOError is returned, rollback for the failing phase has already been
// attempted; its outcome is intentionally not part of the error.
type IOError struct {
	Phase Phase
	Path  string // offending path, empty for cwd lookup failures
	Err   error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Phase, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
