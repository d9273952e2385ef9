// Package project plans and builds Python project skeletons.
//
// A build runs as a small state machine: validate names, compute the
// plan, create directories, write files. Validation has no side effects.
// Once the root directory exists, any later failure triggers a
// best-effort rollback anchored on that root: everything the build
// creates lives under it, so removal of the root restores the pre-build
// state without tracking individual paths. Rollback failures are
// discarded; they must never mask the error that caused them.
package project
