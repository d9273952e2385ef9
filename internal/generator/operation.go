package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
)

// Operation represents a single file system operation.
//
// Execute performs the operation. Target returns the path the operation
// acts on, for error reporting. Description returns a human-readable
// summary for output (e.g., "Create My-Project/src (dir)").
type Operation interface {
	Execute(ctx context.Context) error
	Target() string
	Description() string
}

// MkdirOp creates a single directory, non-recursively.
//
// The parent must already exist: plans order parents before children, so
// a missing parent means the plan is wrong or an earlier operation was
// skipped, and that should surface as a failure rather than be papered
// over with MkdirAll. Fails if anything already exists at Path.
type MkdirOp struct {
	Path string
	Mode fs.FileMode // Directory permissions (e.g., 0755)
}

func (op *MkdirOp) Execute(ctx context.Context) error {
	return os.Mkdir(op.Path, op.Mode)
}

func (op *MkdirOp) Target() string { return op.Path }

func (op *MkdirOp) Description() string {
	return fmt.Sprintf("Create %s (dir)", op.Path)
}

// WriteFileOp writes Content to Path, truncating any existing file.
//
// Unlike MkdirOp it never fails on an existing target; re-scaffolding a
// file overwrites it. The parent directory must already exist.
type WriteFileOp struct {
	Path    string
	Content []byte // Can be empty, must not be nil
	Mode    fs.FileMode
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Target() string { return op.Path }

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}
