package generator

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecute_Order(t *testing.T) {
	tempDir := t.TempDir()
	root := filepath.Join(tempDir, "proj")

	ops := []Operation{
		&MkdirOp{Path: root, Mode: 0755},
		&MkdirOp{Path: filepath.Join(root, "src"), Mode: 0755},
		&MkdirOp{Path: filepath.Join(root, "src", "pkg"), Mode: 0755},
		&WriteFileOp{Path: filepath.Join(root, "src", "pkg", "init.py"), Content: []byte("pass\n"), Mode: 0644},
	}

	var out bytes.Buffer
	err := Execute(context.Background(), ops, ExecuteOptions{Writer: &out})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(root, "src", "pkg"))
	if err != nil || !info.IsDir() {
		t.Error("nested directory not created")
	}

	content, err := os.ReadFile(filepath.Join(root, "src", "pkg", "init.py"))
	if err != nil || string(content) != "pass\n" {
		t.Error("init.py not written correctly")
	}

	if got := strings.Count(out.String(), "✓"); got != 4 {
		t.Errorf("expected 4 progress lines, got %d", got)
	}
}

func TestExecute_StopsAtFirstFailure(t *testing.T) {
	tempDir := t.TempDir()

	// A plain file where a directory should go.
	collision := filepath.Join(tempDir, "taken")
	if err := os.WriteFile(collision, []byte("occupied"), 0644); err != nil {
		t.Fatal(err)
	}

	after := filepath.Join(tempDir, "never")
	ops := []Operation{
		&MkdirOp{Path: collision, Mode: 0755},
		&MkdirOp{Path: after, Mode: 0755},
	}

	err := Execute(context.Background(), ops, ExecuteOptions{Writer: &bytes.Buffer{}})
	if err == nil {
		t.Fatal("expected failure on path collision")
	}

	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *OpError, got %T", err)
	}
	if opErr.Path != collision {
		t.Errorf("OpError.Path = %q, want %q", opErr.Path, collision)
	}

	// Subsequent operations must not run.
	if _, err := os.Stat(after); !os.IsNotExist(err) {
		t.Error("operation after failure should not have executed")
	}
}

func TestExecute_DryRun(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "ghost")

	ops := []Operation{
		&MkdirOp{Path: target, Mode: 0755},
		&WriteFileOp{Path: filepath.Join(target, "f.txt"), Content: []byte("x"), Mode: 0644},
	}

	var out bytes.Buffer
	err := Execute(context.Background(), ops, ExecuteOptions{DryRun: true, Writer: &out})
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("dry run must not touch the filesystem")
	}
	if !strings.Contains(out.String(), "[DRY RUN]") {
		t.Error("dry run output should be labeled")
	}
}

func TestMkdirOp_NonRecursive(t *testing.T) {
	tempDir := t.TempDir()

	op := &MkdirOp{Path: filepath.Join(tempDir, "a", "b"), Mode: 0755}
	if err := op.Execute(context.Background()); err == nil {
		t.Fatal("MkdirOp should not create missing parents")
	}
}

func TestWriteFileOp_Truncates(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "f.txt")

	if err := os.WriteFile(path, []byte("old content, longer"), 0644); err != nil {
		t.Fatal(err)
	}

	op := &WriteFileOp{Path: path, Content: []byte("new"), Mode: 0644}
	if err := op.Execute(context.Background()); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "new" {
		t.Errorf("file content = %q, want %q", content, "new")
	}
}

func TestWriteFileOp_NilContent(t *testing.T) {
	op := &WriteFileOp{Path: filepath.Join(t.TempDir(), "f.txt"), Content: nil, Mode: 0644}
	if err := op.Execute(context.Background()); err == nil {
		t.Fatal("nil content should be rejected")
	}
}
