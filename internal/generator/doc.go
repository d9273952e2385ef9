// Package generator provides the filesystem primitives behind pyskel's
// scaffolding: template rendering and ordered, fail-fast execution of
// filesystem operations.
//
// Operations run strictly in the order given. Execution stops at the
// first failure and reports the offending path and cause via *OpError;
// cleaning up anything already created is the caller's concern, not the
// executor's. MkdirOp is deliberately non-recursive: planners emit
// parents before children, and a missing parent is a real failure.
package generator
