// Package naming validates and normalizes identifier-like names against a
// casing policy.
//
// Two policies are supported:
//
//   - SnakeCase: lower-case letters joined by underscores (sk_learn)
//   - TrainCase: hyphen-separated words, each capitalized (Sk-Learn)
//
// Check is the entry point. It walks the input once, left to right, and
// rejects digits and disallowed special characters before any
// normalization is visible to the caller. A Name returned by Check is
// guaranteed to satisfy its policy's grammar; the rest of the codebase
// never builds filesystem paths from raw user input.
package naming
