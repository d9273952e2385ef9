// Package pyskel scaffolds standardized Python project skeletons.
package pyskel

// Version is the current pyskel release version.
const Version = "0.1.0"
