// Package processor wires the translation pipelines together: reading the
// source, chunking, calling the translation service and writing the output.
package processor
