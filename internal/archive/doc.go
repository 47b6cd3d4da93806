// Package archive describes the replay container capability the pipeline
// consumes: open a container, read its header bytes, and read named member
// streams.
//
// The compressed container format itself belongs to an external reader that
// satisfies Archive. This package ships one concrete container, a directory
// holding members that were already extracted, which is enough to drive the
// pipeline from the command line and in tests.
package archive
