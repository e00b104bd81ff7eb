// Package diag defines the error model of the transpiler.
//
// Every failure, whether lexical, syntactic or raised while patching, is a
// *PatchError: an immutable record of a message, the parse context it was
// raised against and a half-open byte range into the original source.
// Errors are fatal. There are no warnings and no partial output.
//
// Rendering lives in internal/diagfmt.
package diag
