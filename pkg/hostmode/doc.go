// Package hostmode translates between portable representations of POSIX file
// kinds and permission bits and the numeric encoding used for those bits by a
// particular host.
//
// All platform variance is captured in a Definitions record, built once from
// the constants exposed by the host's headers (or loaded from a constants file
// describing some other host). The codecs constructed from a Definitions record
// are immutable and safe for concurrent use.
package hostmode
