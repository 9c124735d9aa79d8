package events

import "time"

// ManifestStart is emitted before operations are decoded for a manifest.
type ManifestStart struct{}

// ManifestFinish is emitted after the manifest has been built.
type ManifestFinish struct {
	Operations int
	Failures   int
	Err        error
	Duration   time.Duration
}

// OperationDecodeStart is emitted before an operation's identifier is
// computed. Index is the operation's position in the compilation result.
type OperationDecodeStart struct {
	Index int
	Name  string
}

// OperationDecodeFinish is emitted after the operation has been decoded.
type OperationDecodeFinish struct {
	Index      int
	Name       string
	Type       string
	Identifier string
	Fragments  int
	Err        error
	Duration   time.Duration
}
