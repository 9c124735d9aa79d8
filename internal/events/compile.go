package events

import "time"

// CompileStart is emitted before the frontend parses and validates documents.
type CompileStart struct {
	Schemas int
}

// CompileFinish is emitted when the frontend returns.
type CompileFinish struct {
	Operations int
	Fragments  int
	Err        error
	Duration   time.Duration
}
