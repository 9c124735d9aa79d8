// Package manifest turns a decoded compilation result into a persisted
// operation manifest: one entry per operation, keyed by its identifier.
package manifest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	eventbus "github.com/hanpama/gqlir/internal/eventbus"
	events "github.com/hanpama/gqlir/internal/events"
	ir "github.com/hanpama/gqlir/internal/ir"
)

// Policy decides what Build does when an operation fails to decode.
type Policy int

const (
	// FailFast stops at the first failing operation and returns its error.
	FailFast Policy = iota
	// Collect records the failure and continues with the next operation.
	Collect
)

// Entry describes one operation in the manifest.
type Entry struct {
	Name       string
	Type       ir.OperationType
	FilePath   string
	Identifier string
	Fragments  []string
	// Body is the effective text the identifier was computed from.
	Body string
}

// Manifest is the result of Build.
type Manifest struct {
	Operations []Entry
	Failures   OperationErrors
}

// OperationError is a decode failure attributed to one operation.
type OperationError struct {
	Index int
	Name  string
	Err   error
}

func (e *OperationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("operation #%d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("operation %s (#%d): %v", e.Name, e.Index, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// OperationErrors aggregates the failures recorded under Collect.
type OperationErrors []*OperationError

func (e OperationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "manifest failures:\n" + strings.Join(msgs, "\n")
}

// Unwrap exposes each failure to errors.Is and errors.As.
func (e OperationErrors) Unwrap() []error {
	out := make([]error, len(e))
	for i, err := range e {
		out[i] = err
	}
	return out
}

type Options struct {
	Policy Policy
	Logger *zap.Logger
}

type Option func(*Options)

func WithPolicy(p Policy) Option { return func(o *Options) { o.Policy = p } }
func WithLogger(l *zap.Logger) Option { return func(o *Options) { o.Logger = l } }

// Build decodes every operation of result in order and computes its
// identifier. Under FailFast the first failure is returned alone. Under
// Collect the manifest holds every operation that decoded, and the returned
// error, if any, is the manifest's OperationErrors.
func Build(ctx context.Context, result *ir.CompilationResult, opts ...Option) (m *Manifest, err error) {
	o := Options{Policy: FailFast, Logger: zap.NewNop()}
	for _, f := range opts {
		f(&o)
	}
	log := o.Logger

	start := time.Now()
	eventbus.Publish(ctx, events.ManifestStart{})
	defer func() {
		fin := events.ManifestFinish{Err: err, Duration: time.Since(start)}
		if m != nil {
			fin.Operations = len(m.Operations)
			fin.Failures = len(m.Failures)
		}
		eventbus.Publish(ctx, fin)
	}()

	ops, err := result.Operations()
	if err != nil {
		return nil, fmt.Errorf("decode operations: %w", err)
	}

	m = &Manifest{}
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := buildEntry(ctx, i, op)
		if err != nil {
			opErr := &OperationError{Index: i, Name: entry.Name, Err: err}
			if o.Policy == FailFast {
				return nil, opErr
			}
			log.Warn("skipping operation", zap.Int("index", i), zap.String("operation", entry.Name), zap.Error(err))
			m.Failures = append(m.Failures, opErr)
			continue
		}
		log.Debug("operation identified",
			zap.String("operation", entry.Name),
			zap.String("id", entry.Identifier),
			zap.Strings("fragments", entry.Fragments))
		m.Operations = append(m.Operations, entry)
	}
	log.Info("built manifest",
		zap.Int("operations", len(m.Operations)),
		zap.Int("failures", len(m.Failures)))
	if len(m.Failures) > 0 {
		return m, m.Failures
	}
	return m, nil
}

// buildEntry returns a partially filled entry alongside an error, so the
// caller can still name the failing operation when its name decoded.
func buildEntry(ctx context.Context, index int, op *ir.OperationDefinition) (entry Entry, err error) {
	start := time.Now()
	name, nameErr := op.Name()
	entry.Name = name
	eventbus.Publish(ctx, events.OperationDecodeStart{Index: index, Name: name})
	defer func() {
		eventbus.Publish(ctx, events.OperationDecodeFinish{
			Index:      index,
			Name:       entry.Name,
			Type:       string(entry.Type),
			Identifier: entry.Identifier,
			Fragments:  len(entry.Fragments),
			Err:        err,
			Duration:   time.Since(start),
		})
	}()
	if nameErr != nil {
		return entry, nameErr
	}

	if entry.Type, err = op.OperationType(); err != nil {
		return entry, err
	}
	if entry.FilePath, err = op.FilePath(); err != nil {
		return entry, err
	}
	frags, err := op.ReferencedFragments()
	if err != nil {
		return entry, err
	}
	for _, f := range frags {
		fn, err := f.Name()
		if err != nil {
			return entry, err
		}
		entry.Fragments = append(entry.Fragments, fn)
	}
	if entry.Body, err = op.EffectiveSource(); err != nil {
		return entry, err
	}
	if entry.Identifier, err = op.OperationIdentifier(); err != nil {
		return entry, err
	}
	return entry, nil
}
