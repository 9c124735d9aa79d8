package frontend

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	eventbus "github.com/hanpama/gqlir/internal/eventbus"
	events "github.com/hanpama/gqlir/internal/events"
	language "github.com/hanpama/gqlir/internal/language"
)

// Rules that do not apply to a document set compiled for code generation:
// fragments may be defined for reuse without being spread by any operation.
var ignoredRules = map[string]struct{}{
	"NoUnusedFragments": {},
}

type Options struct {
	Logger *zap.Logger
}

type Option func(*Options)

func WithLogger(l *zap.Logger) Option { return func(o *Options) { o.Logger = l } }

// Compile parses the schema and every discovered document, validates the
// merged document set, and returns the result as a dynamic value tree made of
// map[string]any and []any, ready for ir.NewCompilationResult via
// dynamic.FromValue.
func Compile(ctx context.Context, schemaSources []*language.Source, disc Discovery, opts ...Option) (tree map[string]any, err error) {
	o := Options{Logger: zap.NewNop()}
	for _, f := range opts {
		f(&o)
	}
	log := o.Logger

	start := time.Now()
	eventbus.Publish(ctx, events.CompileStart{Schemas: len(schemaSources)})
	defer func() {
		fin := events.CompileFinish{Err: err, Duration: time.Since(start)}
		if tree != nil {
			fin.Operations = len(tree["operations"].([]any))
			fin.Fragments = len(tree["fragments"].([]any))
		}
		eventbus.Publish(ctx, fin)
	}()

	schema, err := language.LoadSchema(schemaSources...)
	if err != nil {
		return nil, ValidationError{violationFromError(err, "")}
	}

	names, err := disc.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	merged := &language.QueryDocument{}
	var violations ValidationError
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := disc.ReadDocument(ctx, name)
		if err != nil {
			return nil, err
		}
		doc, err := language.ParseQuery(name, content)
		if err != nil {
			violations = append(violations, violationFromError(err, name))
			continue
		}
		log.Debug("parsed document",
			zap.String("document", name),
			zap.Int("operations", len(doc.Operations)),
			zap.Int("fragments", len(doc.Fragments)))
		merged.Operations = append(merged.Operations, doc.Operations...)
		merged.Fragments = append(merged.Fragments, doc.Fragments...)
	}
	if len(violations) > 0 {
		return nil, violations
	}

	for _, gqlErr := range language.Validate(schema, merged) {
		if _, ok := ignoredRules[gqlErr.Rule]; ok {
			continue
		}
		violations = append(violations, violationFromError(gqlErr, ""))
	}
	for _, op := range merged.Operations {
		if op.Name == "" {
			violations = append(violations, violationWithPosition("Operations must be named", op.Position))
		}
	}
	if len(violations) > 0 {
		return nil, violations
	}

	e := newEmitter(schema)
	tree, err = e.emit(merged)
	if err != nil {
		return nil, err
	}
	log.Info("compiled documents",
		zap.Int("documents", len(names)),
		zap.Int("operations", len(merged.Operations)),
		zap.Int("fragments", len(merged.Fragments)),
		zap.Int("types", len(e.types)))
	return tree, nil
}
