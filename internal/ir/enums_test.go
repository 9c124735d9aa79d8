package ir_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	ir "github.com/hanpama/gqlir/internal/ir"
)

func TestParseOperationType(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want ir.OperationType
	}{
		{"query", ir.OperationQuery},
		{"mutation", ir.OperationMutation},
		{"subscription", ir.OperationSubscription},
	} {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ir.ParseOperationType(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	for _, raw := range []string{"Query", " query", "", "fragment"} {
		t.Run("reject "+raw, func(t *testing.T) {
			_, err := ir.ParseOperationType(raw)
			var enumErr *ir.EnumError
			require.True(t, errors.As(err, &enumErr), "got %v", err)
			require.Equal(t, "operation type", enumErr.Enum)
			require.Equal(t, raw, enumErr.Value)
		})
	}
}

func TestOperationTypeErrorCarriesPath(t *testing.T) {
	op := operation("Q", "query Q { hero { name } }", selectionSet("Query"))
	op["operationType"] = "QUERY"
	r := mustResult(t, tree([]any{op}, nil))

	_, err := firstOperation(t, r).OperationType()
	var enumErr *ir.EnumError
	require.ErrorAs(t, err, &enumErr)
	require.Equal(t, "operations[0].operationType", enumErr.Path)
	require.Equal(t, `unknown GraphQL operation type "QUERY" at operations[0].operationType`, err.Error())
}

func TestOperationTypes(t *testing.T) {
	mutation := operation("AddReview", "mutation AddReview { createReview { stars } }", selectionSet("Mutation"))
	mutation["operationType"] = "mutation"
	mutation["rootType"] = "Mutation"
	r := mustResult(t, tree([]any{mutation}, nil))

	op := firstOperation(t, r)
	typ, err := op.OperationType()
	require.NoError(t, err)
	require.Equal(t, ir.OperationMutation, typ)
	root, err := op.RootType()
	require.NoError(t, err)
	require.Equal(t, "Mutation", root.Name)
}
