package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Config
	}{
		{
			name: "empty uses defaults",
			yaml: "",
			want: Default(),
		},
		{
			name: "overrides",
			yaml: `
schema:
  - schema.graphqls
  - extensions.graphqls
documents: ./operations
exclude: [./operations/legacy]
format: operationIdentifiers
keepGoing: true
otel:
  endpoint: localhost:4317
  insecure: true
`,
			want: Config{
				Schema:    []string{"schema.graphqls", "extensions.graphqls"},
				Documents: "./operations",
				Exclude:   []string{"./operations/legacy"},
				Format:    "operationIdentifiers",
				KeepGoing: true,
				LogLevel:  "info",
				OTel:      OTel{Endpoint: "localhost:4317", Service: "gqlir", Insecure: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.yaml))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("schemas: [a.graphqls]\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "schemas")
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "gqlir.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "apollo", cfg.Format)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
