package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theurgist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTheurgist(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    Theurgist
		wantErr error
	}{
		{
			name: "empty file keeps defaults",
			body: "",
			want: DefaultTheurgist(),
		},
		{
			name: "overrides",
			body: "log_level: debug\ndata_dir: /srv/tables\noutput: yaml\n",
			want: Theurgist{LogLevel: "debug", DataDir: "/srv/tables", Output: OutputYAML},
		},
		{
			name: "partial override",
			body: "data_dir: tables\n",
			want: Theurgist{LogLevel: "warn", DataDir: "tables", Output: OutputText},
		},
		{
			name:    "unknown output",
			body:    "output: json\n",
			wantErr: ErrInvalidOutput,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadTheurgist(writeConfig(t, tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadTheurgist_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadTheurgist(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTheurgist(), cfg)
}

func TestLoadTheurgist_BrokenYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadTheurgist(writeConfig(t, "log_level: [debug"))
	assert.ErrorContains(t, err, "parsing config")
}
