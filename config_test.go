package fibonacci_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/absmach/fibonacci"
	pkgerrors "github.com/absmach/fibonacci/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	cases := []struct {
		desc    string
		content string
		want    fibonacci.Config
		err     error
	}{
		{
			desc:    "partial file keeps defaults",
			content: "[shell]\ndemo_terms = 15\n",
			want: fibonacci.Config{Shell: fibonacci.ShellConfig{
				DemoTerms: 15, DemoIndices: []int{5, 10}, Format: "list",
			}},
		},
		{
			desc:    "full file",
			content: "[shell]\ndemo_terms = 3\ndemo_indices = [1, 2, 3]\nformat = \"json\"\n",
			want: fibonacci.Config{Shell: fibonacci.ShellConfig{
				DemoTerms: 3, DemoIndices: []int{1, 2, 3}, Format: "json",
			}},
		},
		{
			desc:    "negative demo terms",
			content: "[shell]\ndemo_terms = -1\n",
			err:     pkgerrors.ErrInvalidConfig,
		},
		{
			desc:    "negative demo index",
			content: "[shell]\ndemo_indices = [4, -2]\n",
			err:     pkgerrors.ErrInvalidConfig,
		},
		{
			desc:    "empty format",
			content: "[shell]\nformat = \"\"\n",
			err:     pkgerrors.ErrInvalidConfig,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			cfg, err := fibonacci.LoadConfig(writeConfig(t, tc.content))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := fibonacci.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, fibonacci.DefaultConfig(), cfg)
}

func TestLoadConfigMalformed(t *testing.T) {
	_, err := fibonacci.LoadConfig(writeConfig(t, "[shell\ndemo_terms = "))
	assert.ErrorContains(t, err, "error unmarshaling config file")
}
