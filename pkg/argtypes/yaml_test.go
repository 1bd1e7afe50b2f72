//go:build !argtypes_noyaml

package argtypes

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	goyaml "github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    []Option
		want    any
	}{
		{
			name:    "flow mapping",
			content: "{hello: world}",
			want:    map[string]any{"hello": "world"},
		},
		{
			name:    "block mapping",
			content: "name: demo\nports:\n  - 80\n  - 443\nenabled: true\n",
			want: map[string]any{
				"name":    "demo",
				"ports":   []any{80, 443},
				"enabled": true,
			},
		},
		{
			name:    "scalar document",
			content: "just text\n",
			want:    "just text",
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
		{
			name:    "explicit document markers",
			content: "---\na: b\n...\n",
			want:    map[string]any{"a": "b"},
		},
		{
			name:    "goccy loader",
			content: "{hello: world}",
			opts:    []Option{WithYAMLLoader(GoccyYAMLLoader())},
			want:    map[string]any{"hello": "world"},
		},
		{
			name:    "goccy loader keeps order",
			content: "b: x\na: y\n",
			opts:    []Option{WithYAMLLoader(GoccyYAMLLoader(goyaml.UseOrderedMap()))},
			want: goyaml.MapSlice{
				{Key: "b", Value: "x"},
				{Key: "a", Value: "y"},
			},
		},
		{
			name:    "nil loader keeps default",
			content: "{hello: world}",
			opts:    []Option{WithYAMLLoader(nil)},
			want:    map[string]any{"hello": "world"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeTemp(t, "data.yaml", tt.content)

			got, err := YAMLFile(tt.opts...)(p)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("YAMLFile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestYAMLFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    []Option
		cause   string
	}{
		{name: "binary content", content: "\x00l\x00o\x00l"},
		{name: "unclosed flow sequence", content: "key: [unclosed\n"},
		{
			name:    "multiple documents",
			content: "a: 1\n---\nb: 2\n",
			cause:   "expected a single document in the stream",
		},
		{
			name:    "goccy syntax error",
			content: "key: [unclosed\n",
			opts:    []Option{WithYAMLLoader(GoccyYAMLLoader())},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeTemp(t, "bad.yaml", tt.content)

			_, err := YAMLFile(tt.opts...)(p)
			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), "unable to load YAML file"), "error = %q", err)
			assert.Contains(t, err.Error(), `"`+p+`"`)
			assert.True(t, IsArgumentTypeError(err))
			if tt.cause != "" {
				assert.Contains(t, err.Error(), tt.cause)
			}
		})
	}
}

func TestYAMLFile_CustomDecoder(t *testing.T) {
	var seen []byte
	dec := DecoderFunc(func(data []byte) (any, error) {
		seen = data
		return "decoded", nil
	})
	p := writeTemp(t, "data.yml", "raw: bytes\n")

	got, err := YAMLFile(WithYAMLLoader(dec))(p)
	require.NoError(t, err)
	assert.Equal(t, "decoded", got)
	assert.Equal(t, "raw: bytes\n", string(seen))
}

func TestYAMLAvailable(t *testing.T) {
	assert.True(t, YAMLAvailable())

	f, ok := LookupFormat("yaml")
	require.True(t, ok)
	assert.Equal(t, []string{".yaml", ".yml"}, f.Extensions)
}

func TestConfigFile_YAML(t *testing.T) {
	for _, name := range []string{"c.yaml", "c.yml", "C.YML"} {
		t.Run(name, func(t *testing.T) {
			p := writeTemp(t, name, "{hello: world}")

			got, err := ConfigFile()(p)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"hello": "world"}, got)
		})
	}
}
