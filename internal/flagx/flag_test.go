package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate flag and value",
			args:    []string{"-f", "store.db", "-x", "1"},
			allowed: []string{"-f"},
			want:    []string{"-f", "store.db"},
		},
		{
			name:    "equals form",
			args:    []string{"--file=store.db", "--other=1"},
			allowed: []string{"--file"},
			want:    []string{"--file=store.db"},
		},
		{
			name:    "flag without value",
			args:    []string{"-v", "-f", "store.db"},
			allowed: []string{"-v"},
			want:    []string{"-v"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-f", "store.db"},
			allowed: nil,
			want:    []string{},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-f"},
			want:    []string{},
		},
		{
			name:    "value starting with dash is not consumed",
			args:    []string{"-f", "-d", "5"},
			allowed: []string{"-f"},
			want:    []string{"-f"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", "conf.json", "-f", "store.db"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"testbin", "-config", "other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"testbin", "-f", "store.db"}
	assert.Equal(t, "", JsonConfigFlags())
}
