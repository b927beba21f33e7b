package ilint_test

import (
	"encoding/hex"
	"os"
	"strings"
	"testing"

	"github.com/brimdata/ilint"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type encoding struct {
	Value uint64 `yaml:"value"`
	Bytes string `yaml:"bytes"`
}

type invalid struct {
	Bytes string `yaml:"bytes"`
	Error string `yaml:"error"`
}

type signed struct {
	Signed   int64  `yaml:"signed"`
	Unsigned uint64 `yaml:"unsigned"`
}

type vectors struct {
	Encodings []encoding `yaml:"encodings"`
	Invalid   []invalid  `yaml:"invalid"`
	Signed    []signed   `yaml:"signed"`
}

func loadVectors(t *testing.T) vectors {
	t.Helper()
	b, err := os.ReadFile("testdata/vectors.yaml")
	require.NoError(t, err)
	var v vectors
	require.NoError(t, yaml.Unmarshal(b, &v))
	require.NotEmpty(t, v.Encodings)
	return v
}

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)
	return b
}

func (i invalid) sentinel(t *testing.T) error {
	switch i.Error {
	case "too-large":
		return ilint.ErrTooLarge
	case "too-few":
		return ilint.ErrTooFewBytes
	}
	t.Fatalf("unknown error kind %q", i.Error)
	return nil
}
