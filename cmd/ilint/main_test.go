package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brimdata/ilint"
	"github.com/brimdata/ilint/cmd/ilint/root"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) error {
	return root.Ilint.ExecRoot(args)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestEncodeHex(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, run("encode", "-f", "hex", "-o", out, "0", "247", "248", "504", "18446744073709551615"))
	assert.Equal(t, "00\nf7\nf800\nf90100\nffffffffffffffff07\n", readFile(t, out))
}

func TestEncodeSignedHex(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, run("encode", "-s", "-f", "hex", "-o", out, "0", "-1", "1", "-128", "127"))
	assert.Equal(t, "00\n01\n02\nf807\nf806\n", readFile(t, out))
}

func TestEncodeBadValue(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	assert.Error(t, run("encode", "-f", "hex", "-o", out, "-5"))
}

func TestBinaryRoundTrip(t *testing.T) {
	for _, compress := range []bool{false, true} {
		dir := t.TempDir()
		bin := filepath.Join(dir, "vals.bin")
		out := filepath.Join(dir, "vals.txt")
		vals := []string{"0", "1", "247", "248", "66041", "4294967295", "18446744073709551615"}
		encodeArgs := []string{"encode", "-o", bin}
		decodeArgs := []string{"decode", "-o", out}
		if compress {
			encodeArgs = append(encodeArgs, "-z")
			decodeArgs = append(decodeArgs, "-z")
		}
		require.NoError(t, run(append(encodeArgs, vals...)...))
		require.NoError(t, run(append(decodeArgs, "-readsize", "3B", bin)...))
		assert.Equal(t, strings.Join(vals, "\n")+"\n", readFile(t, out))
	}
}

func TestDecodeFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	var expected bytes.Buffer
	for k := 0; k < 8; k++ {
		path := filepath.Join(dir, string(rune('a'+k))+".bin")
		var b []byte
		for i := int64(-k); i <= int64(k); i++ {
			b = ilint.AppendInt(b, i*1000)
			expected.WriteString(root.FormatValue(ilint.ToUnsigned(i*1000), true) + "\n")
		}
		require.NoError(t, os.WriteFile(path, b, 0644))
		paths = append(paths, path)
	}
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, run(append([]string{"decode", "-s", "-P", "3", "-o", out}, paths...)...))
	assert.Equal(t, expected.String(), readFile(t, out))
}

func TestDecodeErrorsCombined(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.bin")
	truncated := filepath.Join(dir, "truncated.bin")
	large := filepath.Join(dir, "large.bin")
	require.NoError(t, os.WriteFile(good, []byte{0x05, 0xf8, 0x00}, 0644))
	require.NoError(t, os.WriteFile(truncated, []byte{0x07, 0xf9, 0x01}, 0644))
	require.NoError(t, os.WriteFile(large, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x08}, 0644))
	out := filepath.Join(dir, "out.txt")
	err := run("decode", "-o", out, truncated, good, large)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ilint.ErrTooFewBytes))
	assert.True(t, errors.Is(err, ilint.ErrTooLarge))
	assert.Contains(t, err.Error(), truncated)
	assert.Contains(t, err.Error(), large)
	assert.Equal(t, "7\n5\n248\n", readFile(t, out))
}

func TestDecodeHex(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, run("decode", "-i", "hex", "-o", out, "00", "f90100f7", "0xf800"))
	assert.Equal(t, "0\n504\n247\n248\n", readFile(t, out))

	err := run("decode", "-i", "hex", "-o", out, "f901")
	assert.True(t, errors.Is(err, ilint.ErrTooFewBytes))
	err = run("decode", "-i", "hex", "-o", out, "")
	assert.True(t, errors.Is(err, ilint.ErrInvalidRange))
}

func TestSize(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, run("size", "-o", out, "0", "247", "248", "503", "504", "65783", "66041", "18446744073709551615"))
	assert.Equal(t, "1\n1\n2\n2\n3\n3\n4\n9\n", readFile(t, out))
}

func TestNoSubcommand(t *testing.T) {
	err := run("frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such sub-command")
}
