package charm

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRoot struct {
	verbose bool
	ran     []string
}

func (r *testRoot) Run(args []string) error {
	if len(args) == 0 {
		return NeedHelp
	}
	return ErrNoRun
}

type testChild struct {
	root  *testRoot
	count int
}

func (c *testChild) Run(args []string) error {
	c.root.ran = append(c.root.ran, args...)
	return nil
}

func newTree(root *testRoot) *Spec {
	top := &Spec{
		Name:  "top",
		Usage: "top [options] command",
		Short: "test root",
		New: func(parent Command, f *flag.FlagSet) (Command, error) {
			f.BoolVar(&root.verbose, "v", false, "verbose")
			return root, nil
		},
	}
	top.Add(&Spec{
		Name:  "child",
		Usage: "child [options] args",
		Short: "test child",
		New: func(parent Command, f *flag.FlagSet) (Command, error) {
			c := &testChild{root: parent.(*testRoot)}
			f.IntVar(&c.count, "n", 1, "count")
			return c, nil
		},
	})
	top.Add(Help)
	return top
}

func captureHelp(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	helpOutput = &buf
	t.Cleanup(func() { helpOutput = os.Stderr })
	return &buf
}

func TestExecChild(t *testing.T) {
	root := &testRoot{}
	err := newTree(root).ExecRoot([]string{"-v", "child", "-n", "3", "a", "b"})
	require.NoError(t, err)
	assert.True(t, root.verbose)
	assert.Equal(t, []string{"a", "b"}, root.ran)
}

func TestExecNoSuchCommand(t *testing.T) {
	err := newTree(&testRoot{}).ExecRoot([]string{"nope"})
	assert.EqualError(t, err, `"top": no such sub-command "nope": options are: child help`)
}

func TestExecBadFlag(t *testing.T) {
	err := newTree(&testRoot{}).ExecRoot([]string{"child", "-x"})
	assert.ErrorContains(t, err, "flag provided but not defined: -x")
}

func TestExecHelp(t *testing.T) {
	buf := captureHelp(t)
	require.NoError(t, newTree(&testRoot{}).ExecRoot([]string{"child", "-h"}))
	assert.Contains(t, buf.String(), "top child - test child")
	assert.Contains(t, buf.String(), "-n count")
	assert.Contains(t, buf.String(), "[top flags]")

	buf.Reset()
	require.NoError(t, newTree(&testRoot{}).ExecRoot(nil))
	assert.Contains(t, buf.String(), "child - test child")
}

func TestHelpCommand(t *testing.T) {
	buf := captureHelp(t)
	require.NoError(t, newTree(&testRoot{}).ExecRoot([]string{"help", "child"}))
	assert.Contains(t, buf.String(), "child [options] args")
	err := newTree(&testRoot{}).ExecRoot([]string{"help", "nope"})
	assert.EqualError(t, err, "no such command: nope")
}
