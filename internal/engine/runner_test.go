package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/echoer/internal/action"
	"github.com/daryltucker/echoer/internal/model"
)

// fakeConsole records lines as "<dest>: <text>".
type fakeConsole struct {
	lines []string
	fail  error
}

func (c *fakeConsole) WriteLine(dest model.Destination, text string) error {
	if c.fail != nil {
		return c.fail
	}
	c.lines = append(c.lines, dest.String()+": "+text)
	return nil
}

type harness struct {
	console *fakeConsole
	slept   []time.Duration
	exits   []int
}

func newHarness() *harness {
	return &harness{console: &fakeConsole{}}
}

func (h *harness) runtime() *model.Runtime {
	return &model.Runtime{
		Console: h.console,
		Sleep:   func(d time.Duration) { h.slept = append(h.slept, d) },
		Exit:    func(code int) { h.exits = append(h.exits, code) },
	}
}

func mustSleep(t *testing.T, n int) model.Action {
	t.Helper()
	s, err := action.NewSleep(n)
	require.NoError(t, err)
	return s
}

func TestRunExecutesInOrder(t *testing.T) {
	h := newHarness()
	prog := &model.Program{Actions: []model.Action{
		action.NewPrint("A", model.Stdout),
		mustSleep(t, 2),
		action.NewPrint("B", model.Stderr),
		action.NewPrint("C", model.Stdout),
	}}

	require.NoError(t, Run(prog, h.runtime(), "usage"))

	want := []string{"stdout: A", "stderr: B", "stdout: C"}
	if diff := cmp.Diff(want, h.console.lines); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []time.Duration{2 * time.Second}, h.slept)
	assert.Empty(t, h.exits)
}

func TestRunExitTruncates(t *testing.T) {
	h := newHarness()
	prog := &model.Program{Actions: []model.Action{
		action.NewExit(5),
		action.NewPrint("Ignored", model.Stdout),
		mustSleep(t, 5),
	}}

	require.NoError(t, Run(prog, h.runtime(), "usage"))
	assert.Equal(t, []int{5}, h.exits)
	assert.Empty(t, h.console.lines)
	assert.Empty(t, h.slept)
}

func TestRunPreview(t *testing.T) {
	h := newHarness()
	prog := &model.Program{
		PreviewOnly: true,
		Actions: []model.Action{
			action.NewExit(5),
			action.NewPrint("Ignored", model.Stdout),
			mustSleep(t, 60),
			action.NewPrint("err", model.Stderr),
		},
	}

	require.NoError(t, Run(prog, h.runtime(), "usage"))

	want := []string{
		"stdout: Exit with code 5.",
		"stdout: Print 'Ignored' to stdout.",
		"stdout: Wait for 00:01:00.",
		"stdout: Print 'err' to stderr.",
	}
	if diff := cmp.Diff(want, h.console.lines); diff != "" {
		t.Errorf("preview mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, h.exits)
	assert.Empty(t, h.slept)
}

func TestRunHelpTakesPrecedence(t *testing.T) {
	h := newHarness()
	prog := &model.Program{
		HelpRequested: true,
		PreviewOnly:   true,
		Actions:       []model.Action{action.NewExit(3), action.NewPrint("x", model.Stdout)},
	}

	require.NoError(t, Run(prog, h.runtime(), "the usage"))
	assert.Equal(t, []string{"stdout: the usage"}, h.console.lines)
	assert.Empty(t, h.exits)
}

func TestRunEmptyProgram(t *testing.T) {
	h := newHarness()
	require.NoError(t, Run(&model.Program{}, h.runtime(), "usage"))
	assert.Empty(t, h.console.lines)
}

func TestRunPropagatesFailure(t *testing.T) {
	h := newHarness()
	boom := errors.New("broken pipe")
	h.console.fail = boom
	prog := &model.Program{Actions: []model.Action{action.NewPrint("A", model.Stdout)}}

	err := Run(prog, h.runtime(), "usage")
	require.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "action 1 (Print 'A' to stdout.) failed: broken pipe")
	assert.Equal(t, boom, errors.Unwrap(err))
}
