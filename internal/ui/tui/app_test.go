package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/infra/fsinput"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/calendar"
)

const day01Sample = "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n"

func testDeps(t *testing.T) Deps {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01"), []byte(day01Sample), 0o644))

	return Deps{
		Catalog:       calendar.New(),
		Inputs:        fsinput.NewStore(dir),
		WorkspaceRoot: dir,
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	require.True(t, ok)
	return mm, cmd
}

func TestModel_ListsRegisteredDays(t *testing.T) {
	t.Parallel()

	m := newModel(testDeps(t))
	items := m.days.Items()
	require.Len(t, items, len(calendar.New().Days()))

	first, ok := items[0].(dayItem)
	require.True(t, ok)
	assert.Equal(t, domain.DayID("01"), first.entry.Day)
	assert.True(t, first.hasInput)
	assert.Equal(t, "input ready", first.Description())

	second, ok := items[1].(dayItem)
	require.True(t, ok)
	assert.False(t, second.hasInput)
}

func TestModel_SolveFlow(t *testing.T) {
	t.Parallel()

	m := newModel(testDeps(t))

	m, _ = update(t, m, key("enter"))
	require.Equal(t, screenParts, m.scr)
	assert.Equal(t, domain.DayID("01"), m.day.Day)

	m, cmd := update(t, m, key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.running)
	assert.Contains(t, m.View(), "Solving")

	msg := cmd()
	solved, ok := msg.(solvedMsg)
	require.True(t, ok)
	require.NoError(t, solved.err)
	assert.Equal(t, "142", solved.run.Answer)

	m, _ = update(t, m, solved)
	assert.Equal(t, screenResult, m.scr)
	assert.False(t, m.running)
	assert.Contains(t, m.View(), "142")

	m, _ = update(t, m, key("esc"))
	assert.Equal(t, screenParts, m.scr)
	m, _ = update(t, m, key("b"))
	assert.Equal(t, screenDays, m.scr)
}

func TestModel_SolveErrorIsShown(t *testing.T) {
	t.Parallel()

	m := newModel(testDeps(t))
	m.day = calendar.New().Days()[1]
	m.part = domain.PartOne

	msg := cmdSolve(m.deps, m.day.Day, domain.PartOne)()
	solved, ok := msg.(solvedMsg)
	require.True(t, ok)
	require.Error(t, solved.err)
	assert.True(t, domain.IsKind(solved.err, domain.KindNotFound))

	m, _ = update(t, m, solved)
	view := m.View()
	assert.Contains(t, view, "Input file not found")
	assert.Contains(t, view, "Cube Conundrum")
}

func TestModel_QuitKeys(t *testing.T) {
	t.Parallel()

	m := newModel(testDeps(t))

	_, cmd := update(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_InitWorkspaceDone(t *testing.T) {
	t.Parallel()

	m := newModel(testDeps(t))
	require.False(t, m.workspaceFound)

	m, _ = update(t, m, initWorkspaceDoneMsg{root: "/tmp/aoc"})
	assert.True(t, m.workspaceFound)
	assert.Equal(t, "/tmp/aoc", m.workspaceRoot)
	assert.Equal(t, "Workspace initialized", m.toast)
}

func TestSafeModel_ForwardsUpdates(t *testing.T) {
	t.Parallel()

	s := wrapSafe(newModel(testDeps(t)), nil)

	next, _ := s.Update(key("enter"))
	sm, ok := next.(safeModel)
	require.True(t, ok)
	assert.Equal(t, screenParts, sm.m.scr)
}

func TestCmdSolve_RecoversPanic(t *testing.T) {
	t.Parallel()

	deps := testDeps(t)
	deps.Catalog = puzzle.NewRegistry(puzzle.Entry{Day: "01", Title: "Boom", New: func() puzzle.Solver { return panicSolver{} }})

	msg := cmdSolve(deps, "01", domain.PartOne)()
	solved, ok := msg.(solvedMsg)
	require.True(t, ok)
	require.Error(t, solved.err)
	assert.True(t, domain.IsKind(solved.err, domain.KindExecution))
	assert.Contains(t, solved.err.Error(), "solver panicked: boom")
}

type panicSolver struct{}

func (panicSolver) SolvePartOne(string) (string, error) { panic("boom") }
func (panicSolver) SolvePartTwo(string) (string, error) { panic("boom") }
