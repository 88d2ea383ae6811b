package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
)

type screen int

const (
	screenDays screen = iota
	screenParts
	screenResult
)

type dayItem struct {
	entry    puzzle.Entry
	hasInput bool
}

func (d dayItem) Title() string { return fmt.Sprintf("Day %s  %s", d.entry.Day, d.entry.Title) }
func (d dayItem) Description() string {
	if d.hasInput {
		return "input ready"
	}
	return "no input file"
}
func (d dayItem) FilterValue() string { return string(d.entry.Day) + " " + d.entry.Title }

type partItem struct {
	part domain.PartID
}

func (p partItem) Title() string       { return p.part.String() }
func (p partItem) Description() string { return "solve " + p.part.String() }
func (p partItem) FilterValue() string { return p.part.String() }

type model struct {
	theme Theme
	deps  Deps

	scr   screen
	days  list.Model
	parts list.Model

	day     puzzle.Entry
	part    domain.PartID
	running bool
	run     domain.RunResult
	runErr  error
	toast   string

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	days := list.New(dayItems(deps), list.NewDefaultDelegate(), 0, 0)
	days.Title = "Days"
	days.SetShowStatusBar(false)
	days.SetFilteringEnabled(true)
	days.SetShowHelp(false)

	var partItems []list.Item
	for _, p := range domain.Parts() {
		partItems = append(partItems, partItem{part: p})
	}
	parts := list.New(partItems, list.NewDefaultDelegate(), 0, 0)
	parts.SetShowStatusBar(false)
	parts.SetFilteringEnabled(false)
	parts.SetShowHelp(false)

	return model{
		theme:          t,
		deps:           deps,
		scr:            screenDays,
		days:           days,
		parts:          parts,
		workspaceFound: deps.WorkspaceFound,
		workspaceRoot:  deps.WorkspaceRoot,
	}
}

func dayItems(deps Deps) []list.Item {
	if deps.Catalog == nil {
		return nil
	}
	var items []list.Item
	for _, e := range deps.Catalog.Days() {
		has := false
		if deps.Inputs != nil {
			has = deps.Inputs.HasInput(e.Day)
		}
		items = append(items, dayItem{entry: e, hasInput: has})
	}
	return items
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.days.SetSize(w-4, h-10)
		m.parts.SetSize(w-4, h-10)
		return m, nil

	case solvedMsg:
		m.running = false
		m.run = msg.run
		if m.run.Day == "" {
			m.run.Day, m.run.Part, m.run.Title = m.day.Day, m.part, m.day.Title
		}
		m.runErr = msg.err
		m.scr = screenResult
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.workspaceFound = true
		m.workspaceRoot = msg.root
		m.toast = "Workspace initialized"
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.scr == screenDays && m.days.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "esc", "b":
			if m.running {
				return m, nil
			}
			switch m.scr {
			case screenParts:
				m.scr = screenDays
				return m, nil
			case screenResult:
				m.scr = screenParts
				return m, nil
			}

		case "i":
			if m.scr == screenDays && !m.workspaceFound && m.workspaceRoot != "" {
				return m, cmdInitWorkspaceHere(m.deps, m.workspaceRoot)
			}

		case "enter":
			switch m.scr {
			case screenDays:
				it, ok := m.days.SelectedItem().(dayItem)
				if !ok {
					return m, nil
				}
				m.day = it.entry
				m.parts.Title = fmt.Sprintf("Day %s: %s", it.entry.Day, it.entry.Title)
				m.toast = ""
				m.scr = screenParts
				return m, nil

			case screenParts:
				if m.running {
					return m, nil
				}
				it, ok := m.parts.SelectedItem().(partItem)
				if !ok {
					return m, nil
				}
				m.running = true
				m.part = it.part
				return m, cmdSolve(m.deps, m.day.Day, it.part)
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenDays:
		m.days, cmd = m.days.Update(msg)
	case screenParts:
		m.parts, cmd = m.parts.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Advent of Code 2023") + "\n" +
		m.theme.Subtitle.Render("pick a day and a part to solve it from its input file") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"⚠ No aoc.yaml found; inputs are read from ./input.\n\nPress i to create a workspace here.",
		)
	}

	toast := ""
	if m.toast != "" {
		toast = "\n" + m.theme.Subtitle.Render(m.toast)
	}

	switch m.scr {
	case screenDays:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.days.View()) + "\n" + help + toast)

	case screenParts:
		body := m.parts.View()
		if m.running {
			body += "\n\n" + m.theme.Subtitle.Render("Solving…")
		}
		help := m.theme.Help.Render("enter solve • esc/b back • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(body) + "\n" + help)

	case screenResult:
		card := m.theme.Card.Render(
			renderRun(m.theme, m.run, m.runErr) + "\n" + m.theme.Help.Render("esc/b back • q quit"),
		)
		return wrap.Render(header + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
