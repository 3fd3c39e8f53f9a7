// Package tui renders a quiz attempt in the terminal.
package tui

import (
	"animalquiz/internal/model"
	"animalquiz/internal/quiz"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the bubbletea model of one attempt. It only reads the engine to
// render, so option order never changes between frames.
type Model struct {
	engine  *quiz.Engine
	siteURL string
	title   string

	cursor int
	keys   keyMap
	help   help.Model
}

// New wraps an engine for display
func New(engine *quiz.Engine, siteURL string) Model {
	return Model{
		engine:  engine,
		siteURL: siteURL,
		title:   engine.Bank().Title,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.engine.Finished() {
			return m.updateFinished(msg)
		}
		return m.updateAnswering(msg)
	}
	return m, nil
}

func (m Model) updateAnswering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, _ := m.engine.CurrentQuestion()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Choose):
		m.choose(q.Options[m.cursor].Category)
	default:
		// digits pick an option directly, 1-based
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(q.Options) {
			m.choose(q.Options[n-1].Category)
		}
	}
	return m, nil
}

func (m Model) updateFinished(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Retake) {
		m.engine.Reset()
		m.cursor = 0
	}
	return m, nil
}

func (m *Model) choose(c model.Category) {
	// the engine only refuses once finished, which Update already rules out
	_ = m.engine.Answer(c)
	m.cursor = 0
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	if result, ok := m.engine.Result(); ok {
		share := quiz.NewShare(result, m.siteURL)
		b.WriteString(resultStyle.Render(share.Heading))
		b.WriteString("\n\n")
		b.WriteString("Image: " + share.Image + "\n")
		b.WriteString(shareStyle.Render("Share: " + share.Message))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(finishedKeys{m.keys}))
		b.WriteString("\n")
		return b.String()
	}

	q, _ := m.engine.CurrentQuestion()
	b.WriteString(progressStyle.Render("Question " + strconv.Itoa(m.engine.Index()+1) + "/" + strconv.Itoa(m.engine.Total())))
	b.WriteString("\n")
	b.WriteString(promptStyle.Render(q.Prompt))
	b.WriteString("\n")
	for i, opt := range q.Options {
		line := strconv.Itoa(i+1) + ". " + opt.Text
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(optionStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(answeringKeys{m.keys}))
	b.WriteString("\n")
	return b.String()
}
