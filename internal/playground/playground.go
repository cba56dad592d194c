// Package playground is an interactive terminal preview of the conversion
// pipeline. Typed text is normalized and transliterated on every keystroke,
// and every selector can be cycled without leaving the prompt.
package playground

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jusunglee/baybayin/internal/options"
	"github.com/jusunglee/baybayin/internal/pipeline"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	glyphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type setting struct {
	label  string
	values []string
}

const (
	settingLanguage = iota
	settingOrthography
	settingDiphthong
	settingCluster
	settingScript
	settingVirama
	settingTrailingNg
)

var settings = [...]setting{
	settingLanguage:    {"language", options.LanguageValues},
	settingOrthography: {"alphabet", options.AlphabetValues},
	settingDiphthong:   {"diphthong", options.DiphthongValues},
	settingCluster:     {"cluster", options.ClusterValues},
	settingScript:      {"script", options.OrthographyValues},
	settingVirama:      {"virama", options.ViramaValues},
	settingTrailingNg:  {"trailing ng", []string{"mark", "drop"}},
}

type model struct {
	input  textinput.Model
	choice [len(settings)]int
	focus  int
	width  int
}

func New() model {
	ti := textinput.New()
	ti.Placeholder = "Type Latin text"
	ti.CharLimit = 512
	ti.Focus()
	return model{input: ti}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			m.focus = (m.focus + len(settings) - 1) % len(settings)
			return m, nil

		case tea.KeyDown:
			m.focus = (m.focus + 1) % len(settings)
			return m, nil

		case tea.KeyTab:
			m.cycle(1)
			return m, nil

		case tea.KeyShiftTab:
			m.cycle(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) cycle(step int) {
	n := len(settings[m.focus].values)
	m.choice[m.focus] = (m.choice[m.focus] + step + n) % n
}

func (m model) value(i int) string {
	return settings[i].values[m.choice[i]]
}

func (m model) selectors() pipeline.Selectors {
	mark := m.value(settingTrailingNg) == "mark"
	return pipeline.Selectors{
		NormalizationFlags: options.NormalizationFlags{
			Language:    m.value(settingLanguage),
			Orthography: m.value(settingOrthography),
			Diphthong:   m.value(settingDiphthong),
			Cluster:     m.value(settingCluster),
		},
		TransliterationFlags: options.TransliterationFlags{
			Script:         m.value(settingScript),
			Virama:         m.value(settingVirama),
			MarkTrailingNg: &mark,
		},
	}
}

// preview returns the normalized text and its Baybayin rendering.
func (m model) preview() (normalized, baybayin string, err error) {
	conv, err := pipeline.New(pipeline.Normalize, m.selectors())
	if err != nil {
		return "", "", err
	}
	normalized = conv.Line(m.input.Value())
	conv.Mode = pipeline.Transliterate
	return normalized, conv.Line(normalized), nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Baybayin Playground"))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")

	normalized, baybayin, err := m.preview()
	if err != nil {
		s.WriteString(errorStyle.Render(err.Error()) + "\n")
	} else {
		s.WriteString(labelStyle.Render("normalized") + inputStyle.Render(normalized) + "\n")
		s.WriteString(labelStyle.Render("baybayin") + glyphStyle.Render(baybayin) + "\n")
	}
	s.WriteString("\n")

	for i, st := range settings {
		line := labelStyle.Render(st.label) + m.value(i)
		if i == m.focus {
			s.WriteString(focusStyle.Render("> ") + focusStyle.Render(line))
		} else {
			s.WriteString("  " + line)
		}
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(dimStyle.Render("↑/↓ setting • tab/shift+tab cycle • esc quit"))
	s.WriteString("\n")
	return s.String()
}

// Run starts the playground and blocks until the user quits.
func Run() error {
	p := tea.NewProgram(New())
	_, err := p.Run()
	return err
}
