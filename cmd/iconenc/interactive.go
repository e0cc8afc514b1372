package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/icon-encoder/icns"
	"github.com/wippyai/icon-encoder/ico"
	"github.com/wippyai/icon-encoder/png"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelect modelState = iota
	stateEditOutput
	stateShowResult
)

type interactiveModel struct {
	err      error
	opts     options
	out      string
	kind     string
	result   string
	inputs   []string
	jobs     []job
	output   textinput.Model
	selected int
	state    modelState
	loaded   bool
}

type loadedMsg struct {
	err  error
	kind string
	jobs []job
}

type encodedMsg struct {
	err    error
	result string
}

func newInteractiveModel(out string, inputs []string, opts options) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "output: "
	ti.Width = 50
	ti.SetValue(out)
	return &interactiveModel{
		opts:   opts,
		out:    out,
		inputs: inputs,
		output: ti,
		state:  stateSelect,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.load
}

// load reads every input and peeks its header. Files whose names carry no
// known iconset size start on the first known ICNS type.
func (m *interactiveModel) load() tea.Msg {
	kind, err := outputKind(m.out, m.opts.kind)
	if err != nil {
		return loadedMsg{err: err}
	}

	jobs := make([]job, 0, len(m.inputs))
	for _, path := range m.inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			return loadedMsg{err: err}
		}
		ihdr, err := png.PeekIHDR(data)
		if err != nil {
			return loadedMsg{err: fmt.Errorf("%s: %w", path, err)}
		}
		t, err := icnsTypeForPath(path)
		if err != nil {
			t = icns.KnownTypes()[0]
		}
		jobs = append(jobs, job{
			path:      path,
			data:      data,
			ihdr:      ihdr,
			icnsType:  t,
			icoFormat: icoFormat(m.opts),
		})
	}
	return loadedMsg{kind: kind, jobs: jobs}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateEditOutput {
			switch msg.String() {
			case "enter":
				m.out = strings.TrimSpace(m.output.Value())
				m.output.Blur()
				m.state = stateSelect
				return m, nil
			case "esc":
				m.output.SetValue(m.out)
				m.output.Blur()
				m.state = stateSelect
				return m, nil
			}
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelect && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelect && m.selected < len(m.jobs)-1 {
				m.selected++
			}

		case " ", "right", "l":
			if m.state == stateSelect && len(m.jobs) > 0 {
				m.cycle(1)
			}

		case "left", "h":
			if m.state == stateSelect && len(m.jobs) > 0 {
				m.cycle(-1)
			}

		case "o":
			if m.state == stateSelect {
				m.state = stateEditOutput
				m.output.Focus()
				return m, textinput.Blink
			}

		case "enter":
			switch m.state {
			case stateSelect:
				if m.loaded {
					return m, m.encode
				}
			case stateShowResult:
				m.state = stateSelect
				m.result = ""
				m.err = nil
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateSelect
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.kind = msg.kind
		m.jobs = msg.jobs
		m.loaded = true

	case encodedMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	return m, nil
}

// cycle moves the selected job to the next or previous storage choice.
func (m *interactiveModel) cycle(step int) {
	j := &m.jobs[m.selected]
	if m.kind == kindICO {
		j.icoFormat = ico.Format((int(j.icoFormat) + step + 3) % 3)
		return
	}
	types := icns.KnownTypes()
	idx := 0
	for i, t := range types {
		if t == j.icnsType {
			idx = i
			break
		}
	}
	j.icnsType = types[(idx+step+len(types))%len(types)]
}

func (m *interactiveModel) encode() tea.Msg {
	kind, err := outputKind(m.out, m.opts.kind)
	if err != nil {
		return encodedMsg{err: err}
	}
	if kind != m.kind {
		return encodedMsg{err: fmt.Errorf("output %q is not a .%s file", m.out, m.kind)}
	}
	if m.out == "-" {
		return encodedMsg{err: errTerminal}
	}

	data, err := encode(m.kind, m.jobs, m.opts)
	if err != nil {
		return encodedMsg{err: err}
	}
	if err := writeOutput(m.out, data); err != nil {
		return encodedMsg{err: err}
	}
	return encodedMsg{result: fmt.Sprintf("wrote %s (%d entries, %d bytes)", m.out, len(m.jobs), len(data))}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if !m.loaded {
		return "Loading images..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Icon Encoder"))
	b.WriteString(" ")
	b.WriteString(m.kind)
	b.WriteString(" → ")
	b.WriteString(m.out)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelect, stateEditOutput:
		for i, j := range m.jobs {
			line := m.formatJob(j)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateEditOutput {
			b.WriteString(m.output.View())
			b.WriteString("\n\n")
			b.WriteString(helpStyle.Render("enter accept • esc cancel"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • space/←/→ change storage • o output path • enter encode • q quit"))
		}

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatJob(j job) string {
	size := fmt.Sprintf("%dx%d", j.ihdr.Width, j.ihdr.Height)
	var storage string
	if m.kind == kindICO {
		storage = j.icoFormat.String()
		if j.icoFormat == ico.FormatAuto {
			if ico.RequiresLegacyBitmap(j.ihdr.Width, j.ihdr.Height) {
				storage += " (bmp)"
			} else {
				storage += " (png)"
			}
		}
	} else {
		f, _ := icns.FamilyOf(j.icnsType)
		storage = fmt.Sprintf("%s [%s]", j.icnsType, f)
	}
	return fileStyle.Render(filepath.Base(j.path)) + " " + size + " → " + typeStyle.Render(storage)
}

func runInteractive(out string, inputs []string, opts options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newInteractiveModel(out, inputs, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
