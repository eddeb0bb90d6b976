package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yk35/revitobjects"
	"github.com/yk35/revitobjects/event"
	"github.com/yk35/revitobjects/param"
	"github.com/yk35/revitobjects/store"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
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
	stateSelectElement modelState = iota
	stateSelectSlot
	stateEditSlot
)

type interactiveModel struct {
	doc      *store.Document
	bridge   *event.Bridge
	elements []*store.Element

	input    textinput.Model
	status   string
	statusOK bool

	elemIdx int
	slotIdx int
	state   modelState
}

func newInteractiveModel(doc *store.Document, bridge *event.Bridge) *interactiveModel {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 40

	return &interactiveModel{
		doc:      doc,
		bridge:   bridge,
		elements: doc.Elements(),
		input:    ti,
		state:    stateSelectElement,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

type commitMsg struct {
	err error
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commitMsg:
		if msg.err != nil {
			m.status = errorStyle.Render("write failed: " + msg.err.Error())
			m.statusOK = false
		} else {
			m.status = resultStyle.Render("written through bridge")
			m.statusOK = true
		}
		m.state = stateSelectSlot
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateSelectElement:
			return m.updateSelectElement(msg)
		case stateSelectSlot:
			return m.updateSelectSlot(msg)
		case stateEditSlot:
			return m.updateEditSlot(msg)
		}
	}
	return m, nil
}

func (m *interactiveModel) updateSelectElement(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.elemIdx > 0 {
			m.elemIdx--
		}
	case "down", "j":
		if m.elemIdx < len(m.elements)-1 {
			m.elemIdx++
		}
	case "enter":
		if len(m.elements) > 0 {
			m.slotIdx = 0
			m.status = ""
			m.state = stateSelectSlot
		}
	}
	return m, nil
}

func (m *interactiveModel) updateSelectSlot(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	slots := m.elements[m.elemIdx].Slots()
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		m.status = ""
		m.state = stateSelectElement
	case "up", "k":
		if m.slotIdx > 0 {
			m.slotIdx--
		}
	case "down", "j":
		if m.slotIdx < len(slots)-1 {
			m.slotIdx++
		}
	case "enter":
		if len(slots) > 0 {
			m.input.SetValue(slots[m.slotIdx].Display())
			m.input.Focus()
			m.status = ""
			m.state = stateEditSlot
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m *interactiveModel) updateEditSlot(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.input.Blur()
		m.state = stateSelectSlot
		return m, nil
	case "enter":
		slot := m.elements[m.elemIdx].Slots()[m.slotIdx]
		value := m.input.Value()
		m.input.Blur()
		return m, func() tea.Msg {
			return commitMsg{err: m.commit(slot, value)}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commit parses the entered value for the slot's storage kind and writes
// it inside the bridge's execution context.
func (m *interactiveModel) commit(slot *store.Slot, value string) error {
	job := func() error {
		switch slot.Kind() {
		case param.KindInteger:
			v, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return err
			}
			return slot.SetInteger(v)
		case param.KindDouble:
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return err
			}
			return slot.SetDouble(v)
		case param.KindText:
			return slot.SetString(value)
		case param.KindElementID:
			v, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return err
			}
			return slot.SetElementID(revitobjects.ElementID(v))
		default:
			return fmt.Errorf("slot %q has unknown storage kind", slot.Name())
		}
	}
	return m.bridge.Run(job, m.doc, "edit "+slot.Name())
}

func (m *interactiveModel) View() string {
	switch m.state {
	case stateSelectElement:
		return m.viewSelectElement()
	case stateSelectSlot:
		return m.viewSelectSlot()
	case stateEditSlot:
		return m.viewEditSlot()
	}
	return ""
}

func (m *interactiveModel) viewSelectElement() string {
	s := titleStyle.Render("Document: "+m.doc.Title()) + "\n\n"
	if len(m.elements) == 0 {
		s += "no elements\n"
	}
	for i, el := range m.elements {
		line := fmt.Sprintf("element %d (%d slots)", el.ID(), len(el.Slots()))
		if i == m.elemIdx {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		s += line + "\n"
	}
	s += "\n" + helpStyle.Render("up/down: select · enter: open · q: quit")
	return s
}

func (m *interactiveModel) viewSelectSlot() string {
	el := m.elements[m.elemIdx]
	s := titleStyle.Render(fmt.Sprintf("Element %d", el.ID())) + "\n\n"
	for i, slot := range el.Slots() {
		line := fmt.Sprintf("%s %s = %s",
			slotStyle.Render(fmt.Sprintf("%-24s", slot.Name())),
			kindStyle.Render(fmt.Sprintf("%-12s", slot.Kind().String())),
			slot.Display(),
		)
		if i == m.slotIdx {
			line = selectedStyle.Render(">") + " " + line
		} else {
			line = "  " + line
		}
		s += line + "\n"
	}
	if m.status != "" {
		s += "\n" + m.status + "\n"
	}
	s += "\n" + helpStyle.Render("up/down: select · enter: edit · esc: back · q: quit")
	return s
}

func (m *interactiveModel) viewEditSlot() string {
	slot := m.elements[m.elemIdx].Slots()[m.slotIdx]
	s := titleStyle.Render("Edit "+slot.Name()) + "\n\n"
	s += kindStyle.Render(slot.Kind().String()) + "\n\n"
	s += m.input.View() + "\n\n"
	s += helpStyle.Render("enter: write via bridge · esc: cancel")
	return s
}

func runInteractive(docFile string) error {
	doc, err := loadDocument(docFile)
	if err != nil {
		return err
	}

	bridge := event.NewBridge()
	defer bridge.Close()

	p := tea.NewProgram(newInteractiveModel(doc, bridge))
	_, err = p.Run()
	return err
}
