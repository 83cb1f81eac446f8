package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dyluth/shelf/internal/circulation"
	"github.com/dyluth/shelf/pkg/catalog"
)

const banner = `
***
  Welcome to the shelf 📚 Library CLI App!
***
`

// maxLines bounds the result log kept on screen.
const maxLines = 200

type lineKind int

const (
	lineInfo lineKind = iota
	lineSuccess
	lineWarning
)

type line struct {
	kind lineKind
	text string
}

type mode int

const (
	modeMenu mode = iota
	modeForm
)

// Options tune the shell.
type Options struct {
	// Ephemeral marks an in-memory catalog, which changes the goodbye message.
	Ephemeral bool
}

// Model is the bubbletea model for the interactive catalog menu.
type Model struct {
	ctx  context.Context
	svc  *circulation.Service
	opts Options

	mode   mode
	cursor int

	action   action
	fields   []field
	current  int
	fieldErr string

	lines    []line
	quitting bool
}

// New returns a shell over svc.
func New(ctx context.Context, svc *circulation.Service, opts Options) *Model {
	return &Model{ctx: ctx, svc: svc, opts: opts}
}

// Run starts the interactive loop and blocks until the operator exits.
func Run(ctx context.Context, svc *circulation.Service, opts Options) error {
	p := tea.NewProgram(New(ctx, svc, opts), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.forwardToInput(msg)
	}

	if keyMsg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.mode == modeForm {
		return m, m.updateForm(keyMsg)
	}
	return m, m.updateMenu(keyMsg)
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		m.cursor = (m.cursor - 1 + len(menu)) % len(menu)
	case "down", "j":
		m.cursor = (m.cursor + 1) % len(menu)
	case "enter":
		return m.choose(menu[m.cursor])
	}
	return nil
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeForm()
		return nil
	case tea.KeyEnter:
		f := &m.fields[m.current]
		if err := f.validate(f.input.Value()); err != nil {
			m.fieldErr = err.Error()
			return nil
		}
		m.fieldErr = ""
		f.input.Blur()

		if m.current < len(m.fields)-1 {
			m.current++
			return m.fields[m.current].input.Focus()
		}

		values := make([]string, len(m.fields))
		for i := range m.fields {
			values[i] = m.fields[i].input.Value()
		}
		a := m.action
		m.closeForm()
		m.submit(a, values)
		return nil
	}

	return m.forwardToInput(msg)
}

func (m *Model) forwardToInput(msg tea.Msg) tea.Cmd {
	if m.mode != modeForm {
		return nil
	}
	var cmd tea.Cmd
	m.fields[m.current].input, cmd = m.fields[m.current].input.Update(msg)
	return cmd
}

// choose starts an action: either a form or an immediate effect.
func (m *Model) choose(a action) tea.Cmd {
	switch a {
	case actionCount:
		m.success("Library has %d books", m.svc.Count())
		return nil
	case actionClear:
		m.lines = nil
		return tea.ClearScreen
	case actionExit:
		if m.opts.Ephemeral {
			m.success("Good bye 👋  (your library inventory will be purged)")
		} else {
			m.success("Good bye 👋  (your library inventory is saved)")
		}
		m.quitting = true
		return tea.Quit
	}

	m.action = a
	m.fields = fieldsFor(a, m.svc.SearchMode())
	m.current = 0
	m.fieldErr = ""
	m.mode = modeForm
	return m.fields[0].input.Focus()
}

func (m *Model) closeForm() {
	m.mode = modeMenu
	m.fields = nil
	m.current = 0
	m.fieldErr = ""
}

// submit runs the action with validated values and records the outcome.
func (m *Model) submit(a action, values []string) {
	switch a {
	case actionAdd:
		book, err := m.svc.Add(m.ctx, values[0], values[1], values[2], values[3])
		if m.report(err, "") {
			m.success("%s added.", book.Title)
		}

	case actionCheckout:
		id, err := m.svc.Checkout(m.ctx, values[0])
		if m.report(err, "Already checked out") {
			m.success("Checked out %s", id)
		}

	case actionReturn:
		id, err := m.svc.Return(m.ctx, values[0])
		if m.report(err, "Already in stock") {
			m.success("Returned %s", id)
		}

	case actionState:
		_, status, err := m.svc.State(m.ctx, values[0])
		if catalog.IsNotFound(err) {
			id, _ := catalog.ParseBookID(values[0])
			m.warning("No book with id %s found", id)
			return
		}
		if m.report(err, "") {
			m.success("   State: %s", status)
		}

	case actionSearch:
		book, status, err := m.svc.Search(m.ctx, values[0])
		if catalog.IsNotFound(err) {
			m.warning("No book found (searched id, title, and author)")
			return
		}
		if m.report(err, "") {
			m.success("Found a book:")
			m.success("   ID: %s\n   Title: %s\n   Author: %s", book.ID, book.Title, book.Author)
			m.success("   State: %s", status)
		}
	}
}

// report turns a service error into warning lines. It returns true when the
// action took effect, which includes a change that was applied but not saved.
func (m *Model) report(err error, conflictMsg string) bool {
	switch {
	case err == nil:
		return true
	case catalog.IsPersistError(err):
		m.warning("Change applied but not saved: %v", err)
		return true
	case circulation.IsStateConflict(err):
		m.warning("%s", conflictMsg)
	case catalog.IsNotFound(err):
		var nf *catalog.NotFoundError
		if errors.As(err, &nf) {
			m.warning("Could not find %s", nf.Query)
		}
	default:
		m.warning("%v", err)
	}
	return false
}

func (m *Model) success(format string, a ...any) {
	m.addLine(lineSuccess, fmt.Sprintf(format, a...))
}

func (m *Model) warning(format string, a ...any) {
	m.addLine(lineWarning, fmt.Sprintf(format, a...))
}

func (m *Model) addLine(kind lineKind, text string) {
	m.lines = append(m.lines, line{kind: kind, text: text})
	if len(m.lines) > maxLines {
		m.lines = m.lines[len(m.lines)-maxLines:]
	}
}

func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(bannerStyle.Render(banner))
	sb.WriteString("\n")

	for _, l := range m.lines {
		switch l.kind {
		case lineSuccess:
			sb.WriteString(successStyle.Render(l.text))
		case lineWarning:
			sb.WriteString(warningStyle.Render(l.text))
		default:
			sb.WriteString(l.text)
		}
		sb.WriteString("\n")
	}

	if m.quitting {
		return sb.String()
	}

	if len(m.lines) > 0 {
		sb.WriteString("\n")
	}

	if m.mode == modeForm {
		m.viewForm(&sb)
	} else {
		m.viewMenu(&sb)
	}
	return sb.String()
}

func (m *Model) viewMenu(sb *strings.Builder) {
	sb.WriteString(questionStyle.Render("? What would you like to do"))
	sb.WriteString("\n")
	for i, a := range menu {
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("❯ " + a.String()))
		} else {
			sb.WriteString(itemStyle.Render("  " + a.String()))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(hintStyle.Render("(use arrow keys, enter to select)"))
	sb.WriteString("\n")
}

func (m *Model) viewForm(sb *strings.Builder) {
	for i := 0; i <= m.current; i++ {
		if i < m.current {
			sb.WriteString(questionStyle.Render(m.fields[i].input.Prompt))
			sb.WriteString(m.fields[i].input.Value())
		} else {
			sb.WriteString(m.fields[i].input.View())
		}
		sb.WriteString("\n")
	}
	if m.fieldErr != "" {
		sb.WriteString(fieldErrorStyle.Render(">> " + m.fieldErr))
		sb.WriteString("\n")
	}
	sb.WriteString(hintStyle.Render("(enter to confirm, esc to cancel)"))
	sb.WriteString("\n")
}

var _ tea.Model = (*Model)(nil)
