package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/handoff/pkg/errors"
	"github.com/matzehuels/handoff/pkg/geom"
	"github.com/matzehuels/handoff/pkg/measure"
	"github.com/matzehuels/handoff/pkg/scene"
)

// inspectCommand opens an interactive view of a document's rectangles.
func (c *CLI) inspectCommand() *cobra.Command {
	var page string

	cmd := &cobra.Command{
		Use:   "inspect <document.json>",
		Short: "Pick rectangles interactively and watch the marks update",
		Long: `Browse the rectangles of a design document in the terminal.

Press enter to select the rectangle under the cursor. Moving the cursor then
measures the selection against the rectangle under it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fallback, err := c.fallbackPage(page)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			doc, err := readDocument(logger, args[0])
			if err != nil {
				return err
			}
			idx, err := c.newRunner().Extract(cmd.Context(), doc)
			if err != nil {
				return err
			}
			if idx.Len() == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "%s has no visible rectangles", args[0])
			}

			pageSize := fallback
			if doc.Page != nil {
				pageSize = *doc.Page
			}
			if err := pageSize.Validate(); err != nil {
				return err
			}

			p := tea.NewProgram(NewInspectModel(idx, pageSize), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&page, "page", "", "page size used when the document has none, e.g. 1440x1024")

	return cmd
}

// =============================================================================
// InspectModel - Interactive rectangle measurement
// =============================================================================

var (
	inspectHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	inspectKeyStyle   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	inspectErrorStyle = lipgloss.NewStyle().Foreground(colorYellow)
)

type inspectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func newInspectKeyMap() inspectKeyMap {
	return inspectKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("⏎", "select")),
		Clear:  key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "clear")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k inspectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Clear, k.Quit}
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, inspectKeyStyle.Render(h.Key)+" "+inspectHelpStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

// InspectModel is the bubbletea model for the inspect command.
type InspectModel struct {
	Index    *scene.Index
	Page     geom.Page
	Cursor   int
	Offset   int
	Height   int
	Selected *geom.Rect
	Marks    measure.Result
	Relation string
	Err      error

	keys inspectKeyMap
}

// NewInspectModel creates a model over idx measuring against page.
func NewInspectModel(idx *scene.Index, page geom.Page) InspectModel {
	return InspectModel{
		Index:  idx,
		Page:   page,
		Height: 12,
		Marks:  measure.Empty(),
		keys:   newInspectKeyMap(),
	}
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case key.Matches(msg, m.keys.Down):
			if m.Cursor < m.Index.Len()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case key.Matches(msg, m.keys.Select):
			r := m.Index.Rects()[m.Cursor]
			m.Selected = &r
		case key.Matches(msg, m.keys.Clear):
			m.Selected = nil
		}
	case tea.WindowSizeMsg:
		// Leave room for the header, the marks table and the help line.
		m.Height = msg.Height/2 - 4
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m.measure(), nil
}

// measure recomputes the marks between the selection and the cursor.
func (m InspectModel) measure() InspectModel {
	m.Marks, m.Relation, m.Err = measure.Empty(), "", nil
	if m.Selected == nil {
		return m
	}
	target := m.Index.Rects()[m.Cursor]
	res, err := measure.Compose(m.Selected, target, m.Page)
	if err != nil {
		m.Err = err
		return m
	}
	m.Marks = res
	m.Relation = geom.Classify(*m.Selected, target).Case().String()
	return m
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inspect"))
	b.WriteString("  ")
	b.WriteString(renderHelp(m.keys.ShortHelp()))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, m.Index.Len())
	ids := make([]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		ids = append(ids, m.Index.ID(i))
	}
	b.WriteString(rectTable(ids, m.Index.Rects()[m.Offset:end], m.Cursor-m.Offset))
	b.WriteString("\n")
	b.WriteString(inspectHelpStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.Index.Len())))
	b.WriteString("\n\n")

	switch {
	case m.Err != nil:
		b.WriteString(inspectErrorStyle.Render(errors.UserMessage(m.Err)))
	case m.Selected == nil:
		b.WriteString(inspectHelpStyle.Render("Select a rectangle to start measuring."))
	default:
		target := m.Index.Rects()[m.Cursor]
		b.WriteString(fmt.Sprintf("%s %s %s  %s\n",
			StyleValue.Render(m.Selected.Title), iconArrow, StyleValue.Render(target.Title),
			inspectHelpStyle.Render(m.Relation)))
		if m.Marks.IsEmpty() {
			b.WriteString(inspectHelpStyle.Render("Nothing to measure."))
		} else {
			b.WriteString(markTable(m.Marks))
		}
	}
	b.WriteString("\n")

	return b.String()
}
