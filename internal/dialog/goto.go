package dialog

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// GoTo is the Go-To-Line dialog: a single numeric field, rejecting non-digit
// input and out-of-range values on commit rather than as the user types.
type GoTo struct {
	input    textinput.Model
	maxLine  int
	done     bool
	canceled bool
	err      string
}

func NewGoTo(maxLine int) *GoTo {
	ti := textinput.New()
	ti.Placeholder = "line number"
	ti.CharLimit = 10
	ti.Width = 12
	ti.Focus()
	return &GoTo{input: ti, maxLine: maxLine}
}

func (g *GoTo) Init() tea.Cmd { return textinput.Blink }

func (g *GoTo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			g.canceled = true
			return g, nil
		case tea.KeyEnter:
			if _, ok := g.parse(); ok {
				g.done = true
			}
			return g, nil
		}
	}
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}

func (g *GoTo) parse() (int, bool) {
	n, err := strconv.Atoi(g.input.Value())
	if err != nil || n < 1 || n > g.maxLine {
		g.err = fmt.Sprintf("enter a line number between 1 and %d", g.maxLine)
		return 0, false
	}
	g.err = ""
	return n, true
}

func (g *GoTo) View() string {
	errLine := ""
	if g.err != "" {
		errLine = "\n" + errorStyle.Render(g.err)
	}
	body := fmt.Sprintf("%s\n%s%s\n\n%s",
		titleStyle.Render("Go to line"),
		g.input.View(), errLine,
		hintStyle.Render("(Enter confirms, Esc cancels)"))
	return boxStyle.Render(body)
}

func (g *GoTo) Done() bool     { return g.done }
func (g *GoTo) Canceled() bool { return g.canceled }

// Line returns the validated 1-based line number committed by Enter. Only
// meaningful once Done reports true.
func (g *GoTo) Line() int {
	n, _ := g.parse()
	return n
}
