package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bizpro/internal/ui/theme"
)

// Checklist is a multi-select list toggled with space.
type Checklist struct {
	Labels  []string
	Checked []bool
	Cursor  int
}

func NewChecklist(labels []string) Checklist {
	return Checklist{Labels: labels, Checked: make([]bool, len(labels))}
}

func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Labels)-1 {
			c.Cursor++
		}
	case "space", " ", "x":
		c.Checked = append([]bool(nil), c.Checked...)
		c.Checked[c.Cursor] = !c.Checked[c.Cursor]
	}
	return c, nil
}

// Indexes returns the checked positions in list order.
func (c Checklist) Indexes() []int {
	var out []int
	for i, on := range c.Checked {
		if on {
			out = append(out, i)
		}
	}
	return out
}

func (c Checklist) View() string {
	var b strings.Builder
	for i, label := range c.Labels {
		box := "[ ] "
		if c.Checked[i] {
			box = theme.Checked.Render("[x] ")
		}
		cursor := "  "
		st := theme.Unselected
		if i == c.Cursor {
			cursor = "▸ "
			st = theme.Selected
		}
		b.WriteString(st.Render(cursor) + box + st.Render(label))
		b.WriteByte('\n')
	}
	return b.String()
}
