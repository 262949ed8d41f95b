package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizpro/internal/ui/theme"
)

// Choice asks one multiple-choice question. It never shows which option
// is right; Chosen is set once the user commits.
type Choice struct {
	Options  []string
	Selected int
	// Chosen is the committed index, -1 for an explicit skip. Valid only
	// when Done is true.
	Chosen int
	Done   bool
}

func NewChoice(options []string) Choice {
	return Choice{Options: options}
}

// Update moves the cursor with arrows, commits with Enter or a letter or
// digit key, and skips with "s".
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || c.Done {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.commit(c.Selected)
	case "s":
		c.commit(-1)
	default:
		if len(key) == 1 {
			if i := optionIndex(key[0]); i >= 0 && i < len(c.Options) {
				c.Selected = i
				c.commit(i)
			}
		}
	}
	return c, nil
}

func (c *Choice) commit(i int) {
	c.Chosen = i
	c.Done = true
}

// optionIndex maps 1-9 and a-i to a zero-based option index.
func optionIndex(k byte) int {
	switch {
	case k >= '1' && k <= '9':
		return int(k - '1')
	case k >= 'a' && k <= 'i':
		return int(k - 'a')
	}
	return -1
}

func (c Choice) View(width int) string {
	var b strings.Builder
	style := lipgloss.NewStyle().Width(width)
	for i, opt := range c.Options {
		prefix := "  "
		st := style.Foreground(theme.Text)
		if i == c.Selected {
			prefix = "▸ "
			st = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(st.Render(fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)))
		b.WriteByte('\n')
	}
	return b.String()
}
