package dump

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/foundation/multimap"
	"github.com/npillmayer/foundation/seq"
	"github.com/npillmayer/foundation/strx"
)

// palette holds the colors for console output.
type palette struct {
	key, branch, unclaimed *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		key:       color.New(color.FgBlue, color.Bold),
		branch:    color.New(color.FgGreen),
		unclaimed: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.key, p.branch, p.unclaimed} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// MultiMap writes the keys of m with their values, one key per line. Keys
// are left-aligned in a column; values wrap at the configured line width
// and continuation lines are indented to the value column.
// If cfg is nil, defaults are used.
func MultiMap[K comparable, V any](w io.Writer, m *multimap.Map[K, V], cfg *Config) error {
	config, err := prepare(cfg)
	if err != nil {
		return err
	}
	colors := newPalette(config.Color)
	keywidth := 0
	for k := range m.Keys() {
		keywidth = max(keywidth, runewidth.StringWidth(fmt.Sprint(k)))
	}
	indent := strings.Repeat(" ", keywidth+3)
	valuewidth := max(config.LineWidth-len(indent), 1)
	for k, bucket := range m.Buckets() {
		values := make([]string, len(bucket))
		for i, v := range bucket {
			values[i] = fmt.Sprint(v)
		}
		key := runewidth.FillRight(fmt.Sprint(k), keywidth)
		if _, err := colors.key.Fprint(w, key); err != nil {
			return err
		}
		for i, line := range strx.Wrap(strings.Join(values, config.Separator), valuewidth) {
			prefix := " : "
			if i > 0 {
				prefix = indent
			}
			if _, err := fmt.Fprintf(w, "%s%s\n", prefix, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// Outcomes writes a table of branch outcomes, one element per line:
// position, claiming branch (or "else") and the element's value. For claimed
// elements the branch result follows an arrow.
// If cfg is nil, defaults are used.
func Outcomes[T, R any](w io.Writer, outcomes iter.Seq[seq.Outcome[T, R]], cfg *Config) error {
	config, err := prepare(cfg)
	if err != nil {
		return err
	}
	colors := newPalette(config.Color)
	textwidth := max(config.LineWidth-outcomePrefixWidth, 1)
	for o := range outcomes {
		tag, c := "else", colors.unclaimed
		text := fmt.Sprint(o.Value)
		if o.IsClaimed() {
			tag, c = fmt.Sprintf("if#%d", o.Branch), colors.branch
			text = fmt.Sprintf("%s → %v", text, o.Result)
		}
		text = runewidth.Truncate(text, textwidth, "…")
		_, err := fmt.Fprintf(w, "%4d  %s %s\n", o.Position, c.Sprint(runewidth.FillRight(tag, 6)), text)
		if err != nil {
			return err
		}
	}
	return nil
}

// outcomePrefixWidth is the width of position and branch columns.
const outcomePrefixWidth = 4 + 2 + 6 + 1
