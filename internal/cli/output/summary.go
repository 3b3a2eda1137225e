package output

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/numguess/internal/game"
)

// Summary prints the accepted guesses of a finished game as a table.
// Nothing is printed for a nil result or one without attempts.
func (r *Renderer) Summary(res *game.Result) {
	if res == nil || len(res.Attempts) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Guess", "Result"})
	for i, a := range res.Attempts {
		t.AppendRow(table.Row{i + 1, a.Guess, a.Outcome.String()})
	}
	t.AppendFooter(table.Row{"", "Attempts", r.p.Sprintf("%d", len(res.Attempts))})
	if res.Rejected > 0 {
		t.AppendFooter(table.Row{"", "Rejected", r.p.Sprintf("%d", res.Rejected)})
	}
	t.Render()
}
