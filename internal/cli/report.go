package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocube_order/internal/search"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	orderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// resultJSON is the JSON line written per result.
type resultJSON struct {
	RunID    string `json:"run_id"`
	Depth    int    `json:"depth"`
	Order    int    `json:"order"`
	Name     string `json:"name"`
	Sequence string `json:"sequence"`
}

// textReporter writes one aligned row per result:
//
//	depth: 3   4          RRU
func textReporter(w io.Writer) search.ReportFunc {
	return func(r search.Result) error {
		_, err := fmt.Fprintf(w, "%-10s %-10d %-10s\n", fmt.Sprintf("depth: %d", r.Depth), r.Order, r.Name())
		return err
	}
}

// jsonReporter writes one JSON object per line.
func jsonReporter(w io.Writer) search.ReportFunc {
	enc := json.NewEncoder(w)
	return func(r search.Result) error {
		return enc.Encode(resultJSON{
			RunID:    r.RunID,
			Depth:    r.Depth,
			Order:    r.Order,
			Name:     r.Name(),
			Sequence: r.Notation(),
		})
	}
}

// printSummary writes the per-depth order histogram.
func printSummary(w io.Writer, s *search.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Depth %d summary", s.Depth)))
	fmt.Fprintln(w, statusStyle.Render(fmt.Sprintf("%d sequences in %v (run %s)", s.Sequences, s.Elapsed.Round(time.Millisecond), s.RunID)))
	if s.Sequences == 0 {
		return
	}
	fmt.Fprintf(w, "Orders: min %s, max %s, most common %s\n",
		orderStyle.Render(fmt.Sprint(s.MinOrder)),
		orderStyle.Render(fmt.Sprint(s.MaxOrder)),
		orderStyle.Render(fmt.Sprint(s.MostCommonOrder())))

	var parts []string
	for _, o := range s.DistinctOrders() {
		parts = append(parts, fmt.Sprintf("%d:%d", o, s.Orders[o]))
	}
	fmt.Fprintf(w, "Histogram (order:count): %s\n", strings.Join(parts, " "))
}
