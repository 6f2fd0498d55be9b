package game

import "fmt"

// Category tags a status line for presentation. The engine only
// classifies lines; styling belongs to the caller.
type Category string

const (
	CatPlain        Category = "plain"
	CatNotification Category = "notification"
	CatBad          Category = "bad"
	CatOk           Category = "ok"
	CatGood         Category = "good"
	CatMoney        Category = "money"
)

// Reporter receives the engine's human-readable status lines. This is
// the engine's only output channel.
type Reporter interface {
	Report(cat Category, line string)
}

// DiscardReporter drops every line.
type DiscardReporter struct{}

func (DiscardReporter) Report(Category, string) {}

// Line is one captured status line.
type Line struct {
	Cat  Category
	Text string
}

// Recorder captures reported lines for tests.
type Recorder struct {
	Lines []Line
}

func (r *Recorder) Report(cat Category, line string) {
	r.Lines = append(r.Lines, Line{Cat: cat, Text: line})
}

// Contains reports whether any captured line equals text.
func (r *Recorder) Contains(text string) bool {
	for _, l := range r.Lines {
		if l.Text == text {
			return true
		}
	}
	return false
}

func (g *Game) reportf(cat Category, format string, args ...interface{}) {
	g.reporter.Report(cat, fmt.Sprintf(format, args...))
}
