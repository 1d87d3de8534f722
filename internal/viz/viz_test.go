package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/highlight"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/step"
)

// idleClock never fires, so playback only moves when a test drives it.
type idleClock struct{}

type idleTimer struct{}

func (idleTimer) Stop() bool { return true }

func (idleClock) AfterFunc(time.Duration, func()) playback.Timer { return idleTimer{} }

func bubbleSeq(t *testing.T) step.Sequence {
	t.Helper()
	seq, err := algo.Bubble([]int{5, 3, 8, 1})
	if err != nil {
		t.Fatal(err)
	}
	return seq
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestFormatArray(t *testing.T) {
	r := step.SortStep{
		Base:   step.Base{Array: []int{5, 3, 8, 1}, Highlight: []int{0, 1}},
		Sorted: step.NewIndexSet(3),
		Pivot:  2,
	}
	got := FormatArray(r, step.ModeSorting)
	if got != "[5* 3* 8p 1+]" {
		t.Errorf("expected [5* 3* 8p 1+], got %s", got)
	}
	if FormatArray(nil, step.ModeSorting) != "[]" {
		t.Error("expected [] for nil record")
	}
}

func TestFormatStep(t *testing.T) {
	r := step.BinarySearchStep{
		Base: step.Base{Array: []int{1, 3, 5, 7, 9}, Op: step.OpCheck, Action: "Checking middle element 5", Highlight: []int{2}},
		Low:  0, High: 4, Mid: 2, Target: 7,
	}
	line := FormatStep(3, r, step.ModeBinarySearch)
	for _, want := range []string{"3", "check", "Checking middle element 5", "[1 3 5^ 7 9]", "low=0 high=4"} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %q in %q", want, line)
		}
	}
}

func TestLegend(t *testing.T) {
	if got := Legend(step.ModeLinearSearch); got != "> current  ! found" {
		t.Errorf("unexpected legend: %q", got)
	}
}

func TestBars(t *testing.T) {
	seq := bubbleSeq(t)
	out := Bars(seq[0], step.ModeSorting, 8, ThemeClassic)
	if rows := strings.Count(out, "\n") + 1; rows != 8 {
		t.Errorf("expected 8 rows, got %d", rows)
	}
	// the tallest value fills the top row
	if !strings.Contains(strings.Split(out, "\n")[0], "█") {
		t.Error("expected a full-height bar")
	}
	if !strings.Contains(Bars(nil, step.ModeSorting, 8, ThemeClassic), "empty") {
		t.Error("expected empty placeholder")
	}
}

func TestChart(t *testing.T) {
	seq := bubbleSeq(t)
	if Chart(seq, 0, 20, 4) != "" {
		t.Error("expected no chart for a single point")
	}
	if !strings.Contains(Chart(seq, -1, 20, 4), "sorted fraction") {
		t.Error("expected caption in chart")
	}
}

func TestThemeColor(t *testing.T) {
	th := GetTheme("cyberpunk")
	if th.Color(highlight.Sorted) != th.Sorted || th.Color(highlight.Default) != th.Default {
		t.Error("unexpected class mapping")
	}
	if GetTheme("missing").Name != "classic" {
		t.Error("expected classic fallback")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("expected one name per theme")
	}
}

func TestModelKeys(t *testing.T) {
	seq := bubbleSeq(t)
	m := NewModel(seq, Options{Title: "bubble", Clock: idleClock{}})
	ctrl := m.Controller()

	m = press(m, "right", "l")
	if got := ctrl.Snapshot().Index; got != 2 {
		t.Errorf("expected index 2, got %d", got)
	}

	m = press(m, "left")
	if got := ctrl.Snapshot().Index; got != 1 {
		t.Errorf("expected index 1, got %d", got)
	}

	m = press(m, "G")
	if s := ctrl.Snapshot(); s.Index != len(seq)-1 || !s.Complete {
		t.Errorf("expected last step, got %d", s.Index)
	}

	m = press(m, "g")
	if got := ctrl.Snapshot().Index; got != 0 {
		t.Errorf("expected index 0, got %d", got)
	}

	m = press(m, " ")
	if !ctrl.Snapshot().Playing {
		t.Error("expected playing after space")
	}

	// stepping pauses first
	m = press(m, "l")
	if s := ctrl.Snapshot(); s.Playing || s.Index != 1 {
		t.Errorf("expected paused at 1, got playing=%v index=%d", s.Playing, s.Index)
	}

	m = press(m, "+")
	if got := ctrl.Snapshot().Speed; got != 80*time.Millisecond {
		t.Errorf("expected 80ms, got %v", got)
	}

	m = press(m, "t")
	if m.theme != 1 {
		t.Errorf("expected theme 1, got %d", m.theme)
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(bubbleSeq(t), Options{Title: "bubble sort", Warning: "input was sorted", Clock: idleClock{}})
	view := m.View()
	for _, want := range []string{"BUBBLE SORT", "PAUSED", "1 / ", "input was sorted"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}

	m = press(m, "?")
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("expected help overlay")
	}
}

func TestModelEmpty(t *testing.T) {
	m := NewModel(nil, Options{Clock: idleClock{}})
	if !strings.Contains(m.View(), "NO STEPS") {
		t.Error("expected idle status")
	}
	m = press(m, " ", "l")
	if m.Controller().Snapshot().Playing {
		t.Error("expected empty controller to stay idle")
	}
}

func TestBarsSVG(t *testing.T) {
	seq := bubbleSeq(t)
	svg := BarsSVG(seq.Last(), step.ModeSorting, ThemeClassic, 400, 200)
	if got := strings.Count(svg, "<rect x="); got != 4 {
		t.Errorf("expected 4 bars, got %d", got)
	}
	// every element is sorted at the end
	if got := strings.Count(svg, string(ThemeClassic.Sorted)); got != 4 {
		t.Errorf("expected 4 sorted bars, got %d", got)
	}
	if !strings.HasSuffix(BarsSVG(nil, step.ModeSorting, ThemeClassic, 10, 10), "</svg>") {
		t.Error("expected a closed document for a nil record")
	}
}

func TestProgressSVG(t *testing.T) {
	seq := bubbleSeq(t)
	svg := ProgressSVG(seq, 300, 100, "#00ff88")
	if got := strings.Count(svg, " L"); got != len(seq)-1 {
		t.Errorf("expected %d segments, got %d", len(seq)-1, got)
	}
	if ProgressSVG(seq[:1], 300, 100, "#fff") != "" {
		t.Error("expected no path for a single step")
	}
}
