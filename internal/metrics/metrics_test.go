package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/step"
)

func TestCollect_Bubble(t *testing.T) {
	seq, err := algo.Bubble([]int{5, 3, 8, 1})
	if err != nil {
		t.Fatal(err)
	}
	values := Collect(seq)

	if values["steps"] != float64(len(seq)) {
		t.Errorf("expected %d steps, got %v", len(seq), values["steps"])
	}
	if values["comparisons"] != 6 {
		t.Errorf("expected 6 comparisons, got %v", values["comparisons"])
	}
	if values["swaps"] != 4 {
		t.Errorf("expected 4 swaps, got %v", values["swaps"])
	}
	if values["first_sorted"] <= 0 {
		t.Errorf("expected sorted set to appear after the start step, got %v", values["first_sorted"])
	}
}

func TestCollect_Reusable(t *testing.T) {
	seq, _ := algo.Insertion([]int{3, 2, 1})
	ms := Default()
	first := Collect(seq, ms...)
	second := Collect(seq, ms...)
	for name, v := range first {
		if second[name] != v {
			t.Errorf("%s: expected %v on second run, got %v", name, v, second[name])
		}
	}
}

func TestNames(t *testing.T) {
	names := Names(map[string]float64{"swaps": 1, "comparisons": 2, "steps": 3})
	if names[0] != "comparisons" || names[2] != "swaps" {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestProgress(t *testing.T) {
	seq, _ := algo.Selection([]int{4, 3, 2, 1})
	p := Progress(seq)
	if len(p) != len(seq) {
		t.Fatalf("expected %d values, got %d", len(seq), len(p))
	}
	if p[0] != 0 || p[len(p)-1] != 1 {
		t.Errorf("expected progress 0 -> 1, got %v -> %v", p[0], p[len(p)-1])
	}
	for i := 1; i < len(p); i++ {
		if p[i] < p[i-1] {
			t.Fatalf("progress decreased at step %d", i)
		}
	}

	bin, _ := algo.Binary([]int{1, 3, 5, 7, 9}, 9)
	bp := Progress(bin)
	if bp[0] != 5 {
		t.Errorf("expected initial window of 5, got %v", bp[0])
	}
}

func TestOpHistogram(t *testing.T) {
	seq, _ := algo.Linear([]int{1, 2, 3}, 3)
	h := OpHistogram(seq)
	if h[step.OpCompare] != 3 || h[step.OpFound] != 1 || h[step.OpAdvance] != 2 {
		t.Errorf("unexpected histogram %v", h)
	}
}

func TestService(t *testing.T) {
	s := NewService()
	s.Requests.WithLabelValues("/api/visualize", "200").Inc()
	s.BSTOperations.WithLabelValues("insert", "ok").Add(2)

	families, err := s.Registry().Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	found := map[string]float64{}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			if c := m.GetCounter(); c != nil {
				found[f.GetName()] += c.GetValue()
			}
		}
	}
	if found["sortviz_http_requests_total"] != 1 {
		t.Errorf("expected 1 request, got %v", found["sortviz_http_requests_total"])
	}
	if found["sortviz_bst_operations_total"] != 2 {
		t.Errorf("expected 2 operations, got %v", found["sortviz_bst_operations_total"])
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "sortviz_http_requests_total") {
		t.Error("expected exposition to include the request counter")
	}

	other, _ := NewService().Registry().Gather()
	for _, f := range other {
		if len(f.GetMetric()) != 0 {
			t.Errorf("expected an independent registry, found %s", f.GetName())
		}
	}
}
