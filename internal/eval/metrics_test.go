package eval

import (
	"math"
	"testing"

	"github.com/comp3009j/ranksearch/internal/index"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNDCGScenario(t *testing.T) {
	// S5: retrieved [A,B,C], qrels {A:3, B:2, C:0, D:3}.
	results := QueryResults{
		"q1": {
			{Doc: "A", Score: 3.0},
			{Doc: "B", Score: 2.0},
			{Doc: "C", Score: 1.0},
		},
	}
	qrels := Qrels{
		"q1": {"A": 3, "B": 2, "D": 3},
	}

	dcg := 3.0 + 2.0/math.Log2(3) + 0.0/math.Log2(4)
	idcg := 3.0 + 3.0/math.Log2(3) + 2.0/math.Log2(4)
	want := dcg / idcg

	got := NDCGAt15(results, qrels)
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("NDCGAt15() = %v, want %v", got, want)
	}
}

func TestBPrefScenario(t *testing.T) {
	// S6: relevant {A,B}, judged-non-relevant {X,Y}. Retrieved [X,A,Y,B].
	// Scores descending by retrieval order: X=4,A=3,Y=2,B=1.
	results := QueryResults{
		"q1": {
			{Doc: "X", Score: 4},
			{Doc: "A", Score: 3},
			{Doc: "Y", Score: 2},
			{Doc: "B", Score: 1},
		},
	}
	qrels := Qrels{
		"q1": {"A": 1, "B": 1},
	}
	nonRelevant := map[string]map[index.DocID]struct{}{
		"q1": {"X": {}, "Y": {}},
	}

	got := BPref(results, qrels, nonRelevant)
	want := 0.75
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("BPref() = %v, want %v", got, want)
	}
}

func TestBPrefDegeneratesWithNoNonRelevant(t *testing.T) {
	results := QueryResults{
		"q1": {{Doc: "A", Score: 1}},
	}
	qrels := Qrels{"q1": {"A": 1}}

	got := BPref(results, qrels, nil)
	if got != 0 {
		t.Errorf("BPref() with no non-relevant docs = %v, want 0", got)
	}
}

func TestPrecisionRecallBasic(t *testing.T) {
	results := QueryResults{
		"q1": {{Doc: "A", Score: 2}, {Doc: "B", Score: 1}},
	}
	qrels := Qrels{"q1": {"A": 1, "C": 1}}

	p := Precision(results, qrels)
	if !almostEqual(p, 0.5, 1e-9) {
		t.Errorf("Precision() = %v, want 0.5", p)
	}
	r := Recall(results, qrels)
	if !almostEqual(r, 0.5, 1e-9) {
		t.Errorf("Recall() = %v, want 0.5", r)
	}
}

func TestPAt15DividesByFixedK(t *testing.T) {
	results := QueryResults{
		"q1": {{Doc: "A", Score: 1}},
	}
	qrels := Qrels{"q1": {"A": 1}}

	got := PAt15(results, qrels)
	want := 1.0 / 15.0
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("PAt15() = %v, want %v", got, want)
	}
}

func TestMAPWalksInsertionOrder(t *testing.T) {
	results := QueryResults{
		"q1": {{Doc: "A", Score: 3}, {Doc: "B", Score: 2}, {Doc: "C", Score: 1}},
	}
	qrels := Qrels{"q1": {"A": 1, "C": 1}}

	// Relevant at position 1 (A) -> 1/1; relevant at position 3 (C) -> 2/3.
	want := (1.0/1.0 + 2.0/3.0) / 2.0
	got := MAP(results, qrels)
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("MAP() = %v, want %v", got, want)
	}
}

func TestMetricBoundsOnRandomishInput(t *testing.T) {
	results := QueryResults{
		"q1": {{Doc: "A", Score: 5}, {Doc: "B", Score: 4}, {Doc: "Z", Score: 1}},
		"q2": {{Doc: "C", Score: 2}},
	}
	qrels := Qrels{
		"q1": {"A": 2, "B": 1},
		"q2": {"C": 1, "D": 1},
	}
	nonRelevant := map[string]map[index.DocID]struct{}{
		"q1": {"Z": {}},
	}

	m := All(results, qrels, nonRelevant)
	for name, v := range map[string]float64{
		"Precision":  m.Precision,
		"Recall":     m.Recall,
		"RPrecision": m.RPrecision,
		"P@15":       m.PAt15,
		"MAP":        m.MAP,
		"NDCG@15":    m.NDCGAt15,
		"BPref":      m.BPref,
	} {
		if v < 0 || v > 1 {
			t.Errorf("%s = %v, out of [0,1]", name, v)
		}
	}
}

func TestRPrecisionUsesRelevantCountAsWindow(t *testing.T) {
	results := QueryResults{
		"q1": {{Doc: "A", Score: 3}, {Doc: "X", Score: 2}, {Doc: "B", Score: 1}},
	}
	qrels := Qrels{"q1": {"A": 1, "B": 1}}

	// R=2, top-2 retrieved = [A, X]; only A relevant -> 0.5.
	got := RPrecision(results, qrels)
	if !almostEqual(got, 0.5, 1e-9) {
		t.Errorf("RPrecision() = %v, want 0.5", got)
	}
}
