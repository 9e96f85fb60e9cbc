package match

import (
	"testing"
)

func TestRank(t *testing.T) {
	names := []string{"CustomerName", "customer_id", "CustomerID", "ID", "CustomerID"}

	candidates := Rank("CustomerID", names)

	// Duplicate names are ranked once
	if len(candidates) != 4 {
		t.Fatalf("Expected 4 candidates, got %d", len(candidates))
	}

	// Exact and normalized matches tie and are ordered by name
	if candidates[0].Name != "CustomerID" || candidates[1].Name != "customer_id" {
		t.Errorf("Expected CustomerID then customer_id, got %s then %s", candidates[0].Name, candidates[1].Name)
	}

	if candidates[0].Score != 1.0 || candidates[1].Score != 1.0 {
		t.Errorf("Expected perfect scores, got %f and %f", candidates[0].Score, candidates[1].Score)
	}

	if candidates[3].Name != "ID" {
		t.Errorf("Expected ID last, got %s", candidates[3].Name)
	}
}

func TestRank_Determinism(t *testing.T) {
	names := []string{"Beta", "Alpha", "Gamma", "Delta"}

	first := Rank("Zeta", names)
	for range 10 {
		again := Rank("Zeta", names)
		for i := range first {
			if first[i].Name != again[i].Name {
				t.Fatalf("Rank is not deterministic at %d: %s vs %s", i, first[i].Name, again[i].Name)
			}
		}
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		target string
		names  []string
		want   string
		ok     bool
	}{
		{"Nam", []string{"Name", "Age"}, "Name", true},
		{"get_value", []string{"GetValue", "SetValue"}, "GetValue", true},
		{"Name", []string{"Name"}, "", false},
		{"Completely", []string{"Other", "Thing"}, "", false},
		{"Anything", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got, ok := Suggest(tt.target, tt.names)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Suggest(%q) = %q, %v, want %q, %v", tt.target, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCandidateList_Top(t *testing.T) {
	candidates := CandidateList{
		{Name: "A", Score: 0.9},
		{Name: "B", Score: 0.8},
		{Name: "C", Score: 0.7},
	}

	if top2 := candidates.Top(2); len(top2) != 2 {
		t.Errorf("Expected 2 candidates, got %d", len(top2))
	}

	// Request more than available
	if top10 := candidates.Top(10); len(top10) != 3 {
		t.Errorf("Expected 3 candidates (all), got %d", len(top10))
	}
}

func TestCandidateList_IsAmbiguous(t *testing.T) {
	tests := []struct {
		name       string
		candidates CandidateList
		threshold  float64
		expected   bool
	}{
		{"empty", CandidateList{}, 0.1, false},
		{"single", CandidateList{{Name: "A", Score: 0.9}}, 0.1, false},
		{"clear winner", CandidateList{{Name: "A", Score: 0.9}, {Name: "B", Score: 0.5}}, 0.1, false},
		{"close scores", CandidateList{{Name: "A", Score: 0.9}, {Name: "B", Score: 0.85}}, 0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.candidates.IsAmbiguous(tt.threshold); result != tt.expected {
				t.Errorf("IsAmbiguous(%f) = %v, want %v", tt.threshold, result, tt.expected)
			}
		})
	}
}

func TestCandidateList_BestAndThreshold(t *testing.T) {
	if (CandidateList{}).Best() != nil {
		t.Error("Expected nil best for empty list")
	}

	candidates := CandidateList{{Name: "A", Score: 0.9}, {Name: "B", Score: 0.4}}

	if above := candidates.AboveThreshold(0.5); len(above) != 1 || above[0].Name != "A" {
		t.Errorf("AboveThreshold(0.5) = %v, want [A]", above)
	}
}
