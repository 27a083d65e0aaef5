package perturb

import (
	"testing"

	"chosenoffset.com/linegrid/internal/core/geometry"
)

func TestRecordStampsTime(t *testing.T) {
	p := Record(1000, geometry.Vector{X: 500, Y: 500})
	if p.When != 1000 {
		t.Errorf("Expected When 1000, got %v", p.When)
	}
	if p.At != (geometry.Vector{X: 500, Y: 500}) {
		t.Errorf("Expected At (500, 500), got %v", p.At)
	}
}

func TestPruneBoundary(t *testing.T) {
	list := []Perturbation{
		{When: 999},
		{When: 1000},
		{When: 1000.5},
		{When: 3999},
	}

	kept := Prune(4000, list)

	for _, p := range kept {
		if p.When <= 4000-DefaultWindow {
			t.Errorf("Entry with When %v should have been pruned", p.When)
		}
	}
	if len(kept) != 2 {
		t.Fatalf("Expected 2 surviving entries, got %d", len(kept))
	}
	if kept[0].When != 1000.5 || kept[1].When != 3999 {
		t.Errorf("Unexpected survivors: %+v", kept)
	}
}

func TestPruneKeepsOrderAndDoesNotMutateInput(t *testing.T) {
	list := []Perturbation{{When: 10}, {When: 0}, {When: 20}}
	kept := Prune(3005, list)

	if len(kept) != 2 || kept[0].When != 10 || kept[1].When != 20 {
		t.Errorf("Expected [10 20], got %+v", kept)
	}
	if len(list) != 3 || list[1].When != 0 {
		t.Errorf("Input slice was modified: %+v", list)
	}
}

func TestPruneEmpty(t *testing.T) {
	if kept := Prune(0, nil); len(kept) != 0 {
		t.Errorf("Expected empty result, got %+v", kept)
	}
}

func TestTimeFactorDecay(t *testing.T) {
	p := Record(500, geometry.Vector{})

	tests := []struct {
		time float64
		want float64
	}{
		{500, 1},
		{2000, 0.5},
		{3500, 0},
		{5000, -0.5},
	}

	for _, tt := range tests {
		if got := Default.TimeFactor(p, tt.time); got != tt.want {
			t.Errorf("TimeFactor at %v: expected %v, got %v", tt.time, tt.want, got)
		}
	}
}

func TestExpiredMatchesPrune(t *testing.T) {
	l := NewLedger(100)
	list := []Perturbation{{When: 0}, {When: 50}, {When: 100}}
	kept := l.Prune(150, list)

	for _, p := range list {
		survived := false
		for _, k := range kept {
			if k == p {
				survived = true
			}
		}
		if survived == l.Expired(p, 150) {
			t.Errorf("Expired(%v) disagrees with Prune", p.When)
		}
	}
}

func TestNewLedgerFallsBackToDefault(t *testing.T) {
	if l := NewLedger(0); l.Window != DefaultWindow {
		t.Errorf("Expected window %v, got %v", DefaultWindow, l.Window)
	}
}
