// Package perturb keeps the list of pointer impulses that displace the grid.
// Each impulse decays linearly to zero over a fixed window and is dropped
// once the window has passed.
package perturb

import "chosenoffset.com/linegrid/internal/core/geometry"

// DefaultWindow is the decay horizon in animation time units (milliseconds).
const DefaultWindow = 3000.0

// Perturbation is one recorded click. It is never mutated after creation.
type Perturbation struct {
	When float64         // animation time of the click
	At   geometry.Vector // click location in canvas space
}

// Ledger applies a decay window to perturbation lists. The zero value is
// not useful; use NewLedger or Default.
type Ledger struct {
	Window float64
}

// NewLedger returns a ledger with the given decay window. Non-positive
// windows fall back to DefaultWindow.
func NewLedger(window float64) Ledger {
	if window <= 0 {
		window = DefaultWindow
	}
	return Ledger{Window: window}
}

// Default is the ledger used by the reference configuration.
var Default = NewLedger(DefaultWindow)

// Record creates a perturbation stamped with the given time.
func (l Ledger) Record(time float64, at geometry.Vector) Perturbation {
	return Perturbation{When: time, At: at}
}

// Prune returns the entries still inside the window at currentTime. An
// entry is dropped when When <= currentTime - Window. The input slice is
// not modified; the result is a fresh slice.
func (l Ledger) Prune(currentTime float64, list []Perturbation) []Perturbation {
	kept := make([]Perturbation, 0, len(list))
	for _, p := range list {
		if !l.Expired(p, currentTime) {
			kept = append(kept, p)
		}
	}
	return kept
}

// Expired reports whether p would be removed by Prune at currentTime.
func (l Ledger) Expired(p Perturbation, currentTime float64) bool {
	return p.When <= currentTime-l.Window
}

// TimeFactor is 1 at the moment of the click and falls linearly to 0 at
// When + Window. Past that it goes negative until the entry is pruned.
func (l Ledger) TimeFactor(p Perturbation, time float64) float64 {
	return (p.When + l.Window - time) / l.Window
}

// Record creates a perturbation using the default ledger.
func Record(time float64, at geometry.Vector) Perturbation {
	return Default.Record(time, at)
}

// Prune filters list using the default ledger.
func Prune(currentTime float64, list []Perturbation) []Perturbation {
	return Default.Prune(currentTime, list)
}
