package clk

import "fmt"

// FixedFactor scales its parent by Mult/Div. It has no registers.
type FixedFactor struct {
	node
	parent string
	mult   uint64
	div    uint64
}

func NewFixedFactor(name string, id ID, parent string, mult, div uint64) (*FixedFactor, error) {
	if div == 0 {
		return nil, fmt.Errorf("couldn't create fixed factor %s: zero divisor", name)
	}
	return &FixedFactor{node: node{name: name, id: id}, parent: parent, mult: mult, div: div}, nil
}

func (f *FixedFactor) Kind() Kind                { return KindFixedFactor }
func (f *FixedFactor) Parents() []string         { return []string{f.parent} }
func (f *FixedFactor) Parent() (string, error)   { return f.parent, nil }
func (f *FixedFactor) Ratio() (mult, div uint64) { return f.mult, f.div }
func (f *FixedFactor) Rate(pr uint64) uint64     { return pr * f.mult / f.div }
func (f *FixedFactor) IsEnabled() bool           { return true }

func (f *FixedFactor) SetRate(pr, target uint64) (uint64, error) {
	return 0, unsupported(f, "set rate of")
}
func (f *FixedFactor) Enable() error               { return unsupported(f, "enable") }
func (f *FixedFactor) Disable() error              { return unsupported(f, "disable") }
func (f *FixedFactor) SetParent(name string) error { return unsupported(f, "set parent of") }
