// Package clk models a SoC clock tree: PLLs, muxes, dividers, fixed factors
// and gates linked by parent name into a graph, with their state held in
// memory-mapped registers.
package clk

import (
	"fmt"
)

// ID is an optional stable number for looking a clock up. Zero means none.
type ID int

type Kind int

const (
	KindPLL Kind = iota
	KindMux
	KindDiv
	KindFixedFactor
	KindGate
)

func (k Kind) String() string {
	switch k {
	case KindPLL:
		return "pll"
	case KindMux:
		return "mux"
	case KindDiv:
		return "div"
	case KindFixedFactor:
		return "ffactor"
	case KindGate:
		return "gate"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Flags are hints for a power-management policy layered above the graph.
// Nothing in this package acts on them.
type Flags uint

const (
	FlagCritical Flags = 1 << iota
	FlagIgnoreUnused
	FlagSetRateParent
)

func (f Flags) String() string {
	s := ""
	for _, n := range []struct {
		f    Flags
		name string
	}{
		{FlagCritical, "critical"},
		{FlagIgnoreUnused, "ignore-unused"},
		{FlagSetRateParent, "set-rate-parent"},
	} {
		if f&n.f == 0 {
			continue
		}
		if s != "" {
			s += ","
		}
		s += n.name
	}
	return s
}

// Clock is one node of the graph. Rates of the node's parent are supplied by
// the Graph, which owns the parent walk; a Clock only knows its own registers.
//
// Operations a variant doesn't implement fail with ErrUnsupported.
type Clock interface {
	Name() string
	ID() ID
	Kind() Kind
	Flags() Flags

	// Parents lists every parent the node can have. For all variants but
	// Mux that's exactly one.
	Parents() []string
	// Parent is the name of the currently active parent.
	Parent() (string, error)

	Rate(parentRate uint64) uint64
	SetRate(parentRate, target uint64) (uint64, error)

	Enable() error
	Disable() error
	IsEnabled() bool

	SetParent(name string) error
}

// node holds what every variant has in common.
type node struct {
	name  string
	id    ID
	flags Flags
}

func (n *node) Name() string { return n.name }
func (n *node) ID() ID       { return n.id }
func (n *node) Flags() Flags { return n.flags }

func unsupported(c Clock, op string) error {
	return fmt.Errorf("couldn't %s %s %s: %w", op, c.Kind(), c.Name(), ErrUnsupported)
}
