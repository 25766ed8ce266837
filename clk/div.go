package clk

import (
	"fmt"

	"github.com/Jon-Bright/clkctl/regs"
)

type DivFlags uint

const (
	// DivOneBased means the field holds the divisor itself rather than
	// divisor-1. A zero field then passes the parent rate through.
	DivOneBased DivFlags = 1 << iota
)

type Div struct {
	node
	parent  string
	bus     regs.Bus
	f       regs.Field
	divFlag DivFlags
}

func NewDiv(bus regs.Bus, name string, id ID, parent string, f regs.Field, flags Flags, divFlags DivFlags) (*Div, error) {
	if f.Width == 0 || f.Width > 16 {
		return nil, fmt.Errorf("couldn't create divider %s: bad width %d", name, f.Width)
	}
	return &Div{
		node:    node{name: name, id: id, flags: flags},
		parent:  parent,
		bus:     bus,
		f:       f,
		divFlag: divFlags,
	}, nil
}

func (d *Div) Kind() Kind              { return KindDiv }
func (d *Div) Parents() []string       { return []string{d.parent} }
func (d *Div) Parent() (string, error) { return d.parent, nil }
func (d *Div) Field() regs.Field       { return d.f }
func (d *Div) IsEnabled() bool         { return true }

// Divisor is the current divisor; 0 on a one-based divider means bypass.
func (d *Div) Divisor() uint32 {
	v := d.f.Get(d.bus)
	if d.divFlag&DivOneBased != 0 {
		return v
	}
	return v + 1
}

func (d *Div) maxDivisor() uint64 {
	if d.divFlag&DivOneBased != 0 {
		return uint64(d.f.Max())
	}
	return uint64(d.f.Max()) + 1
}

func (d *Div) Rate(pr uint64) uint64 {
	div := d.Divisor()
	if div == 0 {
		return pr
	}
	return pr / uint64(div)
}

// SetRate picks the smallest divisor that doesn't take the output above
// target, limited to what the field can hold, and returns the rate achieved.
func (d *Div) SetRate(pr, target uint64) (uint64, error) {
	if target == 0 {
		return 0, fmt.Errorf("couldn't set %s to 0 Hz: %w", d.name, ErrInvalidRate)
	}
	div := (pr + target - 1) / target
	if div < 1 {
		div = 1
	}
	if max := d.maxDivisor(); div > max {
		div = max
	}
	v := uint32(div)
	if d.divFlag&DivOneBased == 0 {
		v--
	}
	d.f.Set(d.bus, v)
	return pr / div, nil
}

func (d *Div) Enable() error               { return unsupported(d, "enable") }
func (d *Div) Disable() error              { return unsupported(d, "disable") }
func (d *Div) SetParent(name string) error { return unsupported(d, "set parent of") }
