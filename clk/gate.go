package clk

import (
	"github.com/Jon-Bright/clkctl/regs"
)

// Gate switches its parent's clock on and off. Its rate is the parent's
// whether it's open or not.
type Gate struct {
	node
	parent string
	bus    regs.Bus
	bit    regs.Field
}

func NewGate(bus regs.Bus, name string, id ID, parent string, reg uintptr, bit uint, flags Flags) *Gate {
	return &Gate{
		node:   node{name: name, id: id, flags: flags},
		parent: parent,
		bus:    bus,
		bit:    regs.Bit(reg, bit),
	}
}

func (g *Gate) Kind() Kind              { return KindGate }
func (g *Gate) Parents() []string       { return []string{g.parent} }
func (g *Gate) Parent() (string, error) { return g.parent, nil }
func (g *Gate) Field() regs.Field       { return g.bit }
func (g *Gate) Rate(pr uint64) uint64   { return pr }

func (g *Gate) Enable() error {
	g.bit.Set(g.bus, 1)
	return nil
}

func (g *Gate) Disable() error {
	g.bit.Set(g.bus, 0)
	return nil
}

func (g *Gate) IsEnabled() bool {
	return g.bit.Get(g.bus) == 1
}

func (g *Gate) SetRate(pr, target uint64) (uint64, error) {
	return 0, unsupported(g, "set rate of")
}

func (g *Gate) SetParent(name string) error {
	return unsupported(g, "set parent of")
}
