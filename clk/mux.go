package clk

import (
	"fmt"

	"github.com/Jon-Bright/clkctl/regs"
)

// Mux passes through the rate of whichever parent its selector field picks.
type Mux struct {
	node
	bus     regs.Bus
	sel     regs.Field
	parents []string
}

func NewMux(bus regs.Bus, name string, id ID, parents []string, sel regs.Field, flags Flags) (*Mux, error) {
	if len(parents) == 0 {
		return nil, fmt.Errorf("couldn't create mux %s: no parents", name)
	}
	if uint64(len(parents)) > uint64(sel.Max())+1 {
		return nil, fmt.Errorf("couldn't create mux %s: %d parents don't fit %d-bit selector", name, len(parents), sel.Width)
	}
	return &Mux{
		node:    node{name: name, id: id, flags: flags},
		bus:     bus,
		sel:     sel,
		parents: append([]string(nil), parents...),
	}, nil
}

func (m *Mux) Kind() Kind            { return KindMux }
func (m *Mux) Parents() []string     { return append([]string(nil), m.parents...) }
func (m *Mux) Field() regs.Field     { return m.sel }
func (m *Mux) Rate(pr uint64) uint64 { return pr }
func (m *Mux) IsEnabled() bool       { return true }

func (m *Mux) Parent() (string, error) {
	i := m.sel.Get(m.bus)
	if int(i) >= len(m.parents) {
		return "", fmt.Errorf("couldn't get parent of %s: selector %d, only %d parents: %w", m.name, i, len(m.parents), ErrUnknownClock)
	}
	return m.parents[i], nil
}

func (m *Mux) SetParent(name string) error {
	for i, p := range m.parents {
		if p == name {
			m.sel.Set(m.bus, uint32(i))
			return nil
		}
	}
	return fmt.Errorf("couldn't set parent of %s: %s isn't one of %v: %w", m.name, name, m.parents, ErrUnknownClock)
}

func (m *Mux) SetRate(pr, target uint64) (uint64, error) { return 0, unsupported(m, "set rate of") }
func (m *Mux) Enable() error                             { return unsupported(m, "enable") }
func (m *Mux) Disable() error                            { return unsupported(m, "disable") }
