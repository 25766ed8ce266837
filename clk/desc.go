package clk

import (
	"fmt"

	"github.com/Jon-Bright/clkctl/regs"
)

// Desc is a declarative description of one clock within a register block.
// Register offsets are relative to the block's base.
type Desc interface {
	ClockName() string
	// Offsets lists every register the clock touches.
	Offsets() []uintptr
	Build(bus regs.Bus) (Clock, error)
}

type PLLDesc struct {
	Type   PLLType
	ID     ID
	Name   string
	Parent string
	Lock   uintptr
	Con    uintptr
	Table  *RateTable
}

type MuxDesc struct {
	ID      ID
	Name    string
	Parents []string
	Reg     uintptr
	Shift   uint
	Width   uint
	Flags   Flags
}

type DivDesc struct {
	ID       ID
	Name     string
	Parent   string
	Reg      uintptr
	Shift    uint
	Width    uint
	Flags    Flags
	DivFlags DivFlags
}

type FixedFactorDesc struct {
	ID     ID
	Name   string
	Parent string
	Mult   uint64
	Div    uint64
}

type GateDesc struct {
	ID     ID
	Name   string
	Parent string
	Reg    uintptr
	Bit    uint
	Flags  Flags
}

func (d PLLDesc) ClockName() string         { return d.Name }
func (d MuxDesc) ClockName() string         { return d.Name }
func (d DivDesc) ClockName() string         { return d.Name }
func (d FixedFactorDesc) ClockName() string { return d.Name }
func (d GateDesc) ClockName() string        { return d.Name }

func (d PLLDesc) Offsets() []uintptr {
	if d.Type.Fractional() {
		return []uintptr{d.Lock, d.Con, d.Con + PLL_CON1_OFFSET}
	}
	return []uintptr{d.Lock, d.Con}
}
func (d MuxDesc) Offsets() []uintptr         { return []uintptr{d.Reg} }
func (d DivDesc) Offsets() []uintptr         { return []uintptr{d.Reg} }
func (d FixedFactorDesc) Offsets() []uintptr { return nil }
func (d GateDesc) Offsets() []uintptr        { return []uintptr{d.Reg} }

func (d PLLDesc) Build(bus regs.Bus) (Clock, error) {
	return NewPLL(bus, d.Name, d.ID, d.Parent, d.Type, d.Lock, d.Con, d.Table)
}

func (d MuxDesc) Build(bus regs.Bus) (Clock, error) {
	return NewMux(bus, d.Name, d.ID, d.Parents, regs.Field{Reg: d.Reg, Shift: d.Shift, Width: d.Width}, d.Flags)
}

func (d DivDesc) Build(bus regs.Bus) (Clock, error) {
	return NewDiv(bus, d.Name, d.ID, d.Parent, regs.Field{Reg: d.Reg, Shift: d.Shift, Width: d.Width}, d.Flags, d.DivFlags)
}

func (d FixedFactorDesc) Build(bus regs.Bus) (Clock, error) {
	return NewFixedFactor(d.Name, d.ID, d.Parent, d.Mult, d.Div)
}

func (d GateDesc) Build(bus regs.Bus) (Clock, error) {
	return NewGate(bus, d.Name, d.ID, d.Parent, d.Reg, d.Bit, d.Flags), nil
}

// Register builds every clock in descs on bus and inserts them into g. If
// any clock fails to build or insert, g is left untouched.
func Register(g *Graph, bus regs.Bus, descs []Desc) error {
	cs := make([]Clock, 0, len(descs))
	for _, d := range descs {
		c, err := d.Build(bus)
		if err != nil {
			return fmt.Errorf("couldn't build %s: %w", d.ClockName(), err)
		}
		cs = append(cs, c)
	}
	return g.InsertAll(cs)
}
