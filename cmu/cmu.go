// Package cmu describes clock management units: register blocks at a
// physical base, each holding a table of clocks, built into one shared graph.
package cmu

import (
	"fmt"

	"github.com/Jon-Bright/clkctl/clk"
	"github.com/Jon-Bright/clkctl/regs"
	"github.com/platinasystems/log"
)

// DefaultSize is how much of a CMU is mapped when a domain doesn't say.
const DefaultSize = 0x10000

// Domain is one CMU. Base is its physical address; zero means it must come
// from the device tree.
type Domain struct {
	Name       string
	Compatible string
	Base       uintptr
	Size       int
	Clocks     []clk.Desc
}

// Mapping is a register block mapped for a Domain.
type Mapping interface {
	regs.Bus
	Close() error
}

// Mapper maps size bytes of registers at physical address base.
type Mapper func(base uintptr, size int) (Mapping, error)

// DevMem maps registers through /dev/mem.
func DevMem(base uintptr, size int) (Mapping, error) {
	return regs.Map(base, size)
}

// Anon gives every domain zeroed memory instead of hardware registers.
func Anon(base uintptr, size int) (Mapping, error) {
	return regs.NewAnon(base, size)
}

func (d *Domain) size() int {
	if d.Size > 0 {
		return d.Size
	}
	return DefaultSize
}

// Build checks every clock's registers lie inside size bytes and then inserts
// the domain's clocks into g. On error, g is unchanged.
func (d *Domain) Build(g *clk.Graph, bus regs.Bus, size int) error {
	for _, c := range d.Clocks {
		for _, off := range c.Offsets() {
			if off%4 != 0 || off+4 > uintptr(size) {
				return fmt.Errorf("couldn't build %s: %s register %#x outside %#x byte block", d.Name, c.ClockName(), off, size)
			}
		}
	}
	err := clk.Register(g, bus, d.Clocks)
	if err != nil {
		return fmt.Errorf("couldn't build %s: %w", d.Name, err)
	}
	return nil
}

// Probe maps the domain with m and builds it into g. The returned mapping
// must stay open for as long as g is used.
func (d *Domain) Probe(g *clk.Graph, m Mapper) (Mapping, error) {
	if d.Base == 0 {
		return nil, fmt.Errorf("couldn't map %s, no base address: %w", d.Name, clk.ErrMapFailure)
	}
	size := d.size()
	bus, err := m(d.Base, size)
	if err != nil {
		return nil, fmt.Errorf("couldn't map %s at %08X: %v: %w", d.Name, d.Base, err, clk.ErrMapFailure)
	}
	err = d.Build(g, bus, size)
	if err != nil {
		bus.Close() // Ignore error
		return nil, err
	}
	return bus, nil
}

// Result is what happened to one domain during ProbeAll.
type Result struct {
	Domain *Domain
	Bus    Mapping // nil if Err is set
	Err    error
}

// ProbeAll probes every domain in order. A domain that fails is logged and
// recorded; the rest are still built.
func ProbeAll(g *clk.Graph, domains []*Domain, m Mapper) []Result {
	res := make([]Result, 0, len(domains))
	for _, d := range domains {
		bus, err := d.Probe(g, m)
		if err != nil {
			log.Print("err", d.Name, ": ", err)
		} else {
			log.Printf("info", "%s: %d clocks at %08X", d.Name, len(d.Clocks), d.Base)
		}
		res = append(res, Result{Domain: d, Bus: bus, Err: err})
	}
	return res
}

// Close unmaps every domain that was mapped.
func Close(res []Result) error {
	var first error
	for _, r := range res {
		if r.Bus == nil {
			continue
		}
		err := r.Bus.Close()
		if err != nil && first == nil {
			first = err
		}
	}
	return first
}
