package clk

import (
	"fmt"
	"sort"
)

// MaxDepth bounds the parent walk. Real trees are a dozen levels deep at
// most; anything deeper is a loop.
const MaxDepth = 64

// Graph owns every clock of a SoC, keyed by name and, where it has one, by
// ID. External inputs (crystals, pads, PHY outputs) are fixed-rate roots
// known only by name and frequency.
//
// A Graph does no locking. Callers sharing one between goroutines must
// serialize access themselves.
type Graph struct {
	clocks map[string]Clock
	byID   map[ID]Clock
	inputs map[string]uint64
	order  []string
}

func New() *Graph {
	return &Graph{
		clocks: make(map[string]Clock),
		byID:   make(map[ID]Clock),
		inputs: make(map[string]uint64),
	}
}

// Insert adds c. Its parents needn't exist yet; they're looked up by name
// when a rate is wanted.
func (g *Graph) Insert(c Clock) error {
	err := g.check(c)
	if err != nil {
		return err
	}
	g.insert(c)
	return nil
}

func (g *Graph) check(c Clock) error {
	n := c.Name()
	if _, ok := g.clocks[n]; ok {
		return fmt.Errorf("couldn't insert %s: %w", n, ErrDuplicateName)
	}
	if _, ok := g.inputs[n]; ok {
		return fmt.Errorf("couldn't insert %s, it's an input: %w", n, ErrDuplicateName)
	}
	if id := c.ID(); id != 0 {
		if o, ok := g.byID[id]; ok {
			return fmt.Errorf("couldn't insert %s, ID %d already used by %s: %w", n, id, o.Name(), ErrDuplicateName)
		}
	}
	return nil
}

func (g *Graph) insert(c Clock) {
	if id := c.ID(); id != 0 {
		g.byID[id] = c
	}
	g.clocks[c.Name()] = c
	g.order = append(g.order, c.Name())
}

// InsertAll adds every clock in cs, or none of them if any would fail
// Insert.
func (g *Graph) InsertAll(cs []Clock) error {
	names := make(map[string]bool)
	ids := make(map[ID]string)
	for _, c := range cs {
		n := c.Name()
		if names[n] {
			return fmt.Errorf("couldn't insert %s twice: %w", n, ErrDuplicateName)
		}
		names[n] = true
		if id := c.ID(); id != 0 {
			if o, ok := ids[id]; ok {
				return fmt.Errorf("couldn't insert %s, ID %d already used by %s: %w", n, id, o, ErrDuplicateName)
			}
			ids[id] = n
		}
		err := g.check(c)
		if err != nil {
			return err
		}
	}
	for _, c := range cs {
		g.insert(c)
	}
	return nil
}

// SetInput declares or updates an external input running at hz.
func (g *Graph) SetInput(name string, hz uint64) error {
	if _, ok := g.clocks[name]; ok {
		return fmt.Errorf("couldn't set input %s, it's a clock: %w", name, ErrDuplicateName)
	}
	g.inputs[name] = hz
	return nil
}

func (g *Graph) IsInput(name string) bool {
	_, ok := g.inputs[name]
	return ok
}

// Inputs returns the names of all inputs, sorted.
func (g *Graph) Inputs() []string {
	var s []string
	for n := range g.inputs {
		s = append(s, n)
	}
	sort.Strings(s)
	return s
}

// Names returns every clock's name in insertion order.
func (g *Graph) Names() []string {
	return append([]string(nil), g.order...)
}

func (g *Graph) Len() int {
	return len(g.clocks)
}

func (g *Graph) exists(name string) bool {
	_, ok := g.clocks[name]
	return ok || g.IsInput(name)
}

// Resolve returns the node called name. Inputs have a rate but no node, so
// resolving one fails with ErrUnsupported rather than ErrUnknownClock.
func (g *Graph) Resolve(name string) (Clock, error) {
	c, ok := g.clocks[name]
	if !ok {
		if g.IsInput(name) {
			return nil, fmt.Errorf("couldn't resolve %s, it's a fixed input: %w", name, ErrUnsupported)
		}
		return nil, fmt.Errorf("couldn't find clock %q: %w", name, ErrUnknownClock)
	}
	return c, nil
}

func (g *Graph) ResolveID(id ID) (Clock, error) {
	c, ok := g.byID[id]
	if id == 0 || !ok {
		return nil, fmt.Errorf("couldn't find clock #%d: %w", id, ErrUnknownClock)
	}
	return c, nil
}

// resolveOp is Resolve for operations that make no sense on an input.
func (g *Graph) resolveOp(name, op string) (Clock, error) {
	if g.IsInput(name) {
		return nil, fmt.Errorf("couldn't %s %s, it's a fixed input: %w", op, name, ErrUnsupported)
	}
	return g.Resolve(name)
}

func (g *Graph) Rate(name string) (uint64, error) {
	return g.rate(name, 0)
}

func (g *Graph) rate(name string, depth int) (uint64, error) {
	if depth > MaxDepth {
		return 0, fmt.Errorf("couldn't get rate of %s, more than %d parents deep: %w", name, MaxDepth, ErrCycleDetected)
	}
	if hz, ok := g.inputs[name]; ok {
		return hz, nil
	}
	c, err := g.Resolve(name)
	if err != nil {
		return 0, err
	}
	pr, err := g.parentRate(c, depth)
	if err != nil {
		return 0, err
	}
	return c.Rate(pr), nil
}

func (g *Graph) parentRate(c Clock, depth int) (uint64, error) {
	pn, err := c.Parent()
	if err != nil {
		return 0, err
	}
	return g.rate(pn, depth+1)
}

// SetRate asks the named clock for target and returns what it achieved.
// Children aren't told; they see the new rate next time they're asked.
func (g *Graph) SetRate(name string, target uint64) (uint64, error) {
	c, err := g.resolveOp(name, "set rate of")
	if err != nil {
		return 0, err
	}
	pr, err := g.parentRate(c, 0)
	if err != nil {
		return 0, err
	}
	return c.SetRate(pr, target)
}

func (g *Graph) Enable(name string) error {
	c, err := g.resolveOp(name, "enable")
	if err != nil {
		return err
	}
	return c.Enable()
}

func (g *Graph) Disable(name string) error {
	c, err := g.resolveOp(name, "disable")
	if err != nil {
		return err
	}
	return c.Disable()
}

// IsEnabled reports a clock's own enable state, not its parents'. Inputs are
// always on.
func (g *Graph) IsEnabled(name string) (bool, error) {
	if g.IsInput(name) {
		return true, nil
	}
	c, err := g.Resolve(name)
	if err != nil {
		return false, err
	}
	return c.IsEnabled(), nil
}

func (g *Graph) Parent(name string) (string, error) {
	c, err := g.resolveOp(name, "get parent of")
	if err != nil {
		return "", err
	}
	return c.Parent()
}

// SetParent switches a mux to parent, which must both be one of the mux's
// candidates and exist in the graph.
func (g *Graph) SetParent(name, parent string) error {
	c, err := g.resolveOp(name, "set parent of")
	if err != nil {
		return err
	}
	if c.Kind() != KindMux {
		return c.SetParent(parent)
	}
	if !g.exists(parent) {
		return fmt.Errorf("couldn't set parent of %s to %q: %w", name, parent, ErrUnknownClock)
	}
	return c.SetParent(parent)
}

// Children returns the clocks whose active parent is name, in insertion
// order. Muxes whose selector can't be read are skipped.
func (g *Graph) Children(name string) []Clock {
	var cs []Clock
	for _, n := range g.order {
		c := g.clocks[n]
		if p, err := c.Parent(); err == nil && p == name {
			cs = append(cs, c)
		}
	}
	return cs
}
