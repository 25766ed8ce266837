package clk

import (
	"errors"
	"reflect"
	"testing"
)

// testTree is a small PLL -> divider -> gate chain plus a UART-style mux
// choosing between two dividers.
func testTree(t *testing.T) (*Graph, *stubBus) {
	b := newStub(conReg, 1)
	g := New()
	g.SetInput("fin_pll", fin)
	err := Register(g, b, []Desc{
		PLLDesc{Type: PLL1452x, ID: 1, Name: "fout_test_pll", Parent: "fin_pll", Lock: lockReg, Con: conReg, Table: intTable},
		DivDesc{ID: 2, Name: "dout_test", Parent: "fout_test_pll", Reg: 0x600, Shift: 0, Width: 4},
		GateDesc{ID: 3, Name: "aclk_test", Parent: "dout_test", Reg: 0x800, Bit: 0},
		FixedFactorDesc{Name: "ffac_test_div2", Parent: "fout_test_pll", Mult: 1, Div: 2},
		MuxDesc{ID: 4, Name: "mout_sclk_uart", Parents: []string{"fin_pll", "dout_test", "ffac_test_div2"}, Reg: 0x200, Shift: 0, Width: 2},
		GateDesc{ID: 5, Name: "sclk_uart", Parent: "mout_sclk_uart", Reg: 0x800, Bit: 1},
	})
	if err != nil {
		t.Fatalf("Failed Register: %v", err)
	}
	return g, b
}

func TestInsertDuplicates(t *testing.T) {
	g, b := testTree(t)
	tests := []Clock{
		NewGate(b, "aclk_test", 0, "dout_test", 0x800, 2, 0),
		NewGate(b, "aclk_other", 3, "dout_test", 0x800, 2, 0),
		NewGate(b, "fin_pll", 0, "dout_test", 0x800, 2, 0),
	}
	for _, c := range tests {
		if err := g.Insert(c); !errors.Is(err, ErrDuplicateName) {
			t.Errorf("Insert(%s, #%d), got %v, want ErrDuplicateName", c.Name(), c.ID(), err)
		}
	}
	if err := g.SetInput("dout_test", 1); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("SetInput on a clock name, got %v, want ErrDuplicateName", err)
	}
	if g.Len() != 6 {
		t.Errorf("Len after failed inserts, got %d, want 6", g.Len())
	}
	// Two clocks without IDs don't collide
	if err := g.Insert(NewGate(b, "aclk_noid", 0, "dout_test", 0x800, 2, 0)); err != nil {
		t.Errorf("Insert of second ID-less clock failed: %v", err)
	}
}

func TestResolve(t *testing.T) {
	g, _ := testTree(t)
	c, err := g.Resolve("dout_test")
	if err != nil || c.Kind() != KindDiv {
		t.Errorf("Resolve(dout_test), got %v/%v", c, err)
	}
	c, err = g.ResolveID(4)
	if err != nil || c.Name() != "mout_sclk_uart" {
		t.Errorf("ResolveID(4), got %v/%v, want mout_sclk_uart", c, err)
	}
	for _, id := range []ID{0, 99} {
		if _, err := g.ResolveID(id); !errors.Is(err, ErrUnknownClock) {
			t.Errorf("ResolveID(%d), got %v, want ErrUnknownClock", id, err)
		}
	}
	if _, err := g.Rate("sclk_nonexistent"); !errors.Is(err, ErrUnknownClock) {
		t.Errorf("Rate of unknown clock, got %v, want ErrUnknownClock", err)
	}
	want := []string{"fout_test_pll", "dout_test", "aclk_test", "ffac_test_div2", "mout_sclk_uart", "sclk_uart"}
	if got := g.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names, got %v, want %v", got, want)
	}
}

func TestChainRates(t *testing.T) {
	g, b := testTree(t)
	b.regs[conReg] = 1 << PLL_ENABLE_SHIFT
	got, err := g.SetRate("fout_test_pll", 800000000)
	if err != nil || got != 800000000 {
		t.Fatalf("SetRate(fout_test_pll), got %d/%v, want 800000000", got, err)
	}
	got, err = g.SetRate("dout_test", 200000000)
	if err != nil || got != 200000000 {
		t.Fatalf("SetRate(dout_test), got %d/%v, want 200000000", got, err)
	}
	if b.regs[0x600] != 3 {
		t.Errorf("divider field, got %d, want 3", b.regs[0x600])
	}

	err = g.Enable("aclk_test")
	if err != nil {
		t.Fatalf("Enable(aclk_test) failed: %v", err)
	}
	for _, name := range []string{"dout_test", "aclk_test"} {
		r, err := g.Rate(name)
		if err != nil || r != 200000000 {
			t.Errorf("Rate(%s), got %d/%v, want 200000000", name, r, err)
		}
	}
	err = g.Disable("aclk_test")
	if err != nil {
		t.Fatalf("Disable(aclk_test) failed: %v", err)
	}
	if on, _ := g.IsEnabled("aclk_test"); on {
		t.Errorf("IsEnabled(aclk_test) after Disable, got true")
	}
	if r, _ := g.Rate("aclk_test"); r != 200000000 {
		t.Errorf("Rate of disabled gate, got %d, want 200000000", r)
	}

	// A PLL change shows up downstream on the next read
	_, err = g.SetRate("fout_test_pll", 400000000)
	if err != nil {
		t.Fatalf("SetRate(fout_test_pll, 400000000) failed: %v", err)
	}
	if r, _ := g.Rate("aclk_test"); r != 100000000 {
		t.Errorf("Rate(aclk_test) after PLL change, got %d, want 100000000", r)
	}
	r1, _ := g.Rate("aclk_test")
	r2, _ := g.Rate("aclk_test")
	if r1 != r2 {
		t.Errorf("repeated Rate differs: %d, %d", r1, r2)
	}
}

func TestUARTMuxSwitch(t *testing.T) {
	g, b := testTree(t)
	b.regs[conReg] = 1 << PLL_ENABLE_SHIFT
	if _, err := g.SetRate("fout_test_pll", 800000000); err != nil {
		t.Fatalf("SetRate failed: %v", err)
	}
	b.regs[0x600] = 7 // dout_test = 100MHz

	tests := []struct {
		parent string
		rate   uint64
	}{
		{"fin_pll", fin},
		{"dout_test", 100000000},
		{"ffac_test_div2", 400000000},
	}
	for _, test := range tests {
		err := g.SetParent("mout_sclk_uart", test.parent)
		if err != nil {
			t.Fatalf("SetParent(%s) failed: %v", test.parent, err)
		}
		if p, err := g.Parent("mout_sclk_uart"); err != nil || p != test.parent {
			t.Errorf("Parent, got %q/%v, want %s", p, err, test.parent)
		}
		if r, err := g.Rate("sclk_uart"); err != nil || r != test.rate {
			t.Errorf("Rate(sclk_uart) via %s, got %d/%v, want %d", test.parent, r, err, test.rate)
		}
	}
	children := g.Children("ffac_test_div2")
	if len(children) != 1 || children[0].Name() != "mout_sclk_uart" {
		t.Errorf("Children(ffac_test_div2), got %v", children)
	}

	if err := g.SetParent("mout_sclk_uart", "aclk_test"); !errors.Is(err, ErrUnknownClock) {
		t.Errorf("SetParent to non-candidate, got %v, want ErrUnknownClock", err)
	}
	if err := g.SetParent("mout_sclk_uart", "sclk_nonexistent"); !errors.Is(err, ErrUnknownClock) {
		t.Errorf("SetParent to missing clock, got %v, want ErrUnknownClock", err)
	}
	if err := g.SetParent("dout_test", "fin_pll"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SetParent on a divider, got %v, want ErrUnsupported", err)
	}
}

func TestMuxCandidateMissing(t *testing.T) {
	b := newStub(noPLL, 0)
	g := New()
	g.SetInput("fin_pll", fin)
	err := Register(g, b, []Desc{
		MuxDesc{Name: "mout_test", Parents: []string{"fin_pll", "sclk_later"}, Reg: 0, Shift: 0, Width: 1},
	})
	if err != nil {
		t.Fatalf("Failed Register: %v", err)
	}
	// Candidate is a valid choice for the mux, but isn't in the graph (yet)
	if err := g.SetParent("mout_test", "sclk_later"); !errors.Is(err, ErrUnknownClock) {
		t.Errorf("SetParent to absent candidate, got %v, want ErrUnknownClock", err)
	}
	if b.totalWrites() != 0 {
		t.Errorf("failed SetParent wrote registers")
	}
}

func TestInputs(t *testing.T) {
	g, _ := testTree(t)
	g.SetInput("ioclk_audiocdclk0", 0)
	if r, err := g.Rate("fin_pll"); err != nil || r != fin {
		t.Errorf("Rate(fin_pll), got %d/%v, want %d", r, err, fin)
	}
	if on, err := g.IsEnabled("fin_pll"); err != nil || !on {
		t.Errorf("IsEnabled(fin_pll), got %v/%v, want true", on, err)
	}
	if _, err := g.SetRate("fin_pll", 26000000); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SetRate on input, got %v, want ErrUnsupported", err)
	}
	for _, err := range []error{g.Enable("fin_pll"), g.Disable("fin_pll"), g.SetParent("fin_pll", "dout_test")} {
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("operation on input, got %v, want ErrUnsupported", err)
		}
	}
	if _, err := g.Parent("fin_pll"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Parent of input, got %v, want ErrUnsupported", err)
	}
	if _, err := g.Resolve("fin_pll"); !errors.Is(err, ErrUnsupported) || errors.Is(err, ErrUnknownClock) {
		t.Errorf("Resolve(fin_pll), got %v, want ErrUnsupported", err)
	}
	if _, err := g.Resolve("fin_nowhere"); !errors.Is(err, ErrUnknownClock) {
		t.Errorf("Resolve(fin_nowhere), got %v, want ErrUnknownClock", err)
	}
	if want := []string{"fin_pll", "ioclk_audiocdclk0"}; !reflect.DeepEqual(g.Inputs(), want) {
		t.Errorf("Inputs, got %v, want %v", g.Inputs(), want)
	}
	g.SetInput("fin_pll", 26000000)
	if r, _ := g.Rate("fin_pll"); r != 26000000 {
		t.Errorf("Rate(fin_pll) after SetInput, got %d, want 26000000", r)
	}
}

func TestDanglingParent(t *testing.T) {
	b := newStub(noPLL, 0)
	g := New()
	err := Register(g, b, []Desc{
		GateDesc{Name: "aclk_orphan", Parent: "dout_nowhere", Reg: 0, Bit: 0},
	})
	if err != nil {
		t.Fatalf("Failed Register: %v", err)
	}
	if _, err := g.Rate("aclk_orphan"); !errors.Is(err, ErrUnknownClock) {
		t.Errorf("Rate with dangling parent, got %v, want ErrUnknownClock", err)
	}
}

func TestCycle(t *testing.T) {
	b := newStub(noPLL, 0)
	g := New()
	err := Register(g, b, []Desc{
		FixedFactorDesc{Name: "ffac_a", Parent: "ffac_b", Mult: 1, Div: 1},
		FixedFactorDesc{Name: "ffac_b", Parent: "ffac_a", Mult: 1, Div: 1},
	})
	if err != nil {
		t.Fatalf("Failed Register: %v", err)
	}
	if _, err := g.Rate("ffac_a"); !errors.Is(err, ErrCycleDetected) {
		t.Errorf("Rate in a cycle, got %v, want ErrCycleDetected", err)
	}
}

func TestRegisterAllOrNothing(t *testing.T) {
	b := newStub(noPLL, 0)
	g := New()
	tests := [][]Desc{
		{
			FixedFactorDesc{Name: "ffac_ok", Parent: "fin_pll", Mult: 1, Div: 1},
			FixedFactorDesc{Name: "ffac_ok", Parent: "fin_pll", Mult: 1, Div: 2},
		},
		{
			FixedFactorDesc{ID: 7, Name: "ffac_ok", Parent: "fin_pll", Mult: 1, Div: 1},
			FixedFactorDesc{ID: 7, Name: "ffac_other", Parent: "fin_pll", Mult: 1, Div: 2},
		},
		{
			FixedFactorDesc{Name: "ffac_ok", Parent: "fin_pll", Mult: 1, Div: 1},
			FixedFactorDesc{Name: "ffac_bad", Parent: "fin_pll", Mult: 1, Div: 0},
		},
	}
	for i, descs := range tests {
		if err := Register(g, b, descs); err == nil {
			t.Errorf("Register #%d, got no error", i)
		}
		if g.Len() != 0 {
			t.Errorf("Register #%d left %d clocks behind", i, g.Len())
		}
	}
	err := Register(g, b, tests[0][:1])
	if err != nil {
		t.Fatalf("Register of one clock failed: %v", err)
	}
	if err := Register(g, b, tests[1]); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Register clashing with graph, got %v, want ErrDuplicateName", err)
	}
	if _, err := g.Resolve("ffac_other"); err == nil {
		t.Errorf("failed Register inserted ffac_other")
	}
}
