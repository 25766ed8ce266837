package clk

import (
	"errors"
	"testing"

	"github.com/Jon-Bright/clkctl/regs"
)

func TestDivRate(t *testing.T) {
	tests := []struct {
		field    uint32
		divFlags DivFlags
		want     uint64
	}{
		{0, 0, 800000000},
		{1, 0, 400000000},
		{3, 0, 200000000},
		{15, 0, 50000000},
		{0, DivOneBased, 800000000}, // Bypass
		{1, DivOneBased, 800000000},
		{4, DivOneBased, 200000000},
	}
	for _, test := range tests {
		b := newStub(noPLL, 0)
		d, err := NewDiv(b, "dout_test", 0, "fout_test_pll", regs.Field{Reg: 0x600, Shift: 4, Width: 4}, 0, test.divFlags)
		if err != nil {
			t.Fatalf("Failed NewDiv: %v", err)
		}
		b.regs[0x600] = test.field << 4
		if got := d.Rate(800000000); got != test.want {
			t.Errorf("Div field %d flags %v, got %d, want %d", test.field, test.divFlags, got, test.want)
		}
	}
}

func TestDivSetRate(t *testing.T) {
	tests := []struct {
		target   uint64
		divFlags DivFlags
		field    uint32
		want     uint64
	}{
		{400000000, 0, 1, 400000000},
		{800000000, 0, 0, 800000000},
		{900000000, 0, 0, 800000000}, // Can't go above the parent
		{300000000, 0, 2, 266666666}, // Never above target
		{1, 0, 15, 50000000},         // Clamped to the largest divisor
		{200000000, DivOneBased, 4, 200000000},
		{1, DivOneBased, 15, 53333333},
	}
	for _, test := range tests {
		b := newStub(noPLL, 0)
		b.regs[0x600] = 0xF00F // Neighbouring bits
		d, err := NewDiv(b, "dout_test", 0, "fout_test_pll", regs.Field{Reg: 0x600, Shift: 4, Width: 4}, 0, test.divFlags)
		if err != nil {
			t.Fatalf("Failed NewDiv: %v", err)
		}
		got, err := d.SetRate(800000000, test.target)
		if err != nil {
			t.Fatalf("SetRate(%d) failed: %v", test.target, err)
		}
		if got != test.want {
			t.Errorf("SetRate(%d) flags %v, got %d, want %d", test.target, test.divFlags, got, test.want)
		}
		if f := (b.regs[0x600] >> 4) & 0xF; f != test.field {
			t.Errorf("SetRate(%d) flags %v, field got %d, want %d", test.target, test.divFlags, f, test.field)
		}
		if b.regs[0x600]&^0xF0 != 0xF00F {
			t.Errorf("SetRate(%d) changed other bits: %#x", test.target, b.regs[0x600])
		}
		if r := d.Rate(800000000); r != got {
			t.Errorf("Rate after SetRate(%d), got %d, want %d", test.target, r, got)
		}
	}
}

func TestDivErrors(t *testing.T) {
	b := newStub(noPLL, 0)
	_, err := NewDiv(b, "dout_wide", 0, "p", regs.Field{Reg: 0, Shift: 0, Width: 17}, 0, 0)
	if err == nil {
		t.Errorf("NewDiv with 17-bit field, got no error")
	}
	d, err := NewDiv(b, "dout_test", 0, "p", regs.Field{Reg: 0, Shift: 0, Width: 3}, 0, 0)
	if err != nil {
		t.Fatalf("Failed NewDiv: %v", err)
	}
	if _, err := d.SetRate(800000000, 0); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("SetRate(0), got %v, want ErrInvalidRate", err)
	}
	if b.totalWrites() != 0 {
		t.Errorf("SetRate(0) wrote registers")
	}
	for _, err := range []error{d.Enable(), d.Disable(), d.SetParent("p")} {
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("Div operation, got %v, want ErrUnsupported", err)
		}
	}
}

func TestMux(t *testing.T) {
	b := newStub(noPLL, 0)
	parents := []string{"fin_pll", "sclk_bus0_pll_a", "sclk_bus1_pll_a"}
	m, err := NewMux(b, "mout_test", 0, parents, regs.Field{Reg: 0x200, Shift: 12, Width: 2}, FlagSetRateParent)
	if err != nil {
		t.Fatalf("Failed NewMux: %v", err)
	}
	p, err := m.Parent()
	if err != nil || p != "fin_pll" {
		t.Errorf("Parent at reset, got %q/%v, want fin_pll", p, err)
	}
	err = m.SetParent("sclk_bus1_pll_a")
	if err != nil {
		t.Fatalf("SetParent failed: %v", err)
	}
	if b.regs[0x200] != 2<<12 {
		t.Errorf("selector register, got %#x, want %#x", b.regs[0x200], 2<<12)
	}
	p, err = m.Parent()
	if err != nil || p != "sclk_bus1_pll_a" {
		t.Errorf("Parent after SetParent, got %q/%v, want sclk_bus1_pll_a", p, err)
	}
	if m.Rate(133000000) != 133000000 {
		t.Errorf("Mux didn't pass its parent rate through")
	}

	writes := b.totalWrites()
	if err := m.SetParent("sclk_bus2_pll_a"); !errors.Is(err, ErrUnknownClock) {
		t.Errorf("SetParent to non-candidate, got %v, want ErrUnknownClock", err)
	}
	if b.totalWrites() != writes {
		t.Errorf("failed SetParent wrote registers")
	}

	b.regs[0x200] = 3 << 12
	if _, err := m.Parent(); !errors.Is(err, ErrUnknownClock) {
		t.Errorf("Parent with selector 3, got %v, want ErrUnknownClock", err)
	}
	if m.Flags() != FlagSetRateParent {
		t.Errorf("Flags, got %v, want %v", m.Flags(), FlagSetRateParent)
	}
	if _, err := m.SetRate(1, 1); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SetRate on mux, got %v, want ErrUnsupported", err)
	}
}

func TestMuxErrors(t *testing.T) {
	b := newStub(noPLL, 0)
	if _, err := NewMux(b, "mout_none", 0, nil, regs.Field{Reg: 0, Shift: 0, Width: 1}, 0); err == nil {
		t.Errorf("NewMux with no parents, got no error")
	}
	if _, err := NewMux(b, "mout_many", 0, []string{"a", "b", "c"}, regs.Field{Reg: 0, Shift: 0, Width: 1}, 0); err == nil {
		t.Errorf("NewMux with 3 parents on a 1-bit selector, got no error")
	}
}

func TestFixedFactor(t *testing.T) {
	f, err := NewFixedFactor("ffac_test_div2", 0, "fout_test_pll", 1, 2)
	if err != nil {
		t.Fatalf("Failed NewFixedFactor: %v", err)
	}
	if got := f.Rate(800000000); got != 400000000 {
		t.Errorf("Rate, got %d, want 400000000", got)
	}
	if _, err := f.SetRate(800000000, 400000000); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SetRate, got %v, want ErrUnsupported", err)
	}
	if !f.IsEnabled() {
		t.Errorf("IsEnabled, got false")
	}
	if _, err := NewFixedFactor("ffac_bad", 0, "p", 1, 0); err == nil {
		t.Errorf("NewFixedFactor with zero divisor, got no error")
	}
}

func TestGate(t *testing.T) {
	b := newStub(noPLL, 0)
	b.regs[0x800] = 0x1
	g := NewGate(b, "aclk_test", 0, "dout_test", 0x800, 5, FlagCritical|FlagIgnoreUnused)
	if g.IsEnabled() {
		t.Errorf("IsEnabled at reset, got true")
	}
	if err := g.Enable(); err != nil {
		t.Fatalf("Enable failed: %v", err)
	}
	if b.regs[0x800] != 0x21 {
		t.Errorf("gate register after Enable, got %#x, want 0x21", b.regs[0x800])
	}
	if !g.IsEnabled() {
		t.Errorf("IsEnabled after Enable, got false")
	}
	g.Disable()
	if b.regs[0x800] != 0x1 {
		t.Errorf("gate register after Disable, got %#x, want 0x1", b.regs[0x800])
	}
	if g.Rate(100000000) != 100000000 {
		t.Errorf("disabled gate didn't report its parent's rate")
	}
	if g.Flags().String() != "critical,ignore-unused" {
		t.Errorf("Flags, got %q", g.Flags())
	}
}
