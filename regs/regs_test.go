package regs

import (
	"encoding/binary"
	"io/ioutil"
	"os"
	"strings"
	"testing"
)

type mapBus map[uintptr]uint32

func (m mapBus) Read32(off uintptr) uint32       { return m[off] }
func (m mapBus) Write32(off uintptr, val uint32) { m[off] = val }

func TestFieldGetSet(t *testing.T) {
	tests := []struct {
		f     Field
		start uint32
		val   uint32
		reg   uint32
		get   uint32
	}{
		{Field{0x100, 16, 10}, 0x00000000, 20, 0x00140000, 20},
		{Field{0x100, 8, 6}, 0xFFFFFFFF, 1, 0xFFFFC1FF, 1},
		{Field{0x100, 0, 3}, 0x80140102, 5, 0x80140105, 5},
		{Field{0x100, 28, 4}, 0x0FFFFFFF, 0x1F, 0xFFFFFFFF, 0xF}, // Value truncated to width
		{Bit(0x100, 31), 0x00000000, 1, 0x80000000, 1},
		{Field{0x100, 0, 32}, 0x12345678, 0xCAFEF00D, 0xCAFEF00D, 0xCAFEF00D},
	}
	for _, test := range tests {
		b := mapBus{0x100: test.start}
		test.f.Set(b, test.val)
		if b[0x100] != test.reg {
			t.Errorf("%v.Set(%#x) on %#08x, got reg %#08x, want %#08x", test.f, test.val, test.start, b[0x100], test.reg)
		}
		if g := test.f.Get(b); g != test.get {
			t.Errorf("%v.Get, got %#x, want %#x", test.f, g, test.get)
		}
	}
}

func TestFieldMax(t *testing.T) {
	tests := []struct {
		width uint
		max   uint32
	}{
		{1, 1},
		{4, 0xF},
		{10, 0x3FF},
		{16, 0xFFFF},
		{32, 0xFFFFFFFF},
	}
	for _, test := range tests {
		f := Field{Width: test.width}
		if f.Max() != test.max {
			t.Errorf("width %d max, got %#x, want %#x", test.width, f.Max(), test.max)
		}
	}
}

func TestAnonRegion(t *testing.T) {
	r, err := NewAnon(0x10570000, 0x1000)
	if err != nil {
		t.Fatalf("Failed NewAnon: %v", err)
	}
	defer r.Close()
	if r.Phys() != 0x10570000 || r.Size() != 0x1000 {
		t.Errorf("region, got %08X+%#x, want 10570000+0x1000", r.Phys(), r.Size())
	}
	if v := r.Read32(0x140); v != 0 {
		t.Errorf("fresh register, got %#x, want 0", v)
	}
	r.Write32(0x140, 0x80140100)
	Field{0x140, 0, 3}.Set(r, 2)
	if v := r.Read32(0x140); v != 0x80140102 {
		t.Errorf("register after RMW, got %#x, want 0x80140102", v)
	}
}

func TestRegionBounds(t *testing.T) {
	r, err := NewAnon(0, 0x10)
	if err != nil {
		t.Fatalf("Failed NewAnon: %v", err)
	}
	defer r.Close()
	for _, off := range []uintptr{0x10, 0x2, 0x100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Read32(%#x) on 0x10 region didn't panic", off)
				}
			}()
			r.Read32(off)
		}()
	}
}

func TestRegionClosed(t *testing.T) {
	r, err := NewAnon(0x10570000, 0x10)
	if err != nil {
		t.Fatalf("Failed NewAnon: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Failed Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close, got %v", err)
	}
	defer func() {
		msg, _ := recover().(string)
		if !strings.Contains(msg, "closed") {
			t.Errorf("Read32 after Close, got panic %q, want one naming the closed region", msg)
		}
	}()
	r.Read32(0)
}

func TestMapFileOffset(t *testing.T) {
	f, err := ioutil.TempFile("", "regs")
	if err != nil {
		t.Fatalf("Couldn't create temp file: %v", err)
	}
	defer os.Remove(f.Name())
	b := make([]byte, 2*PAGE_SIZE)
	binary.LittleEndian.PutUint32(b[PAGE_SIZE+0x18:], 0xDEADBEEF)
	if _, err := f.Write(b); err != nil {
		t.Fatalf("Couldn't write temp file: %v", err)
	}
	f.Close()

	// Not page-aligned: the mapping starts at PAGE_SIZE and registers at +0x10
	r, err := mapFile(f.Name(), PAGE_SIZE+0x10, 0x20)
	if err != nil {
		t.Fatalf("Failed mapFile: %v", err)
	}
	defer r.Close()
	if v := r.Read32(0x8); v != 0xDEADBEEF {
		t.Errorf("Read32(0x8), got %#x, want 0xDEADBEEF", v)
	}
}

func TestMapMissingFile(t *testing.T) {
	_, err := mapFile("/nonexistent/mem", 0x10570000, 0x1000)
	if err == nil {
		t.Errorf("mapFile on missing file, got nil error")
	}
}
