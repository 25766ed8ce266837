// Package regs provides 32-bit register access over a mapped register block
// and typed bit-field descriptors on top of it.
package regs

import "fmt"

// Bus is a block of 32-bit registers addressed by byte offset from its base.
// Reads and writes are ordered and uncached; a write is visible to the next
// read.
type Bus interface {
	Read32(off uintptr) uint32
	Write32(off uintptr, val uint32)
}

// Field is a bit-field of Width bits starting at bit Shift within the
// register at byte offset Reg.
type Field struct {
	Reg   uintptr
	Shift uint
	Width uint
}

// Bit returns the single-bit field at bit of reg.
func Bit(reg uintptr, bit uint) Field {
	return Field{Reg: reg, Shift: bit, Width: 1}
}

// Max is the largest value the field can hold.
func (f Field) Max() uint32 {
	return uint32(1<<f.Width - 1)
}

// Mask is the field's bits in register position.
func (f Field) Mask() uint32 {
	return f.Max() << f.Shift
}

// Extract pulls the field's value out of an already-read register value.
func (f Field) Extract(reg uint32) uint32 {
	return (reg >> f.Shift) & f.Max()
}

// Insert returns reg with the field replaced by val.
func (f Field) Insert(reg, val uint32) uint32 {
	return reg&^f.Mask() | (val&f.Max())<<f.Shift
}

func (f Field) Get(b Bus) uint32 {
	return f.Extract(b.Read32(f.Reg))
}

// Set does a read-modify-write of the field, leaving the register's other
// bits alone.
func (f Field) Set(b Bus, val uint32) {
	b.Write32(f.Reg, f.Insert(b.Read32(f.Reg), val))
}

func (f Field) String() string {
	if f.Width == 1 {
		return fmt.Sprintf("%#x[%d]", f.Reg, f.Shift)
	}
	return fmt.Sprintf("%#x[%d:%d]", f.Reg, f.Shift+f.Width-1, f.Shift)
}
