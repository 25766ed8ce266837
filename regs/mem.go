package regs

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	mmap "github.com/edsrzf/mmap-go"
)

const (
	MEM_FILE  = "/dev/mem"
	PAGE_SIZE = 4096
)

// Region is a register block mapped into our address space. It satisfies Bus.
type Region struct {
	buf  mmap.MMap
	offs uintptr
	phys uintptr
	size uintptr
}

// Map opens /dev/mem and maps size bytes of registers starting at physAddr.
func Map(physAddr uintptr, size int) (*Region, error) {
	return mapFile(MEM_FILE, physAddr, size)
}

// mapFile uses mmap to map a given physical address of name into our address
// space. Since the mapping has to start at a page boundary, the physical
// address is rounded down to the nearest page boundary and the difference is
// kept as the offset of the first register.
func mapFile(name string, physAddr uintptr, size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("couldn't map %d bytes at %08X: bad size", size, physAddr)
	}
	f, err := os.OpenFile(name, os.O_RDWR|os.O_SYNC, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s: %v", name, err)
	}
	defer f.Close() // The mapping outlives the descriptor

	pagemask := ^uintptr(PAGE_SIZE - 1)
	mapAddr := physAddr & pagemask
	msize := size + int(physAddr-mapAddr)
	mm, err := mmap.MapRegion(f, msize, mmap.RDWR, 0, int64(mapAddr))
	if err != nil {
		return nil, fmt.Errorf("couldn't map region (%08X, %v): %v", physAddr, size, err)
	}
	return &Region{
		buf:  mm,
		offs: physAddr - mapAddr,
		phys: physAddr,
		size: uintptr(size),
	}, nil
}

// NewAnon maps size bytes of zeroed anonymous memory laid out like a register
// block at physAddr. Nothing is backed by hardware; it's for simulation.
func NewAnon(physAddr uintptr, size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("couldn't map %d anonymous bytes: bad size", size)
	}
	mm, err := mmap.MapRegion(nil, size, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, fmt.Errorf("couldn't map anonymous region of %d bytes: %v", size, err)
	}
	return &Region{buf: mm, phys: physAddr, size: uintptr(size)}, nil
}

func (r *Region) Phys() uintptr { return r.phys }
func (r *Region) Size() int     { return int(r.size) }

func (r *Region) reg(off uintptr) *uint32 {
	if r.buf == nil {
		panic(fmt.Sprintf("register offset %#x accessed after region %08X was closed", off, r.phys))
	}
	if off%4 != 0 || off+4 > r.size {
		panic(fmt.Sprintf("register offset %#x outside region %08X+%#x", off, r.phys, r.size))
	}
	return (*uint32)(unsafe.Pointer(&r.buf[r.offs+off]))
}

func (r *Region) Read32(off uintptr) uint32 {
	return atomic.LoadUint32(r.reg(off))
}

func (r *Region) Write32(off uintptr, val uint32) {
	atomic.StoreUint32(r.reg(off), val)
}

func (r *Region) Close() error {
	if r.buf == nil {
		return nil
	}
	err := r.buf.Unmap()
	r.buf = nil
	return err
}
