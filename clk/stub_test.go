package clk

// stubBus is an in-memory register file. The register at con behaves like a
// PLL control word: after it's written, its lock bit reads as clear until it
// has been read lockAfter more times with the enable bit set, or forever if
// lockAfter is negative.
type stubBus struct {
	regs      map[uintptr]uint32
	con       uintptr
	lockAfter int
	polls     int
	writes    map[uintptr]int
}

const noPLL = ^uintptr(0)

func newStub(con uintptr, lockAfter int) *stubBus {
	return &stubBus{
		regs:      make(map[uintptr]uint32),
		con:       con,
		lockAfter: lockAfter,
		writes:    make(map[uintptr]int),
	}
}

func (s *stubBus) Read32(off uintptr) uint32 {
	v := s.regs[off]
	if off != s.con {
		return v
	}
	s.polls++
	v &^= 1 << PLL_LOCK_STAT_SHIFT
	if v&(1<<PLL_ENABLE_SHIFT) != 0 && s.lockAfter >= 0 && s.polls > s.lockAfter {
		v |= 1 << PLL_LOCK_STAT_SHIFT
	}
	return v
}

func (s *stubBus) Write32(off uintptr, val uint32) {
	s.writes[off]++
	if off == s.con {
		val &^= 1 << PLL_LOCK_STAT_SHIFT
		s.polls = 0
	}
	s.regs[off] = val
}

func (s *stubBus) totalWrites() int {
	n := 0
	for _, w := range s.writes {
		n += w
	}
	return n
}

func (s *stubBus) snapshot() map[uintptr]uint32 {
	m := make(map[uintptr]uint32, len(s.regs))
	for k, v := range s.regs {
		m[k] = v
	}
	return m
}
