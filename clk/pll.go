package clk

import (
	"fmt"
	"time"

	"github.com/Jon-Bright/clkctl/regs"
	"github.com/jpillora/backoff"
)

type PLLType int

const (
	PLL1451x PLLType = iota
	PLL1452x
	PLL1460x
)

func (t PLLType) String() string {
	switch t {
	case PLL1451x:
		return "pll_1451x"
	case PLL1452x:
		return "pll_1452x"
	case PLL1460x:
		return "pll_1460x"
	default:
		return fmt.Sprintf("PLLType(%d)", int(t))
	}
}

// Fractional reports whether the type carries a K word at con+4.
func (t PLLType) Fractional() bool {
	return t == PLL1460x
}

// All three types share the con0 layout. The fractional type adds con1.
const (
	PLL_MDIV_SHIFT      = 16
	PLL_MDIV_WIDTH      = 10
	PLL_PDIV_SHIFT      = 8
	PLL_PDIV_WIDTH      = 6
	PLL_SDIV_SHIFT      = 0
	PLL_SDIV_WIDTH      = 3
	PLL_LOCK_STAT_SHIFT = 29
	PLL_ENABLE_SHIFT    = 31

	PLL_CON1_OFFSET = 0x4
	PLL_KDIV_SHIFT  = 0
	PLL_KDIV_WIDTH  = 16
	PLL_MFR_SHIFT   = 16
	PLL_MFR_WIDTH   = 6
	PLL_MRR_SHIFT   = 24
	PLL_MRR_WIDTH   = 5

	PLL_INT_LOCK_FACTOR  = 270 // Lock time is up to this many cycles per PDIV
	PLL_FRAC_LOCK_FACTOR = 3000
	PLL_LOCK_MAX         = 0xffff // The lock time field is 16 bits

	PLL_FRAC_BITS = 16
)

const (
	LockTimeout     = 10 * time.Millisecond
	FracLockTimeout = 100 * time.Millisecond
)

func (t PLLType) lockFactor() uint32 {
	if t.Fractional() {
		return PLL_FRAC_LOCK_FACTOR
	}
	return PLL_INT_LOCK_FACTOR
}

func (t PLLType) lockTimeout() time.Duration {
	if t.Fractional() {
		return FracLockTimeout
	}
	return LockTimeout
}

// PLLRate is one row of a rate table: the field values producing Rate from
// the table's reference.
type PLLRate struct {
	Rate uint64
	M    uint32
	P    uint32
	S    uint32
	K    uint32
	MFR  uint32
	MRR  uint32
}

// RateTable lists the rates a PLL may be set to, for one reference frequency.
type RateTable struct {
	Fin   uint64
	Rates []PLLRate
}

// CalcRate is the PLL output for the given fields. Integer types ignore k.
func CalcRate(fin uint64, m, p, s, k uint32, fractional bool) uint64 {
	div := uint64(p) << s
	if div == 0 {
		return 0
	}
	if !fractional {
		return fin * uint64(m) / div
	}
	return (fin * (uint64(m)<<PLL_FRAC_BITS + uint64(k)) / div) >> PLL_FRAC_BITS
}

// Check verifies every entry fits the type's fields and really produces its
// declared rate from t.Fin.
func (t *RateTable) Check(typ PLLType) error {
	fits := func(v uint32, width uint) bool { return v < 1<<width }
	for _, r := range t.Rates {
		switch {
		case r.P == 0:
			return fmt.Errorf("rate %d: zero pdiv: %w", r.Rate, ErrInvalidRate)
		case !fits(r.M, PLL_MDIV_WIDTH) || !fits(r.P, PLL_PDIV_WIDTH) || !fits(r.S, PLL_SDIV_WIDTH):
			return fmt.Errorf("rate %d: m/p/s %d/%d/%d don't fit: %w", r.Rate, r.M, r.P, r.S, ErrInvalidRate)
		case !typ.Fractional() && (r.K != 0 || r.MFR != 0 || r.MRR != 0):
			return fmt.Errorf("rate %d: fractional fields on %v: %w", r.Rate, typ, ErrInvalidRate)
		case !fits(r.K, PLL_KDIV_WIDTH) || !fits(r.MFR, PLL_MFR_WIDTH) || !fits(r.MRR, PLL_MRR_WIDTH):
			return fmt.Errorf("rate %d: k/mfr/mrr %d/%d/%d don't fit: %w", r.Rate, r.K, r.MFR, r.MRR, ErrInvalidRate)
		}
		if got := CalcRate(t.Fin, r.M, r.P, r.S, r.K, typ.Fractional()); got != r.Rate {
			return fmt.Errorf("rate %d: fields give %d from %d: %w", r.Rate, got, t.Fin, ErrInvalidRate)
		}
	}
	return nil
}

type PLL struct {
	node
	parent  string
	typ     PLLType
	bus     regs.Bus
	lockReg uintptr
	conReg  uintptr
	table   *RateTable
	timeout time.Duration

	mdiv, pdiv, sdiv    regs.Field
	kdiv, mfr, mrr      regs.Field
	enableBit, lockStat regs.Field
}

// NewPLL creates a PLL whose lock-time register is at lockReg and control
// word(s) at conReg. table may be nil, in which case the PLL can be read but
// not set.
func NewPLL(bus regs.Bus, name string, id ID, parent string, typ PLLType, lockReg, conReg uintptr, table *RateTable) (*PLL, error) {
	if typ < PLL1451x || typ > PLL1460x {
		return nil, fmt.Errorf("couldn't create PLL %s: unknown type %v", name, typ)
	}
	p := &PLL{
		node:      node{name: name, id: id},
		parent:    parent,
		typ:       typ,
		bus:       bus,
		lockReg:   lockReg,
		conReg:    conReg,
		timeout:   typ.lockTimeout(),
		mdiv:      regs.Field{Reg: conReg, Shift: PLL_MDIV_SHIFT, Width: PLL_MDIV_WIDTH},
		pdiv:      regs.Field{Reg: conReg, Shift: PLL_PDIV_SHIFT, Width: PLL_PDIV_WIDTH},
		sdiv:      regs.Field{Reg: conReg, Shift: PLL_SDIV_SHIFT, Width: PLL_SDIV_WIDTH},
		kdiv:      regs.Field{Reg: conReg + PLL_CON1_OFFSET, Shift: PLL_KDIV_SHIFT, Width: PLL_KDIV_WIDTH},
		mfr:       regs.Field{Reg: conReg + PLL_CON1_OFFSET, Shift: PLL_MFR_SHIFT, Width: PLL_MFR_WIDTH},
		mrr:       regs.Field{Reg: conReg + PLL_CON1_OFFSET, Shift: PLL_MRR_SHIFT, Width: PLL_MRR_WIDTH},
		enableBit: regs.Bit(conReg, PLL_ENABLE_SHIFT),
		lockStat:  regs.Bit(conReg, PLL_LOCK_STAT_SHIFT),
	}
	if table != nil {
		err := table.Check(typ)
		if err != nil {
			return nil, fmt.Errorf("couldn't create PLL %s: %w", name, err)
		}
		// Our own copy, so the caller can't change it under us
		p.table = &RateTable{Fin: table.Fin, Rates: append([]PLLRate(nil), table.Rates...)}
	}
	return p, nil
}

func (p *PLL) Kind() Kind              { return KindPLL }
func (p *PLL) Type() PLLType           { return p.typ }
func (p *PLL) Parents() []string       { return []string{p.parent} }
func (p *PLL) Parent() (string, error) { return p.parent, nil }

// Regs returns the lock-time and control register offsets.
func (p *PLL) Regs() (lock, con uintptr) { return p.lockReg, p.conReg }

// Table returns the PLL's rate table, nil if it has none.
func (p *PLL) Table() *RateTable {
	if p.table == nil {
		return nil
	}
	return &RateTable{Fin: p.table.Fin, Rates: append([]PLLRate(nil), p.table.Rates...)}
}

// SetLockTimeout overrides how long Enable and SetRate wait for lock.
func (p *PLL) SetLockTimeout(d time.Duration) {
	p.timeout = d
}

func (p *PLL) Rate(parentRate uint64) uint64 {
	con0 := p.bus.Read32(p.conReg)
	var k uint32
	if p.typ.Fractional() {
		k = p.kdiv.Get(p.bus)
	}
	return CalcRate(parentRate, p.mdiv.Extract(con0), p.pdiv.Extract(con0), p.sdiv.Extract(con0), k, p.typ.Fractional())
}

func (p *PLL) lookup(rate uint64) *PLLRate {
	if p.table == nil {
		return nil
	}
	for i := range p.table.Rates {
		if p.table.Rates[i].Rate == rate {
			return &p.table.Rates[i]
		}
	}
	return nil
}

// SetRate reprograms the PLL to a rate from its table. A change of the post
// divider alone is written in place; anything else reloads the lock time,
// rewrites the dividers and, if the PLL is running, waits for it to relock.
func (p *PLL) SetRate(parentRate, target uint64) (uint64, error) {
	r := p.lookup(target)
	if r == nil {
		return 0, fmt.Errorf("couldn't set %s to %d Hz, not in its rate table: %w", p.name, target, ErrInvalidRate)
	}
	frac := p.typ.Fractional()
	rate := CalcRate(parentRate, r.M, r.P, r.S, r.K, frac)

	con0 := p.bus.Read32(p.conReg)
	var con1 uint32
	if frac {
		con1 = p.bus.Read32(p.conReg + PLL_CON1_OFFSET)
	}
	changed := p.mdiv.Extract(con0) != r.M || p.pdiv.Extract(con0) != r.P
	if frac && p.kdiv.Extract(con1) != r.K {
		changed = true
	}
	if !changed {
		p.bus.Write32(p.conReg, p.sdiv.Insert(con0, r.S))
		return rate, nil
	}

	lock := r.P * p.typ.lockFactor()
	if lock > PLL_LOCK_MAX {
		lock = PLL_LOCK_MAX
	}
	p.bus.Write32(p.lockReg, lock)

	con0 = p.mdiv.Insert(con0, r.M)
	con0 = p.pdiv.Insert(con0, r.P)
	con0 = p.sdiv.Insert(con0, r.S)
	p.bus.Write32(p.conReg, con0)
	if frac {
		con1 = p.kdiv.Insert(con1, r.K)
		con1 = p.mfr.Insert(con1, r.MFR)
		con1 = p.mrr.Insert(con1, r.MRR)
		p.bus.Write32(p.conReg+PLL_CON1_OFFSET, con1)
	}

	if p.enableBit.Extract(con0) == 0 {
		// Locks when enabled
		return rate, nil
	}
	err := p.waitLock()
	if err != nil {
		return 0, fmt.Errorf("couldn't set %s to %d Hz: %w", p.name, target, err)
	}
	return rate, nil
}

func (p *PLL) Enable() error {
	p.enableBit.Set(p.bus, 1)
	err := p.waitLock()
	if err != nil {
		return fmt.Errorf("couldn't enable %s: %w", p.name, err)
	}
	return nil
}

func (p *PLL) Disable() error {
	p.enableBit.Set(p.bus, 0)
	return nil
}

func (p *PLL) IsEnabled() bool {
	return p.enableBit.Get(p.bus) == 1
}

func (p *PLL) SetParent(name string) error {
	return unsupported(p, "set parent of")
}

// waitLock polls the lock status bit until it's set or the timeout expires.
func (p *PLL) waitLock() error {
	b := &backoff.Backoff{
		Min:    time.Microsecond,
		Max:    time.Millisecond,
		Factor: 2,
		Jitter: false,
	}
	start := time.Now()
	for {
		if p.lockStat.Get(p.bus) == 1 {
			return nil
		}
		t := time.Now()
		if t.Sub(start) > p.timeout {
			return fmt.Errorf("%s not locked after %v: %w", p.name, t.Sub(start), ErrLockTimeout)
		}
		time.Sleep(b.Duration())
	}
}
