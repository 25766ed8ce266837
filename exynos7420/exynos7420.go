// Package exynos7420 holds the clock tables of the Samsung Exynos7420: eleven
// CMUs whose clocks feed one another by name, rooted at a 24MHz crystal.
package exynos7420

import (
	"github.com/Jon-Bright/clkctl/clk"
	"github.com/Jon-Bright/clkctl/cmu"
)

const MHz = 1000000

const (
	COMPATIBLE     = "samsung,exynos7420"
	CMU_COMPATIBLE = "samsung,exynos7-clock-" // + domain name
)

// Physical CMU bases. CMU_MSCL has no fixed base; it only comes from the
// device tree.
const (
	CMU_TOPC_BASE   = 0x10570000
	CMU_TOP0_BASE   = 0x105D0000
	CMU_TOP1_BASE   = 0x105E0000
	CMU_CCORE_BASE  = 0x105B0000
	CMU_PERIC0_BASE = 0x13610000
	CMU_PERIC1_BASE = 0x14C80000
	CMU_PERIS_BASE  = 0x10040000
	CMU_FSYS0_BASE  = 0x10E90000
	CMU_FSYS1_BASE  = 0x156E0000
	CMU_AUD_BASE    = 0x114C0000
)

var pll1460x24MHz = &clk.RateTable{
	Fin: 24 * MHz,
	Rates: []clk.PLLRate{
		{Rate: 491519897, M: 20, P: 1, S: 0, K: 31457},
	},
}

// Parent lists shared by several muxes
var (
	moutTopcGroup2 = []string{"mout_topc_bus0_pll_half", "mout_topc_bus1_pll_half", "mout_topc_cc_pll_half", "mout_topc_mfc_pll_half"}
	moutTop0Group1 = []string{"mout_top0_bus0_pll_half", "mout_top0_bus1_pll_half", "mout_top0_cc_pll_half", "mout_top0_mfc_pll_half"}
	moutTop0Group4 = []string{"ioclk_audiocdclk1", "mout_top0_aud_pll_user", "mout_top0_bus0_pll_half", "mout_top0_bus1_pll_half"}
	moutTop1Group1 = []string{"mout_top1_bus0_pll_half", "mout_top1_bus1_pll_half", "mout_top1_cc_pll_half", "mout_top1_mfc_pll_half"}
	moutFsys1Group = []string{"fin_pll", "fin_pll_26m", "sclk_phy_fsys1_26m"}
	moutAudGroup   = []string{"dout_aud_cdclk", "ioclk_audiocdclk0"}
)

// DefaultInputs returns the SoC's external clock inputs. Only the crystals
// have a known rate; pads and PHY outputs are 0 until a device tree supplies
// one.
func DefaultInputs() map[string]uint64 {
	return map[string]uint64{
		"fin_pll":                           24 * MHz,
		"fin_pll_26m":                       26 * MHz,
		"ioclk_audiocdclk0":                 0,
		"ioclk_audiocdclk1":                 0,
		"ioclk_spdif_extclk":                0,
		"phyclk_usbdrd300_udrd30_phyclock":  0,
		"phyclk_usbdrd300_udrd30_pipe_pclk": 0,
		"phyclk_ufs20_tx0_symbol":           0,
		"phyclk_ufs20_rx0_symbol":           0,
		"phyclk_ufs20_rx1_symbol":           0,
	}
}

// Domains returns freshly built descriptions of every CMU, in the order they
// should be probed.
func Domains() []*cmu.Domain {
	return []*cmu.Domain{
		domain("topc", CMU_TOPC_BASE, topcClocks()),
		domain("top0", CMU_TOP0_BASE, top0Clocks()),
		domain("top1", CMU_TOP1_BASE, top1Clocks()),
		domain("ccore", CMU_CCORE_BASE, ccoreClocks()),
		domain("peric0", CMU_PERIC0_BASE, peric0Clocks()),
		domain("peric1", CMU_PERIC1_BASE, peric1Clocks()),
		domain("peris", CMU_PERIS_BASE, perisClocks()),
		domain("fsys0", CMU_FSYS0_BASE, fsys0Clocks()),
		domain("fsys1", CMU_FSYS1_BASE, fsys1Clocks()),
		domain("mscl", 0, msclClocks()),
		domain("aud", CMU_AUD_BASE, audClocks()),
	}
}

func domain(name string, base uintptr, clocks []clk.Desc) *cmu.Domain {
	return &cmu.Domain{
		Name:       name,
		Compatible: CMU_COMPATIBLE + name,
		Base:       base,
		Clocks:     clocks,
	}
}

func pll(typ clk.PLLType, id clk.ID, name, parent string, lock, con uintptr, table *clk.RateTable) clk.Desc {
	return clk.PLLDesc{Type: typ, ID: id, Name: name, Parent: parent, Lock: lock, Con: con, Table: table}
}

func mux(id clk.ID, name string, parents []string, reg uintptr, shift, width uint) clk.Desc {
	return muxF(id, name, parents, reg, shift, width, 0)
}

func muxF(id clk.ID, name string, parents []string, reg uintptr, shift, width uint, flags clk.Flags) clk.Desc {
	return clk.MuxDesc{ID: id, Name: name, Parents: parents, Reg: reg, Shift: shift, Width: width, Flags: flags}
}

func div(id clk.ID, name, parent string, reg uintptr, shift, width uint) clk.Desc {
	return clk.DivDesc{ID: id, Name: name, Parent: parent, Reg: reg, Shift: shift, Width: width}
}

func ffactor(id clk.ID, name, parent string, mult, divisor uint64) clk.Desc {
	return clk.FixedFactorDesc{ID: id, Name: name, Parent: parent, Mult: mult, Div: divisor}
}

func gate(id clk.ID, name, parent string, reg uintptr, bit uint) clk.Desc {
	return gateF(id, name, parent, reg, bit, 0)
}

func gateF(id clk.ID, name, parent string, reg uintptr, bit uint, flags clk.Flags) clk.Desc {
	return clk.GateDesc{ID: id, Name: name, Parent: parent, Reg: reg, Bit: bit, Flags: flags}
}
