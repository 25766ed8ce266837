package exynos7420

import "github.com/Jon-Bright/clkctl/clk"

// CMU_TOP1 register offsets
const (
	MUX_SEL_TOP10           = 0x0200
	MUX_SEL_TOP11           = 0x0204
	MUX_SEL_TOP13           = 0x020C
	MUX_SEL_TOP1_FSYS0      = 0x0224
	MUX_SEL_TOP1_FSYS1      = 0x0228
	MUX_SEL_TOP1_FSYS11     = 0x022C
	DIV_TOP13               = 0x060C
	DIV_TOP1_FSYS0          = 0x0624
	DIV_TOP1_FSYS1          = 0x0628
	DIV_TOP1_FSYS11         = 0x062C
	ENABLE_ACLK_TOP13       = 0x080C
	ENABLE_SCLK_TOP1_FSYS0  = 0x0A24
	ENABLE_SCLK_TOP1_FSYS1  = 0x0A28
	ENABLE_SCLK_TOP1_FSYS11 = 0x0A2C
)

func top1Clocks() []clk.Desc {
	return []clk.Desc{
		mux(0, "mout_top1_mfc_pll_user", []string{"fin_pll", "sclk_mfc_pll_b"}, MUX_SEL_TOP10, 4, 1),
		mux(0, "mout_top1_cc_pll_user", []string{"fin_pll", "sclk_cc_pll_b"}, MUX_SEL_TOP10, 8, 1),
		mux(0, "mout_top1_bus1_pll_user", []string{"fin_pll", "sclk_bus1_pll_b"}, MUX_SEL_TOP10, 12, 1),
		mux(0, "mout_top1_bus0_pll_user", []string{"fin_pll", "sclk_bus0_pll_b"}, MUX_SEL_TOP10, 16, 1),
		mux(0, "mout_top1_mfc_pll_half", []string{"mout_top1_mfc_pll_user", "ffac_top1_mfc_pll_div2"}, MUX_SEL_TOP11, 4, 1),
		mux(0, "mout_top1_cc_pll_half", []string{"mout_top1_cc_pll_user", "ffac_top1_cc_pll_div2"}, MUX_SEL_TOP11, 8, 1),
		mux(0, "mout_top1_bus1_pll_half", []string{"mout_top1_bus1_pll_user", "ffac_top1_bus1_pll_div2"}, MUX_SEL_TOP11, 12, 1),
		mux(0, "mout_top1_bus0_pll_half", []string{"mout_top1_bus0_pll_user", "ffac_top1_bus0_pll_div2"}, MUX_SEL_TOP11, 16, 1),
		mux(0, "mout_aclk_fsys1_200", moutTop1Group1, MUX_SEL_TOP13, 24, 2),
		mux(0, "mout_aclk_fsys0_200", moutTop1Group1, MUX_SEL_TOP13, 28, 2),
		mux(0, "mout_sclk_phy_fsys0_26m", moutTop1Group1, MUX_SEL_TOP1_FSYS0, 0, 2),
		mux(0, "mout_sclk_mmc2", moutTop1Group1, MUX_SEL_TOP1_FSYS0, 16, 2),
		mux(0, "mout_sclk_usbdrd300", moutTop1Group1, MUX_SEL_TOP1_FSYS0, 28, 2),
		mux(0, "mout_sclk_phy_fsys1", moutTop1Group1, MUX_SEL_TOP1_FSYS1, 0, 2),
		mux(0, "mout_sclk_ufsunipro20", moutTop1Group1, MUX_SEL_TOP1_FSYS1, 16, 2),
		mux(0, "mout_sclk_mmc1", moutTop1Group1, MUX_SEL_TOP1_FSYS11, 0, 2),
		mux(0, "mout_sclk_mmc0", moutTop1Group1, MUX_SEL_TOP1_FSYS11, 12, 2),
		mux(0, "mout_sclk_phy_fsys1_26m", moutTop1Group1, MUX_SEL_TOP1_FSYS11, 24, 2),
		div(DOUT_ACLK_FSYS1_200, "dout_aclk_fsys1_200", "mout_aclk_fsys1_200", DIV_TOP13, 24, 4),
		div(DOUT_ACLK_FSYS0_200, "dout_aclk_fsys0_200", "mout_aclk_fsys0_200", DIV_TOP13, 28, 4),
		div(DOUT_SCLK_PHY_FSYS1, "dout_sclk_phy_fsys1", "mout_sclk_phy_fsys1", DIV_TOP1_FSYS1, 0, 6),
		div(DOUT_SCLK_UFSUNIPRO20, "dout_sclk_ufsunipro20", "mout_sclk_ufsunipro20", DIV_TOP1_FSYS1, 16, 6),
		div(DOUT_SCLK_MMC2, "dout_sclk_mmc2", "mout_sclk_mmc2", DIV_TOP1_FSYS0, 16, 10),
		div(0, "dout_sclk_usbdrd300", "mout_sclk_usbdrd300", DIV_TOP1_FSYS0, 28, 4),
		div(DOUT_SCLK_MMC1, "dout_sclk_mmc1", "mout_sclk_mmc1", DIV_TOP1_FSYS11, 0, 10),
		div(DOUT_SCLK_MMC0, "dout_sclk_mmc0", "mout_sclk_mmc0", DIV_TOP1_FSYS11, 12, 10),
		div(DOUT_SCLK_PHY_FSYS1_26M, "dout_sclk_phy_fsys1_26m", "mout_sclk_phy_fsys1_26m", DIV_TOP1_FSYS11, 24, 6),
		gateF(CLK_SCLK_MMC2, "sclk_mmc2", "dout_sclk_mmc2", ENABLE_SCLK_TOP1_FSYS0, 16, clk.FlagSetRateParent),
		gate(0, "sclk_usbdrd300", "dout_sclk_usbdrd300", ENABLE_SCLK_TOP1_FSYS0, 28),
		gateF(CLK_SCLK_PHY_FSYS1, "sclk_phy_fsys1", "dout_sclk_phy_fsys1", ENABLE_SCLK_TOP1_FSYS1, 0, clk.FlagSetRateParent),
		gateF(CLK_SCLK_UFSUNIPRO20, "sclk_ufsunipro20", "dout_sclk_ufsunipro20", ENABLE_SCLK_TOP1_FSYS1, 16, clk.FlagSetRateParent),
		gateF(CLK_SCLK_MMC1, "sclk_mmc1", "dout_sclk_mmc1", ENABLE_SCLK_TOP1_FSYS11, 0, clk.FlagSetRateParent),
		gateF(CLK_SCLK_MMC0, "sclk_mmc0", "dout_sclk_mmc0", ENABLE_SCLK_TOP1_FSYS11, 12, clk.FlagSetRateParent),
		gateF(CLK_ACLK_FSYS0_200, "aclk_fsys0_200", "dout_aclk_fsys0_200", ENABLE_ACLK_TOP13, 28, clk.FlagSetRateParent|clk.FlagCritical),
		gateF(CLK_ACLK_FSYS1_200, "aclk_fsys1_200", "dout_aclk_fsys1_200", ENABLE_ACLK_TOP13, 24, clk.FlagSetRateParent),
		gateF(CLK_SCLK_PHY_FSYS1_26M, "sclk_phy_fsys1_26m", "dout_sclk_phy_fsys1_26m", ENABLE_SCLK_TOP1_FSYS11, 24, clk.FlagSetRateParent),
		ffactor(0, "ffac_top1_bus0_pll_div2", "mout_top1_bus0_pll_user", 1, 2),
		ffactor(0, "ffac_top1_bus1_pll_div2", "mout_top1_bus1_pll_user", 1, 2),
		ffactor(0, "ffac_top1_cc_pll_div2", "mout_top1_cc_pll_user", 1, 2),
		ffactor(0, "ffac_top1_mfc_pll_div2", "mout_top1_mfc_pll_user", 1, 2),
	}
}
