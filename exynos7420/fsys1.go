package exynos7420

import "github.com/Jon-Bright/clkctl/clk"

// CMU_FSYS1 register offsets
const (
	MUX_SEL_FSYS10     = 0x0200
	MUX_SEL_FSYS11     = 0x0204
	MUX_SEL_FSYS12     = 0x0208
	DIV_FSYS1          = 0x0600
	ENABLE_ACLK_FSYS1  = 0x0800
	ENABLE_PCLK_FSYS1  = 0x0900
	ENABLE_SCLK_FSYS11 = 0x0A04
	ENABLE_SCLK_FSYS12 = 0x0A08
	ENABLE_SCLK_FSYS13 = 0x0A0C
)

func fsys1Clocks() []clk.Desc {
	return []clk.Desc{
		mux(0, "mout_aclk_fsys1_200_user", []string{"fin_pll", "aclk_fsys1_200"}, MUX_SEL_FSYS10, 28, 1),
		div(DOUT_PCLK_FSYS1, "dout_pclk_fsys1", "mout_aclk_fsys1_200_user", DIV_FSYS1, 0, 2),
		mux(MOUT_FSYS1_PHYCLK_SEL1, "mout_fsys1_phyclk_sel1", moutFsys1Group, MUX_SEL_FSYS10, 16, 2),
		mux(0, "mout_phyclk_ufs20_rx1_symbol_user", []string{"fin_pll", "phyclk_ufs20_rx1_symbol"}, MUX_SEL_FSYS12, 16, 1),
		mux(0, "mout_sclk_ufsunipro20_user", []string{"fin_pll", "sclk_ufsunipro20"}, MUX_SEL_FSYS11, 20, 1),
		mux(0, "mout_phyclk_ufs20_tx0_symbol_user", []string{"fin_pll", "phyclk_ufs20_tx0_symbol"}, MUX_SEL_FSYS12, 28, 1),
		mux(0, "mout_phyclk_ufs20_rx0_symbol_user", []string{"fin_pll", "phyclk_ufs20_rx0_symbol"}, MUX_SEL_FSYS12, 24, 1),
		mux(0, "mout_sclk_mmc1_user", []string{"fin_pll", "sclk_mmc1"}, MUX_SEL_FSYS11, 24, 1),
		mux(0, "mout_fsys1_phyclk_sel0", moutFsys1Group, MUX_SEL_FSYS10, 20, 2),
		mux(0, "mout_sclk_mmc0_user", []string{"fin_pll", "sclk_mmc0"}, MUX_SEL_FSYS11, 28, 1),
		gate(SCLK_UFSUNIPRO20_USER, "sclk_ufsunipro20_user", "mout_sclk_ufsunipro20_user", ENABLE_SCLK_FSYS11, 20),
		gate(ACLK_MMC1, "aclk_mmc1", "mout_aclk_fsys1_200_user", ENABLE_ACLK_FSYS1, 29),
		gate(ACLK_MMC0, "aclk_mmc0", "mout_aclk_fsys1_200_user", ENABLE_ACLK_FSYS1, 30),
		gate(ACLK_UFS20_LINK, "aclk_ufs20_link", "dout_pclk_fsys1", ENABLE_ACLK_FSYS1, 31),
		gate(PCLK_GPIO_FSYS1, "pclk_gpio_fsys1", "mout_aclk_fsys1_200_user", ENABLE_PCLK_FSYS1, 30),
		gateF(OSCCLK_PHY_CLKOUT_EMBEDDED_COMBO_PHY, "oscclk_phy_clkout_embedded_combo_phy", "fin_pll", ENABLE_SCLK_FSYS12, 4, clk.FlagIgnoreUnused),
		gate(PHYCLK_UFS20_TX0_SYMBOL_USER, "phyclk_ufs20_tx0_symbol_user", "mout_phyclk_ufs20_tx0_symbol_user", ENABLE_SCLK_FSYS12, 28),
		gateF(SCLK_COMBO_PHY_EMBEDDED_26M, "sclk_combo_phy_embedded_26m", "mout_fsys1_phyclk_sel1", ENABLE_SCLK_FSYS13, 24, clk.FlagIgnoreUnused),
		gate(PHYCLK_UFS20_RX0_SYMBOL_USER, "phyclk_ufs20_rx0_symbol_user", "mout_phyclk_ufs20_rx0_symbol_user", ENABLE_SCLK_FSYS12, 24),
		gate(PHYCLK_UFS20_RX1_SYMBOL_USER, "phyclk_ufs20_rx1_symbol_user", "mout_phyclk_ufs20_rx1_symbol_user", ENABLE_SCLK_FSYS12, 16),
	}
}
