package exynos7420

import "github.com/Jon-Bright/clkctl/clk"

// CMU_TOP0 register offsets
const (
	MUX_SEL_TOP00           = 0x0200
	MUX_SEL_TOP01           = 0x0204
	MUX_SEL_TOP03           = 0x020C
	MUX_SEL_TOP0_PERIC0     = 0x0230
	MUX_SEL_TOP0_PERIC1     = 0x0234
	MUX_SEL_TOP0_PERIC2     = 0x0238
	MUX_SEL_TOP0_PERIC3     = 0x023C
	DIV_TOP03               = 0x060C
	DIV_TOP0_PERIC0         = 0x0630
	DIV_TOP0_PERIC1         = 0x0634
	DIV_TOP0_PERIC2         = 0x0638
	DIV_TOP0_PERIC3         = 0x063C
	ENABLE_ACLK_TOP03       = 0x080C
	ENABLE_SCLK_TOP0_PERIC0 = 0x0A30
	ENABLE_SCLK_TOP0_PERIC1 = 0x0A34
	ENABLE_SCLK_TOP0_PERIC2 = 0x0A38
	ENABLE_SCLK_TOP0_PERIC3 = 0x0A3C
)

func top0Clocks() []clk.Desc {
	return []clk.Desc{
		mux(0, "mout_top0_bus1_pll_user", []string{"fin_pll", "sclk_bus1_pll_a"}, MUX_SEL_TOP00, 12, 1),
		mux(0, "mout_top0_cc_pll_user", []string{"fin_pll", "sclk_cc_pll_a"}, MUX_SEL_TOP00, 8, 1),
		mux(0, "mout_top0_bus0_pll_user", []string{"fin_pll", "sclk_bus0_pll_a"}, MUX_SEL_TOP00, 16, 1),
		mux(0, "mout_top0_mfc_pll_user", []string{"fin_pll", "sclk_mfc_pll_a"}, MUX_SEL_TOP00, 4, 1),
		ffactor(0, "ffac_top0_bus0_pll_div2", "mout_top0_bus0_pll_user", 1, 2),
		ffactor(0, "ffac_top0_bus1_pll_div2", "mout_top0_bus1_pll_user", 1, 2),
		ffactor(0, "ffac_top0_cc_pll_div2", "mout_top0_cc_pll_user", 1, 2),
		ffactor(0, "ffac_top0_mfc_pll_div2", "mout_top0_mfc_pll_user", 1, 2),
		mux(0, "mout_top0_bus1_pll_half", []string{"mout_top0_bus1_pll_user", "ffac_top0_bus1_pll_div2"}, MUX_SEL_TOP01, 12, 1),
		mux(0, "mout_top0_cc_pll_half", []string{"mout_top0_cc_pll_user", "ffac_top0_cc_pll_div2"}, MUX_SEL_TOP01, 8, 1),
		mux(0, "mout_top0_aud_pll_user", []string{"fin_pll", "sclk_aud_pll"}, MUX_SEL_TOP00, 0, 1),
		mux(0, "mout_top0_bus0_pll_half", []string{"mout_top0_bus0_pll_user", "ffac_top0_bus0_pll_div2"}, MUX_SEL_TOP01, 16, 1),
		mux(0, "mout_top0_mfc_pll_half", []string{"mout_top0_mfc_pll_user", "ffac_top0_mfc_pll_div2"}, MUX_SEL_TOP01, 4, 1),
		mux(0, "mout_aclk_peric1_66", moutTop0Group1, MUX_SEL_TOP03, 12, 2),
		mux(0, "mout_aclk_peric0_66", moutTop0Group1, MUX_SEL_TOP03, 20, 2),
		mux(0, "mout_sclk_spdif", []string{"ioclk_audiocdclk0", "ioclk_audiocdclk1", "ioclk_spdif_extclk", "mout_top0_aud_pll_user", "mout_top0_bus0_pll_half", "mout_top0_bus1_pll_half"}, MUX_SEL_TOP0_PERIC0, 4, 3),
		mux(0, "mout_sclk_pcm1", moutTop0Group4, MUX_SEL_TOP0_PERIC0, 8, 2),
		mux(0, "mout_sclk_i2s1", moutTop0Group4, MUX_SEL_TOP0_PERIC0, 20, 2),
		mux(0, "mout_sclk_spi1", moutTop0Group1, MUX_SEL_TOP0_PERIC1, 8, 2),
		mux(0, "mout_sclk_spi0", moutTop0Group1, MUX_SEL_TOP0_PERIC1, 20, 2),
		mux(0, "mout_sclk_spi3", moutTop0Group1, MUX_SEL_TOP0_PERIC2, 8, 2),
		mux(0, "mout_sclk_spi2", moutTop0Group1, MUX_SEL_TOP0_PERIC2, 20, 2),
		mux(0, "mout_sclk_uart3", moutTop0Group1, MUX_SEL_TOP0_PERIC3, 4, 2),
		mux(0, "mout_sclk_uart2", moutTop0Group1, MUX_SEL_TOP0_PERIC3, 8, 2),
		mux(0, "mout_sclk_uart1", moutTop0Group1, MUX_SEL_TOP0_PERIC3, 12, 2),
		mux(0, "mout_sclk_uart0", moutTop0Group1, MUX_SEL_TOP0_PERIC3, 16, 2),
		mux(0, "mout_sclk_spi4", moutTop0Group1, MUX_SEL_TOP0_PERIC3, 20, 2),
		div(DOUT_ACLK_PERIC1, "dout_aclk_peric1_66", "mout_aclk_peric1_66", DIV_TOP03, 12, 6),
		div(DOUT_ACLK_PERIC0, "dout_aclk_peric0_66", "mout_aclk_peric0_66", DIV_TOP03, 20, 6),
		div(0, "dout_sclk_spdif", "mout_sclk_spdif", DIV_TOP0_PERIC0, 4, 4),
		div(0, "dout_sclk_pcm1", "mout_sclk_pcm1", DIV_TOP0_PERIC0, 8, 12),
		div(0, "dout_sclk_i2s1", "mout_sclk_i2s1", DIV_TOP0_PERIC0, 20, 10),
		div(0, "dout_sclk_spi1", "mout_sclk_spi1", DIV_TOP0_PERIC1, 8, 12),
		div(0, "dout_sclk_spi0", "mout_sclk_spi0", DIV_TOP0_PERIC1, 20, 12),
		div(0, "dout_sclk_spi3", "mout_sclk_spi3", DIV_TOP0_PERIC2, 8, 12),
		div(0, "dout_sclk_spi2", "mout_sclk_spi2", DIV_TOP0_PERIC2, 20, 12),
		div(0, "dout_sclk_uart3", "mout_sclk_uart3", DIV_TOP0_PERIC3, 4, 4),
		div(0, "dout_sclk_uart2", "mout_sclk_uart2", DIV_TOP0_PERIC3, 8, 4),
		div(0, "dout_sclk_uart1", "mout_sclk_uart1", DIV_TOP0_PERIC3, 12, 4),
		div(0, "dout_sclk_uart0", "mout_sclk_uart0", DIV_TOP0_PERIC3, 16, 4),
		div(0, "dout_sclk_spi4", "mout_sclk_spi4", DIV_TOP0_PERIC3, 20, 12),
		gateF(CLK_ACLK_PERIC0_66, "aclk_peric0_66", "dout_aclk_peric0_66", ENABLE_ACLK_TOP03, 20, clk.FlagSetRateParent),
		gateF(CLK_ACLK_PERIC1_66, "aclk_peric1_66", "dout_aclk_peric1_66", ENABLE_ACLK_TOP03, 12, clk.FlagSetRateParent),
		gateF(CLK_SCLK_SPDIF, "sclk_spdif", "dout_sclk_spdif", ENABLE_SCLK_TOP0_PERIC0, 4, clk.FlagSetRateParent),
		gateF(CLK_SCLK_PCM1, "sclk_pcm1", "dout_sclk_pcm1", ENABLE_SCLK_TOP0_PERIC0, 8, clk.FlagSetRateParent),
		gateF(CLK_SCLK_I2S1, "sclk_i2s1", "dout_sclk_i2s1", ENABLE_SCLK_TOP0_PERIC0, 20, clk.FlagSetRateParent),
		gateF(CLK_SCLK_SPI1, "sclk_spi1", "dout_sclk_spi1", ENABLE_SCLK_TOP0_PERIC1, 8, clk.FlagSetRateParent),
		gateF(CLK_SCLK_SPI0, "sclk_spi0", "dout_sclk_spi0", ENABLE_SCLK_TOP0_PERIC1, 20, clk.FlagSetRateParent),
		gateF(CLK_SCLK_SPI3, "sclk_spi3", "dout_sclk_spi3", ENABLE_SCLK_TOP0_PERIC2, 8, clk.FlagSetRateParent),
		gateF(CLK_SCLK_SPI2, "sclk_spi2", "dout_sclk_spi2", ENABLE_SCLK_TOP0_PERIC2, 20, clk.FlagSetRateParent),
		gate(CLK_SCLK_UART3, "sclk_uart3", "dout_sclk_uart3", ENABLE_SCLK_TOP0_PERIC3, 4),
		gate(CLK_SCLK_UART2, "sclk_uart2", "dout_sclk_uart2", ENABLE_SCLK_TOP0_PERIC3, 8),
		gate(CLK_SCLK_UART1, "sclk_uart1", "dout_sclk_uart1", ENABLE_SCLK_TOP0_PERIC3, 12),
		gate(CLK_SCLK_UART0, "sclk_uart0", "dout_sclk_uart0", ENABLE_SCLK_TOP0_PERIC3, 16),
		gateF(CLK_SCLK_SPI4, "sclk_spi4", "dout_sclk_spi4", ENABLE_SCLK_TOP0_PERIC3, 20, clk.FlagSetRateParent),
	}
}
