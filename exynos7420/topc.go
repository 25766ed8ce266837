package exynos7420

import "github.com/Jon-Bright/clkctl/clk"

// CMU_TOPC register offsets
const (
	CC_PLL_LOCK       = 0x0000
	BUS0_PLL_LOCK     = 0x0004
	BUS1_DPLL_LOCK    = 0x0008
	MFC_PLL_LOCK      = 0x000C
	AUD_PLL_LOCK      = 0x0010
	CC_PLL_CON0       = 0x0100
	BUS0_PLL_CON0     = 0x0110
	BUS1_DPLL_CON0    = 0x0120
	MFC_PLL_CON0      = 0x0130
	AUD_PLL_CON0      = 0x0140
	MUX_SEL_TOPC0     = 0x0200
	MUX_SEL_TOPC1     = 0x0204
	MUX_SEL_TOPC2     = 0x0208
	MUX_SEL_TOPC3     = 0x020C
	DIV_TOPC0         = 0x0600
	DIV_TOPC1         = 0x0604
	DIV_TOPC3         = 0x060C
	ENABLE_ACLK_TOPC0 = 0x0800
	ENABLE_ACLK_TOPC1 = 0x0804
	ENABLE_SCLK_TOPC1 = 0x0A04
)

func topcClocks() []clk.Desc {
	return []clk.Desc{
		pll(clk.PLL1451x, 0, "fout_bus0_pll", "fin_pll", BUS0_PLL_LOCK, BUS0_PLL_CON0, nil),
		pll(clk.PLL1452x, 0, "fout_cc_pll", "fin_pll", CC_PLL_LOCK, CC_PLL_CON0, nil),
		pll(clk.PLL1452x, 0, "fout_bus1_pll", "fin_pll", BUS1_DPLL_LOCK, BUS1_DPLL_CON0, nil),
		pll(clk.PLL1452x, 0, "fout_mfc_pll", "fin_pll", MFC_PLL_LOCK, MFC_PLL_CON0, nil),
		pll(clk.PLL1460x, FOUT_AUD_PLL, "fout_aud_pll", "fin_pll", AUD_PLL_LOCK, AUD_PLL_CON0, pll1460x24MHz),
		mux(0, "mout_topc_aud_pll", []string{"fin_pll", "fout_aud_pll"}, MUX_SEL_TOPC1, 0, 1),
		mux(0, "mout_topc_bus0_pll", []string{"fin_pll", "fout_bus0_pll"}, MUX_SEL_TOPC0, 0, 1),
		mux(0, "mout_topc_bus1_pll", []string{"fin_pll", "fout_bus1_pll"}, MUX_SEL_TOPC0, 4, 1),
		mux(0, "mout_topc_cc_pll", []string{"fin_pll", "fout_cc_pll"}, MUX_SEL_TOPC0, 8, 1),
		mux(0, "mout_topc_mfc_pll", []string{"fin_pll", "fout_mfc_pll"}, MUX_SEL_TOPC0, 12, 1),
		ffactor(0, "ffac_topc_bus1_pll_div2", "mout_topc_bus1_pll", 1, 2),
		ffactor(0, "ffac_topc_cc_pll_div2", "mout_topc_cc_pll", 1, 2),
		ffactor(0, "ffac_topc_mfc_pll_div2", "mout_topc_mfc_pll", 1, 2),
		ffactor(0, "ffac_topc_bus0_pll_div2", "mout_topc_bus0_pll", 1, 2),
		ffactor(0, "ffac_topc_bus0_pll_div4", "ffac_topc_bus0_pll_div2", 1, 2),
		mux(0, "mout_topc_bus0_pll_half", []string{"mout_topc_bus0_pll", "ffac_topc_bus0_pll_div2", "ffac_topc_bus0_pll_div4"}, MUX_SEL_TOPC0, 16, 2),
		mux(0, "mout_topc_bus1_pll_half", []string{"mout_topc_bus1_pll", "ffac_topc_bus1_pll_div2"}, MUX_SEL_TOPC0, 20, 1),
		mux(0, "mout_topc_cc_pll_half", []string{"mout_topc_cc_pll", "ffac_topc_cc_pll_div2"}, MUX_SEL_TOPC0, 24, 1),
		mux(0, "mout_topc_mfc_pll_half", []string{"mout_topc_mfc_pll", "ffac_topc_mfc_pll_div2"}, MUX_SEL_TOPC0, 28, 1),
		mux(0, "mout_topc_bus0_pll_out", []string{"mout_topc_bus0_pll", "ffac_topc_bus0_pll_div2"}, MUX_SEL_TOPC1, 16, 1),
		mux(0, "mout_aclk_ccore_133", moutTopcGroup2, MUX_SEL_TOPC2, 4, 2),
		mux(0, "mout_aclk_mscl_532", moutTopcGroup2, MUX_SEL_TOPC3, 20, 2),
		mux(0, "mout_aclk_peris_66", moutTopcGroup2, MUX_SEL_TOPC3, 24, 2),
		div(DOUT_ACLK_CCORE_133, "dout_aclk_ccore_133", "mout_aclk_ccore_133", DIV_TOPC0, 4, 4),
		div(DOUT_ACLK_MSCL_532, "dout_aclk_mscl_532", "mout_aclk_mscl_532", DIV_TOPC1, 20, 4),
		div(DOUT_ACLK_PERIS, "dout_aclk_peris_66", "mout_aclk_peris_66", DIV_TOPC1, 24, 4),
		div(DOUT_SCLK_BUS0_PLL, "dout_sclk_bus0_pll", "mout_topc_bus0_pll_out", DIV_TOPC3, 0, 4),
		div(DOUT_SCLK_BUS1_PLL, "dout_sclk_bus1_pll", "mout_topc_bus1_pll", DIV_TOPC3, 8, 4),
		div(DOUT_SCLK_CC_PLL, "dout_sclk_cc_pll", "mout_topc_cc_pll", DIV_TOPC3, 12, 4),
		div(DOUT_SCLK_MFC_PLL, "dout_sclk_mfc_pll", "mout_topc_mfc_pll", DIV_TOPC3, 16, 4),
		div(DOUT_SCLK_AUD_PLL, "dout_sclk_aud_pll", "mout_topc_aud_pll", DIV_TOPC3, 28, 4),
		gateF(ACLK_CCORE_133, "aclk_ccore_133", "dout_aclk_ccore_133", ENABLE_ACLK_TOPC0, 4, clk.FlagCritical),
		gate(ACLK_MSCL_532, "aclk_mscl_532", "dout_aclk_mscl_532", ENABLE_ACLK_TOPC1, 20),
		gate(ACLK_PERIS_66, "aclk_peris_66", "dout_aclk_peris_66", ENABLE_ACLK_TOPC1, 24),
		gate(SCLK_AUD_PLL, "sclk_aud_pll", "dout_sclk_aud_pll", ENABLE_SCLK_TOPC1, 20),
		gate(SCLK_MFC_PLL_B, "sclk_mfc_pll_b", "dout_sclk_mfc_pll", ENABLE_SCLK_TOPC1, 17),
		gate(SCLK_MFC_PLL_A, "sclk_mfc_pll_a", "dout_sclk_mfc_pll", ENABLE_SCLK_TOPC1, 16),
		gate(SCLK_BUS1_PLL_B, "sclk_bus1_pll_b", "dout_sclk_bus1_pll", ENABLE_SCLK_TOPC1, 13),
		gate(SCLK_BUS1_PLL_A, "sclk_bus1_pll_a", "dout_sclk_bus1_pll", ENABLE_SCLK_TOPC1, 12),
		gate(SCLK_BUS0_PLL_B, "sclk_bus0_pll_b", "dout_sclk_bus0_pll", ENABLE_SCLK_TOPC1, 5),
		gate(SCLK_BUS0_PLL_A, "sclk_bus0_pll_a", "dout_sclk_bus0_pll", ENABLE_SCLK_TOPC1, 4),
		gate(SCLK_CC_PLL_B, "sclk_cc_pll_b", "dout_sclk_cc_pll", ENABLE_SCLK_TOPC1, 1),
		gate(SCLK_CC_PLL_A, "sclk_cc_pll_a", "dout_sclk_cc_pll", ENABLE_SCLK_TOPC1, 0),
	}
}
