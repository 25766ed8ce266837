package exynos7420

import "github.com/Jon-Bright/clkctl/clk"

// CMU_MSCL register offsets
const (
	MUX_SEL_MSCL     = 0x0200
	DIV_MSCL         = 0x0600
	ENABLE_ACLK_MSCL = 0x0800
	ENABLE_PCLK_MSCL = 0x0900
)

func msclClocks() []clk.Desc {
	return []clk.Desc{
		mux(USERMUX_ACLK_MSCL_532, "usermux_aclk_mscl_532", []string{"fin_pll", "aclk_mscl_532"}, MUX_SEL_MSCL, 0, 1),
		div(DOUT_PCLK_MSCL, "dout_pclk_mscl", "usermux_aclk_mscl_532", DIV_MSCL, 0, 3),
		gate(PCLK_QE_MSCL_0, "pclk_qe_mscl_0", "dout_pclk_mscl", ENABLE_PCLK_MSCL, 27),
		gate(PCLK_QE_MSCL_1, "pclk_qe_mscl_1", "dout_pclk_mscl", ENABLE_PCLK_MSCL, 26),
		gate(PCLK_AXI2ACEL_BRIDGE, "pclk_axi2acel_bridge", "dout_pclk_mscl", ENABLE_PCLK_MSCL, 21),
		gate(ACLK_QE_G2D, "aclk_qe_g2d", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 19),
		gate(ACLK_PPMU_MSCL_0, "aclk_ppmu_mscl_0", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 18),
		gate(PCLK_MSCL_0, "pclk_mscl_0", "dout_pclk_mscl", ENABLE_PCLK_MSCL, 31),
		gate(ACLK_PPMU_MSCL_1, "aclk_ppmu_mscl_1", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 17),
		gate(PCLK_MSCL_1, "pclk_mscl_1", "dout_pclk_mscl", ENABLE_PCLK_MSCL, 30),
		gate(ACLK_G2D, "aclk_g2d", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 28),
		gate(ACLK_AHB2APB_MSCL1P, "aclk_ahb2apb_mscl1p", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 14),
		gate(ACLK_QE_MSCL_0, "aclk_qe_mscl_0", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 22),
		gate(ACLK_MSCLNP_133, "aclk_msclnp_133", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 16),
		gate(ACLK_QE_MSCL_1, "aclk_qe_mscl_1", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 21),
		gate(PCLK_QE_JPEG, "pclk_qe_jpeg", "dout_pclk_mscl", ENABLE_PCLK_MSCL, 25),
		gate(ACLK_QE_JPEG, "aclk_qe_jpeg", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 20),
		gate(ACLK_AXI2ACEL_BRIDGE, "aclk_axi2acel_bridge", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 23),
		gate(ACLK_MSCL_0, "aclk_mscl_0", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 31),
		gate(ACLK_JPEG, "aclk_jpeg", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 29),
		gate(ACLK_MSCL_1, "aclk_mscl_1", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 30),
		gate(PCLK_G2D, "pclk_g2d", "dout_pclk_mscl", ENABLE_PCLK_MSCL, 28),
		gate(PCLK_QE_G2D, "pclk_qe_g2d", "dout_pclk_mscl", ENABLE_PCLK_MSCL, 24),
		gate(ACLK_AHB2APB_MSCL0P, "aclk_ahb2apb_mscl0p", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 15),
		gate(ACLK_XIU_MSCLX_0, "aclk_xiu_msclx_0", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 25),
		gate(ACLK_XIU_MSCLX_1, "aclk_xiu_msclx_1", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 24),
		gate(PCLK_PPMU_MSCL_0, "pclk_ppmu_mscl_0", "dout_pclk_mscl", ENABLE_PCLK_MSCL, 23),
		gate(PCLK_PPMU_MSCL_1, "pclk_ppmu_mscl_1", "dout_pclk_mscl", ENABLE_PCLK_MSCL, 22),
		gate(PCLK_PMU_MSCL, "pclk_pmu_mscl", "dout_pclk_mscl", ENABLE_PCLK_MSCL, 20),
		gate(ACLK_LH_ASYNC_SI_MSCL_1, "aclk_lh_async_si_mscl_1", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 26),
		gate(PCLK_JPEG, "pclk_jpeg", "dout_pclk_mscl", ENABLE_PCLK_MSCL, 29),
		gate(ACLK_LH_ASYNC_SI_MSCL_0, "aclk_lh_async_si_mscl_0", "usermux_aclk_mscl_532", ENABLE_ACLK_MSCL, 27),
	}
}
