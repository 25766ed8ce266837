package exynos7420

import "github.com/Jon-Bright/clkctl/clk"

// CMU_PERIS register offsets
const (
	MUX_SEL_PERIS                   = 0x0200
	ENABLE_PCLK_PERIS               = 0x0900
	ENABLE_PCLK_PERIS_SECURE_CHIPID = 0x0910
	ENABLE_SCLK_PERIS               = 0x0A00
	ENABLE_SCLK_PERIS_SECURE_CHIPID = 0x0A10
)

func perisClocks() []clk.Desc {
	return []clk.Desc{
		mux(0, "mout_aclk_peris_66_user", []string{"fin_pll", "aclk_peris_66"}, MUX_SEL_PERIS, 0, 1),
		gate(PCLK_WDT, "pclk_wdt", "mout_aclk_peris_66_user", ENABLE_PCLK_PERIS, 6),
		gate(PCLK_MCT, "pclk_mct", "mout_aclk_peris_66_user", ENABLE_PCLK_PERIS, 5),
		gate(PCLK_TMU, "pclk_tmu_apbif", "mout_aclk_peris_66_user", ENABLE_PCLK_PERIS, 10),
		gate(PCLK_CHIPID, "pclk_chipid", "mout_aclk_peris_66_user", ENABLE_PCLK_PERIS_SECURE_CHIPID, 0),
		gate(SCLK_CHIPID, "sclk_chipid", "fin_pll", ENABLE_SCLK_PERIS_SECURE_CHIPID, 0),
		gate(SCLK_TMU, "sclk_tmu", "fin_pll", ENABLE_SCLK_PERIS, 10),
	}
}
