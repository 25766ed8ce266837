package exynos7420

import "github.com/Jon-Bright/clkctl/clk"

// CMU_CCORE register offsets
const (
	MUX_SEL_CCORE     = 0x0200
	ENABLE_PCLK_CCORE = 0x0900
)

func ccoreClocks() []clk.Desc {
	return []clk.Desc{
		mux(0, "mout_aclk_ccore_133_user", []string{"fin_pll", "aclk_ccore_133"}, MUX_SEL_CCORE, 1, 1),
		gate(PCLK_RTC, "pclk_rtc", "mout_aclk_ccore_133_user", ENABLE_PCLK_CCORE, 8),
	}
}
