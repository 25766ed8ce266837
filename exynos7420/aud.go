package exynos7420

import "github.com/Jon-Bright/clkctl/clk"

// CMU_AUD register offsets
const (
	MUX_SEL_AUD     = 0x0200
	DIV_AUD0        = 0x0600
	DIV_AUD1        = 0x0604
	ENABLE_ACLK_AUD = 0x0800
	ENABLE_PCLK_AUD = 0x0900
	ENABLE_SCLK_AUD = 0x0A00
)

func audClocks() []clk.Desc {
	return []clk.Desc{
		mux(0, "mout_aud_pll_user", []string{"fin_pll", "fout_aud_pll"}, MUX_SEL_AUD, 20, 1),
		mux(0, "mout_sclk_pcm", moutAudGroup, MUX_SEL_AUD, 16, 1),
		mux(0, "mout_sclk_i2s", moutAudGroup, MUX_SEL_AUD, 12, 1),
		div(0, "dout_aud_cdclk", "mout_aud_pll_user", DIV_AUD1, 24, 4),
		div(0, "dout_aud_ca5", "mout_aud_pll_user", DIV_AUD0, 0, 4),
		div(0, "dout_aud_pclk_dbg", "dout_aud_ca5", DIV_AUD0, 8, 4),
		div(0, "dout_aclk_aud", "dout_aud_ca5", DIV_AUD0, 4, 4),
		div(0, "dout_sclk_i2s", "mout_sclk_i2s", DIV_AUD1, 0, 4),
		div(0, "dout_sclk_uart", "dout_aud_cdclk", DIV_AUD1, 12, 4),
		div(0, "dout_sclk_pcm", "mout_sclk_pcm", DIV_AUD1, 4, 8),
		div(0, "dout_sclk_slimbus", "dout_aud_cdclk", DIV_AUD1, 16, 5),
		gate(0, "pclk_smmu_aud", "dout_aclk_aud", ENABLE_PCLK_AUD, 31),
		gate(0, "sclk_uart", "dout_sclk_uart", ENABLE_SCLK_AUD, 29),
		gate(0, "pclk_gpio_aud", "dout_aclk_aud", ENABLE_PCLK_AUD, 20),
		gate(0, "pclk_uart", "dout_aclk_aud", ENABLE_PCLK_AUD, 25),
		gate(0, "pclk_slimbus", "dout_aclk_aud", ENABLE_PCLK_AUD, 24),
		gate(0, "pclk_wdt0", "dout_aclk_aud", ENABLE_PCLK_AUD, 23),
		gate(0, "pclk_wdt1", "dout_aclk_aud", ENABLE_PCLK_AUD, 22),
		gate(0, "pclk_dbg_aud", "dout_aud_pclk_dbg", ENABLE_PCLK_AUD, 19),
		gate(0, "sclk_slimbus", "dout_sclk_slimbus", ENABLE_SCLK_AUD, 30),
		gateF(PCLK_PCM, "pclk_pcm", "dout_aclk_aud", ENABLE_PCLK_AUD, 26, clk.FlagSetRateParent),
		gateF(SCLK_PCM, "sclk_pcm", "dout_sclk_pcm", ENABLE_SCLK_AUD, 27, clk.FlagSetRateParent),
		gate(0, "aclk_smmu_aud", "dout_aclk_aud", ENABLE_ACLK_AUD, 27),
		gate(ACLK_ADMA, "aclk_dmac", "dout_aclk_aud", ENABLE_ACLK_AUD, 31),
		gate(0, "aclk_acel_lh_async_si_top", "dout_aclk_aud", ENABLE_ACLK_AUD, 28),
		gateF(PCLK_I2S, "pclk_i2s", "dout_aclk_aud", ENABLE_PCLK_AUD, 27, clk.FlagSetRateParent),
		gateF(SCLK_I2S, "sclk_i2s", "dout_sclk_i2s", ENABLE_SCLK_AUD, 28, clk.FlagSetRateParent),
		gate(0, "pclk_timer", "dout_aclk_aud", ENABLE_PCLK_AUD, 28),
	}
}
