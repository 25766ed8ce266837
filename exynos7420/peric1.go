package exynos7420

import "github.com/Jon-Bright/clkctl/clk"

// CMU_PERIC1 register offsets
const (
	MUX_SEL_PERIC10     = 0x0200
	MUX_SEL_PERIC11     = 0x0204
	ENABLE_PCLK_PERIC1  = 0x0900
	ENABLE_SCLK_PERIC10 = 0x0A00
)

func peric1Clocks() []clk.Desc {
	return []clk.Desc{
		mux(0, "mout_aclk_peric1_66_user", []string{"fin_pll", "aclk_peric1_66"}, MUX_SEL_PERIC10, 0, 1),
		mux(0, "mout_sclk_uart1_user", []string{"fin_pll", "sclk_uart1"}, MUX_SEL_PERIC11, 20, 1),
		mux(0, "mout_sclk_uart2_user", []string{"fin_pll", "sclk_uart2"}, MUX_SEL_PERIC11, 24, 1),
		mux(0, "mout_sclk_uart3_user", []string{"fin_pll", "sclk_uart3"}, MUX_SEL_PERIC11, 28, 1),
		muxF(0, "mout_sclk_spi0_user", []string{"fin_pll", "sclk_spi0"}, MUX_SEL_PERIC11, 0, 1, clk.FlagSetRateParent),
		muxF(0, "mout_sclk_spi1_user", []string{"fin_pll", "sclk_spi1"}, MUX_SEL_PERIC11, 4, 1, clk.FlagSetRateParent),
		muxF(0, "mout_sclk_spi2_user", []string{"fin_pll", "sclk_spi2"}, MUX_SEL_PERIC11, 8, 1, clk.FlagSetRateParent),
		muxF(0, "mout_sclk_spi3_user", []string{"fin_pll", "sclk_spi3"}, MUX_SEL_PERIC11, 12, 1, clk.FlagSetRateParent),
		muxF(0, "mout_sclk_spi4_user", []string{"fin_pll", "sclk_spi4"}, MUX_SEL_PERIC11, 16, 1, clk.FlagSetRateParent),
		gate(PCLK_HSI2C2, "pclk_hsi2c2", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 4),
		gate(PCLK_HSI2C3, "pclk_hsi2c3", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 5),
		gate(PCLK_HSI2C6, "pclk_hsi2c6", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 6),
		gate(PCLK_HSI2C7, "pclk_hsi2c7", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 7),
		gate(PCLK_HSI2C8, "pclk_hsi2c8", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 8),
		gate(PCLK_UART1, "pclk_uart1", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 9),
		gate(PCLK_UART2, "pclk_uart2", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 10),
		gate(PCLK_UART3, "pclk_uart3", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 11),
		gate(PCLK_SPI0, "pclk_spi0", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 12),
		gate(PCLK_SPI1, "pclk_spi1", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 13),
		gate(PCLK_SPI2, "pclk_spi2", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 14),
		gate(PCLK_SPI3, "pclk_spi3", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 15),
		gate(PCLK_SPI4, "pclk_spi4", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 16),
		gateF(PCLK_I2S1, "pclk_i2s1", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 17, clk.FlagSetRateParent),
		gate(PCLK_PCM1, "pclk_pcm1", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 18),
		gate(PCLK_SPDIF, "pclk_spdif", "mout_aclk_peric1_66_user", ENABLE_PCLK_PERIC1, 19),
		gate(SCLK_UART1, "sclk_uart1_user", "mout_sclk_uart1_user", ENABLE_SCLK_PERIC10, 9),
		gate(SCLK_UART2, "sclk_uart2_user", "mout_sclk_uart2_user", ENABLE_SCLK_PERIC10, 10),
		gate(SCLK_UART3, "sclk_uart3_user", "mout_sclk_uart3_user", ENABLE_SCLK_PERIC10, 11),
		gateF(SCLK_SPI0, "sclk_spi0_user", "mout_sclk_spi0_user", ENABLE_SCLK_PERIC10, 12, clk.FlagSetRateParent),
		gateF(SCLK_SPI1, "sclk_spi1_user", "mout_sclk_spi1_user", ENABLE_SCLK_PERIC10, 13, clk.FlagSetRateParent),
		gateF(SCLK_SPI2, "sclk_spi2_user", "mout_sclk_spi2_user", ENABLE_SCLK_PERIC10, 14, clk.FlagSetRateParent),
		gateF(SCLK_SPI3, "sclk_spi3_user", "mout_sclk_spi3_user", ENABLE_SCLK_PERIC10, 15, clk.FlagSetRateParent),
		gateF(SCLK_SPI4, "sclk_spi4_user", "mout_sclk_spi4_user", ENABLE_SCLK_PERIC10, 16, clk.FlagSetRateParent),
		gateF(SCLK_I2S1, "sclk_i2s1_user", "sclk_i2s1", ENABLE_SCLK_PERIC10, 17, clk.FlagSetRateParent),
		gateF(SCLK_PCM1, "sclk_pcm1_user", "sclk_pcm1", ENABLE_SCLK_PERIC10, 18, clk.FlagSetRateParent),
		gateF(SCLK_SPDIF, "sclk_spdif_user", "sclk_spdif", ENABLE_SCLK_PERIC10, 19, clk.FlagSetRateParent),
	}
}
