package exynos7420

import "github.com/Jon-Bright/clkctl/clk"

// Clock IDs, stable across releases so they can be stored and passed around
// in place of names. Clocks without one have ID 0.
//
// These are one numbering for the whole SoC. They are not the values of the
// samsung,exynos7420 dt-bindings, which restart in every CMU; a device tree
// specifier such as <&cmu_aud ACLK_ADMA> has to be looked up by name.
const (
	_ clk.ID = iota
	FOUT_AUD_PLL
	DOUT_ACLK_CCORE_133
	DOUT_ACLK_MSCL_532
	DOUT_ACLK_PERIS
	DOUT_SCLK_BUS0_PLL
	DOUT_SCLK_BUS1_PLL
	DOUT_SCLK_CC_PLL
	DOUT_SCLK_MFC_PLL
	DOUT_SCLK_AUD_PLL
	ACLK_CCORE_133
	ACLK_MSCL_532
	ACLK_PERIS_66
	SCLK_AUD_PLL
	SCLK_MFC_PLL_B
	SCLK_MFC_PLL_A
	SCLK_BUS1_PLL_B
	SCLK_BUS1_PLL_A
	SCLK_BUS0_PLL_B
	SCLK_BUS0_PLL_A
	SCLK_CC_PLL_B
	SCLK_CC_PLL_A
	DOUT_ACLK_PERIC1
	DOUT_ACLK_PERIC0
	CLK_ACLK_PERIC0_66
	CLK_ACLK_PERIC1_66
	CLK_SCLK_SPDIF
	CLK_SCLK_PCM1
	CLK_SCLK_I2S1
	CLK_SCLK_SPI1
	CLK_SCLK_SPI0
	CLK_SCLK_SPI3
	CLK_SCLK_SPI2
	CLK_SCLK_UART3
	CLK_SCLK_UART2
	CLK_SCLK_UART1
	CLK_SCLK_UART0
	CLK_SCLK_SPI4
	DOUT_ACLK_FSYS1_200
	DOUT_ACLK_FSYS0_200
	DOUT_SCLK_PHY_FSYS1
	DOUT_SCLK_UFSUNIPRO20
	DOUT_SCLK_MMC2
	DOUT_SCLK_MMC1
	DOUT_SCLK_MMC0
	DOUT_SCLK_PHY_FSYS1_26M
	CLK_SCLK_MMC2
	CLK_SCLK_PHY_FSYS1
	CLK_SCLK_UFSUNIPRO20
	CLK_SCLK_MMC1
	CLK_SCLK_MMC0
	CLK_ACLK_FSYS0_200
	CLK_ACLK_FSYS1_200
	CLK_SCLK_PHY_FSYS1_26M
	PCLK_RTC
	PCLK_HSI2C0
	PCLK_HSI2C1
	PCLK_HSI2C4
	PCLK_HSI2C5
	PCLK_HSI2C9
	PCLK_HSI2C10
	PCLK_HSI2C11
	PCLK_UART0
	PCLK_ADCIF
	PCLK_PWM
	SCLK_UART0
	SCLK_PWM
	PCLK_HSI2C2
	PCLK_HSI2C3
	PCLK_HSI2C6
	PCLK_HSI2C7
	PCLK_HSI2C8
	PCLK_UART1
	PCLK_UART2
	PCLK_UART3
	PCLK_SPI0
	PCLK_SPI1
	PCLK_SPI2
	PCLK_SPI3
	PCLK_SPI4
	PCLK_I2S1
	PCLK_PCM1
	PCLK_SPDIF
	SCLK_UART1
	SCLK_UART2
	SCLK_UART3
	SCLK_SPI0
	SCLK_SPI1
	SCLK_SPI2
	SCLK_SPI3
	SCLK_SPI4
	SCLK_I2S1
	SCLK_PCM1
	SCLK_SPDIF
	PCLK_WDT
	PCLK_MCT
	PCLK_TMU
	PCLK_CHIPID
	SCLK_CHIPID
	SCLK_TMU
	ACLK_AXIUS_USBDRD30X_FSYS0X
	SCLK_USBDRD300_REFCLK
	ACLK_MMC2
	ACLK_USBDRD300
	PHYCLK_USBDRD300_UDRD30_PIPE_PCLK_USER
	ACLK_PDMA0
	ACLK_PDMA1
	OSCCLK_PHY_CLKOUT_USB30_PHY
	PHYCLK_USBDRD300_UDRD30_PHYCLK_USER
	SCLK_USBDRD300_SUSPENDCLK
	DOUT_PCLK_FSYS1
	MOUT_FSYS1_PHYCLK_SEL1
	SCLK_UFSUNIPRO20_USER
	ACLK_MMC1
	ACLK_MMC0
	ACLK_UFS20_LINK
	PCLK_GPIO_FSYS1
	OSCCLK_PHY_CLKOUT_EMBEDDED_COMBO_PHY
	PHYCLK_UFS20_TX0_SYMBOL_USER
	SCLK_COMBO_PHY_EMBEDDED_26M
	PHYCLK_UFS20_RX0_SYMBOL_USER
	PHYCLK_UFS20_RX1_SYMBOL_USER
	USERMUX_ACLK_MSCL_532
	DOUT_PCLK_MSCL
	PCLK_QE_MSCL_0
	PCLK_QE_MSCL_1
	PCLK_AXI2ACEL_BRIDGE
	ACLK_QE_G2D
	ACLK_PPMU_MSCL_0
	PCLK_MSCL_0
	ACLK_PPMU_MSCL_1
	PCLK_MSCL_1
	ACLK_G2D
	ACLK_AHB2APB_MSCL1P
	ACLK_QE_MSCL_0
	ACLK_MSCLNP_133
	ACLK_QE_MSCL_1
	PCLK_QE_JPEG
	ACLK_QE_JPEG
	ACLK_AXI2ACEL_BRIDGE
	ACLK_MSCL_0
	ACLK_JPEG
	ACLK_MSCL_1
	PCLK_G2D
	PCLK_QE_G2D
	ACLK_AHB2APB_MSCL0P
	ACLK_XIU_MSCLX_0
	ACLK_XIU_MSCLX_1
	PCLK_PPMU_MSCL_0
	PCLK_PPMU_MSCL_1
	PCLK_PMU_MSCL
	ACLK_LH_ASYNC_SI_MSCL_1
	PCLK_JPEG
	ACLK_LH_ASYNC_SI_MSCL_0
	PCLK_PCM
	SCLK_PCM
	ACLK_ADMA
	PCLK_I2S
	SCLK_I2S
)
