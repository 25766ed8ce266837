package exynos7420

import "github.com/Jon-Bright/clkctl/clk"

// CMU_PERIC0 register offsets
const (
	MUX_SEL_PERIC0     = 0x0200
	ENABLE_PCLK_PERIC0 = 0x0900
	ENABLE_SCLK_PERIC0 = 0x0A00
)

func peric0Clocks() []clk.Desc {
	return []clk.Desc{
		mux(0, "mout_aclk_peric0_66_user", []string{"fin_pll", "aclk_peric0_66"}, MUX_SEL_PERIC0, 0, 1),
		mux(0, "mout_sclk_uart0_user", []string{"fin_pll", "sclk_uart0"}, MUX_SEL_PERIC0, 16, 1),
		gate(PCLK_HSI2C0, "pclk_hsi2c0", "mout_aclk_peric0_66_user", ENABLE_PCLK_PERIC0, 8),
		gate(PCLK_HSI2C1, "pclk_hsi2c1", "mout_aclk_peric0_66_user", ENABLE_PCLK_PERIC0, 9),
		gate(PCLK_HSI2C4, "pclk_hsi2c4", "mout_aclk_peric0_66_user", ENABLE_PCLK_PERIC0, 10),
		gate(PCLK_HSI2C5, "pclk_hsi2c5", "mout_aclk_peric0_66_user", ENABLE_PCLK_PERIC0, 11),
		gate(PCLK_HSI2C9, "pclk_hsi2c9", "mout_aclk_peric0_66_user", ENABLE_PCLK_PERIC0, 12),
		gate(PCLK_HSI2C10, "pclk_hsi2c10", "mout_aclk_peric0_66_user", ENABLE_PCLK_PERIC0, 13),
		gate(PCLK_HSI2C11, "pclk_hsi2c11", "mout_aclk_peric0_66_user", ENABLE_PCLK_PERIC0, 14),
		gate(PCLK_UART0, "pclk_uart0", "mout_aclk_peric0_66_user", ENABLE_PCLK_PERIC0, 16),
		gate(PCLK_ADCIF, "pclk_adcif", "mout_aclk_peric0_66_user", ENABLE_PCLK_PERIC0, 20),
		gate(PCLK_PWM, "pclk_pwm", "mout_aclk_peric0_66_user", ENABLE_PCLK_PERIC0, 21),
		gate(SCLK_UART0, "sclk_uart0_user", "mout_sclk_uart0_user", ENABLE_SCLK_PERIC0, 16),
		gate(SCLK_PWM, "sclk_pwm", "fin_pll", ENABLE_SCLK_PERIC0, 21),
	}
}
