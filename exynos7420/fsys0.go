package exynos7420

import "github.com/Jon-Bright/clkctl/clk"

// CMU_FSYS0 register offsets
const (
	MUX_SEL_FSYS00     = 0x0200
	MUX_SEL_FSYS01     = 0x0204
	MUX_SEL_FSYS02     = 0x0208
	ENABLE_ACLK_FSYS00 = 0x0800
	ENABLE_ACLK_FSYS01 = 0x0804
	ENABLE_SCLK_FSYS01 = 0x0A04
	ENABLE_SCLK_FSYS02 = 0x0A08
	ENABLE_SCLK_FSYS04 = 0x0A10
)

func fsys0Clocks() []clk.Desc {
	return []clk.Desc{
		mux(0, "mout_phyclk_usbdrd300_udrd30_phyclk_user", []string{"fin_pll", "phyclk_usbdrd300_udrd30_phyclock"}, MUX_SEL_FSYS02, 28, 1),
		mux(0, "mout_aclk_fsys0_200_user", []string{"fin_pll", "aclk_fsys0_200"}, MUX_SEL_FSYS00, 24, 1),
		mux(0, "mout_phyclk_usbdrd300_udrd30_pipe_pclk_user", []string{"fin_pll", "phyclk_usbdrd300_udrd30_pipe_pclk"}, MUX_SEL_FSYS02, 24, 1),
		mux(0, "mout_sclk_usbdrd300_user", []string{"fin_pll", "sclk_usbdrd300"}, MUX_SEL_FSYS01, 28, 1),
		mux(0, "mout_sclk_mmc2_user", []string{"fin_pll", "sclk_mmc2"}, MUX_SEL_FSYS01, 24, 1),
		gate(ACLK_AXIUS_USBDRD30X_FSYS0X, "aclk_axius_usbdrd30x_fsys0x", "mout_aclk_fsys0_200_user", ENABLE_ACLK_FSYS00, 19),
		gate(SCLK_USBDRD300_REFCLK, "sclk_usbdrd300_refclk", "fin_pll", ENABLE_SCLK_FSYS01, 8),
		gate(ACLK_MMC2, "aclk_mmc2", "mout_aclk_fsys0_200_user", ENABLE_ACLK_FSYS01, 31),
		gate(ACLK_USBDRD300, "aclk_usbdrd300", "mout_aclk_fsys0_200_user", ENABLE_ACLK_FSYS01, 29),
		gate(PHYCLK_USBDRD300_UDRD30_PIPE_PCLK_USER, "phyclk_usbdrd300_udrd30_pipe_pclk_user", "mout_phyclk_usbdrd300_udrd30_pipe_pclk_user", ENABLE_SCLK_FSYS02, 24),
		gate(ACLK_PDMA0, "aclk_pdma0", "mout_aclk_fsys0_200_user", ENABLE_ACLK_FSYS00, 4),
		gate(ACLK_PDMA1, "aclk_pdma1", "mout_aclk_fsys0_200_user", ENABLE_ACLK_FSYS00, 3),
		gate(OSCCLK_PHY_CLKOUT_USB30_PHY, "oscclk_phy_clkout_usb30_phy", "fin_pll", ENABLE_SCLK_FSYS04, 28),
		gate(PHYCLK_USBDRD300_UDRD30_PHYCLK_USER, "phyclk_usbdrd300_udrd30_phyclk_user", "mout_phyclk_usbdrd300_udrd30_phyclk_user", ENABLE_SCLK_FSYS02, 28),
		gate(SCLK_USBDRD300_SUSPENDCLK, "sclk_usbdrd300_suspendclk", "mout_sclk_usbdrd300_user", ENABLE_SCLK_FSYS01, 4),
	}
}
