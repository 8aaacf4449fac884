// Package syncctrl defines the synchronization control register.
package syncctrl

import (
	"github.com/ezrec/regtype/register"
)

// ADDRESS of the synchronization control register.
const ADDRESS = uint32(0x13)

// Bits is the layout of the synchronization control register.
type Bits struct {
	CLK_DIV_B0  register.Field[uint32]
	CLK_DIV_B1  register.Field[uint32]
	CE_PLL      register.Field[uint32]
	EN_CXO      register.Field[uint32]
	EN_CLK_DIV  register.Field[uint32]
	EN_CLK2_C2M register.Field[uint32]
	EN_EXT_CLK  register.Field[uint32]
	_           register.Reserved[uint32]
	SRR_SELA    register.Field[uint32]
	SRR_SELB    register.Field[uint32]
	_           register.Reserved[uint32]
	EN_SRR      register.Field[uint32]
	_           register.Reserved[uint32] `reg:"4"`
	_           register.Reserved[uint32] `reg:"16"`
}

var bit = register.Bit[uint32]
var on = register.DefaultTrue[uint32]
var off = register.DefaultFalse[uint32]

// Schema of the synchronization control register.
var Schema = register.MustDefine[Bits](register.Descriptor[uint32, uint32]{
	Name:    "SYNC_CTRL",
	Address: ADDRESS,
	Valid: register.Mask[uint32]{
		{Name: "CLK_DIV_B0", Value: bit(0)},
		{Name: "CLK_DIV_B1", Value: bit(1)},
		{Name: "CE_PLL", Value: bit(2)},
		{Name: "EN_CXO", Value: bit(3)},
		{Name: "EN_CLK_DIV", Value: bit(4)},
		{Name: "EN_CLK2_C2M", Value: bit(5)},
		{Name: "EN_EXT_CLK", Value: bit(6)},
		{Name: "SRR_SELA", Value: bit(8)},
		{Name: "SRR_SELB", Value: bit(9)},
		{Name: "EN_SRR", Value: bit(11)},
	},
	Default: register.Mask[uint32]{
		{Name: "CLK_DIV_B0", Value: on(0)},
		{Name: "CLK_DIV_B1", Value: on(1)},
		{Name: "CE_PLL", Value: off(2)},
		{Name: "EN_CXO", Value: off(3)},
		{Name: "EN_CLK_DIV", Value: off(4)},
		{Name: "EN_CLK2_C2M", Value: off(5)},
		{Name: "EN_EXT_CLK", Value: off(6)},
		{Name: "SRR_SELA", Value: on(8)},
		{Name: "SRR_SELB", Value: on(9)},
		{Name: "EN_SRR", Value: off(11)},
	},
})

// Register is a synchronization control register handle.
type Register = register.Register[Bits, uint32, uint32]

// New returns a synchronization control register at its reset value.
func New() *Register {
	return Schema.New()
}
