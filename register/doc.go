// Package register models fixed-width control and status registers.
//
// A register type is described once by five declarations: a storage width
// (uint8, uint16 or uint32), a mask of named valid bits, a parallel mask of
// default (reset) bit values, a bit-field layout struct and an address tag.
// Define checks that the declarations agree before any register exists, and
// returns a Schema that creates Register handles.
//
// The stored value is only ever an in-memory integer. Scalar writes are
// masked by the valid bits, so reserved bits can never be set through them.
// The layout struct is a live view of the same integer: each Field shifts
// and masks the register storage directly on every access.
//
//	type CtrlBits struct {
//		Enable register.Field[uint8]
//		Mode   register.Field[uint8] `reg:"2"`
//		_      register.Reserved[uint8] `reg:"5"`
//	}
//
//	var Ctrl = register.MustDefine[CtrlBits](register.Descriptor[uint8, uint16]{
//		Name:    "CTRL",
//		Address: 0x40,
//		Valid: register.Mask[uint8]{
//			{Name: "Enable", Value: register.Bit[uint8](0)},
//			{Name: "Mode", Value: register.Bits[uint8](2, 1)},
//		},
//		Default: register.Mask[uint8]{
//			{Name: "Enable", Value: register.DefaultFalse[uint8](0)},
//			{Name: "Mode", Value: register.Default[uint8](1, 1)},
//		},
//	})
//
// A Register is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every read-modify-write sequence themselves.
package register
