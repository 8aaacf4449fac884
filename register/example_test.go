package register_test

import (
	"fmt"

	"github.com/ezrec/regtype/register"
)

type CtrlBits struct {
	Enable register.Field[uint8]
	Mode   register.Field[uint8]    `reg:"2"`
	_      register.Reserved[uint8] `reg:"5"`
}

var Ctrl = register.MustDefine[CtrlBits](register.Descriptor[uint8, uint16]{
	Name:    "CTRL",
	Address: 0x40,
	Valid: register.Mask[uint8]{
		{Name: "Enable", Value: register.Bit[uint8](0)},
		{Name: "Mode", Value: register.Bits[uint8](2, 1)},
	},
	Default: register.Mask[uint8]{
		{Name: "Enable", Value: register.DefaultFalse[uint8](0)},
		{Name: "Mode", Value: register.Default[uint8](1, 1)},
	},
})

func Example() {
	ctrl := Ctrl.New()
	fmt.Printf("address 0x%x value 0x%x\n", ctrl.Address(), ctrl.Value())

	ctrl.Data().Bits().Enable.Enable()
	ctrl.Data().Bits().Mode.Set(3)
	fmt.Printf("enabled, mode 3: 0x%x\n", ctrl.Value())

	ctrl.SetValue(0xff)
	fmt.Printf("set 0xff: 0x%x\n", ctrl.Value())

	ctrl.Data().ClearAllBits()
	fmt.Printf("cleared: %v\n", ctrl)

	// Output:
	// address 0x40 value 0x2
	// enabled, mode 3: 0x7
	// set 0xff: 0x7
	// cleared: 0
}

func ExampleDefine() {
	type BadBits struct {
		Enable register.Field[uint8]
		_      register.Reserved[uint8] `reg:"6"`
	}

	_, err := register.Define[BadBits](register.Descriptor[uint8, uint16]{
		Name: "BAD",
		Valid: register.Mask[uint8]{
			{Name: "Enable", Value: register.Bit[uint8](0)},
		},
		Default: register.Mask[uint8]{
			{Name: "Enable", Value: register.DefaultTrue[uint8](0)},
		},
	})
	fmt.Println(err)

	// Output:
	// register BAD: 7 of 8 bits: bit layout size is not equal to the storage width
}
