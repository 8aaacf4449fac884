package register

type ctrlBits struct {
	Enable Field[uint8]
	Mode   Field[uint8]    `reg:"2"`
	_      Reserved[uint8] `reg:"5"`
}

var ctrlDesc = Descriptor[uint8, uint16]{
	Name:    "CTRL",
	Address: 0x40,
	Valid: Mask[uint8]{
		{"Enable", Bit[uint8](0)},
		{"Mode", Bits[uint8](2, 1)},
	},
	Default: Mask[uint8]{
		{"Enable", DefaultTrue[uint8](0)},
		{"Mode", Default[uint8](1, 2)},
	},
}

type statusBits struct {
	Ready Field[uint16]
	Error Field[uint16]
	_     Reserved[uint16] `reg:"2"`
	Count Field[uint16]    `reg:"8"`
	_     Reserved[uint16] `reg:"4"`
}

var statusDesc = Descriptor[uint16, int]{
	Name:    "STATUS",
	Address: 0x1004,
	Valid: Mask[uint16]{
		{"Ready", Bit[uint16](0)},
		{"Error", Bit[uint16](1)},
		{"Count", Bits[uint16](8, 4)},
	},
	Default: Mask[uint16]{
		{"Ready", DefaultTrue[uint16](0)},
		{"Error", DefaultFalse[uint16](1)},
		{"Count", Default[uint16](4, 0x10)},
	},
}

type wideBits struct {
	Low  Field[uint32]    `reg:"16"`
	_    Reserved[uint32] `reg:"15"`
	High Field[uint32]
}

var wideDesc = Descriptor[uint32, uint64]{
	Name:    "WIDE",
	Address: 0xffff_0000_0000_0010,
	Valid: Mask[uint32]{
		{"Low", Bits[uint32](16, 0)},
		{"High", Bit[uint32](31)},
	},
	Default: Mask[uint32]{
		{"Low", Default[uint32](0, 0x1234)},
		{"High", DefaultTrue[uint32](31)},
	},
}
