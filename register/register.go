// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package register

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"
)

// ErrScanVerb is returned when scanning a register with an unsupported verb.
var ErrScanVerb = errors.New(f("register scan verb unsupported"))

// noCopy flags copies of a Register to go vet; the bit layout of a copy
// would still point at the original's storage.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Register is a register handle: an address tag and its value.
//
// A Register must not be copied after creation.
type Register[B any, T Width, A constraints.Integer] struct {
	_       noCopy
	Verbose bool // If set, SetValue, Reset and Parse log the stored value.
	schema  *Schema[B, T, A]
	address A
	data    Value[B, T]
}

func newRegister[B any, T Width, A constraints.Integer](sc *Schema[B, T, A]) (reg *Register[B, T, A]) {
	reg = &Register[B, T, A]{
		schema:  sc,
		address: sc.address,
	}

	reg.data.validBits = sc.validBits
	reg.data.defaultBits = sc.defaultBits
	reg.data.fields = sc.fields
	reg.data.bind()
	reg.data.SetAllDefaults()

	return
}

// Schema of the register's type.
func (reg *Register[B, T, A]) Schema() *Schema[B, T, A] {
	return reg.schema
}

// Address tag of the register.
func (reg *Register[B, T, A]) Address() A {
	return reg.address
}

// Value returns the current value.
func (reg *Register[B, T, A]) Value() T {
	return reg.data.Get()
}

// SetValue stores value, masked by the valid bits.
func (reg *Register[B, T, A]) SetValue(value T) {
	reg.data.Set(value)
	if reg.Verbose {
		log.Printf("%v: set 0x%x -> 0x%x", reg.schema.name, value, reg.data.Get())
	}
}

// Reset the register to its default value.
func (reg *Register[B, T, A]) Reset() {
	reg.data.SetAllDefaults()
	if reg.Verbose {
		log.Printf("%v: reset -> 0x%x", reg.schema.name, reg.data.Get())
	}
}

// Data gives access to the register storage and its bit layout.
func (reg *Register[B, T, A]) Data() *Value[B, T] {
	return &reg.data
}

// String returns the value in base 10.
func (reg *Register[B, T, A]) String() string {
	return strconv.FormatUint(uint64(reg.data.Get()), 10)
}

// Parse base-10 text into the register, masked by the valid bits. A sign
// is allowed; negative values wrap to the register width before masking.
// On error the register is unchanged.
func (reg *Register[B, T, A]) Parse(text string) (err error) {
	value, err := parseInt(strings.TrimSpace(text))
	if err != nil {
		err = &ErrParse{Text: text, Err: err}
		return
	}

	reg.SetValue(T(value))

	return
}

// parseInt parses a signed base-10 integer, or an unsigned one too large
// for int64, as its 64-bit two's complement pattern.
func parseInt(text string) (value uint64, err error) {
	signed, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		value = uint64(signed)
		return
	}

	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(text, "-") {
		value, err = strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 64)
	}

	return
}

// MarshalText implements encoding.TextMarshaler.
func (reg *Register[B, T, A]) MarshalText() (text []byte, err error) {
	text = strconv.AppendUint(nil, uint64(reg.data.Get()), 10)
	return
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (reg *Register[B, T, A]) UnmarshalText(text []byte) error {
	return reg.Parse(string(text))
}

// Scan implements fmt.Scanner, for the %d and %v verbs.
func (reg *Register[B, T, A]) Scan(state fmt.ScanState, verb rune) (err error) {
	if verb != 'd' && verb != 'v' {
		err = ErrScanVerb
		return
	}

	token, err := state.Token(true, func(r rune) bool {
		return unicode.IsDigit(r) || r == '+' || r == '-'
	})
	if err != nil {
		return
	}

	err = reg.Parse(string(token))

	return
}
