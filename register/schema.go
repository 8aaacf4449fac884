// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package register

import (
	"iter"
	"maps"
	"reflect"
	"slices"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/ezrec/regtype/internal"
)

// Descriptor holds the declarations of a register type other than its
// width and bit layout, which are type parameters.
type Descriptor[T Width, A constraints.Integer] struct {
	Name    string  // Register name, used in messages.
	Address A       // Address tag of every register of this type.
	Valid   Mask[T] // Valid bits, by flag name.
	Default Mask[T] // Reset value of each valid flag, by the same names.
}

// FieldInfo describes one slot of a bit layout.
type FieldInfo[T Width] struct {
	Name    string
	Offset  uint
	Width   uint
	Mask    T
	Mutable bool // False for Reserved slots.
}

// Schema is a validated register type. Its zero value is not usable; use
// Define or MustDefine.
type Schema[B any, T Width, A constraints.Integer] struct {
	name        string
	address     A
	valid       Mask[T]
	defaults    Mask[T]
	validBits   T
	defaultBits T
	fields      []FieldInfo[T]
}

// Define validates a register type with bit layout B.
//
// The layout must be a struct of Field[T] and Reserved[T] slots, packed from
// bit 0 in declaration order and filling the width exactly. A slot is one
// bit wide unless tagged with its width, as in `reg:"4"`. Every valid flag
// must name a Field covering exactly its bits, and every default flag must
// lie within the valid flag of the same name.
//
// A layout with exported methods is rejected. Unexported methods are not
// visible to reflect, so a layout declaring only those is accepted.
func Define[B any, T Width, A constraints.Integer](desc Descriptor[T, A]) (sc *Schema[B, T, A], err error) {
	fields, item, err := layoutOf[B, T]()
	if err == nil {
		item, err = checkMasks(desc.Valid, desc.Default)
	}
	if err == nil {
		item, err = checkFields(fields, desc.Valid)
	}
	if err != nil {
		err = &ErrSchema{Register: desc.Name, Item: item, Err: err}
		return
	}

	sc = &Schema[B, T, A]{
		name:        desc.Name,
		address:     desc.Address,
		valid:       slices.Clone(desc.Valid),
		defaults:    slices.Clone(desc.Default),
		validBits:   desc.Valid.AllBits(),
		defaultBits: desc.Default.AllBits(),
		fields:      fields,
	}

	return
}

// MustDefine is like Define, but panics on an inconsistent register type.
func MustDefine[B any, T Width, A constraints.Integer](desc Descriptor[T, A]) *Schema[B, T, A] {
	sc, err := Define[B](desc)
	if err != nil {
		panic(err)
	}
	return sc
}

// layoutOf computes the slots of the bit layout B.
func layoutOf[B any, T Width]() (fields []FieldInfo[T], item string, err error) {
	bt := reflect.TypeFor[B]()
	item = bt.String()

	if bt.Kind() != reflect.Struct {
		err = ErrLayoutNotStruct
		return
	}

	if reflect.PointerTo(bt).NumMethod() != 0 {
		err = ErrLayoutBehavior
		return
	}

	size := SizeOf[T]()
	binderType := reflect.TypeFor[binder[T]]()

	var offset uint
	for n := range bt.NumField() {
		sf := bt.Field(n)
		item = sf.Name
		if sf.Name == "_" {
			item = f("_ at bit %d", offset)
		}

		if !reflect.PointerTo(sf.Type).Implements(binderType) {
			err = ErrLayoutField
			return
		}

		width := uint(1)
		if tag, ok := sf.Tag.Lookup("reg"); ok {
			var bits uint64
			bits, err = strconv.ParseUint(tag, 10, 8)
			if err != nil || bits == 0 || uint(bits) > size {
				err = ErrLayoutTag
				return
			}
			width = uint(bits)
		}

		bd := reflect.New(sf.Type).Interface().(binder[T])
		fields = append(fields, FieldInfo[T]{
			Name:    sf.Name,
			Offset:  offset,
			Width:   width,
			Mask:    Bits[T](width, offset),
			Mutable: bd.mutable(),
		})
		offset += width
	}

	if offset != size {
		item = f("%d of %d bits", offset, size)
		err = ErrLayoutSize
		return
	}

	item = ""
	return
}

// checkMasks validates the valid mask, and the default mask against it.
func checkMasks[T Width](valid Mask[T], defaults Mask[T]) (item string, err error) {
	var seen T
	names := map[string]bool{}
	for _, flag := range valid {
		item = flag.Name
		switch {
		case len(flag.Name) == 0:
			item = f("0x%x", flag.Value)
			err = ErrMaskName
		case names[flag.Name]:
			err = ErrMaskDuplicate
		case flag.Value == 0:
			err = ErrMaskEmpty
		case (seen & flag.Value) != 0:
			err = ErrMaskOverlap
		}
		if err != nil {
			return
		}
		names[flag.Name] = true
		seen |= flag.Value
	}

	for _, flag := range defaults {
		item = flag.Name
		value, ok := valid.Lookup(flag.Name)
		switch {
		case !ok || !names[flag.Name]:
			err = ErrDefaultMismatch
		case (flag.Value &^ value) != 0:
			err = ErrDefaultRange
		}
		if err != nil {
			return
		}
		// Each name may only be defaulted once.
		delete(names, flag.Name)
	}

	for _, flag := range valid {
		if names[flag.Name] {
			item = flag.Name
			err = ErrDefaultMismatch
			return
		}
	}

	item = ""
	return
}

// checkFields matches the bit layout against the valid mask.
func checkFields[T Width](fields []FieldInfo[T], valid Mask[T]) (item string, err error) {
	validBits := valid.AllBits()

	for _, fd := range fields {
		item = fd.Name
		if !fd.Mutable {
			if (fd.Mask & validBits) != 0 {
				if fd.Name == "_" {
					item = f("_ at bit %d", fd.Offset)
				}
				err = ErrReservedOverlap
				return
			}
			continue
		}

		value, ok := valid.Lookup(fd.Name)
		if !ok || value != fd.Mask {
			err = ErrFieldMismatch
			return
		}
	}

	// The layout covers every bit, and valid flags never overlap, so a
	// flag without a field of its own is caught above by the field or
	// reserved slot that holds its bits.

	item = ""
	return
}

// Name of the register type.
func (sc *Schema[B, T, A]) Name() string {
	return sc.name
}

// Address tag of the register type.
func (sc *Schema[B, T, A]) Address() A {
	return sc.address
}

// Width of the register storage, in bits.
func (sc *Schema[B, T, A]) Width() uint {
	return SizeOf[T]()
}

// ValidBits is the union of all valid flags.
func (sc *Schema[B, T, A]) ValidBits() T {
	return sc.validBits
}

// DefaultBits is the reset value.
func (sc *Schema[B, T, A]) DefaultBits() T {
	return sc.defaultBits
}

// Valid returns the valid flags.
func (sc *Schema[B, T, A]) Valid() Mask[T] {
	return slices.Clone(sc.valid)
}

// Default returns the default flags.
func (sc *Schema[B, T, A]) Default() Mask[T] {
	return slices.Clone(sc.defaults)
}

// Fields iterates the bit layout slots from bit 0 upward.
func (sc *Schema[B, T, A]) Fields() iter.Seq[FieldInfo[T]] {
	return slices.Values(sc.fields)
}

// Defines iterates the symbols of the register type: each valid flag's
// mask, then ADDRESS, ALL_BITS, DEFAULT_BITS and WIDTH. ADDRESS is left
// out when the address is negative, as it has no uint64 value.
func (sc *Schema[B, T, A]) Defines() iter.Seq2[string, uint64] {
	widen := func(value T) uint64 { return uint64(value) }

	consts := map[string]uint64{
		"ALL_BITS":     uint64(sc.validBits),
		"DEFAULT_BITS": uint64(sc.defaultBits),
		"WIDTH":        uint64(SizeOf[T]()),
	}
	if sc.address >= 0 {
		consts["ADDRESS"] = uint64(sc.address)
	}

	return internal.IterSeq2Concat(
		internal.IterSeq2Map(sc.valid.All(), widen),
		sortedAll(consts),
	)
}

func sortedAll(consts map[string]uint64) iter.Seq2[string, uint64] {
	return func(yield func(string, uint64) bool) {
		for _, key := range slices.Sorted(maps.Keys(consts)) {
			if !yield(key, consts[key]) {
				return
			}
		}
	}
}

// New creates a register holding the reset value.
func (sc *Schema[B, T, A]) New() (reg *Register[B, T, A]) {
	reg = newRegister(sc)
	return
}

// NewValue creates a register holding value, masked by the valid bits.
func (sc *Schema[B, T, A]) NewValue(value T) (reg *Register[B, T, A]) {
	reg = newRegister(sc)
	reg.data.Set(value)
	return
}

// NewText creates a register from base-10 text, masked by the valid bits.
func (sc *Schema[B, T, A]) NewText(text string) (reg *Register[B, T, A], err error) {
	reg = newRegister(sc)
	err = reg.Parse(text)
	if err != nil {
		reg = nil
	}
	return
}
