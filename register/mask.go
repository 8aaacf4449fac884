package register

import (
	"iter"
	"math/bits"
)

// Width is the set of register storage types.
type Width interface {
	~uint8 | ~uint16 | ~uint32
}

// SizeOf returns the number of bits in the storage type T.
func SizeOf[T Width]() uint {
	return uint(bits.OnesCount64(uint64(^T(0))))
}

// Flag is a named bit (or bit group) of a register mask.
type Flag[T Width] struct {
	Name  string
	Value T
}

// Mask is the closed set of named flags of a register.
type Mask[T Width] []Flag[T]

// AllBits is the union of every flag in the mask.
func (m Mask[T]) AllBits() (all T) {
	for _, flag := range m {
		all |= flag.Value
	}
	return
}

// Lookup finds a flag by name.
func (m Mask[T]) Lookup(name string) (value T, ok bool) {
	for _, flag := range m {
		if flag.Name == name {
			return flag.Value, true
		}
	}
	return
}

// Bit is the valid mask for a single bit.
func Bit[T Width](bit uint) T {
	return T(1) << bit
}

// Bits is the valid mask for a group of width bits starting at offset.
func Bits[T Width](width uint, offset uint) T {
	return T((uint64(1)<<width)-1) << offset
}

// DefaultTrue is the default mask of a single bit that resets to 1.
func DefaultTrue[T Width](bit uint) T {
	return T(1) << bit
}

// DefaultFalse is the default mask of a single bit that resets to 0.
func DefaultFalse[T Width](bit uint) T {
	return 0
}

// Default is the default mask of a field at bit holding value on reset.
func Default[T Width](bit uint, value T) T {
	return value << bit
}

// All iterates the flag names and values, in declaration order.
func (m Mask[T]) All() iter.Seq2[string, T] {
	return func(yield func(name string, value T) bool) {
		for _, flag := range m {
			if !yield(flag.Name, flag.Value) {
				return
			}
		}
	}
}
