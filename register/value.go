package register

import (
	"reflect"
	"unsafe"
)

// Value is the storage of a register: a single integer, seen either as a
// scalar or through its bit layout. Both views share the same bits.
type Value[B any, T Width] struct {
	bits        B
	fields      []FieldInfo[T]
	value       T
	validBits   T
	defaultBits T
}

// bind points every slot of the bit layout at the value.
func (v *Value[B, T]) bind() {
	layout := reflect.ValueOf(&v.bits).Elem()
	for n, fd := range v.fields {
		// Blank and unexported slots are not settable through reflect,
		// so take their address directly.
		field := layout.Field(n)
		slot := reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr()))
		slot.Interface().(binder[T]).bind(&v.value, fd.Offset, fd.Width)
	}
}

// Bits returns the bit layout view of the value.
//
// The layout is rebound to this value on every call, so slots assigned
// from another register's layout (or zeroed) point back at this value.
func (v *Value[B, T]) Bits() *B {
	v.bind()
	return &v.bits
}

// Get the scalar value.
func (v *Value[B, T]) Get() T {
	return v.value
}

// Set the scalar value. Bits outside of the valid mask are dropped.
func (v *Value[B, T]) Set(value T) {
	v.value = value & v.validBits
}

// SetAllDefaults reverts every bit to its reset value.
func (v *Value[B, T]) SetAllDefaults() {
	v.value = v.defaultBits
}

// SetAllBits sets every valid bit. Reserved bits stay clear.
func (v *Value[B, T]) SetAllBits() {
	v.value = v.validBits
}

// ClearAllBits clears every bit.
func (v *Value[B, T]) ClearAllBits() {
	v.value = 0
}
