package register

// slot is a window of width bits at offset into a register's storage.
type slot[T Width] struct {
	value  *T
	offset uint
	width  uint
}

func (s *slot[T]) bind(value *T, offset uint, width uint) {
	s.value = value
	s.offset = offset
	s.width = width
}

func (s slot[T]) mask() T {
	return Bits[T](s.width, s.offset)
}

func (s slot[T]) get() T {
	return (*s.value & s.mask()) >> s.offset
}

// binder is implemented by the field types a bit layout may contain.
type binder[T Width] interface {
	bind(value *T, offset uint, width uint)
	mutable() bool
}

// Field is a named, writable slot of a register bit layout.
//
// Writes go straight to the register storage. They are confined to the
// field's own bits, and are not checked against the valid mask.
type Field[T Width] struct {
	slot slot[T]
}

var _ binder[uint32] = (*Field[uint32])(nil)

func (fd *Field[T]) bind(value *T, offset uint, width uint) {
	fd.slot.bind(value, offset, width)
}

func (fd *Field[T]) mutable() bool {
	return true
}

// Get the field's value, shifted down to bit 0.
func (fd Field[T]) Get() T {
	return fd.slot.get()
}

// Set the field to value. Bits of value wider than the field are dropped.
func (fd Field[T]) Set(value T) {
	mask := fd.slot.mask()
	*fd.slot.value = (*fd.slot.value &^ mask) | ((value << fd.slot.offset) & mask)
}

// IsSet is true if any bit of the field is set.
func (fd Field[T]) IsSet() bool {
	return (*fd.slot.value & fd.slot.mask()) != 0
}

// SetBool sets every bit of the field when on, and clears them otherwise.
func (fd Field[T]) SetBool(on bool) {
	if on {
		fd.Enable()
	} else {
		fd.Disable()
	}
}

// Enable sets every bit of the field.
func (fd Field[T]) Enable() {
	*fd.slot.value |= fd.slot.mask()
}

// Disable clears every bit of the field.
func (fd Field[T]) Disable() {
	*fd.slot.value &^= fd.slot.mask()
}

// Toggle inverts every bit of the field.
func (fd Field[T]) Toggle() {
	*fd.slot.value ^= fd.slot.mask()
}

// Mask of the field's bits within the register.
func (fd Field[T]) Mask() T {
	return fd.slot.mask()
}

// Offset of the field's lowest bit.
func (fd Field[T]) Offset() uint {
	return fd.slot.offset
}

// Width of the field in bits.
func (fd Field[T]) Width() uint {
	return fd.slot.width
}

// Reserved is a read-only slot of a register bit layout.
type Reserved[T Width] struct {
	slot slot[T]
}

var _ binder[uint32] = (*Reserved[uint32])(nil)

func (rs *Reserved[T]) bind(value *T, offset uint, width uint) {
	rs.slot.bind(value, offset, width)
}

func (rs *Reserved[T]) mutable() bool {
	return false
}

// Get the reserved bits, shifted down to bit 0.
func (rs Reserved[T]) Get() T {
	return rs.slot.get()
}

// IsSet is true if any reserved bit is set.
func (rs Reserved[T]) IsSet() bool {
	return (*rs.slot.value & rs.slot.mask()) != 0
}

// Mask of the reserved bits within the register.
func (rs Reserved[T]) Mask() T {
	return rs.slot.mask()
}

// Offset of the lowest reserved bit.
func (rs Reserved[T]) Offset() uint {
	return rs.slot.offset
}

// Width of the reserved slot in bits.
func (rs Reserved[T]) Width() uint {
	return rs.slot.width
}
