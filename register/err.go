package register

import (
	"errors"

	"github.com/ezrec/regtype/translate"
)

var f = translate.From

var (
	// Layout errors
	ErrLayoutNotStruct = errors.New(f("bit layout is not a struct"))
	ErrLayoutBehavior  = errors.New(f("bit layout declares methods"))
	ErrLayoutField     = errors.New(f("bit layout field is not a register field of the storage width"))
	ErrLayoutTag       = errors.New(f("bit layout field width tag invalid"))
	ErrLayoutSize      = errors.New(f("bit layout size is not equal to the storage width"))

	// Mask errors
	ErrMaskName      = errors.New(f("mask flag unnamed"))
	ErrMaskDuplicate = errors.New(f("mask flag duplicated"))
	ErrMaskEmpty     = errors.New(f("mask flag has no bits"))
	ErrMaskOverlap   = errors.New(f("mask flags overlap"))

	// Cross-declaration errors
	ErrDefaultMismatch = errors.New(f("default mask flags differ from valid mask flags"))
	ErrDefaultRange    = errors.New(f("default bits outside of valid bits"))
	ErrFieldMismatch   = errors.New(f("bit layout field differs from valid mask flag"))
	ErrReservedOverlap = errors.New(f("reserved field overlaps valid bits"))
)

// ErrSchema reports an inconsistent register definition.
type ErrSchema struct {
	Register string // Name of the register being defined.
	Item     string // Flag or field at fault, if any.
	Err      error
}

func (err *ErrSchema) Error() string {
	if len(err.Item) == 0 {
		return f("register %v: %v", err.Register, err.Err)
	}
	return f("register %v: %v: %v", err.Register, err.Item, err.Err)
}

func (err *ErrSchema) Unwrap() error {
	return err.Err
}

// ErrParse reports text that is not a base-10 register value.
type ErrParse struct {
	Text string
	Err  error
}

func (err *ErrParse) Error() string {
	return f("'%v' is not a register value: %v", err.Text, err.Err)
}

func (err *ErrParse) Unwrap() error {
	return err.Err
}
