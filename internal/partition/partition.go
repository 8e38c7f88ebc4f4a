// SPDX-License-Identifier: EPL-2.0

// Package partition carves one contiguous memory region into typed,
// zero-copy views from a declarative recipe.
//
// Fields are laid out in recipe order. Each field is aligned to the size of
// its element type, so a region whose base address is 8-byte aligned can
// host any mix of float32, uint32 and uint64 fields and still be used with
// sync/atomic.
package partition

import (
	"fmt"
	"unsafe"
)

// Kind is the element type of a field.
type Kind int

const (
	// Float32 is a 4-byte IEEE 754 sample.
	Float32 Kind = iota
	// Uint32 is a 4-byte counter, usable with atomic.AddUint32.
	Uint32
	// Uint64 is an 8-byte counter, usable with atomic.AddUint64.
	Uint64
)

// Size returns the element size in bytes.
func (k Kind) Size() int {
	switch k {
	case Float32, Uint32:
		return 4
	case Uint64:
		return 8
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field is one entry of a layout recipe.
type Field struct {
	Name  string
	Kind  Kind
	Count int
}

// Slot is a field placed at a byte offset.
type Slot struct {
	Field
	Offset int
}

// Bytes is the size of the slot in bytes.
func (s Slot) Bytes() int { return s.Count * s.Kind.Size() }

// Plan is the computed placement of a recipe.
type Plan struct {
	Slots []Slot
	Size  int
}

// MaxAlign is the strictest alignment a Plan can require from its region.
const MaxAlign = 8

// Layout computes the offsets for recipe.
func Layout(recipe ...Field) (Plan, error) {
	plan := Plan{Slots: make([]Slot, 0, len(recipe))}
	seen := make(map[string]struct{}, len(recipe))

	offset := 0
	for _, f := range recipe {
		size := f.Kind.Size()
		if size == 0 {
			return Plan{}, fmt.Errorf("field %q: %w: %s", f.Name, ErrInvalidField, f.Kind)
		}
		if f.Name == "" || f.Count <= 0 {
			return Plan{}, fmt.Errorf("field %q count %d: %w", f.Name, f.Count, ErrInvalidField)
		}
		if _, ok := seen[f.Name]; ok {
			return Plan{}, fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		seen[f.Name] = struct{}{}

		offset = align(offset, size)
		plan.Slots = append(plan.Slots, Slot{Field: f, Offset: offset})
		offset += f.Count * size
	}
	plan.Size = offset

	return plan, nil
}

// Slot returns the placement of the named field.
func (p Plan) Slot(name string) (Slot, bool) {
	for _, s := range p.Slots {
		if s.Name == name {
			return s, true
		}
	}
	return Slot{}, false
}

func align(offset, to int) int {
	return (offset + to - 1) &^ (to - 1)
}

// Alloc returns a zeroed heap region of size bytes whose base address is
// aligned to MaxAlign.
func Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	words := make([]uint64, (size+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
}
