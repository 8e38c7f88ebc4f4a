// SPDX-License-Identifier: EPL-2.0

package partition

import (
	"fmt"
	"unsafe"
)

// Views exposes the typed fields of a region partitioned by a Plan.
// The views alias the region; nothing is copied.
type Views struct {
	mem  []byte
	plan Plan
}

// Apply binds plan to mem. mem must be at least plan.Size bytes long and
// start on a MaxAlign boundary.
func Apply(mem []byte, plan Plan) (*Views, error) {
	if len(mem) < plan.Size || len(mem) == 0 {
		return nil, fmt.Errorf("region of %d bytes, need %d: %w", len(mem), plan.Size, ErrRegionTooSmall)
	}
	if addr := uintptr(unsafe.Pointer(&mem[0])); addr%MaxAlign != 0 {
		return nil, fmt.Errorf("region base %#x: %w", addr, ErrMisaligned)
	}

	return &Views{mem: mem, plan: plan}, nil
}

// Region returns the underlying memory.
func (v *Views) Region() []byte { return v.mem }

func (v *Views) lookup(name string, kind Kind) (Slot, error) {
	s, ok := v.plan.Slot(name)
	if !ok {
		return Slot{}, fmt.Errorf("field %q: %w", name, ErrUnknownField)
	}
	if s.Kind != kind {
		return Slot{}, fmt.Errorf("field %q is %s, not %s: %w", name, s.Kind, kind, ErrKindMismatch)
	}
	return s, nil
}

// Float32s returns the named float32 array.
func (v *Views) Float32s(name string) ([]float32, error) {
	s, err := v.lookup(name, Float32)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&v.mem[s.Offset])), s.Count), nil
}

// Uint32 returns a pointer to the first element of the named uint32 field.
func (v *Views) Uint32(name string) (*uint32, error) {
	s, err := v.lookup(name, Uint32)
	if err != nil {
		return nil, err
	}
	return (*uint32)(unsafe.Pointer(&v.mem[s.Offset])), nil
}

// Uint64 returns a pointer to the first element of the named uint64 field.
func (v *Views) Uint64(name string) (*uint64, error) {
	s, err := v.lookup(name, Uint64)
	if err != nil {
		return nil, err
	}
	return (*uint64)(unsafe.Pointer(&v.mem[s.Offset])), nil
}
