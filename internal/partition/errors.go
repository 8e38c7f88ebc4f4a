// SPDX-License-Identifier: EPL-2.0

package partition

import "errors"

var (
	// ErrInvalidField reports a field with no name, a non-positive count or an unknown kind.
	ErrInvalidField = errors.New("invalid layout field")
	// ErrDuplicateField reports two fields with the same name in one recipe.
	ErrDuplicateField = errors.New("duplicate layout field")
	// ErrUnknownField reports a lookup of a name the plan does not contain.
	ErrUnknownField = errors.New("unknown layout field")
	// ErrKindMismatch reports a typed lookup of a field of another kind.
	ErrKindMismatch = errors.New("layout field kind mismatch")
	// ErrRegionTooSmall reports a region shorter than Plan.Size.
	ErrRegionTooSmall = errors.New("region too small for layout")
	// ErrMisaligned reports a region whose base is not MaxAlign aligned.
	ErrMisaligned = errors.New("region is not 8-byte aligned")
)
