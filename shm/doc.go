// SPDX-License-Identifier: EPL-2.0

// Package shm maps file-backed shared memory regions.
//
// A Region is a plain byte slice backed by a MAP_SHARED mapping, suitable for
// framebuffer.NewContextOver on the owning side and framebuffer.AttachContext
// on the other. The package only allocates and releases memory; it carries
// no signalling between the parties.
//
//	region, err := shm.Create(shm.Options{Size: size})
//	if err != nil {
//	    // Handle error
//	}
//	defer region.Remove()
//
//	ctx, err := framebuffer.NewContextOver(region.Bytes(), params)
package shm
