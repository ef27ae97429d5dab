//go:build cgo

package native

/*
#cgo LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdint.h>
#include <stdlib.h>

typedef void (*poh_verify_many_simd_fn)(uint8_t *hashes, const uint64_t *num_hashes);
typedef int (*poh_verify_many_fn)(uint8_t *hashes, const uint64_t *num_hashes, size_t length, size_t ignore_mismatch);

static void call_simd(poh_verify_many_simd_fn fn, uint8_t *hashes, const uint64_t *num_hashes) {
	fn(hashes, num_hashes);
}

static int call_gpu(poh_verify_many_fn fn, uint8_t *hashes, const uint64_t *num_hashes, size_t length) {
	return fn(hashes, num_hashes, length, 1);
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// dlCapability loads poh_verify_many_simd_avx2, poh_verify_many_simd_avx512skx,
// and poh_verify_many from a shared library opened with dlopen, matching the
// reference perf-libs plug-in contract.
type dlCapability struct {
	handle  unsafe.Pointer
	avx2    C.poh_verify_many_simd_fn
	avx512  C.poh_verify_many_simd_fn
	gpu     C.poh_verify_many_fn
	hasGPU  bool
}

// Load opens libPath with dlopen and resolves the SIMD and GPU entry
// points it can find. Missing symbols simply leave the corresponding
// capability unavailable; a library that exposes none of the three named
// symbols is treated as not loaded.
func Load(libPath string) Capability {
	cPath := C.CString(libPath)
	defer C.free(unsafe.Pointer(cPath))

	handle := C.dlopen(cPath, C.RTLD_NOW)
	if handle == nil {
		return unavailable{}
	}

	cap := &dlCapability{handle: handle}

	if sym := C.dlsym(handle, C.CString("poh_verify_many_simd_avx2")); sym != nil {
		cap.avx2 = C.poh_verify_many_simd_fn(sym)
	}
	if sym := C.dlsym(handle, C.CString("poh_verify_many_simd_avx512skx")); sym != nil {
		cap.avx512 = C.poh_verify_many_simd_fn(sym)
	}
	if sym := C.dlsym(handle, C.CString("poh_verify_many")); sym != nil {
		cap.gpu = C.poh_verify_many_fn(sym)
		cap.hasGPU = true
	}

	if cap.avx2 == nil && cap.avx512 == nil && !cap.hasGPU {
		C.dlclose(handle)
		return unavailable{}
	}
	return cap
}

func (c *dlCapability) Loaded() bool {
	return c.avx2 != nil || c.avx512 != nil
}

func (c *dlCapability) GPUAvailable() bool {
	return c.hasGPU
}

func (c *dlCapability) VerifyManySIMDAVX2(hashes []byte, numHashes []uint64) error {
	if c.avx2 == nil {
		return errUnavailable
	}
	if err := checkLanes(hashes, numHashes); err != nil {
		return err
	}
	C.call_simd(c.avx2, (*C.uint8_t)(unsafe.Pointer(&hashes[0])), (*C.uint64_t)(unsafe.Pointer(&numHashes[0])))
	return nil
}

func (c *dlCapability) VerifyManySIMDAVX512(hashes []byte, numHashes []uint64) error {
	if c.avx512 == nil {
		return errUnavailable
	}
	if err := checkLanes(hashes, numHashes); err != nil {
		return err
	}
	C.call_simd(c.avx512, (*C.uint8_t)(unsafe.Pointer(&hashes[0])), (*C.uint64_t)(unsafe.Pointer(&numHashes[0])))
	return nil
}

func (c *dlCapability) VerifyManyGPU(hashes []byte, numHashes []uint64) (fatal bool) {
	if !c.hasGPU {
		return false
	}
	if err := checkLanes(hashes, numHashes); err != nil {
		return false
	}
	res := C.call_gpu(c.gpu, (*C.uint8_t)(unsafe.Pointer(&hashes[0])), (*C.uint64_t)(unsafe.Pointer(&numHashes[0])), C.size_t(len(numHashes)))
	return res != 0
}

func checkLanes(hashes []byte, numHashes []uint64) error {
	if len(hashes)%32 != 0 {
		return fmt.Errorf("native: hashes length %d is not a multiple of 32", len(hashes))
	}
	if len(hashes)/32 != len(numHashes) {
		return fmt.Errorf("native: %d hash lanes but %d num_hashes entries", len(hashes)/32, len(numHashes))
	}
	return nil
}
