//go:build !cgo

package native

// Load always reports no native library available on a build without cgo:
// dlopen/dlsym require cgo. Callers fall back to the scalar backend.
func Load(libPath string) Capability {
	return unavailable{}
}
