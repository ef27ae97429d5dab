package native

import (
	"os"
	"path/filepath"
	"sync"
)

// perfLibsPathEnv names the environment variable a host uses to point at a
// directory carrying the native SIMD/GPU plug-in, mirroring the reference
// implementation's locate_perf_libs/append_to_ld_library_path pairing: when
// set, that directory is both where the library is looked up and added to
// the dynamic linker's search path so the library's own dependencies (if
// any) resolve too.
const perfLibsPathEnv = "POH_PERF_LIBS_PATH"

// testPerfLibsEnv gates automatic loading of the default-named library, the
// same way the reference implementation's api() only self-initializes when
// TEST_PERF_LIBS is set; production callers load explicitly via ResolveLibPath.
const testPerfLibsEnv = "TEST_PERF_LIBS"

// LocatePerfLibs returns the host-provided perf-libs directory, if the
// locator environment variable names one that exists.
func LocatePerfLibs() (string, bool) {
	dir := os.Getenv(perfLibsPathEnv)
	if dir == "" {
		return "", false
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", false
	}
	return dir, true
}

// appendToLibrarySearchPath prepends dir to LD_LIBRARY_PATH so a library
// loaded from dir can resolve its own shared-object dependencies.
func appendToLibrarySearchPath(dir string) {
	existing := os.Getenv("LD_LIBRARY_PATH")
	if existing == "" {
		os.Setenv("LD_LIBRARY_PATH", dir)
		return
	}
	os.Setenv("LD_LIBRARY_PATH", dir+string(os.PathListSeparator)+existing)
}

// ResolveLibPath augments name with the located perf-libs directory, if any,
// the way the reference implementation's init() resolves "libpoh-simd.so"
// against locate_perf_libs(). With no locator directory configured, name is
// returned unchanged and dlopen's own default search rules apply.
func ResolveLibPath(name string) string {
	dir, ok := LocatePerfLibs()
	if !ok {
		return name
	}
	appendToLibrarySearchPath(dir)
	return filepath.Join(dir, name)
}

var autoLoadOnce sync.Once
var autoLoaded Capability

// AutoLoad lazily loads the default-named native library the first time it
// is called, but only when TEST_PERF_LIBS is set in the environment —
// mirroring the reference implementation's api(), whose one-time init hook
// calls init_poh() exactly under that condition so test suites can opt into
// exercising the native path without every production build paying for an
// unconditional dlopen. Outside that condition it returns an unavailable
// capability; production callers load explicitly via Load/ResolveLibPath
// instead of relying on this hook.
func AutoLoad(defaultLibName string) Capability {
	autoLoadOnce.Do(func() {
		if _, ok := os.LookupEnv(testPerfLibsEnv); !ok {
			autoLoaded = unavailable{}
			return
		}
		autoLoaded = Load(ResolveLibPath(defaultLibName))
	})
	return autoLoaded
}
