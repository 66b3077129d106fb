//go:build darwin || ios

package entropy

/*
#cgo LDFLAGS: -framework Security
#include <Security/SecRandom.h>
*/
import "C"
import "unsafe"

// osRandomBytes draws n bytes from SecRandomCopyBytes using the default
// generator (kSecRandomDefault).
func osRandomBytes(n int) ([]byte, error) {
	out := make([]byte, n)
	if n == 0 {
		return out, nil
	}
	status := C.SecRandomCopyBytes(nil, C.size_t(n), unsafe.Pointer(&out[0]))
	if status != 0 {
		return nil, &Error{Source: SourceAppleSecRandom, Status: int64(status)}
	}
	return out, nil
}
