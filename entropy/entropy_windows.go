//go:build windows

package entropy

import "golang.org/x/sys/windows"

// bcryptUseSystemPreferredRNG selects BCRYPT_USE_SYSTEM_PREFERRED_RNG,
// instructing BCryptGenRandom to ignore the passed-in algorithm handle
// and use the system's preferred RNG instead.
const bcryptUseSystemPreferredRNG = 0x00000002

// osRandomBytes draws n bytes from BCryptGenRandom. Any error-severity
// NTSTATUS from the call is treated as a failure.
func osRandomBytes(n int) ([]byte, error) {
	out := make([]byte, n)
	if n == 0 {
		return out, nil
	}
	if err := windows.BCryptGenRandom(0, out, bcryptUseSystemPreferredRNG); err != nil {
		return nil, &Error{Source: SourceWindowsBCrypt, Status: int64(0), Err: err}
	}
	return out, nil
}
