//go:build linux || android

package entropy

import "golang.org/x/sys/unix"

// osRandomBytes draws n bytes from getrandom(2) with flags 0, splitting
// the request into chunks no larger than maxChunkBytes and treating any
// partial read as a failure rather than silently retrying with fewer
// bytes than requested.
func osRandomBytes(n int) ([]byte, error) {
	out := make([]byte, n)
	for off := 0; off < n; {
		chunk := n - off
		if chunk > maxChunkBytes {
			chunk = maxChunkBytes
		}
		got, err := unix.Getrandom(out[off:off+chunk], 0)
		if err != nil {
			return nil, &Error{Source: SourceLinuxGetrandom, Status: int64(errnoOf(err)), Err: err}
		}
		if got != chunk {
			return nil, &Error{Source: SourceLinuxGetrandom, Status: int64(got), Err: errPartialRead}
		}
		off += chunk
	}
	return out, nil
}

func errnoOf(err error) int {
	if errno, ok := err.(unix.Errno); ok {
		return int(errno)
	}
	return -1
}

var errPartialRead = errPartialReadType{}

type errPartialReadType struct{}

func (errPartialReadType) Error() string { return "getrandom returned fewer bytes than requested" }
