// status_error.go — Winsock status codes reported through the errno out-parameter of
// the WSC* catalog calls, and the sentinels callers classify them against.
package winsock

import "errors"

const (
	WSAEFAULT  = 10014
	WSAENOBUFS = 10055

	SOCKET_ERROR = -1
)

var (
	// ErrNoBuffers reports that the supplied catalog buffer was too small.
	ErrNoBuffers = errors.New("no buffer space available")

	// ErrUnsupported is returned where there is no Winsock catalog to query.
	ErrUnsupported = errors.New("the Winsock provider catalog is only available on Windows")
)

// Errno is a Winsock error code.
type Errno int32

func (e Errno) Error() string {
	return errnoString(e)
}

// Is lets errors.Is match WSAENOBUFS against ErrNoBuffers.
func (e Errno) Is(target error) bool {
	return target == ErrNoBuffers && e == WSAENOBUFS
}
