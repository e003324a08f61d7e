// lifecycle.go — Scoped ownership of the process-wide Winsock initialization. Startup
// performs WSAStartup and hands back a Session; Close performs the matching
// WSACleanup exactly once, however many times it is called.
package winsock

// Session is an initialized Winsock subsystem. All catalog queries go through it.
type Session struct {
	closed bool
}

// Close releases the subsystem. Calls after the first are no-ops.
func (s *Session) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true
	return cleanup()
}
