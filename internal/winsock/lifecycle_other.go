//go:build !windows

package winsock

import "lspenum/internal/model"

// Startup always fails off Windows: there is no provider catalog to read.
func Startup() (*Session, error) {
	return nil, ErrUnsupported
}

func cleanup() error { return nil }

func (s *Session) EnumProtocols(buf []ProtocolInfo, size *uint32) (int, error) {
	return 0, ErrUnsupported
}

func (s *Session) ProviderPath(id model.GUID) ([]uint16, error) {
	return nil, ErrUnsupported
}

func (s *Session) ProviderCategories(id model.GUID) (uint32, error) {
	return 0, ErrUnsupported
}
