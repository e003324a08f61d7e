// catalog_windows.go — Queries against the provider catalog: enumeration, DLL path
// lookup and LSP category lookup.
package winsock

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"lspenum/internal/model"
)

type wscProviderInfoType int32

const (
	providerInfoLspCategories wscProviderInfoType = 0
)

// EnumProtocols wraps WSCEnumProtocols for every protocol in the catalog. An empty
// buf turns the call into a size probe: it fails with WSAENOBUFS and *size is set to
// the number of bytes needed.
func (s *Session) EnumProtocols(buf []ProtocolInfo, size *uint32) (int, error) {
	var p *ProtocolInfo
	if len(buf) > 0 {
		p = &buf[0]
	}

	var errno int32
	n := wscEnumProtocols(nil, p, size, &errno)
	if n == SOCKET_ERROR {
		return 0, Errno(errno)
	}
	return int(n), nil
}

// ProviderPath returns the (unexpanded) DLL path registered for a provider.
func (s *Session) ProviderPath(id model.GUID) ([]uint16, error) {
	buf := make([]uint16, windows.MAX_PATH+1)
	n := int32(windows.MAX_PATH)
	g := windows.GUID(id)

	var errno int32
	if wscGetProviderPath(&g, &buf[0], &n, &errno) != 0 {
		return nil, Errno(errno)
	}
	if n < 0 || int(n) > len(buf) {
		return nil, Errno(WSAEFAULT)
	}

	path := buf[:n]
	for i, c := range path {
		if c == 0 {
			path = path[:i]
			break
		}
	}
	return path, nil
}

// ProviderCategories returns the LSP category bits of a provider. The call only
// exists from Windows Vista on.
func (s *Session) ProviderCategories(id model.GUID) (uint32, error) {
	if err := procWSCGetProviderInfo.Find(); err != nil {
		return 0, err
	}

	var info uint32
	size := unsafe.Sizeof(info)
	g := windows.GUID(id)

	var errno int32
	if wscGetProviderInfo(&g, providerInfoLspCategories, unsafe.Pointer(&info), &size, 0, &errno) != 0 {
		return 0, Errno(errno)
	}
	return info, nil
}
