// protocol_info.go — The fixed WSAPROTOCOL_INFOW layout filled in by WSCEnumProtocols
// and its conversion into the report's provider record. Kept free of build tags so the
// record handling can be exercised on any platform.
package winsock

import (
	"unsafe"

	"lspenum/internal/model"
)

const (
	WSAPROTOCOL_LEN    = 255
	MAX_PROTOCOL_CHAIN = 7
)

// ProtocolChain matches WSAPROTOCOLCHAIN.
type ProtocolChain struct {
	ChainLen     int32
	ChainEntries [MAX_PROTOCOL_CHAIN]uint32
}

// ProtocolInfo matches WSAPROTOCOL_INFOW.
type ProtocolInfo struct {
	ServiceFlags1     uint32
	ServiceFlags2     uint32
	ServiceFlags3     uint32
	ServiceFlags4     uint32
	ProviderFlags     uint32
	ProviderID        model.GUID
	CatalogEntryID    uint32
	ProtocolChain     ProtocolChain
	Version           int32
	AddressFamily     int32
	MaxSockAddr       int32
	MinSockAddr       int32
	SocketType        int32
	Protocol          int32
	ProtocolMaxOffset int32
	NetworkByteOrder  int32
	SecurityScheme    int32
	MessageSize       uint32
	ProviderReserved  uint32
	Description       [WSAPROTOCOL_LEN + 1]uint16
}

// RecordSize is the size in bytes of one catalog record as the OS lays it out.
const RecordSize = uint32(unsafe.Sizeof(ProtocolInfo{}))

// Record copies the fields the report needs out of the raw catalog entry.
func (p *ProtocolInfo) Record() model.ProviderRecord {
	desc := p.Description[:]
	for i, c := range desc {
		if c == 0 {
			desc = desc[:i]
			break
		}
	}

	n := int(p.ProtocolChain.ChainLen)
	if n < 0 {
		n = 0
	}
	if n > MAX_PROTOCOL_CHAIN {
		n = MAX_PROTOCOL_CHAIN
	}

	return model.ProviderRecord{
		Description:    append([]uint16(nil), desc...),
		ProviderID:     p.ProviderID,
		CatalogEntryID: p.CatalogEntryID,
		Version:        p.Version,
		ServiceFlags:   p.ServiceFlags1,
		ProviderFlags:  p.ProviderFlags,
		ProtocolChain:  append([]uint32{}, p.ProtocolChain.ChainEntries[:n]...),
		AddressFamily:  p.AddressFamily,
		SocketType:     p.SocketType,
		Protocol:       p.Protocol,
	}
}
