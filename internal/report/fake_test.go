package report

import (
	"errors"
	"unicode/utf16"

	"lspenum/internal/model"
)

var errNotFound = errors.New("provider not found")

// fakeLookup resolves only the providers it has been told about.
type fakeLookup struct {
	paths      map[model.GUID]string
	categories map[model.GUID]uint32
}

func (f *fakeLookup) ProviderPath(id model.GUID) ([]uint16, error) {
	p, ok := f.paths[id]
	if !ok {
		return nil, errNotFound
	}
	return utf16.Encode([]rune(p)), nil
}

func (f *fakeLookup) ProviderCategories(id model.GUID) (uint32, error) {
	c, ok := f.categories[id]
	if !ok {
		return 0, errNotFound
	}
	return c, nil
}

func wide(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

var (
	tcpipID = model.GUID{Data1: 0xE70F1AA0, Data2: 0xAB8B, Data3: 0x11CF, Data4: [8]byte{0x8C, 0xA3, 0x00, 0x80, 0x5F, 0x48, 0xA1, 0x92}}
	lspID   = model.GUID{Data1: 0x1D2C4F8A, Data2: 0x0B3E, Data3: 0x4C1D, Data4: [8]byte{0x9E, 0x51, 0x7A, 0x04, 0x2B, 0xC6, 0xD0, 0x13}}
	chainID = model.GUID{Data1: 0x9A3C2B10, Data2: 0x55AA, Data3: 0x4F00, Data4: [8]byte{0x81, 0x02, 0xAB, 0xCD, 0xEF, 0x01, 0x23, 0x45}}
)

func sampleRecords() []model.ProviderRecord {
	return []model.ProviderRecord{
		{
			Description:    wide("MSAFD Tcpip [TCP/IP]"),
			ProviderID:     tcpipID,
			CatalogEntryID: 1001,
			Version:        2,
			ServiceFlags:   0x20066,
			ProviderFlags:  0x8,
			ProtocolChain:  []uint32{1001},
		},
		{
			Description:    wide("Contoso Web Shield"),
			ProviderID:     lspID,
			CatalogEntryID: 1010,
			Version:        2,
			ServiceFlags:   0x20066,
			ProviderFlags:  0x0,
			ProtocolChain:  nil,
		},
		{
			Description:    wide("Contoso Web Shield über MSAFD Tcpip"),
			ProviderID:     chainID,
			CatalogEntryID: 1011,
			Version:        2,
			ServiceFlags:   0x20066,
			ProviderFlags:  0x8,
			ProtocolChain:  []uint32{1010, 1001},
		},
	}
}

func sampleLookup() *fakeLookup {
	return &fakeLookup{
		paths: map[model.GUID]string{
			tcpipID: `%SystemRoot%\system32\mswsock.dll`,
			chainID: `C:\Program Files\Contoso\webshield64.dll`,
		},
		categories: map[model.GUID]uint32{
			tcpipID: 0x0,
			lspID:   0x80000001,
		},
	}
}
