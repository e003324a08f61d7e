package model

// ProviderRecord represents a single Winsock provider registered in the catalog.
type ProviderRecord struct {
	Description    []uint16 // Provider name as stored by the OS (UTF-16, NUL-trimmed)
	ProviderID     GUID     // Key for the DLL path and category lookups
	CatalogEntryID uint32   // Position of the entry in the catalog
	Version        int32    // Protocol version
	ServiceFlags   uint32   // XP1_* bits, reported as-is
	ProviderFlags  uint32   // PFL_* bits, reported as-is
	ProtocolChain  []uint32 // Catalog IDs of the layering chain, in stored order

	AddressFamily int32
	SocketType    int32
	Protocol      int32
}

// ChainKind classifies a provider by the length of its protocol chain.
type ChainKind int

const (
	ChainLayered ChainKind = iota // Length 0: the entry is itself a layered provider
	ChainBase                     // Length 1: base protocol, no chaining
	ChainList                     // Length > 1: base + layer IDs in order
)

// Kind returns the chain classification of the record.
func (p ProviderRecord) Kind() ChainKind {
	switch len(p.ProtocolChain) {
	case 0:
		return ChainLayered
	case 1:
		return ChainBase
	default:
		return ChainList
	}
}

// DerivedInfo holds the details resolved per provider through secondary lookups.
// Either half may be missing; a missing field is omitted from the report.
type DerivedInfo struct {
	LibraryPath      string // Backing DLL of the provider
	CategoryFlags    uint32 // LSP_* category bits
	HasLibraryPath   bool   // Whether the DLL path lookup succeeded
	HasCategoryFlags bool   // Whether the category lookup succeeded
}
