// Package report renders the provider catalog as the plain-text LSP log.
package report

import (
	"fmt"
	"strings"

	"github.com/apex/log"

	"lspenum/internal/model"
)

const indentWidth = 4

var (
	logIndent   = strings.Repeat(" ", 1*indentWidth)
	entryIndent = strings.Repeat(" ", 2*indentWidth)
	chainIndent = strings.Repeat(" ", 3*indentWidth)
)

// Lookup resolves the per-provider details that are not part of the catalog record.
type Lookup interface {
	ProviderPath(id model.GUID) ([]uint16, error)
	ProviderCategories(id model.GUID) (uint32, error)
}

// Formatter turns catalog records into log entries.
type Formatter struct {
	lookup Lookup
}

func NewFormatter(lookup Lookup) *Formatter {
	return &Formatter{lookup: lookup}
}

// Resolve runs both secondary lookups for rec. Each one may fail on its own; a
// failure only leaves the matching field unset.
func (f *Formatter) Resolve(rec model.ProviderRecord) model.DerivedInfo {
	var info model.DerivedInfo
	ctx := log.WithField("provider", rec.ProviderID.String())

	if path, err := f.lookup.ProviderPath(rec.ProviderID); err != nil {
		ctx.WithError(err).Debug("DLL path lookup failed")
	} else {
		info.LibraryPath = toUTF8(path)
		info.HasLibraryPath = true
	}

	if flags, err := f.lookup.ProviderCategories(rec.ProviderID); err != nil {
		ctx.WithError(err).Debug("category lookup failed")
	} else {
		info.CategoryFlags = flags
		info.HasCategoryFlags = true
	}

	return info
}

// Entry resolves and renders the record at index i.
func (f *Formatter) Entry(i int, rec model.ProviderRecord) string {
	return RenderEntry(i, rec, f.Resolve(rec))
}

// RenderEntry produces the text block for one provider, trailing blank line included.
func RenderEntry(i int, rec model.ProviderRecord, info model.DerivedInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%sBEGIN ENTRY [%d]:\n", logIndent, i)
	fmt.Fprintf(&b, "%sDescription: %s\n", entryIndent, toUTF8(rec.Description))
	if info.HasLibraryPath {
		fmt.Fprintf(&b, "%sDLL: %s\n", entryIndent, info.LibraryPath)
	}

	switch rec.Kind() {
	case model.ChainLayered:
		fmt.Fprintf(&b, "%sLayered protocol\n", entryIndent)
	case model.ChainBase:
		fmt.Fprintf(&b, "%sBase protocol\n", entryIndent)
	default:
		fmt.Fprintf(&b, "%sProtocol chain:\n", entryIndent)
		for _, id := range rec.ProtocolChain {
			fmt.Fprintf(&b, "%s%d\n", chainIndent, id)
		}
	}

	fmt.Fprintf(&b, "%sVersion: %d\n", entryIndent, rec.Version)
	fmt.Fprintf(&b, "%sCatalog entry ID: %d\n", entryIndent, rec.CatalogEntryID)
	fmt.Fprintf(&b, "%sProvider ID: %s\n", entryIndent, rec.ProviderID)
	fmt.Fprintf(&b, "%sService Flags: 0x%x\n", entryIndent, rec.ServiceFlags)
	fmt.Fprintf(&b, "%sProvider Flags: 0x%x\n", entryIndent, rec.ProviderFlags)
	if info.HasCategoryFlags {
		fmt.Fprintf(&b, "%sCategory Flags: 0x%x\n", entryIndent, info.CategoryFlags)
	}
	fmt.Fprintf(&b, "%sEND ENTRY [%d]\n\n", logIndent, i)

	return b.String()
}
