// Package catalog reads the Winsock provider catalog in the two steps the OS
// expects: a size probe, then a read into a buffer sized from the probe.
package catalog

import (
	"errors"
	"fmt"

	"github.com/apex/log"

	"lspenum/internal/model"
	"lspenum/internal/winsock"
)

var (
	// ErrProbe is returned when the size probe fails for any reason other than
	// the expected "buffer too small".
	ErrProbe = errors.New("WSCEnumProtocols length query failed")

	// ErrRead is returned when the catalog could not be read into the sized buffer.
	ErrRead = errors.New("WSCEnumProtocols failed")
)

// Enumerator is the catalog enumeration primitive. A nil or empty buf asks only
// for the required size.
type Enumerator interface {
	EnumProtocols(buf []winsock.ProtocolInfo, size *uint32) (int, error)
}

// Enumerate returns every provider in the catalog, in the order the OS reports
// them.
func Enumerate(e Enumerator) ([]model.ProviderRecord, error) {
	var size uint32
	if _, err := e.EnumProtocols(nil, &size); err != nil && !errors.Is(err, winsock.ErrNoBuffers) {
		return nil, fmt.Errorf("%w: %w", ErrProbe, err)
	}

	// Only whole records; a trailing partial record is never read.
	count := size / winsock.RecordSize
	buf := make([]winsock.ProtocolInfo, count)
	size = count * winsock.RecordSize
	log.Debugf("catalog: probe reported room for %d providers (%d bytes)", count, size)

	n, err := e.EnumProtocols(buf, &size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if n < 0 {
		n = 0
	}
	if n > len(buf) {
		n = len(buf)
	}
	log.Debugf("catalog: read %d providers", n)

	records := make([]model.ProviderRecord, n)
	for i := range records {
		records[i] = buf[i].Record()
	}
	return records, nil
}
