package report

import (
	"bufio"
	"io"
	"os"
)

// LogFileName is the report file written to the working directory.
const LogFileName = "lsp.log"

// Destination selects where the log goes.
type Destination int

const (
	ToFile Destination = iota
	ToStdout
)

// Banner is one of the two markers framing the log.
type Banner int

const (
	BannerOpen Banner = iota
	BannerClose
)

// Sink receives the log: the opening banner, one block per provider, the closing
// banner.
type Sink struct {
	w    *bufio.Writer
	file *os.File
	dest Destination
}

// Open creates the sink for dest. ToFile creates (or truncates) LogFileName in the
// working directory; ToStdout writes to stdout.
func Open(dest Destination, stdout io.Writer) (*Sink, error) {
	if dest == ToStdout {
		return NewSink(stdout), nil
	}

	f, err := os.Create(LogFileName)
	if err != nil {
		return nil, err
	}
	s := NewSink(f)
	s.file = f
	s.dest = ToFile
	return s, nil
}

// NewSink returns a sink writing to w. Closing it flushes w but does not close it.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: bufio.NewWriter(w), dest: ToStdout}
}

// Destination reports where the sink writes.
func (s *Sink) Destination() Destination {
	return s.dest
}

func (s *Sink) WriteBanner(b Banner) error {
	if b == BannerOpen {
		_, err := s.w.WriteString("BEGIN LOG\n\n")
		return err
	}
	_, err := s.w.WriteString("END LOG\n")
	return err
}

func (s *Sink) WriteBlock(text string) error {
	_, err := s.w.WriteString(text)
	return err
}

// Close flushes buffered output and closes the report file, if any.
func (s *Sink) Close() error {
	err := s.w.Flush()
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
		s.file = nil
	}
	return err
}
