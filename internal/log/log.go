package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"
)

// InitLogger sets up Apex with a custom handler and a log level from the
// LSPENUM_LOG env variable. Unset or unrecognised values mean ERROR.
func InitLogger() {
	level, err := log.ParseLevel(strings.ToLower(os.Getenv("LSPENUM_LOG")))
	if err != nil {
		level = log.ErrorLevel
	}
	log.SetHandler(&CustomHandler{Writer: os.Stderr})
	log.SetLevel(level)
}

// CustomHandler formats log messages and writes them to Writer. Logs never go to
// stdout, which may be carrying the report.
type CustomHandler struct {
	Writer io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())

	var fields strings.Builder
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&fields, " %s=%v", name, e.Fields[name])
	}

	_, err := fmt.Fprintf(h.Writer, "%s %.1s %s%s\n", timestamp, level, e.Message, fields.String())
	return err
}
