// Package diag wraps the interpreter's diagnostic logging: lifecycle
// events (config load, preprocessing, subroutine harvesting, REPL
// start/stop) that are not part of the program's own print/error output
// contract. It never touches the fatal "Error at line : N" protocol
// output, which is written directly by internal/interp's callers.
package diag

import (
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Diag is a run-scoped diagnostic logger: every entry it emits carries
// the same run_id field, so concurrent symls invocations writing to a
// shared log sink can be told apart.
type Diag struct {
	log   *logrus.Logger
	runID string
}

// New builds a Diag writing to w. Logging is silenced (level above Fatal)
// unless the SYMLS_LOG environment variable is set, so ordinary program
// runs stay quiet apart from the interpreter's own output.
func New(w io.Writer) *Diag {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.PanicLevel)
	if os.Getenv("SYMLS_LOG") != "" {
		log.SetLevel(logrus.InfoLevel)
	}
	return &Diag{log: log, runID: uuid.NewString()}
}

func (d *Diag) entry() *logrus.Entry {
	return d.log.WithField("run_id", d.runID)
}

// RunID returns this session's v4 run identifier.
func (d *Diag) RunID() string { return d.runID }

// ConfigLoaded logs that a configuration file was read, or that defaults
// were used because none was found.
func (d *Diag) ConfigLoaded(path string, found bool) {
	d.entry().WithFields(logrus.Fields{"path": path, "found": found}).Info("configuration loaded")
}

// Preprocessed logs the size of the normalised program and the number of
// subroutines harvested from it, human-readable per the original's
// terse startup banter.
func (d *Diag) Preprocessed(outputPath string, byteSize int, subroutineCount int) {
	d.entry().WithFields(logrus.Fields{
		"output":      outputPath,
		"size":        humanize.Bytes(uint64(byteSize)),
		"subroutines": humanize.Comma(int64(subroutineCount)),
	}).Info("preprocessing complete")
}

// ReplStarted logs the start of an interactive session.
func (d *Diag) ReplStarted(interactive bool) {
	d.entry().WithField("interactive", interactive).Info("repl session started")
}

// ReplStopped logs the end of an interactive session.
func (d *Diag) ReplStopped() {
	d.entry().Info("repl session stopped")
}

// FatalExit logs that the interpreter is terminating on a fatal error,
// in addition to (not instead of) the protocol's own error text.
func (d *Diag) FatalExit(line int, kind string) {
	d.entry().WithFields(logrus.Fields{"line": line, "kind": kind}).Error("interpreter terminated on fatal error")
}
