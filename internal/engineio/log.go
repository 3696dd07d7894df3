// Package engineio carries the ambient concerns search and perft drivers
// need but the core package shouldn't: leveled logging and locale-aware
// node-count formatting. Both are grounded on FrankyGo's use of
// github.com/op/go-logging and golang.org/x/text/message, the only two
// third-party dependencies found anywhere in the retrieved corpus for
// this domain.
package engineio

import (
	"os"

	"github.com/op/go-logging"
)

// Log is the package-wide logger, formatted the way FrankyGo configures
// its go-logging backend: level, timestamp and calling function visible
// at a glance on stderr.
var Log = logging.MustGetLogger("engine")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{shortfunc} > %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// SetVerbose raises the logger to DEBUG, for drivers that take a
// -verbose flag.
func SetVerbose(verbose bool) {
	level := logging.INFO
	if verbose {
		level = logging.DEBUG
	}
	logging.SetLevel(level, "engine")
}
