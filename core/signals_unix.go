//go:build unix

package core

import (
	"os"

	"golang.org/x/sys/unix"
)

// ShutdownSignals lists the signals that stop a headless run
func ShutdownSignals() []os.Signal {
	return []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGHUP}
}
