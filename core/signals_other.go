//go:build !unix

package core

import "os"

// ShutdownSignals lists the signals that stop a headless run
func ShutdownSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
