//go:build unix

/**
 * CONTEXT:   POSIX read-permission check for the network probe's step 3
 * INPUT:     The network root directory path
 * OUTPUT:    nil if the effective user can list the directory, else an error
 * BUSINESS:  Repurposes the teacher's own golang.org/x/sys/unix usage (originally
 *            for eBPF/process inspection) for a filesystem permission probe instead
 * CHANGE:    Initial implementation.
 * RISK:      Low - Thin wrapper over unix.Access
 */

package netmonitor

import "golang.org/x/sys/unix"

func checkReadPermission(path string) error {
	return unix.Access(path, unix.R_OK|unix.X_OK)
}
