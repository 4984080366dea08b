// SPDX-License-Identifier: MIT

package hafnian

import "runtime"

const (
	version   = "0.3.0"
	algorithm = "power-trace/hessenberg-labudde"
)

// Version returns the engine's semantic version.
func Version() string { return version }

// Algorithm names the exact algorithm the engine runs, for wrappers that
// report which computation produced a value.
func Algorithm() string { return algorithm }

// BuildInfo returns "<version> <algorithm> <go runtime>", e.g.
// "0.3.0 power-trace/hessenberg-labudde go1.23.4".
func BuildInfo() string { return version + " " + algorithm + " " + runtime.Version() }
