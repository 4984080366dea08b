// SPDX-License-Identifier: MIT

// Package internalcheck holds static policy tests over the engine packages.
//
// The engine must be safe for concurrent use with no shared mutable state:
// the tests load the hafnian and matrix/ops packages with go/packages and
// reject package-level variables other than blank interface assertions and
// error sentinels.
//
// # Internal Use Only
//
// This package has no API; it exists for its tests.
package internalcheck
