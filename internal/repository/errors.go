// Package repository defines the persistence layer for compiled layout
// snapshots. Sentinel errors live here so higher layers such as
// handlers can distinguish failure scenarios without inspecting
// driver errors.
package repository

import "errors"

// ErrSnapshotNotFound is returned when no snapshot has ever been stored
// for a (venue, show) key. Handlers should translate this into an HTTP
// 404 response.
var ErrSnapshotNotFound = errors.New("snapshot not found")
