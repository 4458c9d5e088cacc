// Package leveldb persists chain blocks and off-chain documents in embedded
// LevelDB databases, one database per store.
package leveldb

import (
	"time"
)

type (
	// Metrics tracks store operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
