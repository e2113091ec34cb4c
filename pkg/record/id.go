package record

import (
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NextID allocates a creation identifier. IDs are seeded from the Unix
// millisecond clock, matching what historical payloads contain, but bumped
// past the previous allocation when two calls land on the same tick so
// rapid creation can never collide within a process.
func NextID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
