package infra

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// RetryObserver counts unit of work retries per store.
type RetryObserver interface {
	ObserveRetry(store string)
}

// Backoff doubles base per attempt and adds up to 20% jitter.
func Backoff(attempt int, base time.Duration) time.Duration {
	wait := time.Duration(1<<attempt) * base
	return wait + time.Duration(jitter(int64(wait/5)))
}

func jitter(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// #nosec G115 -- high bit masked before the conversion
	return int64(binary.BigEndian.Uint64(buf[:])&0x7FFFFFFFFFFFFFFF) % n
}
