package caches

import "time"

// TTLSet carries the expiry per cache class. Volatile classes (popular,
// analytics) expire fast because their underlying data moves constantly;
// catalog classes live longer and rely on explicit eviction for correctness.
type TTLSet struct {
	Products    time.Duration
	ProductByID time.Duration
	Category    time.Duration
	Popular     time.Duration
	Analytics   time.Duration
}
