package router

import (
	"container/list"
	"fmt"
)

// IdempotencyChecker implements two-tier request deduplication: a hot
// in-memory LRU in front of the Postgres audit log. A duplicate RequestID is
// rejected before any funds move.
type IdempotencyChecker struct {
	lru       *IdempotencyLRU
	dbChecker DBIdempotencyChecker
}

// DBIdempotencyChecker is the cold-path lookup against the audit log.
type DBIdempotencyChecker interface {
	IsDuplicate(namespace string, idempotencyKey string) (bool, error)
}

func NewIdempotencyChecker(capacity int, dbChecker DBIdempotencyChecker) *IdempotencyChecker {
	return &IdempotencyChecker{
		lru:       NewIdempotencyLRU(capacity),
		dbChecker: dbChecker,
	}
}

// IsDuplicate reports whether the request was already processed. The LRU
// answers the hot path; a miss falls through to the audit log.
func (ic *IdempotencyChecker) IsDuplicate(namespace string, idempotencyKey string) bool {
	compositeKey := fmt.Sprintf("%s:%s", namespace, idempotencyKey)

	if ic.lru.Contains(compositeKey) {
		return true
	}

	if ic.dbChecker != nil {
		isDup, err := ic.dbChecker.IsDuplicate(namespace, idempotencyKey)
		if err != nil {
			// Conservative: a DB issue must not block compositions, so
			// assume not duplicate. The audit log's unique index still
			// prevents a double write.
			return false
		}

		if isDup {
			// Cache the hit so the next replay never reaches the DB.
			ic.lru.Add(compositeKey)
			return true
		}
	}

	return false
}

// MarkProcessed records the key after successful processing.
func (ic *IdempotencyChecker) MarkProcessed(namespace string, idempotencyKey string) {
	compositeKey := fmt.Sprintf("%s:%s", namespace, idempotencyKey)
	ic.lru.Add(compositeKey)
}

// WarmLRU pre-populates the hot tier from persisted keys.
func (ic *IdempotencyChecker) WarmLRU(keys []string) {
	ic.lru.WarmFromKeys(keys)
}

// Size returns the number of keys cached in the hot tier.
func (ic *IdempotencyChecker) Size() int {
	return ic.lru.Size()
}

// Evictions returns the total keys aged out of the hot tier. An eviction is
// not a correctness problem — the audit log still backstops the lookup — but
// a climbing rate means the hot tier is undersized for the request volume.
func (ic *IdempotencyChecker) Evictions() int64 {
	return ic.lru.Evictions()
}

// IdempotencyLRU is an LRU cache for composite idempotency keys.
// Not thread-safe; only accessed while the composition lock is held.
type IdempotencyLRU struct {
	capacity int
	cache    map[string]*list.Element
	lruList  *list.List

	evictions int64
}

type lruEntry struct {
	key string
}

func NewIdempotencyLRU(capacity int) *IdempotencyLRU {
	return &IdempotencyLRU{
		capacity: capacity,
		cache:    make(map[string]*list.Element, capacity),
		lruList:  list.New(),
	}
}

// Contains reports whether key is cached, promoting it on a hit.
func (lru *IdempotencyLRU) Contains(key string) bool {
	elem, exists := lru.cache[key]
	if exists {
		lru.lruList.MoveToFront(elem)
		return true
	}
	return false
}

// Add inserts a key, or promotes it if already present.
func (lru *IdempotencyLRU) Add(key string) {
	if elem, exists := lru.cache[key]; exists {
		lru.lruList.MoveToFront(elem)
		return
	}

	entry := &lruEntry{key: key}
	elem := lru.lruList.PushFront(entry)
	lru.cache[key] = elem

	if lru.lruList.Len() > lru.capacity {
		lru.evictOldest()
	}
}

func (lru *IdempotencyLRU) evictOldest() {
	elem := lru.lruList.Back()
	if elem != nil {
		lru.lruList.Remove(elem)
		entry := elem.Value.(*lruEntry)
		delete(lru.cache, entry.key)
		lru.evictions++
	}
}

// WarmFromKeys loads a batch of composite keys into the LRU. On restart,
// recent request IDs from the audit log are loaded to avoid cold-path DB
// lookups for recently processed requests.
func (lru *IdempotencyLRU) WarmFromKeys(keys []string) {
	for _, key := range keys {
		if _, exists := lru.cache[key]; exists {
			continue
		}
		entry := &lruEntry{key: key}
		elem := lru.lruList.PushFront(entry)
		lru.cache[key] = elem

		if lru.lruList.Len() > lru.capacity {
			lru.evictOldest()
		}
	}
}

// Size returns the current number of entries.
func (lru *IdempotencyLRU) Size() int {
	return lru.lruList.Len()
}

// Evictions returns total evictions since construction.
func (lru *IdempotencyLRU) Evictions() int64 {
	return lru.evictions
}
