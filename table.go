// Copyright 2026 The Symtab Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package symtab

import (
	"runtime"
	"sync"
	"sync/atomic"
	"weak"

	"github.com/cespare/xxhash/v2"
)

// numShards is the number of independently locked table shards. Sharding
// keeps write-lock contention bounded when many goroutines intern distinct
// contents at once.
const numShards = 64

type shard struct {
	mu    sync.RWMutex
	slots map[string]weak.Pointer[entry]
}

// Table is a registry mapping string content to its canonical entry. The
// table holds only weak references: it never keeps an entry alive on its
// own. A slot is installed on first intern of its content and removed by a
// runtime cleanup once the last Symbol referencing the entry is collected.
//
// The table is shared across all domains. Dedup is by content; validation
// is the caller's (domain's) concern and has already happened by the time
// the table is consulted.
//
// All methods are safe for concurrent use.
type Table struct {
	shards [numShards]shard

	hits     atomic.Uint64
	misses   atomic.Uint64
	reclaims atomic.Uint64
}

// Stats is a snapshot of table counters.
type Stats struct {
	// Live is the number of slots currently installed. Slots whose entry
	// is already unreachable but whose cleanup has not run yet are still
	// counted.
	Live int

	// Hits counts resolves that reused an existing live entry.
	Hits uint64

	// Misses counts resolves that allocated a new entry.
	Misses uint64

	// Reclaims counts slots removed after their entry was collected.
	Reclaims uint64
}

// NewTable creates an empty interning table. Most callers should use the
// process-wide Default table instead; a private table is useful for tests
// and for callers that need isolated reclamation accounting.
func NewTable() *Table {
	t := &Table{}
	for i := range t.shards {
		t.shards[i].slots = make(map[string]weak.Pointer[entry])
	}
	return t
}

var defaultTable = sync.OnceValue(NewTable)

// Default returns the process-wide interning table. It is lazily
// initialized on first use and lives for the remainder of the process.
func Default() *Table {
	return defaultTable()
}

func (t *Table) shardOf(text string) *shard {
	return &t.shards[xxhash.Sum64String(text)%numShards]
}

// resolve returns the canonical entry for text, allocating one if needed.
//
// Fast path: under the shard read lock, a slot whose weak pointer still
// yields a live entry is reused directly. If the slot is absent, or present
// but its entry has lost its last owner and the cleanup has not removed the
// slot yet, resolve upgrades to the write lock, re-checks (another
// goroutine may have installed a live entry meanwhile), and otherwise
// installs a fresh entry.
//
// At most one entry per content is observable under a shard's write lock.
// A duplicate entry can exist transiently while a collected entry's cleanup
// is still queued; both entries carry equal content and the slot converges
// on the next mutation, so the duplicate is harmless.
func (t *Table) resolve(text string) *entry {
	sh := t.shardOf(text)

	sh.mu.RLock()
	if w, ok := sh.slots[text]; ok {
		if e := w.Value(); e != nil {
			sh.mu.RUnlock()
			t.hits.Add(1)
			return e
		}
		// The slot's entry has no owners left but its cleanup is still
		// in flight. Settle the slot under the write lock below.
	}
	sh.mu.RUnlock()

	sh.mu.Lock()
	if w, ok := sh.slots[text]; ok {
		if e := w.Value(); e != nil {
			sh.mu.Unlock()
			t.hits.Add(1)
			return e
		}
	}
	e := newEntry(text)
	w := weak.Make(e)
	sh.slots[e.text] = w
	sh.mu.Unlock()
	t.misses.Add(1)

	// The cleanup argument shares e.text's bytes but holds no reference
	// to the entry itself, so it does not keep e alive.
	runtime.AddCleanup(e, func(key string) {
		t.reclaim(sh, key, w)
	}, e.text)

	return e
}

// reclaim removes the slot for key, but only if it still holds the weak
// pointer registered for the collected entry. During the race window a
// resolve may have overwritten the slot with a newer live entry; removing
// that slot would violate the table's uniqueness guarantee.
func (t *Table) reclaim(sh *shard, key string, w weak.Pointer[entry]) {
	sh.mu.Lock()
	if cur, ok := sh.slots[key]; ok && cur == w {
		delete(sh.slots, key)
		t.reclaims.Add(1)
	}
	sh.mu.Unlock()
}

// Len returns the number of slots currently installed across all shards.
// Slots awaiting cleanup are counted; after the garbage collector has run
// the count settles to the number of contents with live Symbols.
func (t *Table) Len() int {
	n := 0
	for i := range t.shards {
		sh := &t.shards[i]
		sh.mu.RLock()
		n += len(sh.slots)
		sh.mu.RUnlock()
	}
	return n
}

// Stats returns a snapshot of the table's counters.
func (t *Table) Stats() Stats {
	return Stats{
		Live:     t.Len(),
		Hits:     t.hits.Load(),
		Misses:   t.misses.Load(),
		Reclaims: t.reclaims.Load(),
	}
}
