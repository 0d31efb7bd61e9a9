// Package mempool implements the ordered, deduplicated transaction pool of
// §4.6: a map from hash to (arrival_index, Transaction) plus a monotonic
// counter, modeled on the teacher's miningmanager/mempool transaction pool.
package mempool

import (
	"math"
	"sort"
	"sync"

	"github.com/PlatariumNetwork/PlatariumCore/internal/log"
	"github.com/PlatariumNetwork/PlatariumCore/tx"
)

var mmplLog = log.Get(log.MMPL)

type entry struct {
	arrivalIndex uint64
	transaction  *tx.Transaction
}

// Pool is the ordered, deduplicated mempool described in §4.6. The zero
// value is not usable; construct one with New.
type Pool struct {
	mu      sync.RWMutex
	entries map[tx.Hash]entry
	counter uint64
}

// New constructs an empty Pool.
func New() *Pool {
	return &Pool{entries: make(map[tx.Hash]entry)}
}

// AddTransaction assigns t the next arrival index and inserts it. It fails
// with ErrDuplicateTransaction if t's hash is already present (§4.6); the
// pool is otherwise unchanged.
//
// It acquires the pool mutex for writing itself; callers must not hold it.
func (p *Pool) AddTransaction(t *tx.Transaction) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	h := t.Hash()
	if _, ok := p.entries[h]; ok {
		return ErrDuplicateTransaction
	}
	if p.counter == math.MaxUint64 {
		return ErrCounterOverflow
	}

	p.entries[h] = entry{arrivalIndex: p.counter, transaction: t}
	p.counter++

	mmplLog.Debugf("added transaction %s at arrival index %d", h, p.entries[h].arrivalIndex)
	return nil
}

// GetTransaction returns the transaction with the given hash, if present.
func (p *Pool) GetTransaction(h tx.Hash) (*tx.Transaction, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	e, ok := p.entries[h]
	if !ok {
		return nil, false
	}
	return e.transaction, true
}

// Contains reports whether h is present in the pool.
func (p *Pool) Contains(h tx.Hash) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.entries[h]
	return ok
}

// RemoveTransaction removes h from the pool. Removing an absent hash is a
// no-op.
func (p *Pool) RemoveTransaction(h tx.Hash) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.entries, h)
}

// RemoveTransactions removes every hash in hashes. Absent hashes are
// skipped silently.
func (p *Pool) RemoveTransactions(hashes []tx.Hash) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, h := range hashes {
		delete(p.entries, h)
	}
}

// Clear empties the pool. The arrival counter is not reset, preserving the
// monotonicity guarantee across a clear.
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = make(map[tx.Hash]entry)
}

// Len returns the number of transactions currently pooled.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries)
}

// IsEmpty reports whether the pool holds no transactions.
func (p *Pool) IsEmpty() bool {
	return p.Len() == 0
}

// GetAllTransactions returns every pooled transaction ordered by
// (arrival_index ASC, hash ASC), independent of map iteration order,
// system time, or goroutine scheduling (§4.6).
func (p *Pool) GetAllTransactions() []*tx.Transaction {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]entry, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].arrivalIndex != out[j].arrivalIndex {
			return out[i].arrivalIndex < out[j].arrivalIndex
		}
		return out[i].transaction.Hash().String() < out[j].transaction.Hash().String()
	})

	result := make([]*tx.Transaction, len(out))
	for i, e := range out {
		result[i] = e.transaction
	}
	return result
}

// Stats is the read-only pool-wide summary described in SPEC_FULL.md §C.1:
// the pending count and the arrival-index range in one call. The fee
// schedule does not read it; Core.EstimateFee uses Len.
type Stats struct {
	Count               int
	OldestArrivalIndex  uint64
	NewestArrivalIndex  uint64
}

// Stats returns a snapshot of the pool's current size and arrival-index
// range. OldestArrivalIndex and NewestArrivalIndex are zero when the pool
// is empty.
func (p *Pool) Stats() Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(p.entries) == 0 {
		return Stats{}
	}

	oldest := uint64(math.MaxUint64)
	var newest uint64
	for _, e := range p.entries {
		if e.arrivalIndex < oldest {
			oldest = e.arrivalIndex
		}
		if e.arrivalIndex > newest {
			newest = e.arrivalIndex
		}
	}
	return Stats{Count: len(p.entries), OldestArrivalIndex: oldest, NewestArrivalIndex: newest}
}
