package container

import (
	"github.com/nyan233/karte/pkg/common/logger"
)

const (
	// hashmapInitialBaseSize is the shrink floor, resizing below it is
	// rejected and construction clamps to it.
	hashmapInitialBaseSize = 11
	hashmapLoadIncrease    = 0.70
	hashmapLoadDecrease    = 0.10
)

type slotState uint8

const (
	slotEmpty slotState = iota
	// A tombstone keeps probe sequences that ran through the deleted
	// slot valid for keys inserted after it.
	slotTombstone
	slotOccupied
)

type hashRecord[V any] struct {
	state slotState
	key   string
	value V
}

// HashMap is a string-keyed open-addressing table using double hashing.
// The slot count is always prime, which together with a nonzero probe
// step makes every probe sequence cover the whole table. It is not
// goroutine safe.
//
// Values are owned by the map: an overwrite, a delete and Reset(true)
// hand the displaced value to the onRelease callback. Without a callback
// the displaced value is simply dropped, which is only correct for
// values with no resources beyond their own memory.
type HashMap[V any] struct {
	baseSize  int
	size      int
	count     int
	records   []hashRecord[V]
	onRelease func(V)
}

// NewHashMap sizes the table at the smallest prime >= baseSize. A
// baseSize below the floor is clamped, a table that small could fill up
// completely before the load check triggers growth.
func NewHashMap[V any](baseSize int, onRelease func(V)) *HashMap[V] {
	if baseSize < hashmapInitialBaseSize {
		baseSize = hashmapInitialBaseSize
	}
	m := &HashMap[V]{
		baseSize:  baseSize,
		size:      nextPrime(baseSize),
		onRelease: onRelease,
	}
	m.records = make([]hashRecord[V], m.size)
	return m
}

// Len reports the number of occupied slots, tombstones excluded.
func (m *HashMap[V]) Len() int {
	return m.count
}

// Cap reports the current slot count.
func (m *HashMap[V]) Cap() int {
	return m.size
}

func (m *HashMap[V]) loadFactor() float64 {
	return float64(m.count) / float64(m.size)
}

func (m *HashMap[V]) release(value V) {
	if m.onRelease != nil {
		m.onRelease(value)
	}
}

// Store inserts or updates a key. An update releases the old value and
// leaves Len unchanged, a fresh insert claims the first empty or
// tombstone slot along the probe sequence.
func (m *HashMap[V]) Store(key string, value V) {
	// The incoming record counts towards the load so the table never
	// sits above the threshold after placement.
	if float64(m.count+1)/float64(m.size) > hashmapLoadIncrease {
		m.resize(m.baseSize * 2)
	}
	for {
		for attempt := 0; attempt < m.size; attempt++ {
			record := &m.records[probeIndex(key, uint64(m.size), attempt)]
			switch record.state {
			case slotOccupied:
				if record.key != key {
					continue
				}
				m.release(record.value)
				record.value = value
				return
			default:
				record.state = slotOccupied
				record.key = key
				record.value = value
				m.count++
				return
			}
		}
		// A full probe cycle without a usable slot means the table is
		// clogged with tombstones, rebuilding clears them.
		m.resize(m.baseSize * 2)
	}
}

func (m *HashMap[V]) Load(key string) V {
	value, _ := m.LoadOk(key)
	return value
}

// LoadOk probes for key, skipping tombstones. Reaching an empty slot is
// a definitive miss: no matching key can lie past the first empty slot
// of its probe sequence.
func (m *HashMap[V]) LoadOk(key string) (V, bool) {
	for attempt := 0; attempt < m.size; attempt++ {
		record := &m.records[probeIndex(key, uint64(m.size), attempt)]
		switch record.state {
		case slotEmpty:
			logger.DefaultLogger.Notify("hashmap: no value associated to key %s", key)
			return *new(V), false
		case slotOccupied:
			if record.key == key {
				return record.value, true
			}
		}
	}
	logger.DefaultLogger.Notify("hashmap: no value associated to key %s", key)
	return *new(V), false
}

// Delete releases the value under key and tombstones its slot. A miss
// is reported through the logger only, the map itself is not in error.
func (m *HashMap[V]) Delete(key string) bool {
	if m.loadFactor() < hashmapLoadDecrease {
		m.resize(m.baseSize / 2)
	}
	for attempt := 0; attempt < m.size; attempt++ {
		record := &m.records[probeIndex(key, uint64(m.size), attempt)]
		switch record.state {
		case slotEmpty:
			logger.DefaultLogger.Notify("hashmap: could not delete record with key %s", key)
			return false
		case slotOccupied:
			if record.key != key {
				continue
			}
			m.release(record.value)
			*record = hashRecord[V]{state: slotTombstone}
			m.count--
			return true
		}
	}
	logger.DefaultLogger.Notify("hashmap: could not delete record with key %s", key)
	return false
}

// resize rebuilds the table from a new base size by re-storing every
// occupied record, which re-hashes each key against the new slot count
// and discards accumulated tombstones. Values transfer as-is, no
// release callback fires. Requests below the floor are rejected.
func (m *HashMap[V]) resize(baseSize int) {
	if baseSize < hashmapInitialBaseSize {
		return
	}
	fresh := NewHashMap[V](baseSize, m.onRelease)
	for i := range m.records {
		record := &m.records[i]
		if record.state == slotOccupied {
			fresh.Store(record.key, record.value)
		}
	}
	m.baseSize = fresh.baseSize
	m.size = fresh.size
	m.count = fresh.count
	m.records = fresh.records
}

// Reset empties the map in place. With evictValues set, every live
// value is handed to the release callback first.
func (m *HashMap[V]) Reset(evictValues bool) {
	for i := range m.records {
		record := &m.records[i]
		if record.state == slotOccupied && evictValues {
			m.release(record.value)
		}
		*record = hashRecord[V]{}
	}
	m.count = 0
}

func (m *HashMap[V]) Range(fn func(key string, value V) (next bool)) {
	for i := range m.records {
		record := &m.records[i]
		if record.state != slotOccupied {
			continue
		}
		if !fn(record.key, record.value) {
			return
		}
	}
}

func (m *HashMap[V]) Iterator() *Iterator[string] {
	keys := make([]string, 0, m.count)
	for i := range m.records {
		if m.records[i].state == slotOccupied {
			keys = append(keys, m.records[i].key)
		}
	}
	return NewIterator(len(keys), func(current int) string {
		return keys[current]
	}, func() {})
}
