package fsa

// Hashable is a key usable in HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash table keyed by Hashable values. It lets a mutable StateSet look up the
// FrozenIntSet stored for the same subset without freezing it first. Not safe for concurrent use.
type HashMap[T any] struct {
	buckets    []*entry[T]
	size       int
	mask       uint64
	loadFactor float64
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type optionsHashMap struct {
	capacity   int
	loadFactor float64
}

type OptionsHashMap func(*optionsHashMap)

// WithCapacity sets the initial bucket count, rounded up to a power of two.
func WithCapacity(capacity int) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.capacity = capacity
	}
}

func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opts := &optionsHashMap{
		capacity:   1,
		loadFactor: 0.75,
	}
	for _, fn := range options {
		fn(opts)
	}

	realCap := 1
	for realCap < opts.capacity {
		realCap <<= 1
	}

	return &HashMap[T]{
		buckets:    make([]*entry[T], realCap),
		mask:       uint64(realCap - 1),
		loadFactor: opts.loadFactor,
	}
}

// Set inserts or replaces the value stored for key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

// Get returns the value stored for a key equal to key.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var empty T
	return empty, false
}

func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*entry[T], newCap)
	newMask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			i := e.key.Hash() & newMask
			newBuckets[i] = &entry[T]{key: e.key, value: e.value, next: newBuckets[i]}
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
}

// Size returns the number of entries.
func (m *HashMap[T]) Size() int {
	return m.size
}
