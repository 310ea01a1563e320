package cache

// node is an entry of orderedEntries, linked in insertion or recency order.
type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// entryList is an intrusive doubly-linked list. first is the oldest node,
// last the newest.
type entryList[K comparable, V any] struct {
	first, last *node[K, V]
}

func (l *entryList[K, V]) append(n *node[K, V]) {
	n.prev, n.next = l.last, nil
	if l.first == nil {
		l.first = n
	} else {
		l.last.next = n
	}
	l.last = n
}

func (l *entryList[K, V]) remove(n *node[K, V]) {
	if n.prev == nil {
		l.first = n.next
	} else {
		n.prev.next = n.next
	}

	if n.next == nil {
		l.last = n.prev
	} else {
		n.next.prev = n.prev
	}

	n.prev, n.next = nil, nil
}

func (l *entryList[K, V]) moveToBack(n *node[K, V]) {
	if l.last == n {
		return
	}
	l.remove(n)
	l.append(n)
}

// orderedEntries is the store shared by the FIFO, LIFO and LRU containers: a
// hash index over an explicit order, giving O(1) lookup, move-to-back and
// oldest/newest access.
type orderedEntries[K comparable, V any] struct {
	index map[K]*node[K, V]
	order entryList[K, V]
}

func newOrderedEntries[K comparable, V any](capacity int) orderedEntries[K, V] {
	return orderedEntries[K, V]{index: make(map[K]*node[K, V], preallocHint(capacity))}
}

func (o *orderedEntries[K, V]) lookup(key K) (*node[K, V], bool) {
	n, ok := o.index[key]
	return n, ok
}

func (o *orderedEntries[K, V]) push(key K, value V) {
	n := &node[K, V]{key: key, value: value}
	o.index[key] = n
	o.order.append(n)
}

func (o *orderedEntries[K, V]) drop(n *node[K, V]) {
	o.order.remove(n)
	delete(o.index, n.key)
}

func (o *orderedEntries[K, V]) dropKey(key K) bool {
	n, ok := o.index[key]
	if !ok {
		return false
	}
	o.drop(n)
	return true
}

func (o *orderedEntries[K, V]) oldest() *node[K, V] { return o.order.first }
func (o *orderedEntries[K, V]) newest() *node[K, V] { return o.order.last }
func (o *orderedEntries[K, V]) len() int            { return len(o.index) }

func (o *orderedEntries[K, V]) reset() {
	clear(o.index)
	o.order = entryList[K, V]{}
}

// maxPrealloc bounds up-front allocation for very large or unbounded capacities.
const maxPrealloc = 1 << 10

func preallocHint(capacity int) int {
	return min(capacity, maxPrealloc)
}
