package cache

// noID terminates bucket chains.
const noID = -1

type bucketLink struct {
	prev, next int
}

// bucket is an insertion-ordered chain of entry ids sharing an access count.
type bucket struct {
	head, tail int
	size       int
}

// frequencyIndex maps an access count to the ids currently at that count.
// Buckets keep ids in the order they entered, so the head of a bucket is its
// oldest member. Empty buckets are removed.
type frequencyIndex struct {
	buckets map[int]*bucket
	links   []bucketLink
}

func newFrequencyIndex() frequencyIndex {
	return frequencyIndex{buckets: make(map[int]*bucket)}
}

// insert appends id to the bucket for count, creating the bucket if needed.
func (f *frequencyIndex) insert(count, id int) {
	for len(f.links) <= id {
		f.links = append(f.links, bucketLink{prev: noID, next: noID})
	}

	b, ok := f.buckets[count]
	if !ok {
		b = &bucket{head: noID, tail: noID}
		f.buckets[count] = b
	}

	f.links[id] = bucketLink{prev: b.tail, next: noID}
	if b.tail == noID {
		b.head = id
	} else {
		f.links[b.tail].next = id
	}
	b.tail = id
	b.size++
}

// remove unlinks id from the bucket for count and reports whether the bucket
// became empty and was deleted.
func (f *frequencyIndex) remove(count, id int) bool {
	b, ok := f.buckets[count]
	if !ok {
		return false
	}

	l := f.links[id]
	if l.prev == noID {
		b.head = l.next
	} else {
		f.links[l.prev].next = l.next
	}
	if l.next == noID {
		b.tail = l.prev
	} else {
		f.links[l.next].prev = l.prev
	}
	f.links[id] = bucketLink{prev: noID, next: noID}

	b.size--
	if b.size == 0 {
		delete(f.buckets, count)
		return true
	}
	return false
}

// move migrates id from the bucket for from to the tail of the bucket for to.
// It reports whether the source bucket was emptied.
func (f *frequencyIndex) move(id, from, to int) bool {
	emptied := f.remove(from, id)
	f.insert(to, id)
	return emptied
}

// oldest returns the head of the bucket for count.
func (f *frequencyIndex) oldest(count int) (int, bool) {
	b, ok := f.buckets[count]
	if !ok {
		return noID, false
	}
	return b.head, true
}

// has reports whether a non-empty bucket exists for count.
func (f *frequencyIndex) has(count int) bool {
	_, ok := f.buckets[count]
	return ok
}

// lowest returns the smallest count with a non-empty bucket.
func (f *frequencyIndex) lowest() (int, bool) {
	found := false
	low := 0
	for count := range f.buckets {
		if !found || count < low {
			low, found = count, true
		}
	}
	return low, found
}

func (f *frequencyIndex) bucketSize(count int) int {
	if b, ok := f.buckets[count]; ok {
		return b.size
	}
	return 0
}

func (f *frequencyIndex) len() int {
	return len(f.buckets)
}

func (f *frequencyIndex) reset() {
	clear(f.buckets)
	f.links = f.links[:0]
}
