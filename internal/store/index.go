package store

// index files appointment ids under a key. A bucket is deleted as soon as it
// becomes empty, so an empty key and an absent key look the same.
type index[K comparable] map[K]map[int]struct{}

func (ix index[K]) add(k K, id int) {
	b, ok := ix[k]
	if !ok {
		b = make(map[int]struct{})
		ix[k] = b
	}
	b[id] = struct{}{}
}

func (ix index[K]) remove(k K, id int) {
	b, ok := ix[k]
	if !ok {
		return
	}
	delete(b, id)
	if len(b) == 0 {
		delete(ix, k)
	}
}

func (ix index[K]) has(k K, id int) bool {
	_, ok := ix[k][id]
	return ok
}

func (ix index[K]) ids(k K) []int {
	b := ix[k]
	out := make([]int, 0, len(b))
	for id := range b {
		out = append(out, id)
	}
	return out
}

func (ix index[K]) drop(k K) {
	delete(ix, k)
}
