package repository

// Index groups the entities of a repository by a derived key. It is built by
// a full scan and never maintained incrementally; call Rebuild after the
// source changes.
type Index[K comparable, T Entity] struct {
	source  *Repository[T]
	key     func(T) K
	groups  map[K][]T
	keys    []K
	builtAt uint64
}

// BuildIndex scans source once and groups its entities by key
func BuildIndex[K comparable, T Entity](source *Repository[T], key func(T) K) *Index[K, T] {
	ix := &Index[K, T]{
		source: source,
		key:    key,
	}
	ix.Rebuild()
	return ix
}

// Rebuild rescans the source repository
func (ix *Index[K, T]) Rebuild() {
	groups := make(map[K][]T)
	keys := make([]K, 0)

	for _, item := range ix.source.GetAll() {
		k := ix.key(item)
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], item)
	}

	ix.groups = groups
	ix.keys = keys
	ix.builtAt = ix.source.Version()
}

// Stale reports whether the source has changed since the last build
func (ix *Index[K, T]) Stale() bool {
	return ix.source.Version() != ix.builtAt
}

// GetGroup returns the entities grouped under key in scan order. An unknown
// key yields an empty slice.
func (ix *Index[K, T]) GetGroup(key K) []T {
	group := ix.groups[key]
	out := make([]T, len(group))
	copy(out, group)
	return out
}

// Keys returns the group keys in first-seen order
func (ix *Index[K, T]) Keys() []K {
	out := make([]K, len(ix.keys))
	copy(out, ix.keys)
	return out
}

// Len returns the number of groups
func (ix *Index[K, T]) Len() int {
	return len(ix.keys)
}
