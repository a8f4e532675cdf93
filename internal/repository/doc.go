// Package repository provides the generic in-memory entity repository and
// the derived grouping index built on top of it.
//
// # Repository
//
// Repository[T] keeps entities keyed by their integer identity and remembers
// insertion order explicitly, so GetAll and FindFirst are deterministic. It
// rejects duplicate identities on Add, reports missing identities on GetByID,
// Remove and UpdateQuantity, and validates quantity updates before touching
// storage. Failures are *domain.EntityError values and leave the repository
// unchanged. The only in-place mutation is UpdateQuantity; there is no
// general update callback, so an entity's identity never changes once added.
//
// GetAll, Filter and FindFirst hand out the stored values. For pointer
// entities that means shared pointers: edits made through them bypass the
// repository and are not seen by Index.Stale.
//
// # Index
//
// Index[K,T] groups a repository's entities by a foreign key using a single
// full scan. It is a projection, not a cache: it is never updated
// incrementally. Stale reports whether the source repository has changed
// since the last build, and Rebuild rescans it.
//
// # Persistence
//
// Snapshotter[T] is the contract for persistence collaborators. The file
// subpackage writes snapshots through a codec, the sqlite subpackage stores
// them in a single table. Both read and write the full entity list; the
// repository exposes GetAll and LoadAll to feed them.
package repository
