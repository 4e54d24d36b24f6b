// Package modelstore persists fitted clustering models.
//
// Models are written as self-describing snapshot containers — magic bytes,
// format version and codec name, followed by a zstd-compressed,
// codec-encoded payload — into a Store. Two stores ship with the package:
//
//   - MemoryStore: in-memory, for tests and ephemeral pipelines
//   - LocalStore: local filesystem with atomic writes
//
// # Usage
//
//	store := modelstore.NewLocalStore("./models")
//	model, _ := solver.Snapshot()
//	if err := modelstore.Save(ctx, store, "regions-v3", model); err != nil { ... }
//
//	model, err := modelstore.Load(ctx, store, "regions-v3")
//	restored, err := annealing.NewFromModel(model)
package modelstore
