// Package intern implements the interning mechanism shared by the sentinel
// and flavored-boolean registries.
//
// A Store guarantees a bijection between a key and an instance: the first
// request for a key constructs the instance, every later request returns the
// same one. Only the first-creation path takes the write lock; reads of
// existing entries take a read lock only. Stores are intentionally unbounded
// and permanent, since keys are expected to be a small static set defined at
// code-authoring time.
package intern
