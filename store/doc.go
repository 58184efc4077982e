// Package store provides a small observable value container: the Go
// rendering of the web client's UI store. Components that own mutable
// state publish full snapshots into a Store; view code subscribes and
// re-renders on every change.
package store
