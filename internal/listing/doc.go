// Package listing persists a server's tool list so generation can run
// offline.
//
// Persistence model:
//   - One JSON document per snapshot: server name, fetch time, descriptors.
//   - Input schema property order is kept as listed.
package listing
