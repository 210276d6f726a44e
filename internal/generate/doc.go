// Package generate runs one generation pass: fetch the tool list once, then
// rewrite every wrapper file and the index file.
//
// Run semantics:
//   - Files are written one at a time in listing order, index last.
//   - Every run rewrites every file; nothing is diffed or kept incremental.
//   - The first write error aborts the run. Files already written stay.
//   - The source is closed on every exit path.
package generate
