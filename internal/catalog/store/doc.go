// Package store persists the processed movie catalog in SQLite.
//
// Dataset processing writes normalized movies here once; the daemon reads
// them back into memory at startup. The schema is versioned so a stale
// layout fails loudly instead of producing garbage rows.
package store
