// Package snapshot persists and restores the daemon's durable state
// between restarts. It defines lightweight readers that enter and exit
// read epochs safely, ensuring registry dumps taken during concurrent
// scans are consistent without locks.
//
// Snapshot is intentionally decoupled from victim selection, the kill
// journal, and the outbox. It only records their high-water marks so
// they can be truncated.
package snapshot
