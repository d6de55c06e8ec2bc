// Package reclaim defers the reuse of candidate records until no scan can
// still observe them. Scans enter a read epoch before walking the registry;
// records removed from the registry are retired here and handed back to the
// record pool only once every reader has moved past the retire epoch.
//
// A record that cannot be pooled (ring full) is simply dropped to the
// garbage collector, which is always safe; the epoch model only gates
// pooling, never correctness.
package reclaim
