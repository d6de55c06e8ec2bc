package snapshot

import (
	"encoding/gob"
	"os"
)

// Load reads the last persisted snapshot. A missing file is not an
// error: the daemon simply starts cold. The candidate dump is never fed
// back into the registry; the registry is rebuilt from the live process
// table, which is the only authority on what is running now.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
