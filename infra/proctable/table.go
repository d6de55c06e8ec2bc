package proctable

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/prometheus/procfs"
)

// PF_KTHREAD in /proc/<pid>/stat flags.
const kthreadFlag = 0x00200000

// Info is one host process at enumeration time.
type Info struct {
	PID           int
	Comm          string
	Score         int
	KernelThread  bool
	Zombie        bool
	ResidentPages int64
}

// Table is the host process table as the scan engine consumes it:
// enumeration for the registry feed, a live footprint read at selection
// time, and signal delivery.
type Table interface {
	List() ([]Info, error)
	ResidentPages(pid int) (int64, error)
	Kill(pid int) error
}

// ProcTable reads from /proc.
type ProcTable struct {
	fs   procfs.FS
	root string
}

func NewProcTable(mount string) (*ProcTable, error) {
	fs, err := procfs.NewFS(mount)
	if err != nil {
		return nil, fmt.Errorf("proctable: mount %s: %w", mount, err)
	}
	return &ProcTable{fs: fs, root: mount}, nil
}

func (t *ProcTable) List() ([]Info, error) {
	procs, err := t.fs.AllProcs()
	if err != nil {
		return nil, fmt.Errorf("proctable: enumerate: %w", err)
	}

	out := make([]Info, 0, len(procs))
	for _, p := range procs {
		st, err := p.Stat()
		if err != nil {
			// Raced with an exit; the next sweep settles it.
			continue
		}

		info := Info{
			PID:           p.PID,
			Comm:          st.Comm,
			KernelThread:  st.Flags&kthreadFlag != 0,
			Zombie:        st.State == "Z",
			ResidentPages: int64(st.RSS),
		}
		info.Score, err = t.scoreAdj(p.PID)
		if err != nil {
			continue
		}
		out = append(out, info)
	}
	return out, nil
}

// ResidentPages reads the live footprint; 0 with no error means the
// process holds no reclaimable memory.
func (t *ProcTable) ResidentPages(pid int) (int64, error) {
	p, err := t.fs.Proc(pid)
	if err != nil {
		return 0, err
	}
	st, err := p.Stat()
	if err != nil {
		return 0, err
	}
	return int64(st.RSS), nil
}

func (t *ProcTable) Kill(pid int) error {
	if err := syscall.Kill(pid, syscall.SIGKILL); err != nil {
		return fmt.Errorf("proctable: kill %d: %w", pid, err)
	}
	return nil
}

func (t *ProcTable) scoreAdj(pid int) (int, error) {
	b, err := os.ReadFile(filepath.Join(t.root, strconv.Itoa(pid), "oom_score_adj"))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(b)))
}
