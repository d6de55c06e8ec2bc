package journal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type RecordType uint8

const (
	RecordKill RecordType = iota
	RecordParams
)

type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}

// Kill is the decoded payload of a RecordKill entry.
type Kill struct {
	PID       int
	Comm      string
	Score     int
	Footprint int64
	OtherFree int64
	OtherFile int64
}

// Payload format: pid|score|footprint|other_free|other_file|comm.
// Comm sits last and soaks up any delimiters of its own: process names
// are arbitrary bytes.
func (k Kill) Encode() []byte {
	return []byte(fmt.Sprintf("%d|%d|%d|%d|%d|%s",
		k.PID, k.Score, k.Footprint, k.OtherFree, k.OtherFile, k.Comm))
}

func DecodeKill(data []byte) (Kill, error) {
	parts := strings.SplitN(string(data), "|", 6)
	if len(parts) != 6 {
		return Kill{}, fmt.Errorf("journal: invalid kill payload: %q", data)
	}

	var k Kill
	var err error
	if k.PID, err = strconv.Atoi(parts[0]); err != nil {
		return Kill{}, fmt.Errorf("journal: kill pid: %w", err)
	}
	if k.Score, err = strconv.Atoi(parts[1]); err != nil {
		return Kill{}, fmt.Errorf("journal: kill score: %w", err)
	}
	if k.Footprint, err = strconv.ParseInt(parts[2], 10, 64); err != nil {
		return Kill{}, fmt.Errorf("journal: kill footprint: %w", err)
	}
	if k.OtherFree, err = strconv.ParseInt(parts[3], 10, 64); err != nil {
		return Kill{}, fmt.Errorf("journal: kill other_free: %w", err)
	}
	if k.OtherFile, err = strconv.ParseInt(parts[4], 10, 64); err != nil {
		return Kill{}, fmt.Errorf("journal: kill other_file: %w", err)
	}
	k.Comm = parts[5]
	return k, nil
}

// ParamsChange is the decoded payload of a RecordParams entry. It is an
// audit trail of control-plane tuning; replay does not re-apply it.
type ParamsChange struct {
	Scores     []int
	MinFree    []int64
	Cost       int
	DebugLevel int
	FastRun    bool
}

// Payload format: scores|minfree|cost|debug_level|fast_run, lists
// comma-separated.
func (p ParamsChange) Encode() []byte {
	scores := make([]string, len(p.Scores))
	for i, s := range p.Scores {
		scores[i] = strconv.Itoa(s)
	}
	minfree := make([]string, len(p.MinFree))
	for i, m := range p.MinFree {
		minfree[i] = strconv.FormatInt(m, 10)
	}
	return []byte(fmt.Sprintf("%s|%s|%d|%d|%t",
		strings.Join(scores, ","), strings.Join(minfree, ","),
		p.Cost, p.DebugLevel, p.FastRun))
}

func DecodeParams(data []byte) (ParamsChange, error) {
	parts := strings.SplitN(string(data), "|", 5)
	if len(parts) != 5 {
		return ParamsChange{}, fmt.Errorf("journal: invalid params payload: %q", data)
	}

	var p ParamsChange
	for _, s := range splitList(parts[0]) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return ParamsChange{}, fmt.Errorf("journal: params score: %w", err)
		}
		p.Scores = append(p.Scores, v)
	}
	for _, s := range splitList(parts[1]) {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return ParamsChange{}, fmt.Errorf("journal: params minfree: %w", err)
		}
		p.MinFree = append(p.MinFree, v)
	}

	var err error
	if p.Cost, err = strconv.Atoi(parts[2]); err != nil {
		return ParamsChange{}, fmt.Errorf("journal: params cost: %w", err)
	}
	if p.DebugLevel, err = strconv.Atoi(parts[3]); err != nil {
		return ParamsChange{}, fmt.Errorf("journal: params debug_level: %w", err)
	}
	if p.FastRun, err = strconv.ParseBool(parts[4]); err != nil {
		return ParamsChange{}, fmt.Errorf("journal: params fast_run: %w", err)
	}
	return p, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
