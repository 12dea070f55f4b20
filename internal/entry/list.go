package entry

// Field selects which Entry field an update targets.
type Field int

const (
	FieldStartTime Field = iota
	FieldEndTime
	FieldFlowRate
)

// List is the owning collection of entries for a session. All updates are
// replace-on-write: they build a fresh slice so a reader holding the result
// of Entries never observes a partially applied change. A List always
// contains at least one entry.
type List struct {
	entries []Entry
	nextID  int64
}

// NewList creates a list holding a single blank entry.
func NewList() *List {
	l := &List{nextID: 1}
	l.entries = []Entry{l.newEntry("")}
	return l
}

func (l *List) newEntry(start string) Entry {
	e := Entry{ID: l.nextID, StartTime: start}
	l.nextID++
	return e
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entry slice.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Add appends a blank entry and returns it. The new entry's start time is
// seeded from the previous entry's end time so consecutive sessions chain
// without retyping; this is a convenience, the core never requires it.
func (l *List) Add() Entry {
	start := ""
	if n := len(l.entries); n > 0 {
		start = l.entries[n-1].EndTime
	}
	e := l.newEntry(start)
	next := make([]Entry, len(l.entries), len(l.entries)+1)
	copy(next, l.entries)
	l.entries = append(next, e)
	return e
}

// Remove deletes the entry with the given id. Removing the last remaining
// entry is refused silently; the list keeps its minimum of one. Returns
// true when an entry was actually removed.
func (l *List) Remove(id int64) bool {
	if len(l.entries) <= 1 {
		return false
	}
	for i, e := range l.entries {
		if e.ID != id {
			continue
		}
		next := make([]Entry, 0, len(l.entries)-1)
		next = append(next, l.entries[:i]...)
		next = append(next, l.entries[i+1:]...)
		l.entries = next
		return true
	}
	return false
}

// Update sets one field of the entry with the given id. Updating an end
// time additionally seeds the NEXT entry's start time when that start is
// still empty; both writes land in the same list replacement. An unknown
// id is a no-op.
func (l *List) Update(id int64, field Field, value string) {
	next := make([]Entry, len(l.entries))
	copy(next, l.entries)

	for i := range next {
		if next[i].ID != id {
			continue
		}
		switch field {
		case FieldStartTime:
			next[i].StartTime = value
		case FieldEndTime:
			next[i].EndTime = value
			if i+1 < len(next) && next[i+1].StartTime == "" {
				next[i+1].StartTime = value
			}
		case FieldFlowRate:
			next[i].FlowRate = value
		}
		break
	}

	l.entries = next
}
