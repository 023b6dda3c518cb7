package domain

import "strconv"

// OutcomeKind classifies the result of synchronizing a mention.
type OutcomeKind int

const (
	// OutcomeNoOp means the track was already at the top.
	OutcomeNoOp OutcomeKind = iota
	// OutcomeMoved means an existing track was moved to the top.
	OutcomeMoved
	// OutcomeInserted means the track was added at the top.
	OutcomeInserted
)

// String returns the string representation of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNoOp:
		return "noop"
	case OutcomeMoved:
		return "moved"
	case OutcomeInserted:
		return "inserted"
	default:
		return "unknown"
	}
}

// SyncOutcome is the result of applying the sync policy.
// FromPosition is only meaningful for OutcomeMoved.
type SyncOutcome struct {
	Kind         OutcomeKind
	FromPosition int
}

// NoOp returns an outcome for a track already at the top.
func NoOp() SyncOutcome {
	return SyncOutcome{Kind: OutcomeNoOp}
}

// Moved returns an outcome for a track moved from the given position.
func Moved(from int) SyncOutcome {
	return SyncOutcome{Kind: OutcomeMoved, FromPosition: from}
}

// Inserted returns an outcome for a newly added track.
func Inserted() SyncOutcome {
	return SyncOutcome{Kind: OutcomeInserted}
}

// ChangedPlaylist reports whether the outcome required a mutation.
func (o SyncOutcome) ChangedPlaylist() bool {
	return o.Kind == OutcomeMoved || o.Kind == OutcomeInserted
}

func (o SyncOutcome) String() string {
	if o.Kind == OutcomeMoved {
		return "moved(from=" + strconv.Itoa(o.FromPosition) + ")"
	}
	return o.Kind.String()
}

// TopPosition is where mentioned tracks are placed.
const TopPosition = 0

// Plan decides the outcome for a reference against a snapshot.
// The most recently mentioned track floats to the top and appears at most once.
func Plan(snapshot *Snapshot, ref TrackReference) SyncOutcome {
	position, found := snapshot.Find(ref)
	switch {
	case !found:
		return Inserted()
	case position == TopPosition:
		return NoOp()
	default:
		return Moved(position)
	}
}
