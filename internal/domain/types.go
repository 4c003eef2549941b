package domain

import "time"

// SLAState is the ternary SLA outcome. Unknown is the zero value on purpose:
// a row with either endpoint missing must never read as Missed.
type SLAState int

const (
    SLAUnknown SLAState = iota
    SLAMet
    SLAMissed
)

func (s SLAState) String() string {
    switch s {
    case SLAMet: return "Met"
    case SLAMissed: return "Missed"
    default: return "Unknown"
    }
}

// Labels for the event that produced LastStatusChangeAt.
const (
    EventClosed    = "Closed"
    EventRejected  = "Rejected"
    EventResponded = "Responded"
    EventEffective = "Effective"
)

// Derived carries every computed field for one register row. Instants and
// durations are pointers: nil means absent, never a zero timestamp.
type Derived struct {
    RaisedAt              *time.Time
    DeadlineAt            *time.Time
    RespondedAt           *time.Time
    RejectedAt            *time.Time
    ClosedAt              *time.Time
    EffectiveResolutionAt *time.Time

    ResponseHours           *float64
    ClosureHours            *float64
    CloseAfterResponseHours *float64

    RespondedNotClosed bool
    SLA                SLAState

    R2C       bool
    R2CStrict bool
    R2CHours  *float64

    LastStatusChangeAt *time.Time
    LastStatusEvent    string

    LocationLeaf string
    TotalCost    *float64
}

// LoadRun is one audit row for a register load.
type LoadRun struct {
    ID         int64
    LoadID     string
    Source     string
    Rows       int
    OK         bool
    Note       string
    StartedAt  time.Time
    FinishedAt *time.Time
}
