package rename

// Event is one notification from a running rename operation. A stream is a
// sequence of Progress events followed by exactly one Done event.
type Event interface {
	isEvent()
}

// Progress reports one more file copied. Completed counts from 1 up to Total
// and increases by one per event.
type Progress struct {
	Completed int
	Total     int
}

// Done is the terminal event. On success Paths holds the destination path of
// every copied file in order; on failure Err describes what went wrong and
// Paths is nil.
type Done struct {
	Paths []string
	Err   error
}

func (Progress) isEvent() {}
func (Done) isEvent()     {}
