package dialogue

import "fmt"

// IllegalMove is returned when a move violates a precondition of the
// discussion's current variant (wrong phase, already an open issue,
// contradicts an earlier commitment, and so on). Grounded on common.py's
// IllegalMove exception, shaped after internal/kb's KbError.
type IllegalMove struct {
	Message string
}

func (e *IllegalMove) Error() string { return e.Message }

func newIllegalMove(format string, a ...interface{}) *IllegalMove {
	return &IllegalMove{Message: fmt.Sprintf(format, a...)}
}

// NotYourMove is returned when a player attempts a move reserved for the
// other role. Grounded on common.py's NotYourMove exception.
type NotYourMove struct {
	Message string
}

func (e *NotYourMove) Error() string { return e.Message }

func newNotYourMove(format string, a ...interface{}) *NotYourMove {
	return &NotYourMove{Message: fmt.Sprintf(format, a...)}
}

// IllegalArgument is returned when a query has no answer in the current
// move history, such as asking for the last WHY before one was ever played.
// Grounded on common.py's IllegalArgument exception.
type IllegalArgument struct {
	Message string
}

func (e *IllegalArgument) Error() string { return e.Message }

func newIllegalArgument(format string, a ...interface{}) *IllegalArgument {
	return &IllegalArgument{Message: fmt.Sprintf(format, a...)}
}
