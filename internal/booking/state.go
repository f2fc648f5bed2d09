package booking

import (
	"net/http"
	"strings"
	"time"

	"github.com/itemshare/item-rental-backend/internal/pkg/apperror"
)

// State is a listing bucket evaluated against "now" at call time.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState validates a state token at the boundary. Unknown tokens are
// rejected here; the store treats a stray unknown state as an empty result.
func ParseState(s string) (State, error) {
	state := State(strings.ToUpper(s))
	switch state {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return state, nil
	}
	return "", apperror.Newf(http.StatusBadRequest, "unknown state: %s", s)
}

type statePredicate func(b *Booking, now time.Time) bool

// bookerPredicates and ownerPredicates drive bucket classification for the
// in-memory store. The REJECTED bucket differs between the two views: the
// booker side also matches CANCELED, the owner side does not.
var bookerPredicates = map[State]statePredicate{
	StateAll:      func(*Booking, time.Time) bool { return true },
	StateCurrent:  isCurrent,
	StatePast:     isPast,
	StateFuture:   isFuture,
	StateWaiting:  hasStatus(StatusWaiting),
	StateRejected: hasStatus(StatusRejected, StatusCanceled),
}

var ownerPredicates = map[State]statePredicate{
	StateAll:      func(*Booking, time.Time) bool { return true },
	StateCurrent:  isCurrent,
	StatePast:     isPast,
	StateFuture:   isFuture,
	StateWaiting:  hasStatus(StatusWaiting),
	StateRejected: hasStatus(StatusRejected),
}

func isCurrent(b *Booking, now time.Time) bool {
	return !b.Start.After(now) && !b.End.Before(now)
}

func isPast(b *Booking, now time.Time) bool {
	return b.End.Before(now)
}

func isFuture(b *Booking, now time.Time) bool {
	return b.Start.After(now)
}

func hasStatus(statuses ...Status) statePredicate {
	return func(b *Booking, _ time.Time) bool {
		for _, s := range statuses {
			if b.Status == s {
				return true
			}
		}
		return false
	}
}
