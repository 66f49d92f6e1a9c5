package handling

// HandlingHistory is a read only snapshot of every handling event recorded
// for one cargo, in the order the events were registered.
//
// The history is append only on the persistence side. A snapshot handed to
// the delivery derivation never shrinks and never reorders: an event seen
// once stays visible in every later snapshot. Duplicate reports of the same
// physical fact are kept as distinct entries.
//
// The zero value is a valid empty history.
type HandlingHistory struct {
	events []HandlingEvent
}

// NewHandlingHistory creates a history over the given events. The slice is
// copied, so the history is immune to later mutation of the argument.
// A nil or empty slice yields a valid empty history.
func NewHandlingHistory(events []HandlingEvent) (HandlingHistory, error) {
	for _, event := range events {
		if err := event.Validate(); err != nil {
			return HandlingHistory{}, err
		}
	}

	copied := make([]HandlingEvent, len(events))
	copy(copied, events)
	return HandlingHistory{events: copied}, nil
}

// IsEmpty reports whether the history contains no events.
func (h HandlingHistory) IsEmpty() bool {
	return len(h.events) == 0
}

// Events returns a copy of the recorded events in registration order.
func (h HandlingHistory) Events() []HandlingEvent {
	copied := make([]HandlingEvent, len(h.events))
	copy(copied, h.events)
	return copied
}

// MostRecentlyCompletedEvent returns the event that physically happened
// last, and false when the history is empty.
//
// Ties on completion time are broken by the latest registration time, and
// remaining ties by registration order, with the later entry winning. The
// selection is therefore deterministic for any fixed snapshot.
func (h HandlingHistory) MostRecentlyCompletedEvent() (HandlingEvent, bool) {
	if len(h.events) == 0 {
		return HandlingEvent{}, false
	}

	latest := h.events[0]
	for _, event := range h.events[1:] {
		if completedAfterOrSame(event, latest) {
			latest = event
		}
	}
	return latest, true
}

// completedAfterOrSame reports whether candidate should replace current as
// the most recently completed event. Equal completion and registration
// times fall through to true so that the later registered entry wins.
func completedAfterOrSame(candidate, current HandlingEvent) bool {
	if !candidate.completionTime.Equal(current.completionTime) {
		return candidate.completionTime.After(current.completionTime)
	}
	if !candidate.registrationTime.Equal(current.registrationTime) {
		return candidate.registrationTime.After(current.registrationTime)
	}
	return true
}
