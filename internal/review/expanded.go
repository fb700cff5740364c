package review

// Expanded is the set of submission IDs whose result cards are expanded. It
// lives only for the duration of a results view.
type Expanded map[string]struct{}

func NewExpanded() Expanded {
	return Expanded{}
}

// Has reports whether the submission is expanded.
func (e Expanded) Has(id string) bool {
	_, ok := e[id]
	return ok
}

// Toggle returns a new set with the submission added when absent or removed
// when present. The receiver is left untouched so view-state transitions stay
// independently observable.
func (e Expanded) Toggle(id string) Expanded {
	next := make(Expanded, len(e)+1)
	for k := range e {
		next[k] = struct{}{}
	}

	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}

	return next
}
