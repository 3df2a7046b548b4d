package editor

// listeners is an ordered set of callbacks. Callbacks run in subscription
// order; removing one never reorders the rest.
type listeners[T any] struct {
	next    int
	entries []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

func (l *listeners[T]) add(fn func(T)) func() {
	l.next++
	id := l.next
	l.entries = append(l.entries, listener[T]{id: id, fn: fn})
	return func() { l.remove(id) }
}

func (l *listeners[T]) remove(id int) {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

// emit calls a snapshot of the current callbacks so a callback may
// unsubscribe itself (or others) while the event is being delivered.
func (l *listeners[T]) emit(v T) {
	snapshot := append([]listener[T](nil), l.entries...)
	for _, e := range snapshot {
		if e.fn != nil {
			e.fn(v)
		}
	}
}

func (l *listeners[T]) len() int { return len(l.entries) }
