package pager

// listeners is an ordered set of callbacks that can remove themselves.
type listeners struct {
	next int
	fns  []listener
}

type listener struct {
	id int
	fn func()
}

func (l *listeners) add(fn func()) func() {
	id := l.next
	l.next++
	l.fns = append(l.fns, listener{id: id, fn: fn})
	return func() { l.remove(id) }
}

func (l *listeners) remove(id int) {
	for i, ln := range l.fns {
		if ln.id == id {
			l.fns = append(l.fns[:i], l.fns[i+1:]...)
			return
		}
	}
}

func (l *listeners) notify() {
	for _, ln := range append([]listener(nil), l.fns...) {
		ln.fn()
	}
}

func (l *listeners) len() int {
	return len(l.fns)
}
