package tui

// phase is the lifecycle position of one module's request/response cycle.
type phase int

const (
	phaseIdle phase = iota
	phaseLoading
	phaseSuccess
	phaseError
)

// panel holds one module's request lifecycle state. All transitions go
// through begin/resolve/fail so the invariant holds: outside Idle and
// Loading, exactly one of data and errMsg is set.
//
// seq tags each dispatch with a monotonic counter. A resolution carrying a
// stale seq lost the race to a newer trigger and is dropped, so re-firing
// while a call is in flight can never be overwritten by the older response.
type panel[T any] struct {
	phase  phase
	data   *T
	errMsg string
	seq    int
}

// begin moves to Loading, clears previous data and error, and returns the
// token the eventual resolution must present.
func (p *panel[T]) begin() int {
	p.phase = phaseLoading
	p.data = nil
	p.errMsg = ""
	p.seq++
	return p.seq
}

// resolve stores a successful result. Returns false when the token is stale.
func (p *panel[T]) resolve(seq int, value T) bool {
	if seq != p.seq {
		return false
	}
	p.phase = phaseSuccess
	p.data = &value
	p.errMsg = ""
	return true
}

// fail stores a terminal error for this attempt. Returns false when the
// token is stale.
func (p *panel[T]) fail(seq int, msg string) bool {
	if seq != p.seq {
		return false
	}
	p.phase = phaseError
	p.data = nil
	p.errMsg = msg
	return true
}

func (p *panel[T]) loading() bool {
	return p.phase == phaseLoading
}
