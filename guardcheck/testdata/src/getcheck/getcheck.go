package getcheck

import "github.com/mneverov/guardedptr/guarded"

func locked(p *guarded.Ptr[int]) int {
	p.Lock()
	defer p.Unlock()

	return *p.Get()
}

func unlocked(p *guarded.Ptr[int]) int {
	return *p.Get() // want `unprotected access to p.Get, use p.Lock\(\)`
}

func getAfterUnlock(p *guarded.Ptr[int]) {
	p.Lock()
	p.Unlock()

	_ = p.Get() // want `unprotected access to p.Get`
}

func lockAfterGet(p *guarded.Ptr[int]) {
	_ = p.Get() // want `unprotected access to p.Get`
	p.Lock()
	p.Unlock()
}

func lockInDefer(p *guarded.Ptr[int]) {
	defer p.Lock()

	_ = p.Get() // want `unprotected access to p.Get`
}

func differentPointers(a, b *guarded.Ptr[int]) {
	a.Lock()
	defer a.Unlock()

	_ = b.Get() // want `unprotected access to b.Get, use b.Lock\(\)`
}

type holder struct {
	queue *guarded.Ptr[[]int]
}

func (h *holder) size() int {
	h.queue.Lock()
	defer h.queue.Unlock()

	return len(*h.queue.Get())
}

func (h *holder) unlockedSize() int {
	return len(*h.queue.Get()) // want `unprotected access to h.queue.Get`
}
