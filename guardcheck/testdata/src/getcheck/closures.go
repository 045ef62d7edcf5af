package getcheck

import "github.com/mneverov/guardedptr/guarded"

func closureDefinedBeforeLock(p *guarded.Ptr[int]) {
	f := func() {
		_ = p.Get() // want `unprotected access to p.Get`
	}

	p.Lock()
	f()
	p.Unlock()
}

func closureDefinedAfterLock(p *guarded.Ptr[int]) {
	p.Lock()
	defer p.Unlock()

	func() {
		_ = p.Get()
	}()
}

func lockInClosureDoesNotLeak(p *guarded.Ptr[int]) {
	func() {
		p.Lock()
	}()

	_ = p.Get() // want `unprotected access to p.Get`
	p.Unlock()
}

func lockInDeferredClosure(p *guarded.Ptr[int]) {
	defer func() {
		p.Lock()
		_ = p.Get()
		p.Unlock()
	}()
}

func insideDo(p *guarded.Ptr[int]) {
	p.Do(func(*int) {
		_ = p.Get()
	})
}

func insideCall(p *guarded.Ptr[int]) int {
	return guarded.Call(p, func(*int) int {
		return *p.Get()
	})
}

func otherInsideDo(p, q *guarded.Ptr[int]) {
	p.Do(func(*int) {
		_ = q.Get() // want `unprotected access to q.Get`
	})
}

func goroutineDoesNotInheritLock(p *guarded.Ptr[int]) {
	p.Lock()
	go func() {
		_ = p.Get() // want `unprotected access to p.Get`
	}()
	p.Unlock()
}

func goroutineLocksItself(p *guarded.Ptr[int]) {
	go func() {
		p.Lock()
		defer p.Unlock()
		_ = p.Get()
	}()
}

func deferredClosureRunsAfterUnlock(p *guarded.Ptr[int]) {
	p.Lock()
	defer func() {
		_ = p.Get() // want `unprotected access to p.Get`
	}()
	p.Unlock()
}

func deferredClosureBeforeDeferredUnlock(p *guarded.Ptr[int]) {
	p.Lock()
	defer p.Unlock()
	defer func() {
		_ = p.Get()
	}()
}

func deferredClosureAfterDeferredUnlock(p *guarded.Ptr[int]) {
	p.Lock()
	defer func() {
		_ = p.Get() // want `unprotected access to p.Get`
	}()
	defer p.Unlock()
}

func goroutineArgumentsAreEvaluatedLocked(p *guarded.Ptr[int]) {
	p.Lock()
	defer p.Unlock()
	go func(v int) {
		_ = v
	}(*p.Get())
}
