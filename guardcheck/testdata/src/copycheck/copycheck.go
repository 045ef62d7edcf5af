package copycheck

import "github.com/mneverov/guardedptr/guarded"

func deref(p *guarded.Ptr[int]) *guarded.Ptr[int] {
	q := *p // want `\*p copies guarded.Ptr by value, use Move`
	return &q
}

func declared(p *guarded.Ptr[int]) *guarded.Ptr[int] {
	var q = *p // want `copies guarded.Ptr by value`
	return &q
}

func byValue(p guarded.Ptr[int]) {} // want `parameter p passes guarded.Ptr by value, use a pointer`

func argument(p *guarded.Ptr[int]) {
	byValue(*p) // want `copies guarded.Ptr by value`
}

func result(p *guarded.Ptr[int]) guarded.Ptr[int] {
	return *p // want `copies guarded.Ptr by value`
}

func guard(g *guarded.Guard[int]) *guarded.Guard[int] {
	h := *g // want `copies guarded.Guard by value`
	return &h
}

var unnamed = func(guarded.IndexGuard[int]) {} // want `parameter passes guarded.IndexGuard by value`

func notCopies(v *int) {
	var zero guarded.Ptr[int]
	lit := guarded.Ptr[int]{}
	p := guarded.New(v)
	q := p
	alloc := new(guarded.Ptr[int])

	use(&zero, &lit, p, q, alloc)
}

func use(...*guarded.Ptr[int]) {}

func rangeSlice(ps []guarded.Ptr[int]) {
	for _, p := range ps { // want `p copies guarded.Ptr by value, use Move`
		use(&p)
	}
}

func rangeMap(gs map[string]guarded.Guard[int]) {
	var g guarded.Guard[int]
	for _, g = range gs { // want `g copies guarded.Guard by value`
	}
	useGuard(&g)
}

func useGuard(*guarded.Guard[int]) {}

func rangeByIndex(ps []guarded.Ptr[int]) {
	for i := range ps {
		ps[i].Lock()
		ps[i].Unlock()
	}
	for _, p := range []*guarded.Ptr[int]{} {
		p.Lock()
		p.Unlock()
	}
	for range ps {
	}
}
