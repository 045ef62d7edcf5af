package ignore

import "github.com/mneverov/guardedptr/guarded"

func sameLine(p *guarded.Ptr[int]) int {
	return *p.Get() //guardcheck:ignore caller holds the lock
}

func lineAbove(p *guarded.Ptr[int]) int {
	//guardcheck:ignore caller holds the lock
	return *p.Get()
}

func tooFarAbove(p *guarded.Ptr[int]) int {
	//guardcheck:ignore caller holds the lock

	return *p.Get() // want `unprotected access to p.Get`
}

func withoutReason(p *guarded.Ptr[int]) int {
	return *p.Get() //guardcheck:ignore // want `ignore directive without a reason` `unprotected access to p.Get`
}
