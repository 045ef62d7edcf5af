// Package guarded provides Ptr, a single-owner handle that couples exclusive
// ownership of a heap object with per-access mutual exclusion.
//
// Every access made through a Ptr runs under the pointer's mutex. The
// simplest form is Do, which locks, hands the element to a callback and
// unlocks on return:
//
//	q := guarded.Make(list.New())
//	q.Do(func(l *list.List) { l.PushBack(13) })
//
// When the element has to be used across several expressions, Access
// returns a Guard that keeps the lock until Release:
//
//	g := q.Access()
//	defer g.Release()
//	g.Elem().PushBack(13)
//
// Slices use the indexed form:
//
//	arr := guarded.MakeSlice[int32](100)
//	guarded.Store(arr, 1, 12)
//	v := guarded.Load(arr, 2)
//
// References returned by IndexGuard.At are not protected once the guard is
// released. Do not keep them.
//
// # API races
//
// A single access is atomic, but two accesses in a row are not. Use Lock,
// Get and Unlock for check-then-act sequences:
//
//	q.Lock()
//	if l := q.Get(); l.Len() > 0 {
//		l.Remove(l.Front())
//	}
//	q.Unlock()
//
// # Ownership
//
// A Ptr must not be copied. Ownership is transferred with Move or MoveFrom,
// after which the source owns nothing. Close disposes the owned element
// exactly once using the configured Deleter.
//
// The mutex is injectable through WithMutex, see package lockers for
// spinning, timed and instrumented primitives. Run guardcheck to catch
// copies, discarded guards and unlocked Get calls at vet time.
package guarded
