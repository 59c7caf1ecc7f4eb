package nada

import "iter"

// Nada is the absorbing failure singleton. There is exactly one instance
// per process, returned by Value; it behaves as an empty, falsy value that
// swallows every operation applied to it, so a failed computation can ride
// the happy path of a pipeline without nil checks at every stage.
type Nada struct{}

var instance = &Nada{}

// Value returns the process-wide Nada instance.
func Value() *Nada {
	return instance
}

// Bool reports the truthiness of Nada, which is always false.
func (n *Nada) Bool() bool {
	return false
}

// Len reports the length of Nada viewed as a container, which is always 0.
func (n *Nada) Len() int {
	return 0
}

// All returns an empty sequence, so ranging over a failed result visits
// nothing.
func (n *Nada) All() iter.Seq[any] {
	return func(yield func(any) bool) {}
}

// Equal reports whether Nada equals other. It never does, not even itself:
// two failed computations are not the same result. Use pointer comparison
// against Value() to test for Nada-ness.
func (n *Nada) Equal(other any) bool {
	return false
}

// Call absorbs an invocation with arbitrary arguments and returns Nada.
func (n *Nada) Call(args ...any) *Nada {
	return n
}

// Map absorbs a transformation and returns Nada without invoking fn.
func (n *Nada) Map(fn func(any) any) *Nada {
	return n
}

// Get returns alt if one is given, otherwise Nada itself. It is the escape
// hatch out of a failed pipeline:
//
//	v := result.Get(42) // 42 when result failed
func (n *Nada) Get(alt ...any) any {
	if len(alt) == 0 {
		return n
	}
	return alt[0]
}

// String returns the stable printable form of the singleton.
func (n *Nada) String() string {
	return "Nada()"
}
