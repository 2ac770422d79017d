// Package tokenbag provides a token-addressed multiset ("bag") for Go.
//
// A Bag stores values of a single element type with no ordering or
// uniqueness constraints. Every insertion returns an opaque Token; the
// token is the capability to later remove exactly that entry, without the
// element type having to support equality or hashing. This is the shape
// observer registries need: register a callback, hold on to the token,
// cancel exactly that registration later.
//
// # Quick Start
//
//	var bag tokenbag.Bag[string]
//	t1 := bag.Insert("a")
//	bag.Insert("b")
//	bag.Remove(t1)
//	for v := range bag.Values() {
//	    fmt.Println(v) // b
//	}
//
// # Removal Contract
//
// Remove with a token that was never issued by the bag, or that was
// already used, is a no-op. Double cancellation is therefore always safe,
// and no operation on a Bag can fail.
//
// # Concurrency
//
// A Bag is not synchronized. Callers sharing one across goroutines must
// serialize access themselves; the emitter subpackage shows the intended
// pattern with a single mutex guarding the bag.
package tokenbag
