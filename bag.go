package tokenbag

import "iter"

// Bag is an unordered, non-unique collection of elements of type E.
//
// Elements and their tokens are stored in two index-aligned slices, so
// iteration follows insertion order among the entries still present.
// Tokens are minted from a per-instance counter that only moves forward.
//
// The zero value is an empty bag ready for use.
//
// A Bag is not safe for concurrent use.
type Bag[E any] struct {
	elements []E
	tokens   []Token
	next     uint64
}

// New creates a new empty bag.
func New[E any]() *Bag[E] {
	return &Bag[E]{}
}

// Insert appends value to the bag and returns the token identifying this
// entry. Tokens returned by distinct insertions are always distinct, even
// for equal values. Amortized O(1).
func (b *Bag[E]) Insert(value E) Token {
	b.next++
	tok := Token{id: b.next}
	b.elements = append(b.elements, value)
	b.tokens = append(b.tokens, tok)
	return tok
}

// Remove deletes the entry identified by tok, preserving the relative
// order of the remaining entries. A token that was never issued by this
// bag, or that was already removed, is a no-op.
//
// The scan runs newest to oldest: observer registries tend to cancel
// recent registrations first. Tokens are unique, so the scan direction
// never changes which entry is removed. O(n) worst case.
func (b *Bag[E]) Remove(tok Token) {
	for i := len(b.tokens) - 1; i >= 0; i-- {
		if b.tokens[i] == tok {
			b.deleteAt(i)
			return
		}
	}
}

func (b *Bag[E]) deleteAt(i int) {
	n := len(b.elements)
	copy(b.elements[i:], b.elements[i+1:])
	copy(b.tokens[i:], b.tokens[i+1:])
	var zero E
	b.elements[n-1] = zero // release for GC
	b.elements = b.elements[:n-1]
	b.tokens = b.tokens[:n-1]
}

// Len returns the number of elements currently in the bag.
func (b *Bag[E]) Len() int {
	return len(b.elements)
}

// At returns the element at index i, 0-based in insertion order among the
// currently present elements. It panics if i is out of range, like a
// slice access.
func (b *Bag[E]) At(i int) E {
	return b.elements[i]
}

// Values returns an iterator over the elements currently in the bag, in
// insertion order. The sequence is restartable: every range over it
// traverses from the start. Iterating does not mutate the bag; mutating
// the bag while a traversal is in progress is undefined.
func (b *Bag[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range b.elements {
			if !yield(e) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the bag. The copy shares no state with the
// original: mutating one never affects the other. Tokens issued before
// the copy stay valid in both; afterwards each instance mints its own.
func (b *Bag[E]) Clone() *Bag[E] {
	c := &Bag[E]{
		elements: make([]E, len(b.elements)),
		tokens:   make([]Token, len(b.tokens)),
		next:     b.next,
	}
	copy(c.elements, b.elements)
	copy(c.tokens, b.tokens)
	return c
}
