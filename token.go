package tokenbag

// Token identifies a single entry in a Bag. It is issued by Insert and is
// only meaningful to the bag that issued it; callers store it and present
// it to Remove to delete exactly that entry.
//
// Tokens are opaque and comparable. Within one bag they are never reused,
// even after removal, and the zero Token is never issued, so a zero value
// can never match a live entry.
type Token struct {
	id uint64
}
