package cipherkey

// Cloner allows types to provide deep copy logic.
// Processor.Seal transforms a clone so the caller's value is never mutated.
//
// For simple value types with no pointers, slices, or maps, Clone can simply
// return the receiver value:
//
//	func (m Message) Clone() Message { return m }
//
// For types with reference fields, copy them:
//
//	func (n Note) Clone() Note {
//	    tags := make([]string, len(n.Tags))
//	    copy(tags, n.Tags)
//	    return Note{Body: n.Body, Tags: tags}
//	}
type Cloner[T any] interface {
	Clone() T
}
