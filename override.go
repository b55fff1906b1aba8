package cipherkey

// Override interfaces allow types to bypass reflection-based processing.
// When a type implements one of these interfaces, the Processor calls the
// interface method instead of walking tagged fields.

// Sealable bypasses reflection for Seal.
type Sealable interface {
	// Seal applies forward transforms to the receiver's fields.
	// keys holds the configured key per method. The receiver is a clone,
	// so mutations are safe.
	Seal(engine *Engine, keys map[Method]string) error
}

// Openable bypasses reflection for Open.
type Openable interface {
	// Open applies inverse transforms to the receiver's fields.
	// Called on freshly unmarshaled data.
	Open(engine *Engine, keys map[Method]string) error
}
