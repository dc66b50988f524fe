// Package cipher implements the scripture-reference substitution codec.
//
// A Table is a fixed bijection between plaintext symbols (letters, space,
// digits) and scripture references such as "Leviticus 19:18". A Codec applies
// the table in both directions: Encode substitutes one reference per input
// symbol, Decode inverts the lookup and restores the uppercase canonical
// form. The table is immutable after construction and safe for concurrent
// readers; both operations are pure and order preserving.
//
// The package is intentionally decoupled from configuration, transport, and
// wire framing so codecs can be constructed, tested, and hot-swapped
// independently of how tables are loaded or messages are serialized.
package cipher
