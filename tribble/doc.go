// Package tribble implements the Tribble balanced-ternary codec.
//
// Tribble encodes arbitrary bytes (or a legacy character set) as a stream
// of balanced-ternary digits (trits), grouped into fixed-width framed units
// for synchronization, with an optional repeating carrier overlay that
// obscures structure while staying fully reversible.
//
// # Units
//
// The codec is built from three fixed-width units:
//
//	core:   4 trits, one balanced-ternary value in [0,80] (offset by 40)
//	tribble: 6 trits, [pad core(4) pad]
//	frame:  8 trits, [sync tribble(6) sync]
//
// Pad and sync trits carry fixed constant values. On decode they are
// checked, not corrected: a wrong pad trit means corruption, a wrong sync
// trit means the stream has drifted out of alignment.
//
// # Wire contract
//
// The default alphabet maps trits to symbols as {-1:'-', 0:'=', +1:'+'}.
// Each input byte b is split into two base-81 digits, high digit first:
//
//	hi = b / 81   (in [0,3])
//	lo = b % 81   (in [0,80])
//
// so every byte encodes to exactly two frames (16 symbols). Core digits are
// serialized most-significant trit first. Encoder output length is always a
// multiple of the frame width.
//
// # Carrier
//
// A carrier pattern is a non-empty trit sequence cycled across the whole
// assembled stream via elementwise modular addition in balanced form.
// Removal subtracts the same pattern; apply-then-remove is an exact
// identity for every stream length, including zero. The carrier is an
// obfuscation layer, not a cryptographic one.
//
// # Error policy
//
// Every failure is detected at the lowest layer that can observe it and
// propagated unmodified, annotated with the trit offset of the offending
// unit. Decoding has no partial-success mode. The codec detects drift and
// corruption at unit boundaries only; it does not correct anything.
package tribble
