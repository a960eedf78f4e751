// Package bitrow implements packed bit vectors used as the per-edge rows of
// an APSP bit-matrix: one bit per destination node, one row per graph edge.
//
// A Row of width N supports Get/Set/Clear, the bulk boolean operators Or/And/AndNot/Not,
// IsAllOnes, and a zero-allocation Range over set bits. There is no Xor operation.
// Three backends share the same interface:
//
//	Fixed       - N <= maxFixedBits, backed by two uint64 words (no heap indirection).
//	Dynamic     - arbitrary N, backed by a []uint64 word slice.
//	AtomicDynamic - arbitrary N, backed by a []atomic.Uint64 word slice; Or is a
//	                word-wise fetch-or suitable for concurrent writers that only add bits.
//
// Fixed exists because most graphs in practice have far fewer than 128 reachable
// destinations per component worth distinguishing at the word level; specializing
// widths <= 128 to two inline words avoids a slice indirection and bounds-check
// heavy path on the hottest loop in the engine (the per-iteration gossip scan).
//
// Word indexing follows the standard shift/mask split: wordIdx(i) = i>>6,
// bitIdx(i) = i&63. Bits at index >= N are never touched by any operation other
// than the internal masking performed by IsAllOnes and Not (which must not
// manufacture set bits beyond the logical width).
package bitrow
