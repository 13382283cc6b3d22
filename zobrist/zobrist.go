/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package zobrist holds the fixed, process-wide key table used to compute
// Polyglot-style 64-bit position hashes: one key per (piece, square), one
// per castling-rights combination, one per en-passant file, and one for
// side to move. The table is generated once, deterministically, at package
// load -- not re-randomized per process, so hashes are stable and
// reproducible across runs, and collisions behave the same way in tests.
package zobrist

import "floyd/types"

// Piece holds the per-(piece,square) keys, indexed [piece][square]. Square
// indices are the raw 120-entry mailbox range; all 120 entries are filled,
// and Hash64 reads only the playable squares 21..98.
var Piece [types.OffBoard + 1][types.BoardSize]uint64

// Castle holds one key per castling-rights bitmask (0..15).
var Castle [16]uint64

// EnPassant holds one key per file (0..7).
var EnPassant [8]uint64

// Turn is XORed in when white is to move.
var Turn uint64

// splitmix64 is a small, fast, fixed-seed PRNG used only to fill the key
// table deterministically. It is not used anywhere else in the engine.
type splitmix64 struct{ state uint64 }

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func init() {
	rng := &splitmix64{state: 0x1F2E3D4C5B6A7988}
	for p := types.Empty; p <= types.BlackPawn; p++ {
		for sq := 0; sq < types.BoardSize; sq++ {
			Piece[p][sq] = rng.next()
		}
	}
	for i := range Castle {
		Castle[i] = rng.next()
	}
	for i := range EnPassant {
		EnPassant[i] = rng.next()
	}
	Turn = rng.next()
}
