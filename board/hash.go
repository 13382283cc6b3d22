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

package board

import (
	"floyd/types"
	"floyd/zobrist"
)

// Hash64 computes the Polyglot-style 64-bit hash for the current position:
// XOR of the piece-square key for every occupied square, the castling-rights
// key, the en-passant-file key (only when an en-passant capture is actually
// legal, per Polyglot semantics), and the side-to-move key.
//
// This walks the whole board rather than maintaining an incremental hash;
// spec.md leaves that choice open ("the engine may precompute the full-board
// hash lazily or incrementally... correctness is the only requirement").
func (b *Board) Hash64() uint64 {
	var h uint64
	for _, sq := range types.AllSquares {
		p := b.squares[sq]
		if p != types.Empty {
			h ^= zobrist.Piece[p][sq]
		}
	}
	h ^= zobrist.Castle[b.castleFlags]
	if b.enPassantPawn != types.SqNone && b.legalEnPassantCaptureExists() {
		h ^= zobrist.EnPassant[b.enPassantPawn.File()]
	}
	if b.SideToMove() == types.White {
		h ^= zobrist.Turn
	}
	return h
}

// legalEnPassantCaptureExists reports whether the side to move has a
// pseudo-legal pawn adjacent to enPassantPawn that can capture it without
// leaving its own king in check.
func (b *Board) legalEnPassantCaptureExists() bool {
	ep := b.enPassantPawn
	if ep == types.SqNone {
		return false
	}
	toMove := b.SideToMove()
	pawn := types.WhitePawn
	if toMove == types.Black {
		pawn = types.BlackPawn
	}
	target := ep + types.Square(types.PawnPushOffset(toMove))

	for _, df := range [2]types.Direction{types.East, types.West} {
		from := ep + types.Square(df)
		if b.squares[from] != pawn {
			continue
		}
		m := types.NewSpecialMove(from, target)
		if b.isLegalEnPassantProbe(m) {
			return true
		}
	}
	return false
}

// isLegalEnPassantProbe makes and immediately undoes m, reporting legality.
// It exists separately from the exported IsLegalMove only so that
// NormalizeEnPassantStatus and Hash64 (called from deep inside MakeMove
// itself, to record journal history) never take a dependency on anything
// outside this package while the board is mid-mutation.
func (b *Board) isLegalEnPassantProbe(m types.Move) bool {
	b.MakeMove(m)
	legal := b.WasLegalMove()
	b.UndoMove()
	return legal
}
