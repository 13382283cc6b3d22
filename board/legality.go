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

import "floyd/types"

// WasLegalMove reports whether the move just applied by MakeMove is legal,
// i.e. it did not leave the moving side's own king in check. Call
// immediately after MakeMove, before any further mutation.
func (b *Board) WasLegalMove() bool {
	b.UpdateSideInfo()
	return b.sideToMove.attacks[b.xside.king].None()
}

// IsLegalMove reports whether m is legal in the current position. It applies
// m, checks legality and undoes it again, leaving the board unchanged.
func (b *Board) IsLegalMove(m types.Move) bool {
	b.MakeMove(m)
	legal := b.WasLegalMove()
	b.UndoMove()
	return legal
}

// NormalizeEnPassantStatus clears enPassantPawn when no legal en-passant
// capture is actually available, so that two positions differing
// only by a "dead" en-passant flag compare and hash identically. FEN import
// is the only caller; MakeMove/UndoMove never need it because they only ever
// set enPassantPawn immediately after a double pawn push, where it is
// re-validated on the next Hash64 call anyway.
func (b *Board) NormalizeEnPassantStatus() {
	if b.enPassantPawn == types.SqNone {
		return
	}
	if !b.legalEnPassantCaptureExists() {
		b.enPassantPawn = types.SqNone
	}
}

// Repetition reports whether the current position has occurred at least n
// times in the game's history, scanning backward no further than
// halfmoveClock plies (a capture or pawn move makes repetition impossible
// beyond that point, per the FIDE fifty-move/threefold rules).
func (b *Board) Repetition(n int) bool {
	if len(b.history) == 0 || b.halfmoveClock < 2 {
		return n <= 1 && len(b.history) > 0
	}
	current := b.history[len(b.history)-1]
	count := 0
	limit := b.halfmoveClock
	if limit > len(b.history)-1 {
		limit = len(b.history) - 1
	}
	for i := 0; i <= limit; i += 2 {
		idx := len(b.history) - 1 - i
		if idx < 0 {
			break
		}
		if b.history[idx] == current {
			count++
			if count >= n {
				return true
			}
		}
	}
	return false
}
