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
	"floyd/assert"
	"floyd/types"
	"floyd/util"
)

// MakeMove applies m, which must come from GenerateMoves (or otherwise be
// known pseudo-legal) -- it is the caller's responsibility to not pass an
// arbitrary move; behavior for a move the board cannot make sense of is
// undefined past the assertion in debug builds. It journals everything
// needed to reverse the move and appends exactly one frame to the undo
// stack.
func (b *Board) MakeMove(m types.Move) {
	from, to := m.From(), m.To()
	moved := b.squares[from]

	if assert.DEBUG {
		assert.Assert(moved != types.Empty && moved != types.OffBoard, "MakeMove: no piece on from-square")
	}

	color := moved.Color()
	capturedOnTarget := b.squares[to]

	frame := undoFrame{
		move:          m,
		castleFlags:   b.castleFlags,
		enPassantPawn: b.enPassantPawn,
		halfmoveClock: b.halfmoveClock,
		movedPiece:    moved,
		captured:      capturedOnTarget,
		capturedSq:    to,
		secondaryFrom: types.SqNone,
		secondaryTo:   types.SqNone,
	}

	isEnPassant := false
	isCastle := false
	isDoublePush := false

	if m.IsSpecial() {
		switch moved {
		case types.WhiteKing, types.BlackKing:
			if df := to.File() - from.File(); df == 2 || df == -2 {
				isCastle = true
			}
		case types.WhitePawn, types.BlackPawn:
			switch {
			case to.File() != from.File() && capturedOnTarget == types.Empty:
				isEnPassant = true
			case util.Abs(to.Rank()-from.Rank()) == 2:
				isDoublePush = true
			}
		}
	}

	if isEnPassant {
		capSq := types.SquareOf(to.File(), from.Rank())
		frame.captured = b.squares[capSq]
		frame.capturedSq = capSq
		b.squares[capSq] = types.Empty
	}

	if isCastle {
		rank := from.Rank()
		var rookFrom, rookTo types.Square
		if to.File() == 6 {
			rookFrom, rookTo = types.SquareOf(7, rank), types.SquareOf(5, rank)
		} else {
			rookFrom, rookTo = types.SquareOf(0, rank), types.SquareOf(3, rank)
		}
		frame.secondaryFrom = rookFrom
		frame.secondaryTo = rookTo
		frame.secondaryPiece = b.squares[rookFrom]
		b.squares[rookTo] = b.squares[rookFrom]
		b.squares[rookFrom] = types.Empty
	}

	isPromotion := m.IsSpecial() && ((moved == types.WhitePawn && to.Rank() == 7) || (moved == types.BlackPawn && to.Rank() == 0))

	b.squares[from] = types.Empty
	b.squares[to] = moved
	if isPromotion {
		b.squares[to] = types.PromoPiece(m.Promo(), color)
	}

	b.castleFlags &^= types.CastleRightsLost(from)
	b.castleFlags &^= types.CastleRightsLost(to)

	if isDoublePush {
		b.enPassantPawn = to
	} else {
		b.enPassantPawn = types.SqNone
	}

	captureHappened := frame.captured != types.Empty
	if moved == types.WhitePawn || moved == types.BlackPawn || captureHappened {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	b.plyNumber++
	b.resetSidePointers()
	b.sideInfoPlyNumber = b.plyNumber - 1 // side info is now stale; force a recompute

	b.undo = append(b.undo, frame)
	b.history = append(b.history, b.Hash64())
}

// UndoMove retracts the last move made and restores the previous position
// exactly, byte for byte. Calling UndoMove without a matching prior
// MakeMove is a programmer error (undefined behavior, asserted in debug
// builds).
func (b *Board) UndoMove() {
	n := len(b.undo)
	if assert.DEBUG {
		assert.Assert(n > 0, "UndoMove: no move to undo")
	}
	frame := b.undo[n-1]
	b.undo = b.undo[:n-1]
	b.history = b.history[:len(b.history)-1]

	from, to := frame.move.From(), frame.move.To()

	b.squares[to] = types.Empty
	if frame.captured != types.Empty {
		b.squares[frame.capturedSq] = frame.captured
	}
	b.squares[from] = frame.movedPiece

	if frame.secondaryFrom != types.SqNone {
		b.squares[frame.secondaryFrom] = frame.secondaryPiece
		b.squares[frame.secondaryTo] = types.Empty
	}

	b.castleFlags = frame.castleFlags
	b.enPassantPawn = frame.enPassantPawn
	b.halfmoveClock = frame.halfmoveClock
	b.plyNumber--
	b.resetSidePointers()
	b.sideInfoPlyNumber = b.plyNumber - 1
}

// IsPromotion reports whether moving the piece currently on from to to
// would be a pawn promotion. Used by UI layers to decide whether to prompt
// for a promotion piece before constructing the move.
func (b *Board) IsPromotion(from, to types.Square) bool {
	p := b.squares[from]
	switch p {
	case types.WhitePawn:
		return to.Rank() == 7
	case types.BlackPawn:
		return to.Rank() == 0
	default:
		return false
	}
}
