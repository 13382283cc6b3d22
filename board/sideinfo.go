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

// UpdateSideInfo recomputes both sides' attack tables and king locations
// from the current squares, if and only if they are stale (the watermark
// does not match plyNumber). Idempotent: calling it twice in a row without
// an intervening make/undo is a no-op the second time.
//
// GenerateMoves, InCheck, and WasLegalMove call this themselves before
// reading side info; King and Attacks do not, so their callers must run it
// first.
func (b *Board) UpdateSideInfo() {
	if b.sideInfoPlyNumber == b.plyNumber {
		return
	}
	b.resetSidePointers()

	for i := range b.white.attacks {
		b.white.attacks[i] = 0
	}
	for i := range b.black.attacks {
		b.black.attacks[i] = 0
	}

	for _, sq := range types.AllSquares {
		p := b.squares[sq]
		if p == types.Empty {
			continue
		}
		c := p.Color()
		s := b.sideOf(c)

		switch p {
		case types.WhiteKing, types.BlackKing:
			s.king = sq
			b.addLeaperAttacks(s, sq, types.KingOffsets[:], types.AttackByte.AddKing)
		case types.WhiteQueen, types.BlackQueen:
			b.addSliderAttacks(s, sq, types.QueenRays[:], types.AttackByte.AddQueen)
		case types.WhiteRook, types.BlackRook:
			b.addSliderAttacks(s, sq, types.RookRays[:], types.AttackByte.AddRook)
		case types.WhiteBishop, types.BlackBishop:
			b.addSliderAttacks(s, sq, types.BishopRays[:], types.AttackByte.AddMinor)
		case types.WhiteKnight, types.BlackKnight:
			b.addLeaperAttacks(s, sq, types.KnightOffsets[:], types.AttackByte.AddMinor)
		case types.WhitePawn, types.BlackPawn:
			offsets := types.PawnCaptureOffsets(c)
			b.addLeaperAttacks(s, sq, offsets[:], types.AttackByte.AddPawn)
		}
	}

	b.sideInfoPlyNumber = b.plyNumber
}

func (b *Board) addLeaperAttacks(s *side, from types.Square, offsets []types.Direction, add func(types.AttackByte) types.AttackByte) {
	for _, d := range offsets {
		to := from + types.Square(d)
		if b.squares[to] == types.OffBoard {
			continue
		}
		s.attacks[to] = add(s.attacks[to])
	}
}

func (b *Board) addSliderAttacks(s *side, from types.Square, rays []types.Direction, add func(types.AttackByte) types.AttackByte) {
	for _, d := range rays {
		to := from
		for {
			to = to + types.Square(d)
			if b.squares[to] == types.OffBoard {
				break
			}
			s.attacks[to] = add(s.attacks[to])
			if b.squares[to] != types.Empty {
				break
			}
		}
	}
}

// InCheck reports whether the side to move is currently in check.
func (b *Board) InCheck() bool {
	b.UpdateSideInfo()
	return !b.xside.attacks[b.sideToMove.king].None()
}
