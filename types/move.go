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

package types

// Move packs a move into 16 bits:
//
//	bits 0-5    to square index (within the 0-63 compressed square space)
//	bits 6-11   from square index
//	bit  12     special flag: castling, promotion, en passant capture, or
//	            double pawn push
//	bits 13-14  promotion code, meaningful only when the special flag is
//	            set and the move is a pawn reaching the last rank
//
// Squares are compressed to 6 bits (0-63) for the move encoding by dropping
// the mailbox border, independent of the 120-entry mailbox Square type used
// for board indexing.
type Move uint16

const (
	boardBits       = 6
	specialMoveFlag = Move(1) << (2 * boardBits)
	promoShift      = 2*boardBits + 1
)

// PromoCode identifies the promotion piece within a Move.
type PromoCode uint8

const (
	PromoQueen PromoCode = iota
	PromoRook
	PromoBishop
	PromoKnight
)

// MaxMoves is the largest number of pseudo-legal moves a position can have
// in a single call to GenerateMoves.
const MaxMoves = 256

// MaxMoveSize is sizeof("a7-a8=N+") including the terminator, i.e. the
// largest buffer a LAN/SAN move string needs.
const MaxMoveSize = len("a7-a8=N+") + 1

// compress maps a mailbox Square (21..98, file 0-7) to a dense 0-63 index.
func compress(sq Square) int {
	return sq.Rank()*8 + sq.File()
}

// expand maps a dense 0-63 index back to a mailbox Square.
func expand(ix int) Square {
	return SquareOf(ix%8, ix/8)
}

// NewMove builds a non-special move.
func NewMove(from, to Square) Move {
	return Move(compress(from))<<boardBits | Move(compress(to))
}

// NewSpecialMove builds a move tagged special (castling, double push, en
// passant capture, or promotion without a specified piece -- see
// NewPromotionMove for promotions).
func NewSpecialMove(from, to Square) Move {
	return specialMoveFlag | NewMove(from, to)
}

// NewPromotionMove builds a special move that promotes to the given piece.
func NewPromotionMove(from, to Square, promo PromoCode) Move {
	return Move(promo)<<promoShift | NewSpecialMove(from, to)
}

// From returns the origin square.
func (m Move) From() Square {
	return expand(int(m>>boardBits) & 0x3f)
}

// To returns the destination square.
func (m Move) To() Square {
	return expand(int(m) & 0x3f)
}

// IsSpecial reports whether m is tagged as a castling move, a double pawn
// push, an en passant capture, or a promotion.
func (m Move) IsSpecial() bool {
	return m&specialMoveFlag != 0
}

// Promo returns the promotion code packed into m. It is only meaningful
// when IsSpecial() and the move is in fact a promoting pawn move.
func (m Move) Promo() PromoCode {
	return PromoCode(m >> promoShift)
}

// NoMove is the zero value, never produced by GenerateMoves.
const NoMove Move = 0
