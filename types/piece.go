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

// Piece identifies what, if anything, occupies a square. The thirteen
// on-board values (Empty plus six piece types per color) plus the OffBoard
// sentinel give fourteen total; OffBoard never appears on a playable square.
type Piece int8

// On-board piece values, white before black as in the original engine.
const (
	Empty Piece = iota
	WhiteKing
	WhiteQueen
	WhiteRook
	WhiteBishop
	WhiteKnight
	WhitePawn
	BlackKing
	BlackQueen
	BlackRook
	BlackBishop
	BlackKnight
	BlackPawn
	OffBoard
)

// Color identifies a side.
type Color int8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// Color returns the color of a non-empty, non-off-board piece. The result
// is meaningless for Empty or OffBoard.
func (p Piece) Color() Color {
	if p >= BlackKing {
		return Black
	}
	return White
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

var pieceLetters = [...]byte{
	Empty: '.',
	WhiteKing: 'K', WhiteQueen: 'Q', WhiteRook: 'R', WhiteBishop: 'B', WhiteKnight: 'N', WhitePawn: 'P',
	BlackKing: 'k', BlackQueen: 'q', BlackRook: 'r', BlackBishop: 'b', BlackKnight: 'n', BlackPawn: 'p',
}

// String renders p as a FEN piece letter ('.' for Empty, '?' for OffBoard).
func (p Piece) String() string {
	if p < Empty || p > BlackPawn {
		return "?"
	}
	return string(pieceLetters[p])
}

// PieceFromFenLetter maps a FEN piece letter to a Piece. ok is false for any
// byte that is not a recognized piece letter.
func PieceFromFenLetter(b byte) (p Piece, ok bool) {
	switch b {
	case 'K':
		return WhiteKing, true
	case 'Q':
		return WhiteQueen, true
	case 'R':
		return WhiteRook, true
	case 'B':
		return WhiteBishop, true
	case 'N':
		return WhiteKnight, true
	case 'P':
		return WhitePawn, true
	case 'k':
		return BlackKing, true
	case 'q':
		return BlackQueen, true
	case 'r':
		return BlackRook, true
	case 'b':
		return BlackBishop, true
	case 'n':
		return BlackKnight, true
	case 'p':
		return BlackPawn, true
	default:
		return Empty, false
	}
}

// PromoPiece maps a PromoCode (as stored in a Move) plus a side to the
// resulting promoted Piece.
func PromoPiece(code PromoCode, side Color) Piece {
	white := [...]Piece{PromoQueen: WhiteQueen, PromoRook: WhiteRook, PromoBishop: WhiteBishop, PromoKnight: WhiteKnight}
	black := [...]Piece{PromoQueen: BlackQueen, PromoRook: BlackRook, PromoBishop: BlackBishop, PromoKnight: BlackKnight}
	if side == White {
		return white[code]
	}
	return black[code]
}
