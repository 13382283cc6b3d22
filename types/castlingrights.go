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

// CastleFlags is a 4-bit set of {WhiteK, WhiteQ, BlackK, BlackQ}.
type CastleFlags uint8

const (
	CastleWhiteK CastleFlags = 1 << iota
	CastleWhiteQ
	CastleBlackK
	CastleBlackQ

	CastleAll CastleFlags = CastleWhiteK | CastleWhiteQ | CastleBlackK | CastleBlackQ
	CastleNone CastleFlags = 0
)

// Has reports whether all bits of want are set in f.
func (f CastleFlags) Has(want CastleFlags) bool {
	return f&want == want
}

// String renders f in FEN castling-field form, "-" if none are set.
func (f CastleFlags) String() string {
	if f == CastleNone {
		return "-"
	}
	s := ""
	if f.Has(CastleWhiteK) {
		s += "K"
	}
	if f.Has(CastleWhiteQ) {
		s += "Q"
	}
	if f.Has(CastleBlackK) {
		s += "k"
	}
	if f.Has(CastleBlackQ) {
		s += "q"
	}
	return s
}

// castleRightsMask holds, per square, the castling rights cleared when a
// move departs from or arrives at that square. Only a1/a8/h1/h8/e1/e8 carry
// a non-zero mask; every other square leaves rights untouched.
var castleRightsMask = map[Square]CastleFlags{
	SqA1: CastleWhiteQ,
	SqH1: CastleWhiteK,
	SqE1: CastleWhiteK | CastleWhiteQ,
	SqA8: CastleBlackQ,
	SqH8: CastleBlackK,
	SqE8: CastleBlackK | CastleBlackQ,
}

// CastleRightsLost returns the castling rights that a move touching sq
// (as origin or destination) clears.
func CastleRightsLost(sq Square) CastleFlags {
	return castleRightsMask[sq]
}
