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

// AttackByte packs, per square, how many and what classes of pieces of one
// side attack that square:
//
//	+-----+-----+-----+-----+-----+-----+-----+-----+
//	|   Pawns   |   Minors  |   Rooks   |Queen|King |
//	+-----+-----+-----+-----+-----+-----+-----+-----+
//	     7..6        5..4        3..2      1     0
//
// Pawn/minor/rook counts saturate at 2; queen and king are presence bits.
type AttackByte uint8

const (
	AttackKing  AttackByte = 1
	AttackQueen AttackByte = 2
	AttackRook  AttackByte = 4
	AttackMinor AttackByte = 16
	AttackPawn  AttackByte = 64

	// AttackAny combines the single-attacker value of every class. It does
	// not cover the high bit of a saturated (count 2) counter; None is the
	// test for "is this square attacked at all".
	AttackAny = AttackKing | AttackQueen | AttackRook | AttackMinor | AttackPawn
)

// addSaturating adds one increment to a 2-bit saturating counter occupying
// the given bit position within b.
func addSaturating(b AttackByte, shift uint, inc AttackByte) AttackByte {
	cur := (b >> shift) & 3
	if cur < 2 {
		cur++
	}
	return (b &^ (3 << shift)) | (cur << shift)
}

// AddKing marks a king attacker.
func (b AttackByte) AddKing() AttackByte { return b | AttackKing }

// AddQueen marks a queen attacker.
func (b AttackByte) AddQueen() AttackByte { return b | AttackQueen }

// AddRook increments the (saturating) rook-attacker count.
func (b AttackByte) AddRook() AttackByte { return addSaturating(b, 2, 1) }

// AddMinor increments the (saturating) minor-piece-attacker count.
func (b AttackByte) AddMinor() AttackByte { return addSaturating(b, 4, 1) }

// AddPawn increments the (saturating) pawn-attacker count.
func (b AttackByte) AddPawn() AttackByte { return addSaturating(b, 6, 1) }

// None reports whether no attacker class is set.
func (b AttackByte) None() bool { return b == 0 }
