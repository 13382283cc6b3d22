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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceColor(t *testing.T) {
	assert.Equal(t, White, WhiteKing.Color())
	assert.Equal(t, White, WhitePawn.Color())
	assert.Equal(t, Black, BlackKing.Color())
	assert.Equal(t, Black, BlackPawn.Color())
}

func TestColorOther(t *testing.T) {
	assert.Equal(t, Black, White.Other())
	assert.Equal(t, White, Black.Other())
}

func TestPieceFromFenLetterRoundTrip(t *testing.T) {
	for letter, want := range map[byte]Piece{
		'K': WhiteKing, 'Q': WhiteQueen, 'R': WhiteRook, 'B': WhiteBishop, 'N': WhiteKnight, 'P': WhitePawn,
		'k': BlackKing, 'q': BlackQueen, 'r': BlackRook, 'b': BlackBishop, 'n': BlackKnight, 'p': BlackPawn,
	} {
		p, ok := PieceFromFenLetter(letter)
		assert.True(t, ok)
		assert.Equal(t, want, p)
		assert.Equal(t, string(letter), p.String())
	}

	_, ok := PieceFromFenLetter('x')
	assert.False(t, ok)
}

func TestPromoPiece(t *testing.T) {
	assert.Equal(t, WhiteQueen, PromoPiece(PromoQueen, White))
	assert.Equal(t, WhiteKnight, PromoPiece(PromoKnight, White))
	assert.Equal(t, BlackRook, PromoPiece(PromoRook, Black))
	assert.Equal(t, BlackBishop, PromoPiece(PromoBishop, Black))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Empty.IsEmpty())
	assert.False(t, WhitePawn.IsEmpty())
}
