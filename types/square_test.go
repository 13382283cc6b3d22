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

func TestSquareOfAndFileRank(t *testing.T) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := SquareOf(file, rank)
			assert.Equal(t, file, sq.File())
			assert.Equal(t, rank, sq.Rank())
			assert.True(t, sq.OnBoard())
		}
	}
}

func TestSquareOnBoard(t *testing.T) {
	assert.True(t, SqA1.OnBoard())
	assert.True(t, SqH8.OnBoard())
	assert.False(t, SqNone.OnBoard())
	assert.False(t, (SqA1 - 1).OnBoard())
	assert.False(t, Square(0).OnBoard())
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "h8", SqH8.String())
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestParseSquare(t *testing.T) {
	sq, ok := ParseSquare("e4")
	assert.True(t, ok)
	assert.Equal(t, SqE4, sq)

	_, ok = ParseSquare("i4")
	assert.False(t, ok)

	_, ok = ParseSquare("e9")
	assert.False(t, ok)

	_, ok = ParseSquare("e")
	assert.False(t, ok)
}

func TestAllSquaresCoversBoard(t *testing.T) {
	seen := make(map[Square]bool, 64)
	for _, sq := range AllSquares {
		seen[sq] = true
	}
	assert.Len(t, seen, 64)
	for _, sq := range AllSquares {
		assert.True(t, sq.OnBoard())
	}
}
