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
	"testing"

	"github.com/stretchr/testify/assert"

	"floyd/types"
)

func TestSetupBoardStartPos(t *testing.T) {
	b := &Board{}
	n := b.SetupBoard(StartPos)
	assert.Greater(t, n, 0)
	assert.Equal(t, types.White, b.SideToMove())
	assert.Equal(t, types.WhiteRook, b.Piece(types.SqA1))
	assert.Equal(t, types.BlackKing, b.Piece(types.SqE8))
	assert.Equal(t, types.SqNone, b.EnPassantTarget())
	assert.Equal(t, 0, b.HalfmoveClock())
}

func TestBoardToFenRoundTrip(t *testing.T) {
	fens := []string{
		StartPos,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"rnbq1rk1/pppp1ppp/4pn2/8/1bPP4/2N2N2/PP2PPPP/R1BQKB1R w KQ - 2 6",
		"8/8/8/3k4/8/3K4/8/8 w - - 0 1",
	}
	for _, fen := range fens {
		b := &Board{}
		assert.Greater(t, b.SetupBoard(fen), 0, "fen: %s", fen)
		assert.Equal(t, fen, b.BoardToFen(), "round trip for %s", fen)
	}
}

func TestSetupBoardRejectsMalformedFen(t *testing.T) {
	b := &Board{}
	assert.Equal(t, 0, b.SetupBoard("not a fen"))
	assert.Equal(t, 0, b.SetupBoard("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0"))
	assert.Equal(t, 0, b.SetupBoard("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1"))
}

func TestEnPassantFenRoundTrip(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"
	b := &Board{}
	assert.Greater(t, b.SetupBoard(fen), 0)
	assert.Equal(t, types.SqD6, b.EnPassantTarget())
	assert.Equal(t, fen, b.BoardToFen())
}

func TestEloSuffixRoundTrip(t *testing.T) {
	fen := StartPos + " 42"
	b := &Board{}
	assert.Greater(t, b.SetupBoard(fen), 0)
	assert.Equal(t, 42, b.EloDiff())
	assert.Equal(t, fen, b.BoardToFen())
}
