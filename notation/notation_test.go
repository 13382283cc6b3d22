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

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"floyd/board"
	"floyd/movegen"
	"floyd/types"
)

func genMoves(b *board.Board) []types.Move {
	var all [types.MaxMoves]types.Move
	n := movegen.GenerateMoves(b, &all)
	return all[:n]
}

func TestMoveToUci(t *testing.T) {
	b := &board.Board{}
	b.SetupBoard(board.StartPos)
	m := types.NewSpecialMove(types.SqE2, types.SqE4)
	assert.Equal(t, "e2e4", MoveToUci(b, m))
}

func TestMoveToUciPromotion(t *testing.T) {
	b := &board.Board{}
	b.SetupBoard("8/P7/8/8/8/8/8/k1K5 w - - 0 1")
	m := types.NewPromotionMove(types.SqA7, types.SqA8, types.PromoQueen)
	assert.Equal(t, "a7a8q", MoveToUci(b, m))
}

func TestMoveToLongAlgebraicCastle(t *testing.T) {
	b := &board.Board{}
	b.SetupBoard("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.Equal(t, "O-O", MoveToLongAlgebraic(b, types.NewSpecialMove(types.SqE1, types.SqG1)))
	assert.Equal(t, "O-O-O", MoveToLongAlgebraic(b, types.NewSpecialMove(types.SqE1, types.SqC1)))
}

func TestMoveToLongAlgebraicCapture(t *testing.T) {
	b := &board.Board{}
	b.SetupBoard("4k3/8/8/4p3/3B4/8/8/4K3 w - - 0 1")
	m := types.NewMove(types.SqD4, types.SqE5)
	assert.Equal(t, "Bd4xe5", MoveToLongAlgebraic(b, m))
}

func TestMoveToStandardAlgebraicPawnCapture(t *testing.T) {
	b := &board.Board{}
	b.SetupBoard("4k3/8/8/4p3/3P4/8/8/4K3 w - - 0 1")
	m := types.NewMove(types.SqD4, types.SqE5)
	assert.Equal(t, "dxe5", MoveToStandardAlgebraic(b, m, genMoves(b)))
}

func TestMoveToStandardAlgebraicDisambiguation(t *testing.T) {
	// two white rooks share file d; moving the d2 rook to d4 must
	// disambiguate by rank, since the file alone doesn't distinguish them.
	b := &board.Board{}
	b.SetupBoard("4k3/8/8/3R4/8/8/3R4/4K3 w - - 0 1")
	moves := genMoves(b)

	var target types.Move
	for _, m := range moves {
		if m.From() == types.SqD2 && m.To() == types.SqD4 {
			target = m
		}
	}
	assert.Equal(t, "R2d4", MoveToStandardAlgebraic(b, target, moves))
	assert.Equal(t, "Rd2-d4", MoveToLongAlgebraic(b, target))
}

func TestParseMoveUciAndSan(t *testing.T) {
	b := &board.Board{}
	b.SetupBoard(board.StartPos)
	moves := genMoves(b)

	m, n := ParseMove(b, "e2e4", moves)
	assert.Greater(t, n, 0)
	assert.Equal(t, types.SqE2, m.From())
	assert.Equal(t, types.SqE4, m.To())

	m2, n2 := ParseMove(b, "Nf3", moves)
	assert.Greater(t, n2, 0)
	assert.Equal(t, types.SqG1, m2.From())
	assert.Equal(t, types.SqF3, m2.To())
}

func TestParseMoveSyntaxError(t *testing.T) {
	b := &board.Board{}
	b.SetupBoard(board.StartPos)
	_, n := ParseMove(b, "???", genMoves(b))
	assert.Equal(t, 0, n)
}

func TestParseMoveIllegal(t *testing.T) {
	b := &board.Board{}
	b.SetupBoard(board.StartPos)
	_, n := ParseMove(b, "e2e5", genMoves(b))
	assert.Equal(t, -1, n)
}

func TestGetCheckMark(t *testing.T) {
	b := &board.Board{}
	b.SetupBoard("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.Equal(t, "", GetCheckMark(b))

	b.SetupBoard("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	assert.Equal(t, "", GetCheckMark(b))

	b.SetupBoard("R3k3/8/4K3/8/8/8/8/8 b - - 0 1")
	assert.NotEqual(t, "", GetCheckMark(b))
}
