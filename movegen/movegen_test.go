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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"floyd/board"
	"floyd/types"
)

func legalMoves(b *board.Board) []types.Move {
	var all [types.MaxMoves]types.Move
	n := GenerateMoves(b, &all)
	legal := make([]types.Move, 0, n)
	for i := 0; i < n; i++ {
		b.MakeMove(all[i])
		if b.WasLegalMove() {
			legal = append(legal, all[i])
		}
		b.UndoMove()
	}
	return legal
}

func TestStartPosLegalMoveCount(t *testing.T) {
	b := &board.Board{}
	b.SetupBoard(board.StartPos)
	assert.Len(t, legalMoves(b), 20)
}

func TestKiwipeteLegalMoveCount(t *testing.T) {
	// the standard "Kiwipete" perft test position, rich in captures,
	// castling and promotions.
	b := &board.Board{}
	b.SetupBoard("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.Len(t, legalMoves(b), 48)
}

func TestEnPassantCaptureGenerated(t *testing.T) {
	b := &board.Board{}
	b.SetupBoard("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	found := false
	for _, m := range legalMoves(b) {
		if m.From() == types.SqE5 && m.To() == types.SqD6 {
			found = true
		}
	}
	assert.True(t, found, "en passant capture e5xd6 should be generated")
}

func TestCastlingGeneratedWhenClear(t *testing.T) {
	b := &board.Board{}
	b.SetupBoard("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	kingside, queenside := false, false
	for _, m := range legalMoves(b) {
		if m.From() == types.SqE1 && m.To() == types.SqG1 {
			kingside = true
		}
		if m.From() == types.SqE1 && m.To() == types.SqC1 {
			queenside = true
		}
	}
	assert.True(t, kingside)
	assert.True(t, queenside)
}

func TestCastlingNotGeneratedThroughCheck(t *testing.T) {
	// black rook on f8 attacks f1, the king's transit square for kingside
	// castling, so O-O must not be generated.
	b := &board.Board{}
	b.SetupBoard("5r2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	for _, m := range legalMoves(b) {
		assert.False(t, m.From() == types.SqE1 && m.To() == types.SqG1,
			"castling through an attacked square must not be generated")
	}
}

func TestPromotionGeneratesFourChoices(t *testing.T) {
	b := &board.Board{}
	b.SetupBoard("8/P7/8/8/8/8/8/k1K5 w - - 0 1")
	count := 0
	for _, m := range legalMoves(b) {
		if m.From() == types.SqA7 && m.To() == types.SqA8 {
			count++
		}
	}
	assert.Equal(t, 4, count)
}
