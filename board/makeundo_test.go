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

func TestMakeUndoRestoresFenExactly(t *testing.T) {
	b := &Board{}
	b.SetupBoard(StartPos)
	before := b.BoardToFen()

	b.MakeMove(types.NewSpecialMove(types.SqE2, types.SqE4)) // double push
	assert.NotEqual(t, before, b.BoardToFen())

	b.UndoMove()
	assert.Equal(t, before, b.BoardToFen())
}

func TestMakeUndoCapture(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"
	b := &Board{}
	b.SetupBoard(fen)

	b.MakeMove(types.NewMove(types.SqE4, types.SqD5)) // exd5
	assert.Equal(t, types.WhitePawn, b.Piece(types.SqD5))
	assert.Equal(t, types.Empty, b.Piece(types.SqE4))

	b.UndoMove()
	assert.Equal(t, fen, b.BoardToFen())
}

func TestMakeUndoEnPassantCapture(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"
	b := &Board{}
	b.SetupBoard(fen)

	b.MakeMove(types.NewSpecialMove(types.SqE5, types.SqD6))
	assert.Equal(t, types.Empty, b.Piece(types.SqD5), "captured pawn removed")
	assert.Equal(t, types.WhitePawn, b.Piece(types.SqD6))

	b.UndoMove()
	assert.Equal(t, fen, b.BoardToFen())
	assert.Equal(t, types.BlackPawn, b.Piece(types.SqD5))
}

func TestMakeUndoCastling(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	b := &Board{}
	b.SetupBoard(fen)

	b.MakeMove(types.NewSpecialMove(types.SqE1, types.SqG1))
	assert.Equal(t, types.WhiteKing, b.Piece(types.SqG1))
	assert.Equal(t, types.WhiteRook, b.Piece(types.SqF1))
	assert.Equal(t, types.Empty, b.Piece(types.SqE1))
	assert.Equal(t, types.Empty, b.Piece(types.SqH1))

	b.UndoMove()
	assert.Equal(t, fen, b.BoardToFen())
}

func TestMakeMoveClearsCastlingRightsOnRookMove(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	b := &Board{}
	b.SetupBoard(fen)
	b.MakeMove(types.NewMove(types.SqA1, types.SqB1))
	assert.False(t, b.CastleFlags().Has(types.CastleWhiteQ))
	assert.True(t, b.CastleFlags().Has(types.CastleWhiteK))
}

func TestRepetitionDetection(t *testing.T) {
	b := &Board{}
	b.SetupBoard(StartPos)

	assert.False(t, b.Repetition(3))

	shuffle := func() {
		b.MakeMove(types.NewMove(types.SqG1, types.SqF3))
		b.MakeMove(types.NewMove(types.SqG8, types.SqF6))
		b.MakeMove(types.NewMove(types.SqF3, types.SqG1))
		b.MakeMove(types.NewMove(types.SqF6, types.SqG8))
	}

	shuffle()
	assert.False(t, b.Repetition(3))
	shuffle()
	assert.True(t, b.Repetition(3))
}
