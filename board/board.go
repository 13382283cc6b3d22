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

// Package board implements chess board state: squares, castling rights,
// en-passant target, the incremental attack tables ("side info"), the
// make/undo journal, and FEN parsing/emission. It is the core data
// structure the rest of the engine (movegen, notation, search) is built on.
package board

import (
	"floyd/types"
)

// side holds one color's derived attack information: which squares it
// attacks (and with what piece classes), and where its king sits.
type side struct {
	attacks [types.BoardSize]types.AttackByte
	king    types.Square
}

// undoFrame is one journaled make, enough information to reverse it
// exactly. One MakeMove call pushes exactly one frame; one UndoMove call
// pops exactly one.
type undoFrame struct {
	move          types.Move
	castleFlags   types.CastleFlags
	enPassantPawn types.Square
	halfmoveClock int

	movedPiece types.Piece // piece as it was on From() before the move

	captured   types.Piece
	capturedSq types.Square // differs from move.To() only for en passant

	secondaryFrom  types.Square // castling rook origin, else SqNone
	secondaryTo    types.Square
	secondaryPiece types.Piece
}

// StartPos is the FEN for the standard chess starting position.
const StartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is a single chess position plus its undo journal. The zero value is
// not usable; construct with NewBoard or SetupBoard.
type Board struct {
	squares [types.BoardSize]types.Piece

	castleFlags   types.CastleFlags
	enPassantPawn types.Square
	halfmoveClock int

	plyNumber int // low bit is side to move (0 = white)
	eloDiff    int
	eloDiffSet bool

	white, black       side
	sideToMove, xside  *side
	sideInfoPlyNumber  int

	undo    []undoFrame
	history []uint64 // hash of the set-up position, then the hash after each played move
}

// NewBoard returns a board set up at the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.SetupBoard(StartPos)
	return b
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() types.Color {
	return types.Color(b.plyNumber & 1)
}

// PlyNumber returns the board's causal clock: it increments on every
// MakeMove and its low bit is the side to move.
func (b *Board) PlyNumber() int {
	return b.plyNumber
}

// Piece returns the piece occupying sq (Empty or OffBoard are valid
// results for unoccupied or border squares respectively).
func (b *Board) Piece(sq types.Square) types.Piece {
	return b.squares[sq]
}

// CastleFlags returns the current castling rights.
func (b *Board) CastleFlags() types.CastleFlags {
	return b.castleFlags
}

// EnPassantPawn returns the square of the pawn that just played a double
// push, or types.SqNone if there is none.
func (b *Board) EnPassantPawn() types.Square {
	return b.enPassantPawn
}

// EnPassantTarget returns the square a capturing pawn lands on to take
// EnPassantPawn en passant (the square it skipped over), or types.SqNone if
// there is no en-passant pawn set.
func (b *Board) EnPassantTarget() types.Square {
	if b.enPassantPawn == types.SqNone {
		return types.SqNone
	}
	return b.enPassantPawn - types.Square(types.PawnPushOffset(b.squares[b.enPassantPawn].Color()))
}

// HalfmoveClock returns the number of halfmoves since the last pawn move
// or capture.
func (b *Board) HalfmoveClock() int {
	return b.halfmoveClock
}

// EloDiff returns the opaque rating-delta value carried verbatim across
// FEN round-trips. The core never interprets it.
func (b *Board) EloDiff() int {
	return b.eloDiff
}

// King returns the square of the king of the given color. Side info must
// be current (see UpdateSideInfo) for this to be meaningful.
func (b *Board) King(c types.Color) types.Square {
	if c == types.White {
		return b.white.king
	}
	return b.black.king
}

// Attacks returns the attacker-class byte for sq as seen by color c. Side
// info must be current (see UpdateSideInfo) for this to be meaningful.
func (b *Board) Attacks(c types.Color, sq types.Square) types.AttackByte {
	if c == types.White {
		return b.white.attacks[sq]
	}
	return b.black.attacks[sq]
}

func (b *Board) sideOf(c types.Color) *side {
	if c == types.White {
		return &b.white
	}
	return &b.black
}

func (b *Board) resetSidePointers() {
	b.sideToMove = b.sideOf(b.SideToMove())
	b.xside = b.sideOf(b.SideToMove().Other())
}
