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

// Package movegen generates pseudo-legal moves for a board position: plain
// moves, double pawn pushes, castling, en passant captures and the four-way
// promotion expansion. Legality (own king left in check) is not filtered
// here -- that is the job of board.WasLegalMove / board.IsLegalMove.
package movegen

import (
	"floyd/board"
	"floyd/types"
)

// GenerateMoves fills out with the pseudo-legal moves for the side to move
// and returns how many entries were written. out must have room for
// types.MaxMoves entries. It brings side info up to date itself
// (board.UpdateSideInfo), since castling legality reads xside's attack table.
func GenerateMoves(b *board.Board, out *[types.MaxMoves]types.Move) int {
	b.UpdateSideInfo()
	n := 0
	n = generatePawnMoves(b, out, n)
	n = generatePieceMoves(b, out, n)
	n = generateKingMoves(b, out, n)
	n = generateCastling(b, out, n)
	return n
}

func addPromotions(out *[types.MaxMoves]types.Move, n int, from, to types.Square) int {
	out[n] = types.NewPromotionMove(from, to, types.PromoQueen)
	n++
	out[n] = types.NewPromotionMove(from, to, types.PromoRook)
	n++
	out[n] = types.NewPromotionMove(from, to, types.PromoBishop)
	n++
	out[n] = types.NewPromotionMove(from, to, types.PromoKnight)
	n++
	return n
}

func generatePawnMoves(b *board.Board, out *[types.MaxMoves]types.Move, n int) int {
	color := b.SideToMove()
	pawn := types.WhitePawn
	lastRank := 7
	startRank := 1
	if color == types.Black {
		pawn = types.BlackPawn
		lastRank = 0
		startRank = 6
	}
	push := types.PawnPushOffset(color)
	captureOffsets := types.PawnCaptureOffsets(color)

	for _, from := range types.AllSquares {
		if b.Piece(from) != pawn {
			continue
		}

		to := from + types.Square(push)
		if to.OnBoard() && b.Piece(to) == types.Empty {
			if to.Rank() == lastRank {
				n = addPromotions(out, n, from, to)
			} else {
				n = addMove(out, n, from, to)
				if from.Rank() == startRank {
					to2 := to + types.Square(push)
					if b.Piece(to2) == types.Empty {
						out[n] = types.NewSpecialMove(from, to2)
						n++
					}
				}
			}
		}

		for _, d := range captureOffsets {
			cap := from + types.Square(d)
			if !cap.OnBoard() {
				continue
			}
			target := b.Piece(cap)
			if target != types.Empty && target.Color() != color {
				if cap.Rank() == lastRank {
					n = addPromotions(out, n, from, cap)
				} else {
					n = addMove(out, n, from, cap)
				}
			} else if cap == b.EnPassantTarget() {
				out[n] = types.NewSpecialMove(from, cap)
				n++
			}
		}
	}
	return n
}

func generatePieceMoves(b *board.Board, out *[types.MaxMoves]types.Move, n int) int {
	color := b.SideToMove()

	type sliderKind struct {
		white, black types.Piece
		rays         []types.Direction
	}
	sliders := [3]sliderKind{
		{types.WhiteRook, types.BlackRook, types.RookRays[:]},
		{types.WhiteBishop, types.BlackBishop, types.BishopRays[:]},
		{types.WhiteQueen, types.BlackQueen, types.QueenRays[:]},
	}
	for _, s := range sliders {
		piece := s.white
		if color == types.Black {
			piece = s.black
		}
		for _, from := range types.AllSquares {
			if b.Piece(from) != piece {
				continue
			}
			for _, d := range s.rays {
				to := from
				for {
					to = to + types.Square(d)
					if !to.OnBoard() {
						break
					}
					target := b.Piece(to)
					if target == types.Empty {
						n = addMove(out, n, from, to)
						continue
					}
					if target.Color() != color {
						n = addMove(out, n, from, to)
					}
					break
				}
			}
		}
	}

	knight := types.WhiteKnight
	if color == types.Black {
		knight = types.BlackKnight
	}
	for _, from := range types.AllSquares {
		if b.Piece(from) != knight {
			continue
		}
		for _, d := range types.KnightOffsets {
			to := from + types.Square(d)
			if !to.OnBoard() {
				continue
			}
			target := b.Piece(to)
			if target == types.Empty || target.Color() != color {
				n = addMove(out, n, from, to)
			}
		}
	}
	return n
}

func generateKingMoves(b *board.Board, out *[types.MaxMoves]types.Move, n int) int {
	color := b.SideToMove()
	from := b.King(color)
	for _, d := range types.KingOffsets {
		to := from + types.Square(d)
		if !to.OnBoard() {
			continue
		}
		target := b.Piece(to)
		if target == types.Empty || target.Color() != color {
			n = addMove(out, n, from, to)
		}
	}
	return n
}

func generateCastling(b *board.Board, out *[types.MaxMoves]types.Move, n int) int {
	color := b.SideToMove()
	rank := 0
	kingSide, queenSide := types.CastleWhiteK, types.CastleWhiteQ
	if color == types.Black {
		rank = 7
		kingSide, queenSide = types.CastleBlackK, types.CastleBlackQ
	}
	kingFrom := types.SquareOf(4, rank)
	flags := b.CastleFlags()
	rook := types.WhiteRook
	if color == types.Black {
		rook = types.BlackRook
	}

	notAttacked := func(sq types.Square) bool {
		return b.Attacks(color.Other(), sq).None()
	}

	if flags.Has(kingSide) {
		f, g, h := types.SquareOf(5, rank), types.SquareOf(6, rank), types.SquareOf(7, rank)
		if b.Piece(f) == types.Empty && b.Piece(g) == types.Empty && b.Piece(h) == rook {
			if notAttacked(kingFrom) && notAttacked(f) && notAttacked(g) {
				out[n] = types.NewSpecialMove(kingFrom, g)
				n++
			}
		}
	}
	if flags.Has(queenSide) {
		sqB, sqC, sqD, sqA := types.SquareOf(1, rank), types.SquareOf(2, rank), types.SquareOf(3, rank), types.SquareOf(0, rank)
		if b.Piece(sqB) == types.Empty && b.Piece(sqC) == types.Empty && b.Piece(sqD) == types.Empty && b.Piece(sqA) == rook {
			if notAttacked(kingFrom) && notAttacked(sqD) && notAttacked(sqC) {
				out[n] = types.NewSpecialMove(kingFrom, sqC)
				n++
			}
		}
	}
	return n
}

func addMove(out *[types.MaxMoves]types.Move, n int, from, to types.Square) int {
	out[n] = types.NewMove(from, to)
	return n + 1
}
