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

// Package notation converts between types.Move and the three text forms the
// engine needs to read and write: UCI ("e7e8q"), long algebraic
// ("e7-e8=Q"), and standard algebraic ("e8=Q"), plus parsing any of the
// three back into a move drawn from a supplied candidate list.
package notation

import (
	"strings"

	"floyd/board"
	"floyd/movegen"
	"floyd/types"
)

var promoUciLetters = [...]byte{types.PromoQueen: 'q', types.PromoRook: 'r', types.PromoBishop: 'b', types.PromoKnight: 'n'}
var promoSanLetters = [...]byte{types.PromoQueen: 'Q', types.PromoRook: 'R', types.PromoBishop: 'B', types.PromoKnight: 'N'}

// pieceLetter returns the SAN piece letter for a board piece, "" for pawns.
func pieceLetter(p types.Piece) string {
	switch p {
	case types.WhiteKing, types.BlackKing:
		return "K"
	case types.WhiteQueen, types.BlackQueen:
		return "Q"
	case types.WhiteRook, types.BlackRook:
		return "R"
	case types.WhiteBishop, types.BlackBishop:
		return "B"
	case types.WhiteKnight, types.BlackKnight:
		return "N"
	default:
		return ""
	}
}

// isPromotion reports whether m, as found in b (before the move is made),
// is a promoting pawn move. Move itself does not self-describe this: the
// promo-code bits double as "which piece" only when the moved piece is a
// pawn reaching the last rank.
func isPromotion(b *board.Board, m types.Move) bool {
	p := b.Piece(m.From())
	switch p {
	case types.WhitePawn:
		return m.To().Rank() == 7
	case types.BlackPawn:
		return m.To().Rank() == 0
	default:
		return false
	}
}

func isCastle(b *board.Board, m types.Move) bool {
	p := b.Piece(m.From())
	if p != types.WhiteKing && p != types.BlackKing {
		return false
	}
	df := m.To().File() - m.From().File()
	return df == 2 || df == -2
}

// MoveToUci renders m as "e2e4" or "e7e8q".
func MoveToUci(b *board.Board, m types.Move) string {
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if isPromotion(b, m) {
		sb.WriteByte(promoUciLetters[m.Promo()])
	}
	return sb.String()
}

// MoveToLongAlgebraic renders m as "e2-e4", "Ng1-f3", "Bc4xf7", or
// "e7-e8=Q". Check/mate decoration is added
// separately by GetCheckMark.
func MoveToLongAlgebraic(b *board.Board, m types.Move) string {
	if isCastle(b, m) {
		if m.To().File() == 6 {
			return "O-O"
		}
		return "O-O-O"
	}

	from, to := m.From(), m.To()
	moved := b.Piece(from)
	captured := b.Piece(to) != types.Empty || (moved == types.WhitePawn || moved == types.BlackPawn) && from.File() != to.File()

	var sb strings.Builder
	sb.WriteString(pieceLetter(moved))
	sb.WriteString(from.String())
	if captured {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(to.String())
	if isPromotion(b, m) {
		sb.WriteByte('=')
		sb.WriteByte(promoSanLetters[m.Promo()])
	}
	return sb.String()
}

// MoveToStandardAlgebraic renders m in SAN, disambiguating against
// moveList: moveList should contain every pseudo-legal move available in
// the position (it may include m itself). Check/mate decoration is added
// separately by GetCheckMark.
func MoveToStandardAlgebraic(b *board.Board, m types.Move, moveList []types.Move) string {
	if isCastle(b, m) {
		if m.To().File() == 6 {
			return "O-O"
		}
		return "O-O-O"
	}

	from, to := m.From(), m.To()
	moved := b.Piece(from)
	isPawn := moved == types.WhitePawn || moved == types.BlackPawn
	captured := b.Piece(to) != types.Empty || (isPawn && from.File() != to.File())

	var sb strings.Builder

	if isPawn {
		if captured {
			sb.WriteByte(fileLetter(from.File()))
			sb.WriteByte('x')
		}
		sb.WriteString(to.String())
		if isPromotion(b, m) {
			sb.WriteByte('=')
			sb.WriteByte(promoSanLetters[m.Promo()])
		}
		return sb.String()
	}

	sb.WriteString(pieceLetter(moved))

	sameFile, sameRank, ambiguous := false, false, false
	for _, other := range moveList {
		if other == m || other.To() != to {
			continue
		}
		if b.Piece(other.From()) != moved {
			continue
		}
		ambiguous = true
		if other.From().File() == from.File() {
			sameFile = true
		}
		if other.From().Rank() == from.Rank() {
			sameRank = true
		}
	}
	switch {
	case !ambiguous:
		// no disambiguation needed
	case !sameFile:
		sb.WriteByte(fileLetter(from.File()))
	case !sameRank:
		sb.WriteByte(byte('1' + from.Rank()))
	default:
		sb.WriteString(from.String())
	}

	if captured {
		sb.WriteByte('x')
	}
	sb.WriteString(to.String())
	return sb.String()
}

func fileLetter(file int) byte {
	return "abcdefgh"[file]
}

// GetCheckMark returns "+" if the side to move is in check with a legal
// reply available, "#" if in check with none (checkmate), or "" otherwise.
func GetCheckMark(b *board.Board) string {
	if !b.InCheck() {
		return ""
	}
	var moves [types.MaxMoves]types.Move
	n := movegen.GenerateMoves(b, &moves)
	for i := 0; i < n; i++ {
		if b.IsLegalMove(moves[i]) {
			return "+"
		}
	}
	return "#"
}

// IsPromotion reports whether moving from to to, in b's current position,
// would be a pawn promotion. Thin re-export of board.IsPromotion for
// notation callers that only have squares, not a constructed Move.
func IsPromotion(b *board.Board, from, to types.Square) bool {
	return b.IsPromotion(from, to)
}

// ParseMove parses line (SAN, LAN, or UCI) against moveList and returns the
// matching move and the number of leading bytes of line consumed. It
// returns (types.NoMove, 0) on a syntax error, (types.NoMove, -1) if the
// text is well-formed but matches no move in moveList, and (types.NoMove,
// -2) if it matches more than one.
func ParseMove(b *board.Board, line string, moveList []types.Move) (types.Move, int) {
	trimmed := strings.TrimRight(strings.TrimSpace(line), "+#!?")
	if trimmed == "" {
		return types.NoMove, 0
	}

	var matches []types.Move
	for _, m := range moveList {
		if trimmed == MoveToUci(b, m) ||
			trimmed == MoveToLongAlgebraic(b, m) ||
			trimmed == MoveToStandardAlgebraic(b, m, moveList) {
			matches = append(matches, m)
		}
	}

	switch len(matches) {
	case 0:
		if !looksLikeMove(trimmed) {
			return types.NoMove, 0
		}
		return types.NoMove, -1
	case 1:
		return matches[0], len(trimmed)
	default:
		return types.NoMove, -2
	}
}

// looksLikeMove is a coarse syntax check used only to distinguish "well
// formed but illegal" (-1) from "not a move at all" (0).
func looksLikeMove(s string) bool {
	if s == "O-O" || s == "O-O-O" {
		return true
	}
	letters := 0
	for _, c := range s {
		if c >= 'a' && c <= 'h' {
			letters++
		}
	}
	digits := 0
	for _, c := range s {
		if c >= '1' && c <= '8' {
			digits++
		}
	}
	return letters >= 2 && digits >= 2
}
