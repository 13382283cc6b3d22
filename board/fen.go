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
	"strconv"
	"strings"

	"floyd/types"
)

// SetupBoard parses fen into the board, replacing all prior state and
// clearing the undo journal. It returns the number of bytes of fen
// consumed on success, or 0 on syntax failure (the board is left
// unchanged in that case).
//
// The standard six FEN fields are required: pieces, side to move, castling
// rights, en passant target, halfmove clock, fullmove number. An optional
// seventh whitespace-separated token is an opaque signed-integer "elo"
// suffix, preserved verbatim across SetupBoard/BoardToFen round trips.
func (b *Board) SetupBoard(fen string) int {
	fields := strings.Fields(fen)
	if len(fields) < 6 {
		return 0
	}

	var squares [types.BoardSize]types.Piece
	for i := range squares {
		squares[i] = types.OffBoard
	}
	for _, sq := range types.AllSquares {
		squares[sq] = types.Empty
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return 0
	}
	for i, rankStr := range ranks {
		rank := 7 - i // FEN ranks run 8..1
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p, ok := types.PieceFromFenLetter(byte(c))
			if !ok || file > 7 {
				return 0
			}
			squares[types.SquareOf(file, rank)] = p
			file++
		}
		if file != 8 {
			return 0
		}
	}

	var sideToMove types.Color
	switch fields[1] {
	case "w":
		sideToMove = types.White
	case "b":
		sideToMove = types.Black
	default:
		return 0
	}

	var castle types.CastleFlags
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				castle |= types.CastleWhiteK
			case 'Q':
				castle |= types.CastleWhiteQ
			case 'k':
				castle |= types.CastleBlackK
			case 'q':
				castle |= types.CastleBlackQ
			default:
				return 0
			}
		}
	}

	epPawn := types.SqNone
	if fields[3] != "-" {
		epTarget, ok := types.ParseSquare(fields[3])
		if !ok {
			return 0
		}
		// The FEN ep field names the square the pawn skipped over; the
		// pawn itself sits one rank behind that, towards the side that
		// just moved.
		if sideToMove == types.White {
			epPawn = epTarget + types.Square(-types.RankStep())
		} else {
			epPawn = epTarget + types.Square(types.RankStep())
		}
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return 0
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return 0
	}

	eloDiff := 0
	eloDiffSet := false
	consumedFields := 6
	if len(fields) >= 7 {
		if v, err := strconv.Atoi(fields[6]); err == nil {
			eloDiff = v
			eloDiffSet = true
			consumedFields = 7
		}
	}

	// Compute consumed byte length by locating the end of the last
	// consumed field within the original string.
	consumed := fenConsumedLength(fen, consumedFields)

	b.squares = squares
	b.castleFlags = castle
	b.enPassantPawn = epPawn
	b.halfmoveClock = halfmove
	b.plyNumber = 2*(fullmove-1) + int(sideToMove)
	b.eloDiff = eloDiff
	b.eloDiffSet = eloDiffSet
	b.undo = b.undo[:0]
	b.history = b.history[:0]
	b.sideInfoPlyNumber = b.plyNumber - 1 // force a recompute before use
	b.resetSidePointers()

	b.NormalizeEnPassantStatus()
	b.history = append(b.history, b.Hash64())

	return consumed
}

// fenConsumedLength returns the byte offset in fen just past the n-th
// whitespace-separated field.
func fenConsumedLength(fen string, n int) int {
	fields := 0
	inField := false
	for i, c := range fen {
		isSpace := c == ' ' || c == '\t'
		if !isSpace && !inField {
			inField = true
		}
		if isSpace && inField {
			inField = false
			fields++
			if fields == n {
				return i
			}
		}
	}
	if inField {
		fields++
	}
	if fields >= n {
		return len(fen)
	}
	return len(fen)
}

// BoardToFen emits the canonical FEN for the current position. It is the
// inverse of SetupBoard: SetupBoard(b.BoardToFen()) reproduces the same
// position, and the round trip is stable once NormalizeEnPassantStatus has
// been applied.
func (b *Board) BoardToFen() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[types.SquareOf(file, rank)]
			if p == types.Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.SideToMove() == types.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.castleFlags.String())

	sb.WriteByte(' ')
	if target := b.EnPassantTarget(); target == types.SqNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(target.String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.plyNumber/2 + 1))

	if b.eloDiffSet {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(b.eloDiff))
	}

	return sb.String()
}
