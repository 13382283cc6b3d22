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

// Square is an index into the 10x12 mailbox board. Playable squares are
// 21..98; everything else (the two-file/two-rank border) is permanently
// marked OffBoard in Board.Squares so sliding-piece generation can walk off
// the edge without a separate bounds check.
type Square int

// BoardSize is the size of the mailbox array (10 files x 12 ranks).
const BoardSize = 120

// rankStep and fileStep are the index deltas for moving one rank or file.
// Required by spec: "exact layout is an implementation choice as long as
// rankStep and fileStep are defined".
const (
	rankStep = 10
	fileStep = 1
)

// RankStep returns the mailbox index delta for advancing one rank (towards
// black, i.e. increasing rank number).
func RankStep() int { return rankStep }

// FileStep returns the mailbox index delta for advancing one file (towards h).
func FileStep() int { return fileStep }

// SqNone marks the absence of a square, e.g. no en-passant target.
const SqNone Square = -1

// Named squares, a1..h8.
const (
	SqA1 Square = 21
	SqB1 Square = 22
	SqC1 Square = 23
	SqD1 Square = 24
	SqE1 Square = 25
	SqF1 Square = 26
	SqG1 Square = 27
	SqH1 Square = 28

	SqA2 Square = 31
	SqB2 Square = 32
	SqC2 Square = 33
	SqD2 Square = 34
	SqE2 Square = 35
	SqF2 Square = 36
	SqG2 Square = 37
	SqH2 Square = 38

	SqA3 Square = 41
	SqB3 Square = 42
	SqC3 Square = 43
	SqD3 Square = 44
	SqE3 Square = 45
	SqF3 Square = 46
	SqG3 Square = 47
	SqH3 Square = 48

	SqA4 Square = 51
	SqB4 Square = 52
	SqC4 Square = 53
	SqD4 Square = 54
	SqE4 Square = 55
	SqF4 Square = 56
	SqG4 Square = 57
	SqH4 Square = 58

	SqA5 Square = 61
	SqB5 Square = 62
	SqC5 Square = 63
	SqD5 Square = 64
	SqE5 Square = 65
	SqF5 Square = 66
	SqG5 Square = 67
	SqH5 Square = 68

	SqA6 Square = 71
	SqB6 Square = 72
	SqC6 Square = 73
	SqD6 Square = 74
	SqE6 Square = 75
	SqF6 Square = 76
	SqG6 Square = 77
	SqH6 Square = 78

	SqA7 Square = 81
	SqB7 Square = 82
	SqC7 Square = 83
	SqD7 Square = 84
	SqE7 Square = 85
	SqF7 Square = 86
	SqG7 Square = 87
	SqH7 Square = 88

	SqA8 Square = 91
	SqB8 Square = 92
	SqC8 Square = 93
	SqD8 Square = 94
	SqE8 Square = 95
	SqF8 Square = 96
	SqG8 Square = 97
	SqH8 Square = 98
)

// SquareOf builds the mailbox index for a 0-based file (0=a..7=h) and
// 0-based rank (0=rank1..7=rank8).
func SquareOf(file, rank int) Square {
	return Square(21 + rank*rankStep + file*fileStep)
}

// OnBoard reports whether sq falls in the playable 8x8 area. It does not
// consult Board.Squares, so it is also valid before a board exists.
func (sq Square) OnBoard() bool {
	if sq < SqA1 || sq > SqH8 {
		return false
	}
	f := sq.File()
	return f >= 0 && f <= 7
}

// File returns the 0-based file (0=a..7=h) of sq.
func (sq Square) File() int {
	return int(sq)%10 - 1
}

// Rank returns the 0-based rank (0=rank1..7=rank8) of sq.
func (sq Square) Rank() int {
	return int(sq)/10 - 2
}

var fileLetters = "abcdefgh"

// String renders sq in coordinate notation, e.g. "e4".
func (sq Square) String() string {
	if !sq.OnBoard() {
		return "-"
	}
	return string(fileLetters[sq.File()]) + string(rune('1'+sq.Rank()))
}

// ParseSquare parses a two-character coordinate like "e4". ok is false for
// any malformed input.
func ParseSquare(s string) (sq Square, ok bool) {
	if len(s) != 2 {
		return SqNone, false
	}
	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqNone, false
	}
	return SquareOf(file, rank), true
}

// AllSquares lists the 64 playable squares in rank-major order (a1..h1,
// a2..h2, ..., a8..h8).
var AllSquares [64]Square

func init() {
	i := 0
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			AllSquares[i] = SquareOf(f, r)
			i++
		}
	}
}
