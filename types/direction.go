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

// Direction is a mailbox index delta, expressed in terms of rankStep and
// fileStep so it stays valid regardless of the exact mailbox width.
type Direction int

const (
	North Direction = rankStep
	South Direction = -rankStep
	East  Direction = fileStep
	West  Direction = -fileStep

	NorthEast = North + East
	NorthWest = North + West
	SouthEast = South + East
	SouthWest = South + West
)

// KnightOffsets are the eight leap deltas of a knight.
var KnightOffsets = [8]Direction{
	2*North + East, 2*North + West,
	2*South + East, 2*South + West,
	2*East + North, 2*East + South,
	2*West + North, 2*West + South,
}

// KingOffsets are the eight adjacent-square deltas of a king.
var KingOffsets = [8]Direction{
	North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest,
}

// BishopRays are the four diagonal sliding directions.
var BishopRays = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}

// RookRays are the four orthogonal sliding directions.
var RookRays = [4]Direction{North, South, East, West}

// QueenRays are the eight sliding directions (bishop + rook rays combined).
var QueenRays = [8]Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

// PawnCaptureOffsets returns the two pawn-capture deltas for the given color.
func PawnCaptureOffsets(c Color) [2]Direction {
	if c == White {
		return [2]Direction{NorthEast, NorthWest}
	}
	return [2]Direction{SouthEast, SouthWest}
}

// PawnPushOffset returns the single-step forward delta for the given color.
func PawnPushOffset(c Color) Direction {
	if c == White {
		return North
	}
	return South
}
