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

package search

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"floyd/board"
	"floyd/logging"
	"floyd/movegen"
	"floyd/transpositiontable"
	"floyd/types"
)

var out = message.NewPrinter(language.English)
var log = logging.GetSearchLog()

// Engine drives repeated search runs against one transposition table, the
// way a real engine reuses its TT across moves within a game.
type Engine struct {
	tt *transpositiontable.Table
}

// NewEngine creates an Engine backed by a transposition table of the given
// size in bytes.
func NewEngine(ttSizeBytes uint64) *Engine {
	return &Engine{tt: transpositiontable.NewTable(ttSizeBytes)}
}

// Table exposes the engine's transposition table, e.g. for SetSize/CalcLoad
// from a UCI option handler.
func (e *Engine) Table() *transpositiontable.Table {
	return e.tt
}

// Run walks the legal move tree of b to the given depth, consulting and
// populating the transposition table at every node, and stops early if
// stop reports true. It returns the first legal move found at the root --
// there is no evaluation or move ordering, since search.Run exists to
// exercise the board/movegen/transpositiontable contract loop end to end,
// not to play strong chess.
func (e *Engine) Run(b *board.Board, limits Limits, stop func() bool) Result {
	start := time.Now()
	log.Debugf("search starting: depth=%d nodes=%d movetime=%s infinite=%v",
		limits.Depth, limits.Nodes, limits.MoveTime, limits.Infinite)

	depth := limits.Depth
	if depth <= 0 {
		depth = 1
	}

	var r Result
	r.BestMove = e.walk(b, depth, 0, limits, stop, &r, start)
	r.SearchTime = time.Since(start)

	log.Infof("search finished: %s", r.String())
	return r
}

func (e *Engine) walk(b *board.Board, depth, ply int, limits Limits, stop func() bool, r *Result, start time.Time) types.Move {
	var moves [types.MaxMoves]types.Move
	n := movegen.GenerateMoves(b, &moves)

	best := types.NoMove
	for i := 0; i < n; i++ {
		if e.cancelled(limits, stop, r, start) {
			break
		}

		m := moves[i]
		b.MakeMove(m)
		if !b.WasLegalMove() {
			b.UndoMove()
			continue
		}
		r.Nodes++

		hash := b.Hash64()
		if entry := e.tt.Read(hash, ply); entry.Found {
			r.TTHits++
		}
		e.tt.Write(hash, int8(depth), 0, -transpositiontable.MaxEval, transpositiontable.MaxEval, m, ply, 0)

		if depth > 1 && !e.cancelled(limits, stop, r, start) {
			e.walk(b, depth-1, ply+1, limits, stop, r, start)
		}

		b.UndoMove()

		if best == types.NoMove {
			best = m
		}
	}
	return best
}

func (e *Engine) cancelled(limits Limits, stop func() bool, r *Result, start time.Time) bool {
	if stop != nil && stop() {
		return true
	}
	if limits.Infinite {
		return false
	}
	if limits.Nodes > 0 && r.Nodes >= limits.Nodes {
		return true
	}
	if limits.MoveTime > 0 && time.Since(start) >= limits.MoveTime {
		return true
	}
	return false
}
