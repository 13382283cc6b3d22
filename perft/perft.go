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

// Package perft counts leaf nodes of the legal-move tree to a fixed depth,
// the standard cross-check for a move generator: known-correct node counts
// exist for the standard starting position and several well-known test
// positions at each depth.
package perft

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/workerpool"

	"floyd/board"
	"floyd/movegen"
	"floyd/types"
)

var out = message.NewPrinter(language.English)

// Result holds the node and per-category counts for one perft run.
type Result struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Elapsed    time.Duration
}

// String formats r the way the engine's CLI reports a perft run: node and
// per-category counts with locale thousands separators, and nodes/second.
func (r Result) String() string {
	nps := float64(0)
	if secs := r.Elapsed.Seconds(); secs > 0 {
		nps = float64(r.Nodes) / secs
	}
	return out.Sprintf(
		"Nodes: %d captures: %d ep: %d castles: %d promotions: %d checks: %d  (%s, %.0f nps)",
		r.Nodes, r.Captures, r.EnPassant, r.Castles, r.Promotions, r.Checks, r.Elapsed, nps,
	)
}

// Run computes perft(depth) from fen, returning the full Result.
func Run(fen string, depth int) Result {
	if depth < 1 {
		depth = 1
	}
	b := &board.Board{}
	b.SetupBoard(fen)

	var r Result
	start := time.Now()
	r.Nodes = walk(b, depth, &r)
	r.Elapsed = time.Since(start)
	return r
}

func walk(b *board.Board, depth int, r *Result) uint64 {
	var moves [types.MaxMoves]types.Move
	n := movegen.GenerateMoves(b, &moves)

	var nodes uint64
	for i := 0; i < n; i++ {
		m := moves[i]
		captured := b.Piece(m.To()) != types.Empty
		moved := b.Piece(m.From())

		b.MakeMove(m)
		if !b.WasLegalMove() {
			b.UndoMove()
			continue
		}

		if depth > 1 {
			nodes += walk(b, depth-1, r)
		} else {
			nodes++
			isPawn := moved == types.WhitePawn || moved == types.BlackPawn
			enPassant := m.IsSpecial() && isPawn && !captured && m.To().File() != m.From().File()
			castle := (moved == types.WhiteKing || moved == types.BlackKing) && m.IsSpecial()
			promotion := m.IsSpecial() && isPawn && (m.To().Rank() == 0 || m.To().Rank() == 7)
			if enPassant {
				r.EnPassant++
				r.Captures++
			} else if captured {
				r.Captures++
			}
			if castle {
				r.Castles++
			}
			if promotion {
				r.Promotions++
			}
			if b.InCheck() {
				r.Checks++
			}
		}
		b.UndoMove()
	}
	return nodes
}

// Divide reports, for each root move, the perft count of the subtree below
// it -- the standard way to localize a move generator bug by bisecting
// against a reference engine's divide output.
func Divide(fen string, depth int) map[string]uint64 {
	if depth < 1 {
		depth = 1
	}
	b := &board.Board{}
	b.SetupBoard(fen)

	var moves [types.MaxMoves]types.Move
	n := movegen.GenerateMoves(b, &moves)

	result := make(map[string]uint64, n)
	for i := 0; i < n; i++ {
		m := moves[i]
		key := m.From().String() + m.To().String()
		if b.IsPromotion(m.From(), m.To()) {
			key += string("qrbn"[m.Promo()])
		}
		b.MakeMove(m)
		if b.WasLegalMove() {
			var sub Result
			if depth > 1 {
				result[key] = walk(b, depth-1, &sub)
			} else {
				result[key] = 1
			}
		}
		b.UndoMove()
	}
	return result
}

// DivideParallel computes the same per-root-move breakdown as Divide, but
// explores root moves concurrently: each root move gets its own Board copy
// (by re-parsing fen and replaying into a fresh worker goroutine) so
// sibling subtrees never share mutable state. Bounded by maxWorkers
// concurrent goroutines; errgroup collects the first error, though a correct
// move generator never produces one here -- walk itself cannot fail.
func DivideParallel(fen string, depth int, maxWorkers int) (map[string]uint64, error) {
	if depth < 1 {
		depth = 1
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	root := &board.Board{}
	root.SetupBoard(fen)
	var rootMoves [types.MaxMoves]types.Move
	n := movegen.GenerateMoves(root, &rootMoves)

	result := make(map[string]uint64, n)
	var mu sync.Mutex

	pool := workerpool.New(maxWorkers)
	defer pool.StopWait()

	var g errgroup.Group
	for i := 0; i < n; i++ {
		m := rootMoves[i]
		g.Go(func() error {
			done := make(chan struct{})
			pool.Submit(func() {
				defer close(done)
				b := &board.Board{}
				b.SetupBoard(fen)
				key := m.From().String() + m.To().String()
				if b.IsPromotion(m.From(), m.To()) {
					key += string("qrbn"[m.Promo()])
				}
				b.MakeMove(m)
				if !b.WasLegalMove() {
					b.UndoMove()
					return
				}
				var sub Result
				var count uint64
				if depth > 1 {
					count = walk(b, depth-1, &sub)
				} else {
					count = 1
				}
				mu.Lock()
				result[key] = count
				mu.Unlock()
			})
			<-done
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
