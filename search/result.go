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

	"floyd/types"
)

// Result reports the outcome of a Run call. BestMove is types.NoMove if no
// legal move existed in the position (checkmate or stalemate) or if the
// search was stopped before the first root move was tried.
type Result struct {
	BestMove   types.Move
	Nodes      int64
	TTHits     int64
	SearchTime time.Duration
}

func (r Result) String() string {
	move := "none"
	if r.BestMove != types.NoMove {
		move = r.BestMove.From().String() + r.BestMove.To().String()
	}
	return out.Sprintf("bestmove %s  nodes: %d  tthits: %d  time: %d ms",
		move, r.Nodes, r.TTHits, r.SearchTime.Milliseconds())
}
