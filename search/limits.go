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

// Package search wires board, movegen and transpositiontable together into
// the move-search contract described by the specification: generate moves,
// make each, probe/store the transposition table, undo, repeat under a
// caller-supplied cancellation callback. It deliberately does not evaluate
// or order moves -- that is out of scope here -- so it always returns the
// first legal move found, but it exercises the full make/probe/undo loop a
// real search would run.
package search

import "time"

// Limits bounds a search: whichever of these is reached first stops it.
// A zero Nodes or MoveTime means unlimited along that dimension; a Depth of
// zero or less searches depth 1.
type Limits struct {
	Depth    int
	Nodes    int64
	MoveTime time.Duration
	Infinite bool
}
