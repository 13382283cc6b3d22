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

package uci

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUciCommandAnnouncesEngine(t *testing.T) {
	h := NewHandler()
	out := h.Command("uci")
	assert.Contains(t, out, "id name floyd")
	assert.Contains(t, out, "uciok")
}

func TestIsReadyRespondsReadyOk(t *testing.T) {
	h := NewHandler()
	assert.Equal(t, "readyok\n", h.Command("isready"))
}

func TestUnknownCommandProducesNoOutput(t *testing.T) {
	h := NewHandler()
	assert.Equal(t, "", h.Command("notacommand"))
}

func TestPositionStartposThenGoDepthReturnsBestMove(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	out := h.Command("go depth 1")
	assert.True(t, strings.HasPrefix(out, "bestmove "))
}

func TestPositionFenWithMovesAppliesThem(t *testing.T) {
	h := NewHandler()
	h.Command("position fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 moves e2e4")
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", h.board.BoardToFen())
}

func TestPerftCommandReportsNodeCount(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	out := h.Command("perft 2")
	assert.Contains(t, out, "info string")
	assert.Contains(t, out, "Nodes: 400")
}

func TestStopClearsBeforeNextGo(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	h.Command("stop")
	out := h.Command("go depth 1")
	assert.True(t, strings.HasPrefix(out, "bestmove "), "a fresh go must not inherit a stale stop flag")
}
