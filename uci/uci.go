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

// Package uci implements enough of the UCI protocol to drive search and
// perft from a terminal or a test harness: "uci", "isready", "ucinewgame",
// "position", "go", "stop", "perft" and "quit". It is not a complete UCI
// implementation -- pondering, multi-PV and engine options are not
// supported -- but the commands it does handle behave like a real engine's.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"floyd/board"
	"floyd/logging"
	"floyd/movegen"
	"floyd/notation"
	"floyd/perft"
	"floyd/search"
	"floyd/types"
)

const engineName = "floyd"
const engineAuthor = "the floyd contributors"

var log = logging.GetLog()

// Handler reads UCI commands from InIo and writes responses to OutIo. Its
// zero value is not usable; construct with NewHandler.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	board  *board.Board
	engine *search.Engine

	stopFlag int32 // atomic bool, set by the "stop" command
}

// NewHandler creates a Handler reading from stdin and writing to stdout,
// with a fresh board at the standard starting position and a 64 MiB
// transposition table.
func NewHandler() *Handler {
	b := &board.Board{}
	b.SetupBoard(startFen)
	return &Handler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		board:  b,
		engine: search.NewEngine(64 * 1024 * 1024),
	}
}

const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Loop reads and handles commands from InIo until "quit" or EOF.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command handles a single line and returns everything it wrote to OutIo,
// for use from tests without wiring up real stdin/stdout.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

func (h *Handler) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	logging.GetUciLog().Infof("<< %s", line)
	tokens := whitespace.Split(line, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.board.SetupBoard(startFen)
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		atomic.StoreInt32(&h.stopFlag, 1)
	case "perft":
		h.perftCommand(tokens)
	default:
		log.Warningf("unknown command: %s", line)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name " + engineName)
	h.send("id author " + engineAuthor)
	h.send("uciok")
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		return
	}
	i := 1
	switch tokens[1] {
	case "startpos":
		h.board.SetupBoard(startFen)
		i = 2
	case "fen":
		fenTokens := tokens[2:]
		movesAt := len(fenTokens)
		for j, t := range fenTokens {
			if t == "moves" {
				movesAt = j
				break
			}
		}
		fen := strings.Join(fenTokens[:movesAt], " ")
		if h.board.SetupBoard(fen) == 0 {
			log.Warningf("invalid fen: %s", fen)
			return
		}
		i = 2 + movesAt
	default:
		return
	}
	if i < len(tokens) && tokens[i] == "moves" {
		for _, mv := range tokens[i+1:] {
			h.applyMove(mv)
		}
	}
}

func (h *Handler) applyMove(uciMove string) {
	var moves [types.MaxMoves]types.Move
	n := movegen.GenerateMoves(h.board, &moves)
	for i := 0; i < n; i++ {
		if notation.MoveToUci(h.board, moves[i]) == uciMove {
			h.board.MakeMove(moves[i])
			if !h.board.WasLegalMove() {
				h.board.UndoMove()
			}
			return
		}
	}
	log.Warningf("illegal or unknown move in position command: %s", uciMove)
}

func (h *Handler) goCommand(tokens []string) {
	atomic.StoreInt32(&h.stopFlag, 0)
	var limits search.Limits
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			if i+1 < len(tokens) {
				limits.Depth, _ = strconv.Atoi(tokens[i+1])
				i++
			}
		case "nodes":
			if i+1 < len(tokens) {
				n, _ := strconv.Atoi(tokens[i+1])
				limits.Nodes = int64(n)
				i++
			}
		case "movetime":
			if i+1 < len(tokens) {
				ms, _ := strconv.Atoi(tokens[i+1])
				limits.MoveTime = time.Duration(ms) * time.Millisecond
				i++
			}
		case "infinite":
			limits.Infinite = true
		}
	}

	result := h.engine.Run(h.board, limits, func() bool {
		return atomic.LoadInt32(&h.stopFlag) != 0
	})

	if result.BestMove == types.NoMove {
		h.send("bestmove 0000")
		return
	}
	h.send(fmt.Sprintf("bestmove %s", notation.MoveToUci(h.board, result.BestMove)))
}

func (h *Handler) perftCommand(tokens []string) {
	depth := 5
	if len(tokens) > 1 {
		if d, err := strconv.Atoi(tokens[1]); err == nil {
			depth = d
		}
	}
	r := perft.Run(h.board.BoardToFen(), depth)
	h.send(fmt.Sprintf("info string %s", r.String()))
}

func (h *Handler) send(s string) {
	logging.GetUciLog().Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
