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

package main

import (
	"flag"
	"os"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pkg/profile"

	"floyd/config"
	"floyd/logging"
	"floyd/perft"
	"floyd/uci"
)

var out = message.NewPrinter(language.English)

const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(off|critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", startFen, "fen to use for -perft, ignored otherwise")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen and exit")
	perftDivide := flag.Bool("divide", false, "with -perft, print the per-root-move breakdown instead of a single total")
	runUci := flag.Bool("uci", false, "start the UCI loop on stdin/stdout")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of this run to ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.Setup(*configFile)
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	switch {
	case *perftDepth > 0 && *perftDivide:
		breakdown, err := perft.DivideParallel(*fen, *perftDepth, runtime.NumCPU())
		if err != nil {
			out.Println("perft divide failed:", err)
			os.Exit(1)
		}
		var total uint64
		for move, nodes := range breakdown {
			out.Printf("%s: %d\n", move, nodes)
			total += nodes
		}
		out.Printf("Moves: %d  Total: %d\n", len(breakdown), total)
	case *perftDepth > 0:
		r := perft.Run(*fen, *perftDepth)
		out.Println(r.String())
	case *runUci:
		uci.NewHandler().Loop()
	default:
		uci.NewHandler().Loop()
	}
}

func printVersionInfo() {
	out.Println("floyd (development build)")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
