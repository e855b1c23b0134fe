/*
 * synacorvm - Main process.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	getopt "github.com/pborman/getopt/v2"

	"github.com/synacorvm/synacorvm/internal/loader"
	"github.com/synacorvm/synacorvm/internal/memory"
	"github.com/synacorvm/synacorvm/internal/ports"
	"github.com/synacorvm/synacorvm/internal/vm"
	"github.com/synacorvm/synacorvm/internal/vmerr"
	logger "github.com/synacorvm/synacorvm/util/logger"
	trace "github.com/synacorvm/synacorvm/util/trace"
)

var Logger *slog.Logger

// Config holds everything CLI flag parsing contributes to a run. main
// fills one of these from getopt and hands it to the core, the same
// split the teacher's main.go uses for its own flags.
type Config struct {
	ImagePath string
	Debug     bool
	Trace     bool
	LogFile   string
}

func parseConfig() Config {
	optDebug := getopt.BoolLong("debug", 'd', "Raise log level to debug")
	optTrace := getopt.BoolLong("trace", 't', "Trace every executed instruction")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	args := getopt.Args()
	if len(args) != 1 {
		getopt.PrintUsage(os.Stdout)
		os.Exit(1)
	}

	return Config{
		ImagePath: args[0],
		Debug:     *optDebug,
		Trace:     *optTrace,
		LogFile:   *optLogFile,
	}
}

func main() {
	cfg := parseConfig()

	// file is left a nil io.Writer (not a nil *os.File) when no log file
	// is requested, so the handler's "out != nil" check works correctly.
	var file io.Writer
	if cfg.LogFile != "" {
		f, err := os.Create(cfg.LogFile)
		if err != nil {
			os.Stderr.WriteString("synacorvm: can't create log file " + cfg.LogFile + ": " + err.Error() + "\n")
			os.Exit(1)
		}
		file = f
	}
	programLevel := new(slog.LevelVar)
	if cfg.Debug || cfg.Trace {
		programLevel.Set(slog.LevelDebug)
	} else {
		programLevel.Set(slog.LevelInfo)
	}
	Logger = slog.New(logger.New(file, &slog.HandlerOptions{Level: programLevel}))
	slog.SetDefault(Logger)

	Logger.Info("synacorvm started", "image", cfg.ImagePath)

	f, err := os.Open(cfg.ImagePath)
	if err != nil {
		Logger.Error("can't open image", "path", cfg.ImagePath, "err", err)
		os.Exit(1)
	}
	defer f.Close()

	mem := memory.New()
	if err := loader.Load(f, mem); err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
	Logger.Info("image loaded")

	var tracer *trace.Tracer
	if cfg.Trace {
		tracer = trace.New(Logger)
	}

	stream := ports.New(os.Stdin, os.Stdout)
	m := vm.New(mem, stream, tracer)

	// Wait for a SIGINT or SIGTERM to interrupt a run blocked on the `in`
	// instruction's stdin read, the same sigChan/select pattern the
	// teacher's main.go uses around its CPU goroutine.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- m.Run()
	}()

	var runErr error
	select {
	case runErr = <-done:
	case sig := <-sigChan:
		Logger.Error("interrupted", "signal", sig.String())
		stream.Flush()
		os.Exit(1)
	}

	if flushErr := stream.Flush(); flushErr != nil && runErr == nil {
		runErr = flushErr
	}

	if runErr != nil {
		if fault, ok := runErr.(*vmerr.Fault); ok {
			Logger.Error(fault.Error())
		} else {
			Logger.Error(runErr.Error())
		}
		os.Exit(1)
	}

	Logger.Info("halted")
}
