/*
 * SimCpuCycle - Command-line entry point.
 *
 * Copyright 2026, SimCpuCycle Contributors
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
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/HENQ42/SimCpuCycle/internal/assembler"
	"github.com/HENQ42/SimCpuCycle/internal/config"
	"github.com/HENQ42/SimCpuCycle/internal/dump"
	"github.com/HENQ42/SimCpuCycle/internal/firmware"
	"github.com/HENQ42/SimCpuCycle/internal/hostio"
	"github.com/HENQ42/SimCpuCycle/internal/keyboard"
	"github.com/HENQ42/SimCpuCycle/internal/logging"
	"github.com/HENQ42/SimCpuCycle/internal/machine"
	"github.com/HENQ42/SimCpuCycle/internal/monitor"
)

func main() {
	app := &cli.App{
		Name:    "cpusim",
		Usage:   "assemble and run programs on the accumulator-machine simulator",
		Version: "v0.1.0",
		Commands: []*cli.Command{
			buildCommand(),
			runCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error: "+err.Error())
		os.Exit(1)
	}
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "assemble a source file into a firmware image",
		ArgsUsage: "<source.asm> <out.bin>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log", Usage: "write log output to this file"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return cli.Exit("build requires exactly two arguments: <source.asm> <out.bin>", 2)
			}
			log, closeLog, err := buildLogger(c.String("log"), false)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer closeLog()

			srcPath, outPath := c.Args().Get(0), c.Args().Get(1)
			src, err := os.ReadFile(srcPath)
			if err != nil {
				return cli.Exit(err.Error(), 3)
			}

			lines := splitLines(string(src))
			asm := assembler.New(log)
			words := asm.Assemble(lines)

			if err := firmware.Save(outPath, words); err != nil {
				return cli.Exit(err.Error(), 3)
			}
			fmt.Printf("assembled %d words -> %s\n", len(words), outPath)
			return nil
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "load a firmware image and run it",
		ArgsUsage: "<image.bin>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log", Usage: "write log output to this file"},
			&cli.StringFlag{Name: "config", Usage: "boot-time configuration file"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "suppress info/debug logging to stderr"},
			&cli.BoolFlag{Name: "monitor", Usage: "drop into the interactive monitor instead of free-running"},
			&cli.Uint64Flag{Name: "max-cycles", Usage: "abort a free-running session after this many cycles (0 = unbounded)"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("run requires exactly one argument: <image.bin>", 2)
			}

			quiet := c.Bool("quiet")
			log, closeLog, err := buildLogger(c.String("log"), quiet)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer closeLog()

			params := config.Default()
			if cfgPath := c.String("config"); cfgPath != "" {
				params, err = config.Load(cfgPath)
				if err != nil {
					return cli.Exit(err.Error(), 4)
				}
			}
			if quiet {
				params.Quiet = true
			}

			words, err := firmware.Load(c.Args().Get(0))
			if err != nil {
				return cli.Exit(err.Error(), 3)
			}

			term, err := hostio.NewTerminalSource(int(os.Stdin.Fd()))
			var source keyboard.ByteSource
			if err == nil {
				defer term.Close()
				source = term
			} else {
				source = hostio.NewQueueSource()
			}

			m := machine.New(params, os.Stdout, source, log)
			m.LoadProgram(words)

			if c.Bool("monitor") {
				monitor.Run(m)
				return nil
			}

			executed := m.Run(c.Uint64("max-cycles"))
			fmt.Printf("halted after %d cycles\n", executed)
			fmt.Println(dump.Stats(m.Counters))
			return nil
		},
	}
}

func buildLogger(path string, quiet bool) (log *slog.Logger, closeFn func(), err error) {
	var file *os.File
	if path != "" {
		file, err = os.Create(path)
		if err != nil {
			return nil, func() {}, err
		}
	}
	h := logging.NewHandler(file, &slog.HandlerOptions{Level: slog.LevelInfo}, quiet)
	log = slog.New(h)
	closeFn = func() {
		if file != nil {
			_ = file.Close()
		}
	}
	return log, closeFn, nil
}

func splitLines(src string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(src))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
