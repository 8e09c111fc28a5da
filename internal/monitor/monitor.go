/*
 * SimCpuCycle - Interactive monitor console.
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

// Package monitor is a liner-driven REPL for single-stepping and
// inspecting a running machine.Machine. Commands are matched by unique
// prefix against a small fixed table, mirroring the command parser's
// minimum-match-length convention rather than requiring the full word.
package monitor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/HENQ42/SimCpuCycle/internal/dump"
	"github.com/HENQ42/SimCpuCycle/internal/machine"
)

type command struct {
	name    string
	min     int
	process func(m *machine.Machine, args string) (quit bool, err error)
}

var commandTable = []command{
	{name: "step", min: 1, process: cmdStep},
	{name: "run", min: 1, process: cmdRun},
	{name: "regs", min: 1, process: cmdRegs},
	{name: "mem", min: 1, process: cmdMem},
	{name: "stats", min: 2, process: cmdStats},
	{name: "break", min: 1, process: cmdBreak},
	{name: "quit", min: 1, process: cmdQuit},
}

// breakpoint holds the one monitor-level breakpoint address; breakSet
// reports whether a breakpoint is currently set.
var breakpoint uint32
var breakSet bool

// Run starts the monitor's read-eval-print loop against m, echoing
// display output and register/stat dumps to stdout. It returns when the
// user quits or closes input.
func Run(m *machine.Machine) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		return completeCommand(partial)
	})

	for {
		text, err := line.Prompt("sim> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			return
		}
		line.AppendHistory(text)

		quit, err := dispatch(m, text)
		if err != nil {
			fmt.Println("error: " + err.Error())
		}
		if quit {
			return
		}
	}
}

func dispatch(m *machine.Machine, text string) (bool, error) {
	word, rest, _ := strings.Cut(strings.TrimSpace(text), " ")
	word = strings.ToLower(word)
	if word == "" {
		return false, nil
	}

	match := matchCommand(word)
	if len(match) == 0 {
		return false, fmt.Errorf("unknown command: %s", word)
	}
	if len(match) > 1 {
		return false, fmt.Errorf("ambiguous command: %s", word)
	}
	return match[0].process(m, strings.TrimSpace(rest))
}

func matchCommand(word string) []command {
	var match []command
	for _, c := range commandTable {
		if len(word) >= c.min && strings.HasPrefix(c.name, word) {
			match = append(match, c)
		}
	}
	return match
}

func completeCommand(partial string) []string {
	var names []string
	for _, c := range commandTable {
		if strings.HasPrefix(c.name, strings.ToLower(partial)) {
			names = append(names, c.name)
		}
	}
	return names
}

func cmdStep(m *machine.Machine, args string) (bool, error) {
	n := 1
	if args != "" {
		v, err := strconv.Atoi(args)
		if err != nil {
			return false, fmt.Errorf("step count must be a number: %s", args)
		}
		n = v
	}
	for i := 0; i < n && !m.CPU.IsHalted(); i++ {
		m.Step()
		if breakSet && m.CPU.Registers().PC == breakpoint {
			fmt.Printf("breakpoint hit at %d\n", breakpoint)
			break
		}
	}
	return false, nil
}

func cmdRun(m *machine.Machine, _ string) (bool, error) {
	for !m.CPU.IsHalted() {
		m.Step()
		if breakSet && m.CPU.Registers().PC == breakpoint {
			fmt.Printf("breakpoint hit at %d\n", breakpoint)
			return false, nil
		}
	}
	fmt.Println("halted")
	return false, nil
}

func cmdRegs(m *machine.Machine, _ string) (bool, error) {
	fmt.Println(dump.Registers(m.CPU.Registers()))
	return false, nil
}

func cmdMem(m *machine.Machine, args string) (bool, error) {
	if args == "" {
		return false, errors.New("mem requires an address")
	}
	addr, err := strconv.ParseUint(args, 10, 32)
	if err != nil {
		return false, fmt.Errorf("bad address: %s", args)
	}
	fmt.Println(dump.Memory(m.RAM, uint32(addr), 8))
	return false, nil
}

func cmdStats(m *machine.Machine, _ string) (bool, error) {
	fmt.Println(dump.Stats(m.Counters))
	return false, nil
}

func cmdBreak(_ *machine.Machine, args string) (bool, error) {
	if args == "" {
		breakSet = false
		fmt.Println("breakpoint cleared")
		return false, nil
	}
	addr, err := strconv.ParseUint(args, 10, 32)
	if err != nil {
		return false, fmt.Errorf("bad address: %s", args)
	}
	breakpoint = uint32(addr)
	breakSet = true
	fmt.Printf("breakpoint set at %d\n", breakpoint)
	return false, nil
}

func cmdQuit(_ *machine.Machine, _ string) (bool, error) {
	return true, nil
}
