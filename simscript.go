// This file is part of Simscript.
//
// Simscript is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Simscript is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Simscript.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/simscript/logger"
	"github.com/jetsetilly/simscript/modalflag"
	"github.com/jetsetilly/simscript/prefs"
	"github.com/jetsetilly/simscript/repl"
	"github.com/jetsetilly/simscript/scripting"
	"github.com/jetsetilly/simscript/statsview"
	"github.com/jetsetilly/simscript/terminal"
	"github.com/jetsetilly/simscript/terminal/colorterm"
	"github.com/jetsetilly/simscript/terminal/plainterm"
	"github.com/jetsetilly/simscript/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// set the function to call when an interrupt signal is received. a nil
	// function restores the default behaviour, which is to quit.
	//
	// takes a func() argument.
	reqIntHandler stateReq = "INTHANDLER"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

// setIntHandler changes the function called on an interrupt signal
func (sync *mainSync) setIntHandler(f func()) {
	sync.state <- stateRequest{req: reqIntHandler, args: f}
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be replaced with reqIntHandler request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	var intHandler func()

	done := false
	for !done {
		select {
		case <-intChan:
			if intHandler != nil {
				intHandler()
			} else {
				fmt.Println("\r")
				done = true
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqIntHandler:
				if state.args == nil {
					intHandler = nil
				} else if f, ok := state.args.(func()); ok {
					intHandler = f
				} else {
					panic(fmt.Sprintf("cannot convert %s arguments into func()", reqIntHandler))
				}
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "REPL", "BINDINGS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "REPL":
		err = interactive(md, sync)

	case "BINDINGS":
		err = bindings(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags shared by the modes that create a scripting engine
type engineFlags struct {
	policy    *string
	speed     *float64
	prefs     *string
	scripts   *string
	log       *bool
	statsview *bool
}

func addEngineFlags(md *modalflag.Modes) *engineFlags {
	f := &engineFlags{
		policy:  md.AddString("policy", "", "script loading policy: disabled, enabled (default from preferences)"),
		speed:   md.AddFloat64("speed", 0, "milliseconds between clock ticks (default from preferences)"),
		prefs:   md.AddString("prefs", "", "preference overrides. eg. 'scripting.logging::false; simulation.clockspeed::20'"),
		scripts: md.AddString("scripts", ".", "directory containing scripts"),
		log:     md.AddBool("log", false, "echo log to stdout"),
	}
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return f
}

// apply the flags. the returned function should be called once the host has
// been created
func (f *engineFlags) apply() (fs.FS, func()) {
	var overrides []string
	if *f.policy != "" {
		overrides = append(overrides, fmt.Sprintf("scripting.loadpolicy::%s", *f.policy))
	}
	if *f.speed != 0 {
		overrides = append(overrides, fmt.Sprintf("simulation.clockspeed::%v", *f.speed))
	}
	if *f.prefs != "" {
		overrides = append(overrides, *f.prefs)
	}
	prefs.PushCommandLineStack(strings.Join(overrides, ";"))

	if *f.log {
		logger.SetEcho(os.Stdout)
	}

	if f.statsview != nil && *f.statsview {
		statsview.Launch(os.Stdout)
	}

	return os.DirFS(*f.scripts), func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Printf("* unused preferences: %s\n", unused)
		}
	}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	engFlags := addEngineFlags(md)
	clock := md.AddBool("clock", false, "start the clock after the scripts have run and call onTick() on every tick")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one script is required")
	}

	term := &plainterm.PlainTerminal{}
	err = term.Initialise()
	if err != nil {
		return err
	}
	defer term.CleanUp()

	scripts, unused := engFlags.apply()
	h, err := newHost(term, scripts)
	unused()
	if err != nil {
		return err
	}

	sync.setIntHandler(h.interrupt)
	defer sync.setIntHandler(nil)

	for _, arg := range md.RemainingArgs() {
		name, err := scriptName(arg)
		if err != nil {
			return err
		}
		_, err = h.eng.RunFile(name)
		if err != nil {
			return err
		}
	}

	if *clock {
		return h.clock()
	}

	return nil
}

func interactive(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	engFlags := addEngineFlags(md)
	termType := md.AddString("term", "PLAIN", "terminal type to use: PLAIN, COLOR")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	default:
		return fmt.Errorf("unknown terminal: %s", *termType)
	}

	err = term.Initialise()
	if err != nil {
		return err
	}
	defer term.CleanUp()

	scripts, unused := engFlags.apply()
	h, err := newHost(term, scripts)
	unused()
	if err != nil {
		return err
	}

	sync.setIntHandler(h.interrupt)
	defer sync.setIntHandler(nil)

	term.TermPrintLine(terminal.StyleFeedback, version.String())

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		name, err := scriptName(md.GetArg(0))
		if err != nil {
			return err
		}

		// problems in the initialisation script are reported but do not
		// prevent the REPL from starting
		_, err = h.eng.RunFile(name)
		if err != nil {
			term.TermPrintLine(terminal.StyleError, err.Error())
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return repl.Loop(term, h.eng)
}

func bindings(md *modalflag.Modes) error {
	md.NewMode()

	policy := md.AddString("policy", "", "script loading policy: disabled, enabled (default from preferences)")
	dot := md.AddString("dot", "", "write a graph of the bindings table to the named file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *policy != "" {
		prefs.PushCommandLineStack(fmt.Sprintf("scripting.loadpolicy::%s", *policy))
		defer prefs.PopCommandLineStack()
	}

	term := &plainterm.PlainTerminal{Output: md.Output}
	err = term.Initialise()
	if err != nil {
		return err
	}
	defer term.CleanUp()

	h, err := newHost(term, nil)
	if err != nil {
		return err
	}

	fmt.Fprint(md.Output, h.eng.Bindings())

	if *dot != "" {
		err = writeGraph(*dot, h.eng.Bindings())
		if err != nil {
			return err
		}
	}

	return nil
}

// writeGraph writes a memviz graph of the bindings table to the named file
func writeGraph(filename string, bindings *scripting.Bindings) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	memviz.Map(w, bindings)

	err = w.Flush()
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		v, r, _ := version.Version()
		fmt.Fprintf(md.Output, "%s\n%s\n", v, r)
		return nil
	}

	fmt.Fprintln(md.Output, version.String())
	return nil
}
