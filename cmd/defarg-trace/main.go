/*
Defarg-trace runs a one-shot batch trace over a rule file: it loads the
rules, builds the argument graph, computes the grounded labelling, and
optionally plays a scripted dialogue and/or renders the attack graph to
DOT.

Usage:

	defarg-trace [flags] RULEFILE

The flags are:

	-v, --version
		Give the current version of defarg and then exit.

	-s, --seed FILE
		Load a TOML file of default preference edges before RULEFILE.

	-d, --dot FILE
		Render the argument graph and grounded labelling to FILE in DOT
		format.

	-t, --trace
		Play a scripted base-proponent vs sceptical-opponent dialogue over
		the first argument of the framework and print every move.

This binary is a demo harness, not the library's API: host programs should
import github.com/arglab/defarg directly instead of shelling out to this.
*/
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/arglab/defarg"
	"github.com/arglab/defarg/adapter/dot"
	"github.com/arglab/defarg/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitLoadError indicates a problem reading or parsing the rule file
	// or seed file.
	ExitLoadError

	// ExitRunError indicates a problem during tracing or rendering.
	ExitRunError
)

var (
	returnCode  int     = ExitSuccess
	flagVersion *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	seedPath    *string = pflag.StringP("seed", "s", "", "TOML file of default preference edges to load before the rule file")
	dotPath     *string = pflag.StringP("dot", "d", "", "Render the argument graph and grounded labelling to this file in DOT format")
	trace       *bool   = pflag.BoolP("trace", "t", false, "Play a scripted dialogue over the first argument of the framework")
)

var logger = log.New(os.Stderr, "defarg-trace: ", 0)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "ERROR: exactly one RULEFILE argument is required")
		returnCode = ExitLoadError
		return
	}
	ruleFilePath := pflag.Arg(0)

	k := defarg.NewKnowledgeBase(filepath.Base(ruleFilePath))
	k.SetBatch(true)

	if *seedPath != "" {
		sf, err := loadSeedFile(*seedPath)
		if err != nil {
			logger.Printf("ERROR: %s", err)
			returnCode = ExitLoadError
			return
		}
		for _, pref := range sf.Preferences {
			stmt := fmt.Sprintf("%s < %s", pref.Less, pref.Greater)
			if err := k.AddRuleString(stmt); err != nil {
				logger.Printf("ERROR: seed preference %q: %s", stmt, err)
				returnCode = ExitLoadError
				return
			}
		}
	}

	f, err := os.Open(ruleFilePath)
	if err != nil {
		logger.Printf("ERROR: opening rule file: %s", err)
		returnCode = ExitLoadError
		return
	}
	defer f.Close()

	issues := k.LoadFile(f)
	k.SetBatch(false)
	k.Recalculate()
	for _, issue := range issues {
		logger.Printf("WARNING: line %d: %s", issue.Line, issue.Err)
	}

	fmt.Print(k.DebugDump())

	af := defarg.NewArgumentationFramework(k)
	lab := defarg.GroundedLabelling(af)

	if *dotPath != "" {
		if err := renderDot(af, lab, *dotPath); err != nil {
			logger.Printf("ERROR: %s", err)
			returnCode = ExitRunError
			return
		}
	}

	if *trace {
		if err := runTrace(af, lab); err != nil {
			logger.Printf("ERROR: %s", err)
			returnCode = ExitRunError
			return
		}
	}
}

func renderDot(af *defarg.ArgumentationFramework, lab *defarg.Labelling, path string) error {
	out := dot.Render(af.Graph(), lab, dot.Options{ShowRule: true})
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing dot file: %w", err)
	}
	return nil
}

// dialogueMover is satisfied by every player strategy defarg exposes
// (NewBasePlayer, NewScepticalPlayer, NewSmartPlayer); it lets this package
// drive a scripted dialogue without importing internal/player directly.
type dialogueMover interface {
	defarg.Player
	MakeMove(d *defarg.Dialogue) (*defarg.Move, error)
}

func runTrace(af *defarg.ArgumentationFramework, lab *defarg.Labelling) error {
	args := af.Arguments()
	if len(args) == 0 {
		fmt.Println("no arguments to trace")
		return nil
	}
	target := args[0]

	proponent := defarg.NewBasePlayer(defarg.Proponent)
	opponent := defarg.NewScepticalPlayer(defarg.Opponent)
	d := defarg.NewDialogue(af.Graph(), lab, proponent, opponent, false)

	targetLab := defarg.FromArgument(target, lab.LabelFor(target))
	if err := d.Move(proponent, defarg.Claim, targetLab); err != nil {
		return fmt.Errorf("opening claim: %w", err)
	}
	fmt.Println(lastMoveString(d))

	players := []dialogueMover{opponent, proponent}
	for i := 0; i < 50; i++ {
		mover := players[i%2]
		mv, err := mover.MakeMove(d)
		if err != nil {
			return fmt.Errorf("move %d: %w", i, err)
		}
		if mv == nil {
			break
		}
		if err := d.Move(mover, mv.Kind, mv.Arg); err != nil {
			return fmt.Errorf("applying move %d: %w", i, err)
		}
		fmt.Println(lastMoveString(d))
	}
	return nil
}

func lastMoveString(d *defarg.Dialogue) string {
	m, ok := d.LastMove()
	if !ok {
		return "(no moves)"
	}
	return m.String()
}
