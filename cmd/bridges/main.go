// SPDX-License-Identifier: MIT

// Command bridges inspects and solves bridge-crossing puzzles from the
// terminal.
//
//	bridges levels
//	bridges -level konigsberg classify
//	bridges -level nikolaus -start BR -delay 300ms solve
//	bridges -level stroll -at A hint
//	bridges -level stroll hint A B
//	bridges -level konigsberg analyze
//	bridges -level triangle play A B C A
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/konigsberg/advisor"
	"github.com/katalvlaran/konigsberg/core"
	"github.com/katalvlaran/konigsberg/euler"
	"github.com/katalvlaran/konigsberg/game"
	"github.com/katalvlaran/konigsberg/gridgraph"
	"github.com/katalvlaran/konigsberg/hint"
	"github.com/katalvlaran/konigsberg/level"
	"github.com/katalvlaran/konigsberg/narrator"
)

// Version is set at build time.
var Version = "dev"

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

var (
	errUsage    = errors.New("usage")
	errNoResult = errors.New("no result")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr, os.Getenv)
	if err != nil {
		// Flag errors and usage were already printed by the flag set.
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, "bridges:", err)
		}
		return exitUsage
	}
	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "bridges:", err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{cfg: cfg, out: stdout, log: log}
	if err = a.dispatch(ctx); err != nil {
		switch {
		case err == errUsage:
			fmt.Fprintf(stderr, "bridges: unknown command %q\n", cfg.command)
			return exitUsage
		case errors.Is(err, errUsage):
			fmt.Fprintln(stderr, "bridges:", err)
			return exitUsage
		case errors.Is(err, errNoResult):
			return exitFail
		default:
			log.Error("command failed", zap.String("command", cfg.command), zap.Error(err))
			fmt.Fprintln(stderr, "bridges:", err)
			return exitFail
		}
	}

	return exitOK
}

type app struct {
	cfg config
	out io.Writer
	log *zap.Logger
}

func (a *app) dispatch(ctx context.Context) error {
	switch a.cfg.command {
	case "version":
		fmt.Fprintf(a.out, "bridges %s\n", Version)
		return nil
	case "levels":
		return a.levels()
	case "classify":
		return a.classify()
	case "solve":
		return a.solve(ctx)
	case "hint":
		return a.hint()
	case "analyze":
		return a.analyze()
	case "play":
		return a.play(ctx)
	default:
		return errUsage
	}
}

func (a *app) catalog() (*level.Catalog, error) {
	if a.cfg.levelsPath == "" {
		return level.Classic(), nil
	}
	c, err := level.Load(a.cfg.levelsPath)
	if err != nil {
		return nil, err
	}
	a.log.Debug("catalogue loaded", zap.String("path", a.cfg.levelsPath), zap.Int("levels", c.Len()))

	return c, nil
}

func (a *app) definition() (level.Definition, error) {
	c, err := a.catalog()
	if err != nil {
		return level.Definition{}, err
	}

	return c.Level(a.cfg.levelID)
}

func (a *app) graph() (*core.Graph, error) {
	d, err := a.definition()
	if err != nil {
		return nil, err
	}

	return d.Graph()
}

func (a *app) levels() error {
	c, err := a.catalog()
	if err != nil {
		return err
	}
	for _, id := range c.IDs() {
		d, _ := c.Level(id)
		g, err := d.Graph()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%-12s %-8s %d bridges  %s\n", id, euler.Classify(g).Kind, g.EdgeCount(), d.Name)
	}

	return nil
}

func (a *app) classify() error {
	g, err := a.graph()
	if err != nil {
		return err
	}
	c := euler.Classify(g)
	fmt.Fprintf(a.out, "kind: %s\n", c.Kind)
	fmt.Fprintf(a.out, "odd: %s\n", joinOrNone(c.OddDegreeNodes))
	fmt.Fprintf(a.out, "components: %d\n", c.Components)
	if c.Exists {
		fmt.Fprintf(a.out, "start: %s\n", joinOrNone(c.StartCandidates))
	}

	return nil
}

func (a *app) solve(ctx context.Context) error {
	g, err := a.graph()
	if err != nil {
		return err
	}
	path, ok := euler.BuildPath(g, a.cfg.start)
	if !ok {
		fmt.Fprintln(a.out, "No walk crosses every bridge exactly once. Try: bridges analyze")
		return errNoResult
	}
	a.log.Debug("walk found", zap.Int("steps", len(path)))

	return game.Playback(ctx, narrator.Describe(g, path), a.cfg.delay, func(s narrator.Step) error {
		_, err := fmt.Fprintln(a.out, s.Description)
		return err
	})
}

// hint advises from -at on the untouched level, or, when nodes follow the
// command, from the end of that walk replayed through a session.
func (a *app) hint() error {
	g, err := a.graph()
	if err != nil {
		return err
	}
	var h hint.Hint
	var ok bool
	if len(a.cfg.args) == 0 {
		h, ok = hint.Next(g, a.cfg.at)
	} else {
		if a.cfg.at != "" {
			return fmt.Errorf("%w: hint takes -at or a walk, not both", errUsage)
		}
		s, rerr := a.replay(g)
		if rerr != nil {
			return rerr
		}
		h, ok = s.Hint()
	}
	if !ok {
		fmt.Fprintln(a.out, "No hint available.")
		return errNoResult
	}
	fmt.Fprintln(a.out, h.Message)

	return nil
}

func (a *app) analyze() error {
	d, err := a.definition()
	if err != nil {
		return err
	}
	g, err := d.Graph()
	if err != nil {
		return err
	}
	an := advisor.Analyze(g)
	if an.Solvable {
		fmt.Fprintln(a.out, "Solvable as it is.")
		return nil
	}

	// drawn levels can price each new bridge in water cells
	var grid *gridgraph.GridGraph
	if d.Map != "" {
		if grid, err = d.Grid(); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, an.Suggestion)
	for _, m := range an.Modifications {
		line := fmt.Sprintf("  %-6s %s-%s  %s", m.Action, m.From, m.To, m.Reason)
		if grid != nil && m.Action == advisor.Add {
			if cost, cerr := grid.BuildCost(m.From, m.To); cerr == nil {
				line += fmt.Sprintf(" (build cost %d)", cost)
			}
		}
		fmt.Fprintln(a.out, line)
	}

	return nil
}

// play replays a walk given as node IDs and reports where it ends.
func (a *app) play(ctx context.Context) error {
	if len(a.cfg.args) == 0 {
		return fmt.Errorf("%w: play needs a start node", errUsage)
	}
	g, err := a.graph()
	if err != nil {
		return err
	}
	s, err := a.replay(g)
	if err != nil {
		return err
	}

	if err = game.Playback(ctx, narrator.Describe(g, s.Trail()), a.cfg.delay, func(st narrator.Step) error {
		_, err := fmt.Fprintln(a.out, st.Description)
		return err
	}); err != nil {
		return err
	}

	left := s.State().RemainingEdgeCount()
	switch {
	case s.Won():
		fmt.Fprintln(a.out, "Solved: every bridge crossed exactly once.")
	case s.Stuck():
		fmt.Fprintf(a.out, "Stuck at %s with %d bridges left.\n", g.Name(s.Position()), left)
		return errNoResult
	default:
		fmt.Fprintf(a.out, "%d bridges left.\n", left)
	}

	return nil
}

// replay starts a session on the first node of the command arguments and
// walks the rest.
func (a *app) replay(g *core.Graph) (*game.Session, error) {
	s := game.NewSession(g, game.WithLogger(a.log), game.WithLevelID(a.cfg.levelID))
	if err := s.Start(a.cfg.args[0]); err != nil {
		return nil, err
	}
	for _, to := range a.cfg.args[1:] {
		if err := s.Move(to); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func joinOrNone(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(ids, ", ")
}
