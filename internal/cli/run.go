package cli

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/internal/presentation/tui"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/observability"
)

//go:embed default_flow.yaml
var defaultFlow []byte

// RunOptions configures a demo session.
type RunOptions struct {
	FlowPath string // empty: use the embedded default flow
	Plain    bool   // disable markdown rendering
	Debug    bool   // debug logging + audit hooks on stderr
	LogLevel string // debug, info, warn or error; Debug overrides
}

// RunSession drives one flow interactively: it builds a machine with one
// scene state per flow entry, starts at the first scene and transitions on
// user input until a terminal scene is reached.
func RunSession(opts RunOptions, in io.Reader, out io.Writer) error {
	level := logging.ParseLevel(opts.LogLevel)
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	flow, err := loadSessionFlow(opts.FlowPath)
	if err != nil {
		return err
	}

	interactive := !opts.Plain && term.IsTerminal(int(os.Stdout.Fd()))
	render := tui.NewRenderer(interactive)

	machineOpts := []espalier.Option{espalier.WithLogger(logger)}
	if opts.Debug {
		machineOpts = append(machineOpts, espalier.WithLifecycleHooks(observability.NewAuditHooks(logger)))
	}
	machine := espalier.New(machineOpts...)

	ctx := context.Background()
	for _, scene := range flow.Scenes {
		state := &sceneState{scene: scene, out: out, render: render}
		if err := machine.Register(ctx, domain.StateID(scene.ID), state); err != nil {
			return fmt.Errorf("register scene: %w", err)
		}
	}

	if flow.Title != "" {
		fmt.Fprintf(out, "--- %s ---\n", flow.Title)
	}

	if err := machine.Start(ctx, domain.StateID(flow.Scenes[0].ID)); err != nil {
		return fmt.Errorf("start flow: %w", err)
	}

	scanner := bufio.NewScanner(in)
	for {
		scene, ok := flow.Scene(string(machine.Current()))
		if !ok || scene.Terminal() {
			return nil
		}

		fmt.Fprintf(out, "[%s] > ", strings.Join(scene.Options(), "/"))
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())

		if input == "quit" || input == "exit" {
			fmt.Fprintln(out, "Bye!")
			return nil
		}

		next, ok := scene.Next(input)
		if !ok {
			fmt.Fprintf(out, "unknown choice %q\n", input)
			continue
		}

		if err := machine.TransitionTo(ctx, domain.StateID(next)); err != nil {
			return fmt.Errorf("transition: %w", err)
		}
	}
}

func loadSessionFlow(path string) (*Flow, error) {
	if path == "" {
		return ParseFlow(defaultFlow)
	}
	return LoadFlow(path)
}
