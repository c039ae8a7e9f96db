// Command nodekit runs workflow components from the command line.
//
// Usage:
//
//	nodekit list
//	nodekit run <component> [-p key=value ...] [-params file.json]
//
// The run command prints one JSON envelope on stdout: {"ok": true, "payload":
// ...} on success, {"ok": false, "failure": {"kind": ..., "reason": ...}}
// otherwise.
//
// Credentials come from the environment:
//
//	OPENAI_API_KEY         image generation (DALL-E) and audio transcription
//	GEMINI_API_KEY         image generation (Imagen)
//	FIRECRAWL_API_KEY      web crawling
//	GOOGLE_PLACES_API_KEY  places search
//
// PDF page extraction runs locally and needs no credentials.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/nodekit/nodekit"
	"github.com/nodekit/nodekit/builtin"
	nodejson "github.com/nodekit/nodekit/json"
	"go.uber.org/zap"
)

const usage = `usage:
  nodekit list
  nodekit run <component> [-p key=value ...] [-params file.json]`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "nodekit: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	switch args[0] {
	case "list":
		return runList()
	case "run":
		return runComponent(args[1:])
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

// runList prints the metadata of every bundled component, whether or not its
// backend is configured.
func runList() error {
	data, err := nodejson.MarshalMetas(builtin.Metas())
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runComponent(args []string) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return errors.New(usage)
	}
	name := args[0]

	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	var pairs paramFlags
	fs.Var(&pairs, "p", "Parameter as key=value (repeatable)")
	paramsPath := fs.String("params", "", "Path to a JSON parameter file")
	imageBackend := fs.String("image-backend", "",
		`Image backend: "openai" or "gemini" (default: openai when OPENAI_API_KEY is set, else gemini)`)
	verbose := fs.Bool("v", false, "Log client activity to stderr")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("unexpected argument %q\n%s", fs.Arg(0), usage)
	}

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Env vars are read here and passed as values.
	deps, err := buildDeps(ctx, config{
		openaiKey:    os.Getenv("OPENAI_API_KEY"),
		geminiKey:    os.Getenv("GEMINI_API_KEY"),
		firecrawlKey: os.Getenv("FIRECRAWL_API_KEY"),
		placesKey:    os.Getenv("GOOGLE_PLACES_API_KEY"),
		imageBackend: *imageBackend,
	}, logger)
	if err != nil {
		return err
	}

	reg := nodekit.NewRegistry()
	if err := builtin.Register(reg, deps); err != nil {
		return err
	}

	c, err := reg.Get(name)
	if err != nil {
		if hint, ok := credentialHint[name]; ok {
			return fmt.Errorf("component %s needs %s", name, hint)
		}
		return err
	}

	params, err := resolveParams(c.Meta(), *paramsPath, pairs.values)
	if err != nil {
		return err
	}

	result := nodekit.Run(ctx, c, params)
	data, err := nodejson.MarshalResult(result)
	if err != nil {
		return err
	}
	fmt.Println(string(data))

	if !result.OK {
		return fmt.Errorf("%s failed", name)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
