// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command enlight-dump prints the content of an EnlightNN model file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nlpodyssey/enlight"
	"github.com/nlpodyssey/enlight/host"
	"github.com/nlpodyssey/enlight/internal/config"
	"github.com/nlpodyssey/enlight/internal/logger"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := command().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func command() *cli.Command {
	cfg := config.Default()
	return &cli.Command{
		Name:      "enlight-dump",
		Usage:     "print the graph of an EnlightNN model",
		ArgsUsage: "<model.enlight>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "metadata-dir", Usage: "directory holding " + enlight.MetadataFile + " (default: embedded)", Destination: &cfg.MetadataDir},
			&cli.BoolFlag{Name: "tensors", Usage: "print the content of constant tensors", Destination: &cfg.Tensors},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error", Value: cfg.LogLevel, Destination: &cfg.LogLevel},
			&cli.StringFlag{Name: "log-format", Usage: "console or json", Value: cfg.LogFormat, Destination: &cfg.LogFormat},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return errors.New("expected exactly one model file")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(ctx, cfg, c.Args().First(), os.Stdout)
		},
	}
}

func run(ctx context.Context, cfg config.Config, file string, w io.Writer) error {
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	h := host.Embedded(log)
	if cfg.MetadataDir != "" {
		h = host.Dir(cfg.MetadataDir, log)
	}

	factory := enlight.NewModelFactory(
		enlight.WithLogger(log),
		enlight.WithMetadataLoader(enlight.NewMetadataLoader(log)),
	)
	if !factory.Match(file) {
		log.Warn().Str("file", file).Msg("unexpected file extension")
	}

	buffer, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read model: %w", err)
	}
	model, err := factory.Open(ctx, file, buffer, h)
	if err != nil {
		return err
	}
	dump(w, model, cfg.Tensors)
	return nil
}

func dump(w io.Writer, model *enlight.Model, tensors bool) {
	info := model.NetInfo()
	fmt.Fprintf(w, "format: %s\n", model.Format())
	fmt.Fprintf(w, "model: %s\n", info.ModelName)
	if info.ModelType != "" {
		fmt.Fprintf(w, "type: %s\n", info.ModelType)
	}
	if info.IsQuantized {
		fmt.Fprintf(w, "quantization: %s\n", info.QuantizationMethod)
	}
	if labels := model.ClassLabels(); labels != "" {
		fmt.Fprintf(w, "classes: %d\n", info.NumClass)
		fmt.Fprintln(w, indent(labels, "  "))
	}

	for _, g := range model.Graphs() {
		fmt.Fprintf(w, "inputs: %v\noutputs: %v\n", g.InputIDs(), g.OutputIDs())
		for _, n := range g.Nodes() {
			dumpNode(w, n, "", tensors)
		}
	}
}

func dumpNode(w io.Writer, n *enlight.Node, prefix string, tensors bool) {
	fmt.Fprintf(w, "%s%s %q", prefix, n.Operator(), n.Name())
	if n.Category() != "" {
		fmt.Fprintf(w, " [%s]", n.Category())
	}
	fmt.Fprintln(w)

	for _, a := range n.Attributes() {
		fmt.Fprintf(w, "%s  %s = %v\n", prefix, a.Name(), a.Value())
	}
	for _, p := range n.Inputs() {
		dumpParameter(w, "<-", p, prefix, tensors)
	}
	for _, p := range n.Outputs() {
		dumpParameter(w, "->", p, prefix, tensors)
	}
	for _, c := range n.Chain() {
		dumpNode(w, c, prefix+"  + ", tensors)
	}
}

func dumpParameter(w io.Writer, arrow string, p *enlight.Parameter, prefix string, tensors bool) {
	if p == nil {
		fmt.Fprintf(w, "%s  %s ?\n", prefix, arrow)
		return
	}
	for _, a := range p.Arguments() {
		fmt.Fprintf(w, "%s  %s %s", prefix, arrow, p.Name())
		if a.Type() != nil {
			fmt.Fprintf(w, ": %s", a.Type())
		}
		if a.Value() != nil {
			fmt.Fprintf(w, " = %v", a.Value())
		}
		fmt.Fprintln(w)
		if q := a.Quantization(); q != "" {
			fmt.Fprintln(w, indent(q, prefix+"       "))
		}
		if t := a.Initializer(); t != nil && tensors {
			if state := t.State(); state != "" {
				fmt.Fprintf(w, "%s       %s\n", prefix, state)
			} else {
				fmt.Fprintln(w, indent(t.String(), prefix+"       "))
			}
		}
	}
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
