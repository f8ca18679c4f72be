package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"docugroup/internal/config"
	"docugroup/internal/ui"
	"docugroup/internal/web"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "render":
		renderCmd(os.Args[2:])
	case "labels":
		labelsCmd(os.Stdout)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println(`dgctl - DocuGroup page tools

Usage:
  dgctl render [-o index.html] [-config config.yaml] [-force]
  dgctl labels

Examples:
  dgctl render -o public/index.html
  dgctl render -force | less
  dgctl labels`)
}

func renderCmd(args []string) {
	isTTY := func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	if err := runRender(args, os.Stdout, isTTY); err != nil {
		log.Fatal(err)
	}
}

var errTerminal = errors.New("refusing to write HTML to a terminal; use -o <file> or -force")

// runRender writes the document to -o, or to stdout when stdout is not a
// terminal (or -force is set).
func runRender(args []string, stdout io.Writer, isTTY func() bool) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		out     = fs.String("o", "", "write the document to this file instead of stdout")
		cfgPath = fs.String("config", "config.yaml", "path to config file")
		force   = fs.Bool("force", false, "write HTML to a terminal")
	)
	if err := fs.Parse(reorderArgs(args)); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		if cfg == nil {
			return fmt.Errorf("config: %w", err)
		}
		log.Printf("config: %v; using defaults", err)
	}

	rend, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	doc, err := rend.Document(web.Site{Title: cfg.Site.Title, Lang: cfg.Site.Lang})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if *out != "" {
		if err := os.WriteFile(*out, doc, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", *out, err)
		}
		log.Printf("wrote %s (%d bytes)", *out, len(doc))
		return nil
	}

	if !*force && isTTY() {
		return errTerminal
	}
	if _, err := stdout.Write(doc); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func labelsCmd(w io.Writer) {
	groups := []struct {
		name   string
		labels []string
	}{
		{"navbar", ui.NavItems()},
		{"navbar actions", ui.NavActions()},
		{"footer", ui.FooterLinks()},
	}
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s:\n", g.name)
		for _, l := range g.labels {
			fmt.Fprintf(w, "  %s\n", l)
		}
	}
	fmt.Fprintf(w, "\nhome:\n  %s\n\ncopyright:\n  %s\n", ui.HomeHeadline, ui.Copyright)
}

// reorderArgs moves flags ahead of positional arguments so flag parsing
// does not stop at the first positional one.
func reorderArgs(args []string) []string {
	var flags []string
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) > 0 && arg != "-" && arg != "--" && arg[0] == '-' {
			flags = append(flags, arg)
			if !strings.Contains(arg, "=") && !isBoolFlag(arg) && i+1 < len(args) && (len(args[i+1]) == 0 || args[i+1][0] != '-') {
				flags = append(flags, args[i+1])
				i++
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return append(flags, positional...)
}

func isBoolFlag(arg string) bool {
	name := strings.TrimLeft(arg, "-")
	return name == "force"
}
