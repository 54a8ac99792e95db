// sked is an interactive skill tree editor for the terminal.
//
// Usage:
//
//	sked                      start with an empty tree
//	sked tree.sktree          start with a file loaded
//	sked -validate t.sktree   check a file and exit
package main

import (
	"flag"
	"fmt"
	"os"

	"sked/config"
	"sked/editor"
	"sked/persist"
	"sked/terminal"
	"sked/validation"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "settings file")
	validate := flag.Bool("validate", false, "validate the given file and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sked: %v\n", err)
		os.Exit(1)
	}

	if *validate {
		if flag.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "sked: -validate needs exactly one file")
			os.Exit(2)
		}
		os.Exit(validateFile(flag.Arg(0)))
	}

	ed := editor.New(cfg.TreeDir)
	ed.SetGridSnap(cfg.SnapToGrid)
	ed.SetGridSize(cfg.GridSize)

	if flag.NArg() > 0 {
		if err := openInto(ed, flag.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "sked: %v\n", err)
			os.Exit(1)
		}
	}

	if err := terminal.Run(ed, cfg.TreeDir); err != nil {
		fmt.Fprintf(os.Stderr, "sked: %v\n", err)
		os.Exit(1)
	}
}

// validateFile prints every issue in the file and returns the exit code:
// 0 clean or warnings only, 1 errors found.
func validateFile(path string) int {
	data, err := persist.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sked: %v\n", err)
		return 1
	}

	issues := validation.NewValidator().Validate(data)
	for _, issue := range issues {
		fmt.Println(issue)
	}
	if validation.HasErrors(issues) {
		return 1
	}
	fmt.Printf("%s: %d nodes, %d connections\n", path, len(data.Nodes), len(data.Connections))
	return 0
}

// openInto loads a file into a fresh editor session at startup.
func openInto(ed *editor.Editor, path string) error {
	data, err := persist.LoadFile(path)
	if err != nil {
		return err
	}
	ed.Open(data, path)
	return nil
}
