package main

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// CLI represents the rkrgst command-line interface.
var CLI struct {
	Debug bool `help:"Enable debug logging." short:"d" env:"RKRGST_DEBUG"`

	Version    VersionCmd    `cmd:"" help:"Print version information."`
	Help       HelpCmd       `cmd:"" hidden:"" default:"1"`
	Match      MatchCmd      `cmd:"" help:"Tile a pattern against a text and print the resulting matches."`
	Batch      BatchCmd      `cmd:"" help:"Run multiple independent match jobs concurrently from a YAML file."`
	Generate   GenerateCmd   `cmd:"" help:"Generate a random pattern/text corpus."`
	Completion CompletionCmd `cmd:"" help:"Print shell completion setup instructions."`
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	printVersion()
	return nil
}

// HelpCmd prints the top-level help.
type HelpCmd struct{}

func (h *HelpCmd) Run(ctx *kong.Context) error {
	appCtx := *ctx
	if len(appCtx.Path) > 1 {
		appCtx.Path = appCtx.Path[:1]
	}
	return appCtx.PrintUsage(false)
}

// CompletionCmd prints shell completion setup instructions as comment lines:
// a header and the eval (bash, zsh) or source (fish) line for the shell. It
// emits no completion definitions.
type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh,fish" help:"Shell type (bash, zsh, fish)."`
}

// rcFileByShell names the shell startup file each completion snippet below
// tells the user to add its eval line to; fish has none, it sources directly.
var rcFileByShell = map[string]string{
	"bash": "~/.bashrc",
	"zsh":  "~/.zshrc",
}

func (c *CompletionCmd) Run() error {
	fmt.Printf("# %s completion for rkrgst\n", c.Shell)
	if rc, ok := rcFileByShell[c.Shell]; ok {
		fmt.Printf("# Add to %s:\n", rc)
		fmt.Printf("# eval \"$(rkrgst completion %s)\"\n", c.Shell)
		return nil
	}
	fmt.Println("# Run: rkrgst completion fish | source")
	return nil
}
