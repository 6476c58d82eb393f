// grove-pick is a git fuzzy finder: it lists commits or files from a git
// source and applies actions (open, diff, stage, reset, commit) to the
// selection.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pick/cli"
	"github.com/mattsolo1/grove-pick/editor"
	"github.com/mattsolo1/grove-pick/logging"
	"github.com/mattsolo1/grove-pick/source"
	"github.com/mattsolo1/grove-pick/tui/picker"
	"github.com/mattsolo1/grove-pick/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"grove-pick [source[:modifier][::filter]]",
		"Fuzzy-pick git commits and files, then act on them",
	)
	cmd.Long = `grove-pick lists candidates from a git source and lets you fuzzy-filter,
mark and act on them.

Sources:
  gitlog      commits on the current branch (gitlog:all for every branch)
  gitstatus   files from git status (the default)
  gitchanged  files changed against a base ref

A ::filter suffix narrows gitlog to commits whose message matches, e.g.
gitlog::fix. Without --list or --json an interactive picker starts.`
	cmd.Example = `  # Pick from the working tree status
  grove-pick

  # Commits from all branches mentioning "auth"
  grove-pick gitlog:all::auth

  # Print candidates instead of picking
  grove-pick gitstatus --list
  grove-pick gitlog --json`

	cmd.Args = cobra.MaximumNArgs(1)
	cmd.Flags().Bool("list", false, "Print candidate lines and exit")

	info := version.GetInfo()
	cmd.Version = info.Version
	cli.SetVersionTemplate(cmd, info)
	cmd.AddCommand(cli.NewVersionCommand("grove-pick", info))

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cli.GetOptions(cmd)
		handler := cli.NewErrorHandler(opts.Verbose)

		raw := "gitstatus"
		if len(args) > 0 {
			raw = args[0]
		}

		cfg, err := cli.LoadConfig(opts)
		if err != nil {
			return handler.Handle(err)
		}
		logging.SetConfig(cfg.Logging)
		if opts.Verbose {
			os.Setenv("GROVE_PICK_LOG_LEVEL", "debug")
		}

		spec, err := source.ParseSpec(raw)
		if err != nil {
			return handler.Handle(err)
		}

		cwd, err := os.Getwd()
		if err != nil {
			return handler.Handle(err)
		}

		ctx := cmd.Context()
		env, err := source.NewEnv(ctx, cwd, cfg, editor.New(cfg.Editor))
		if err != nil {
			return handler.Handle(err)
		}

		src, err := source.NewRegistry().Open(env, spec)
		if err != nil {
			return handler.Handle(err)
		}

		list, _ := cmd.Flags().GetBool("list")
		if list || opts.JSONOutput {
			return handler.Handle(printCandidates(ctx, src, opts.JSONOutput))
		}

		actions := source.NewActions()
		outcome, err := picker.Run(ctx, env, src, actions)
		if err != nil {
			return handler.Handle(err)
		}
		if outcome == nil {
			return nil
		}

		// The open action runs after the UI has released the terminal, so a
		// subprocess editor can take over
		_, err = actions.Invoke(ctx, env, outcome.Action, source.ActionRequest{
			Candidates: outcome.Candidates,
		})
		return handler.Handle(err)
	}

	return cmd
}

// printCandidates gathers once and writes candidates to stdout, one line per
// candidate or as a JSON array.
func printCandidates(ctx context.Context, src source.Source, asJSON bool) error {
	candidates, err := src.Gather(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)
	}

	for _, c := range candidates {
		fmt.Println(c.Display)
	}
	return nil
}
