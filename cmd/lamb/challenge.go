// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"code.hybscloud.com/lamb/challenge"
	"code.hybscloud.com/lamb/internal/progress"
)

func (a *app) challengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "challenge",
		Aliases: []string{"ch"},
		Short:   "Learn the encodings by writing them in Go",
		Long: `Each challenge asks for one definition, written as Go closures over any.
Submissions are interpreted in a sandbox with a small prelude of
definitions and graded against the compiled algebra.`,
	}
	cmd.AddCommand(
		a.challengeListCmd(),
		a.challengeShowCmd(),
		a.challengeRunCmd(),
		a.challengeWatchCmd(),
		a.challengeVerifyCmd(),
		a.challengeProgressCmd(),
	)
	return cmd
}

func (a *app) openStore() (*progress.Store, error) {
	return progress.Open(a.cfg.Challenge.ProgressDB)
}

func (a *app) runner(rec challenge.Recorder) *challenge.Runner {
	opts := []challenge.Option{
		challenge.WithTimeout(a.cfg.Timeout()),
		challenge.WithParallelism(a.cfg.Challenge.Parallelism),
		challenge.WithAllowedImports(a.cfg.Challenge.AllowedImports...),
		challenge.WithLogger(a.logger),
	}
	if rec != nil {
		opts = append(opts, challenge.WithRecorder(rec))
	}
	return challenge.NewRunner(opts...)
}

func lookup(id string) (*challenge.Challenge, error) {
	c, ok := challenge.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown challenge %q", id)
	}
	return c, nil
}

func (a *app) challengeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List challenges by chapter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			for _, ch := range challenge.Chapters() {
				cs := challenge.InChapter(ch.Num)
				if len(cs) == 0 {
					continue
				}
				fmt.Fprintln(w, a.styles.Title.Render(fmt.Sprintf("Chapter %d: %s", ch.Num, ch.Title)))
				for _, c := range cs {
					done, err := store.IsCompleted(ctx, c.ID)
					if err != nil {
						return err
					}
					mark := a.styles.Muted.Render("○")
					if done {
						mark = a.styles.mark(true)
					}
					fmt.Fprintf(w, "  %s %-14s %s %s\n", mark, c.ID, c.Title, a.styles.Muted.Render("("+string(c.Difficulty)+")"))
				}
			}
			return nil
		},
	}
}

func (a *app) challengeShowCmd() *cobra.Command {
	var hint, solution, raw bool
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookup(args[0])
			if err != nil {
				return err
			}
			md := c.Markdown()
			if hint {
				md += "\n" + c.HintMarkdown()
			}
			if solution {
				md += "\n" + c.SolutionMarkdown()
			}
			if !raw {
				md = renderMarkdown(md)
			}
			fmt.Fprint(cmd.OutOrStdout(), md)

			prev, next := challenge.Neighbors(c.ID)
			if prev != nil || next != nil {
				var nav string
				if prev != nil {
					nav += "← " + prev.ID + "  "
				}
				if next != nil {
					nav += "next: " + next.ID + " →"
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.styles.Muted.Render(nav))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hint, "hint", false, "include the hint")
	cmd.Flags().BoolVar(&solution, "solution", false, "include the reference solution")
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	return cmd
}

func (a *app) challengeRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run ID FILE",
		Short: "Grade a submission file",
		Long: `Grade FILE against challenge ID. A fully passing run is recorded in the
progress database. The command fails when any case fails.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookup(args[0])
			if err != nil {
				return err
			}
			src, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read submission: %w", err)
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			rep, err := a.runner(store).Run(cmd.Context(), c, string(src))
			if err != nil {
				return err
			}
			a.printReport(cmd.OutOrStdout(), c, rep)
			if !rep.Passed {
				return fmt.Errorf("%s: %d of %d cases failed", c.ID, len(rep.Results)-rep.PassedCount(), len(rep.Results))
			}
			return nil
		},
	}
}

func (a *app) challengeWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch ID FILE",
		Short: "Re-grade a submission every time it is saved",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookup(args[0])
			if err != nil {
				return err
			}
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, a.styles.Muted.Render("watching "+args[1]+" (ctrl-c to stop)"))
			return a.runner(store).Watch(ctx, c, args[1], func(rep *challenge.Report, err error) {
				if err != nil {
					fmt.Fprintf(w, "%s %v\n", a.styles.mark(false), err)
					return
				}
				a.printReport(w, c, rep)
			})
		},
	}
}

func (a *app) challengeVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [ID...]",
		Short: "Check that reference solutions pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			cs := challenge.All()
			if len(args) > 0 {
				cs = cs[:0]
				for _, id := range args {
					c, err := lookup(id)
					if err != nil {
						return err
					}
					cs = append(cs, c)
				}
			}

			reports, err := a.runner(nil).Verify(cmd.Context(), cs)
			w := cmd.OutOrStdout()
			for i, rep := range reports {
				if rep == nil {
					continue
				}
				fmt.Fprintf(w, "%s %-14s %d/%d %s\n", a.styles.mark(rep.Passed), cs[i].ID,
					rep.PassedCount(), len(rep.Results), a.styles.Muted.Render(rep.Elapsed.String()))
			}
			if err != nil {
				a.logger.Error("verification failed", zap.Error(err))
				return err
			}
			return nil
		},
	}
}

func (a *app) challengeProgressCmd() *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show solved challenges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			if reset {
				if err := store.Reset(ctx); err != nil {
					return err
				}
				fmt.Fprintln(w, "progress reset")
				return nil
			}

			done, err := store.Completed(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, a.styles.Title.Render(fmt.Sprintf("%d of %d solved", len(done), len(challenge.All()))))
			for _, comp := range done {
				fmt.Fprintf(w, "  %s %-14s %s\n", a.styles.mark(true), comp.ChallengeID,
					a.styles.Muted.Render(comp.CompletedAt.Format("2006-01-02 15:04")))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "forget every completion")
	return cmd
}

func (a *app) printReport(w io.Writer, c *challenge.Challenge, rep *challenge.Report) {
	for _, res := range rep.Results {
		fmt.Fprintf(w, "%s %s\n", a.styles.mark(res.Passed), res.Description)
		if res.Passed {
			continue
		}
		if res.Err != nil {
			fmt.Fprintf(w, "    %s\n", a.styles.Fail.Render(res.Err.Error()))
		} else {
			fmt.Fprintf(w, "    want %v, got %v\n", res.Want, res.Got)
		}
		if res.Output != "" {
			fmt.Fprintf(w, "    output: %s\n", res.Output)
		}
	}
	summary := fmt.Sprintf("%s: %d/%d passed", c.ID, rep.PassedCount(), len(rep.Results))
	if rep.Passed {
		fmt.Fprintln(w, a.styles.Pass.Render(summary))
		if _, next := challenge.Neighbors(c.ID); next != nil {
			fmt.Fprintln(w, a.styles.Muted.Render("next: lamb challenge show "+next.ID))
		}
		return
	}
	fmt.Fprintln(w, a.styles.Fail.Render(summary))
}
