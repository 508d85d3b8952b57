package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"looking-glass/internal/journal"
	"looking-glass/internal/journal/delivery/style"
)

func (a *app) listCmd() *cobra.Command {
	var tag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List log entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.setup(ctx, false); err != nil {
				return err
			}

			snap, err := a.uc.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load logs: %w", err)
			}

			entries := journal.FilterByTag(snap.Entries, tag)
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No logs found.")
				return nil
			}
			for _, e := range entries {
				printSummary(out, e)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "only show entries carrying this tag")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.setup(ctx, false); err != nil {
				return err
			}

			e, err := a.uc.Detail(ctx, args[0])
			if errors.Is(err, journal.ErrEntryNotFound) {
				return fmt.Errorf("log not found: %s", args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to get log: %w", err)
			}
			printEntry(cmd.OutOrStdout(), e)
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	var raw journal.RawEntryInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a log entry",
		Long: `Create a log entry. --date accepts YYYY-MM-DD or expressions such as
"yesterday", "3 days ago" or "last friday"; it defaults to today.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.setup(ctx, false); err != nil {
				return err
			}

			res, err := a.uc.Create(ctx, journal.CreateInput{Raw: raw})
			if err != nil {
				return fmt.Errorf("failed to create log: %w", err)
			}

			out := cmd.OutOrStdout()
			switch {
			case res.Outcome.Kind == journal.CreatedWithBody:
				fmt.Fprintln(out, style.Success.Render("Log created."))
				printEntry(out, res.Outcome.Entry)
			case res.Resynced:
				fmt.Fprintf(out, "%s %d logs on the server.\n", style.Success.Render("Log created."), len(res.Snapshot.Entries))
			default:
				fmt.Fprintln(out, style.Success.Render("Log created."), style.Muted.Render("Run list to see it."))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&raw.Title, "title", "", "entry title (required)")
	cmd.Flags().StringVar(&raw.Entries, "entries", "", "entry body, lines starting with - become bullets (required)")
	cmd.Flags().StringVar(&raw.Mood, "mood", "", "mood label (default \"neutral\")")
	cmd.Flags().StringVar(&raw.Tags, "tags", "", "comma separated tags")
	cmd.Flags().StringVar(&raw.Date, "date", "", "log date (default today)")
	return cmd
}

func (a *app) editCmd() *cobra.Command {
	var title, entries, mood, tags string
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Revise a log entry; flags left unset keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.setup(ctx, false); err != nil {
				return err
			}

			snap, err := a.uc.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load logs: %w", err)
			}
			current, ok := snap.Find(args[0])
			if !ok {
				return fmt.Errorf("log not found: %s", args[0])
			}

			raw := journal.RawUpdateInput{
				Title:   current.Title,
				Entries: current.Entries,
				Mood:    current.Mood,
				Tags:    journal.JoinTags(current.Tags),
			}
			flags := cmd.Flags()
			if flags.Changed("title") {
				raw.Title = title
			}
			if flags.Changed("entries") {
				raw.Entries = entries
			}
			if flags.Changed("mood") {
				raw.Mood = mood
			}
			if flags.Changed("tags") {
				raw.Tags = tags
			}

			res, err := a.uc.Update(ctx, journal.UpdateInput{ID: current.ID, Raw: raw})
			if err != nil {
				return fmt.Errorf("failed to update log: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.Success.Render("Log updated."))
			printEntry(out, res.Entry)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&entries, "entries", "", "new body")
	cmd.Flags().StringVar(&mood, "mood", "", "new mood")
	cmd.Flags().StringVar(&tags, "tags", "", "new comma separated tags, empty clears them")
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.setup(ctx, false); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var confirmer journal.Confirmer = promptConfirmer{in: cmd.InOrStdin(), out: out}
			if yes {
				confirmer = journal.AlwaysConfirm
			}

			err := a.uc.Delete(ctx, journal.DeleteInput{ID: args[0], Confirmer: confirmer})
			if errors.Is(err, journal.ErrCancelled) {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to delete log: %w", err)
			}
			fmt.Fprintf(out, "Log %s deleted.\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func (a *app) tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags by how many entries use them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.setup(ctx, false); err != nil {
				return err
			}

			snap, err := a.uc.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load logs: %w", err)
			}
			tags := journal.CollectTags(snap.Entries)
			if len(tags) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tags found.")
				return nil
			}
			printTags(cmd.OutOrStdout(), tags)
			return nil
		},
	}
}

func (a *app) pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the log API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.setup(ctx, false); err != nil {
				return err
			}

			info, err := a.uc.Info(ctx)
			if err != nil {
				return fmt.Errorf("log API unreachable: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s at %s: %s\n", info.Name, info.Version, info.BaseURL, style.Success.Render(info.Status))
			return nil
		},
	}
}

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit logs interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if a.opts.RunTUI == nil {
				return errors.New("interactive mode is not available")
			}
			if err := a.setup(ctx, true); err != nil {
				return err
			}
			return a.opts.RunTUI(ctx, a.uc, a.l)
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of logbook",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.opts.Version)
		},
	}
}
