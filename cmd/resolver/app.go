package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/calendar-resolver/internal/application"
	"github.com/example/calendar-resolver/internal/ical"
	"github.com/example/calendar-resolver/internal/seed"
)

const timeLayout = seed.TimeLayout

// App holds the CLI application state.
type App struct {
	service *application.EventService
	root    *cobra.Command
}

func newApp(service *application.EventService) *App {
	a := &App{service: service}

	a.root = &cobra.Command{
		Use:   "resolver",
		Short: "Calendar conflict detection and rule-based rescheduling",
		Long: `Resolver stores calendar events, detects pairwise time conflicts, and
proposes non-conflicting windows using a greedy free-slot search over the
working-hours envelope.`,
		SilenceUsage: true,
	}

	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.conflictsCmd())
	a.root.AddCommand(a.suggestCmd())
	a.root.AddCommand(a.applyCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.clearCmd())

	return a
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

func (a *App) addCmd() *cobra.Command {
	var (
		title string
		start string
		end   string
		place string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			startAt, err := parseTimestamp(start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			endAt, err := parseTimestamp(end)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}

			event, err := a.service.CreateEvent(cmd.Context(), application.EventInput{
				Title: title,
				Start: startAt,
				End:   endAt,
				Place: place,
			})
			if err != nil {
				return err
			}

			fmt.Printf("added %s\n", formatEvent(event))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "event title (required)")
	cmd.Flags().StringVar(&start, "start", "", "start time, e.g. 2024-03-14T09:00 (required)")
	cmd.Flags().StringVar(&end, "end", "", "end time (required)")
	cmd.Flags().StringVar(&place, "place", "", "optional place")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func (a *App) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List events ordered by start time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			events, err := a.service.ListEvents(cmd.Context())
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Println("no events")
				return nil
			}
			for _, event := range events {
				fmt.Println(formatEvent(event))
			}
			return nil
		},
	}
}

func (a *App) conflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "Detect overlapping event pairs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conflicts, err := a.service.DetectConflicts(cmd.Context())
			if err != nil {
				return err
			}
			if len(conflicts) == 0 {
				fmt.Println("no conflicts")
				return nil
			}
			for _, pair := range conflicts {
				fmt.Printf("conflict: %s <-> %s\n", formatEvent(pair.A), formatEvent(pair.B))
			}
			return nil
		},
	}
}

func (a *App) suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Propose non-conflicting windows for conflicting events",
		Long: `Propose one relocation per conflicting pair. Each suggestion is computed
against the current snapshot; when the lookahead window is fully booked the
moved event is placed immediately after its anchor, which may itself still
conflict.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			suggestions, err := a.service.BuildSuggestions(cmd.Context())
			if err != nil {
				return err
			}
			if len(suggestions) == 0 {
				fmt.Println("no suggestions")
				return nil
			}
			for _, s := range suggestions {
				fmt.Printf("move %s -> [%s, %s) (%s)\n",
					formatEvent(s.MoveEvent),
					s.NewStart.Format(timeLayout),
					s.NewEnd.Format(timeLayout),
					s.Reason,
				)
				if s.Explanation != "" {
					fmt.Printf("  %s\n", s.Explanation)
				}
				fmt.Printf("  apply with: resolver apply %s --start %s --end %s\n",
					s.MoveEvent.ID,
					s.NewStart.Format(timeLayout),
					s.NewEnd.Format(timeLayout),
				)
			}
			return nil
		},
	}
}

func (a *App) applyCmd() *cobra.Command {
	var (
		start string
		end   string
	)

	cmd := &cobra.Command{
		Use:   "apply <event-id>",
		Short: "Apply an accepted suggestion to the stored event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startAt, err := parseTimestamp(start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			endAt, err := parseTimestamp(end)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}

			err = a.service.ApplySuggestion(cmd.Context(), application.ApplySuggestionParams{
				EventID:  args[0],
				NewStart: startAt,
				NewEnd:   endAt,
			})
			if err != nil {
				return err
			}

			fmt.Printf("applied: %s moved to [%s, %s)\n", args[0], start, end)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "new start time (required)")
	cmd.Flags().StringVar(&end, "end", "", "new end time (required)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func (a *App) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Bulk load events from a YAML seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := seed.ParseFile(args[0])
			if err != nil {
				return err
			}

			for _, input := range inputs {
				if _, err := a.service.CreateEvent(cmd.Context(), input); err != nil {
					return fmt.Errorf("importing %q: %w", input.Title, err)
				}
			}

			fmt.Printf("imported %d events\n", len(inputs))
			return nil
		},
	}
}

func (a *App) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all events as an iCalendar document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			events, err := a.service.ListEvents(cmd.Context())
			if err != nil {
				return err
			}

			serialized, err := ical.Export(events)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Print(serialized)
				return nil
			}
			if err := os.WriteFile(output, []byte(serialized), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Printf("exported %d events to %s\n", len(events), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func (a *App) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.service.ClearEvents(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("cleared")
			return nil
		},
	}
}

func parseTimestamp(value string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected %s", timeLayout)
	}
	return t, nil
}

func formatEvent(event application.Event) string {
	s := fmt.Sprintf("%s [%s, %s) %q", event.ID, event.Start.Format(timeLayout), event.End.Format(timeLayout), event.Title)
	if event.Place != "" {
		s += " @ " + event.Place
	}
	return s
}
