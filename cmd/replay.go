package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BrandonKowalski/navstate/pkg/navstate"
	"github.com/BrandonKowalski/navstate/pkg/navstate/router"
	"github.com/BrandonKowalski/navstate/pkg/navstate/titles"
	"github.com/spf13/cobra"
)

func newReplayCmd(opts *rootOptions) *cobra.Command {
	var showIgnored bool

	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Apply a navigation script and print every state change",
		Long:  "Reads one command per line (\"-\" reads stdin). Commands: push, pop, popto, root, replace, replaceall, sheet, fullscreen, dismiss, dismissall, back, tab, reset, resetall. Blank lines and lines starting with # are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := wireApp(opts)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			steps, err := ParseScript(in)
			if err != nil {
				return err
			}

			return replay(cmd.OutOrStdout(), a, steps, showIgnored)
		},
	}

	cmd.Flags().BoolVar(&showIgnored, "show-ignored", false, "print a line for commands that did not change anything")
	return cmd
}

func replay(out io.Writer, a *app, steps []Step, showIgnored bool) error {
	var writeErr error
	changed := false
	unsubscribe := a.host.Subscribe(func(c router.Change) {
		changed = true
		if writeErr == nil {
			_, writeErr = fmt.Fprintf(out, "%s\n", describe(a.host.Snapshot(), a.titles, c))
		}
	})
	defer unsubscribe()

	if _, err := fmt.Fprintf(out, "%s\n", describe(a.host.Snapshot(), a.titles, router.Change{})); err != nil {
		return err
	}

	for _, step := range steps {
		changed = false
		if err := step.Apply(a.host); err != nil {
			return err
		}
		if writeErr != nil {
			return writeErr
		}
		if !changed && showIgnored {
			if _, err := fmt.Fprintf(out, "line %d: %s ignored\n", step.Line, step.Verb); err != nil {
				return err
			}
		}
	}
	return nil
}

// describe renders a state as one line:
//
//	v3 push [home] Home > Details: Item 1 | modal: Settings (sheet)
func describe(s *navstate.State, catalog *titles.Catalog, c router.Change) string {
	var b strings.Builder

	op := "start"
	if c.Op != 0 {
		op = c.Op.String()
	}
	fmt.Fprintf(&b, "v%d %s", s.Version, op)
	if s.ActiveTabID != "" {
		fmt.Fprintf(&b, " [%s]", s.ActiveTabID)
	}

	names := make([]string, len(s.Entries))
	for i, r := range s.Entries {
		names[i] = catalog.Route(r)
	}
	b.WriteString(" ")
	b.WriteString(strings.Join(names, " > "))

	if modal, ok := s.CurrentModal(); ok {
		fmt.Fprintf(&b, " | modal: %s (%s)", catalog.Route(modal.Route), modal.Style)
		if len(s.Modals) > 1 {
			fmt.Fprintf(&b, " +%d below", len(s.Modals)-1)
		}
	}
	return b.String()
}
