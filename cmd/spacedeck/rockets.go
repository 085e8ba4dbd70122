package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/views"
)

func newRocketsCmd(app *AppContext) *cobra.Command {
	opts := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "rockets",
		Short: "List the rockets available for comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRockets(cmd, app, opts)
		},
	}
	opts.bind(cmd)

	return cmd
}

func runRockets(cmd *cobra.Command, app *AppContext, opts *outputOptions) error {
	s, err := app.Session(cmd, "command.rockets", false)
	if err != nil {
		return err
	}
	defer s.close()

	rockets, err := fetchOnce(s, "rockets", views.RocketsFailure, "list rockets", s.client.Rockets)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return renderJSON(cmd.OutOrStdout(), rockets)
	}

	rows := make([][]string, len(rockets))
	for i, r := range rockets {
		rows[i] = []string{r.Name, valueOrFallback(r.FirstFlight, "N/A"), valueOrFallback(r.Company, "N/A"), fmt.Sprintf("%d%%", r.SuccessRatePct)}
	}
	return renderTable(cmd.OutOrStdout(), []string{"NAME", "FIRST FLIGHT", "COMPANY", "SUCCESS RATE"}, rows)
}

func newCompareCmd(app *AppContext) *cobra.Command {
	opts := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "compare <rocket1> <rocket2>",
		Short: "Generate a comparison of two rockets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, app, opts, args[0], args[1])
		},
	}
	opts.bind(cmd)

	return cmd
}

func runCompare(cmd *cobra.Command, app *AppContext, opts *outputOptions, rocket1, rocket2 string) error {
	rocket1, rocket2 = strings.TrimSpace(rocket1), strings.TrimSpace(rocket2)
	if rocket1 == "" || rocket2 == "" {
		return newCommandError("compare rockets", "validating arguments", fmt.Errorf("two rocket names are required"), "Run 'spacedeck rockets' to list available names.")
	}
	if strings.EqualFold(rocket1, rocket2) {
		return newCommandError("compare rockets", "validating arguments", fmt.Errorf("cannot compare %q with itself", rocket1), "Pick two different rockets.")
	}

	s, err := app.Session(cmd, "command.compare", false)
	if err != nil {
		return err
	}
	defer s.close()

	cmp, err := fetchOnce(s, "compare", views.CompareFailure, "compare rockets", func(ctx context.Context) (*api.Comparison, error) {
		return s.client.CompareRockets(ctx, rocket1, rocket2)
	})
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return renderJSON(cmd.OutOrStdout(), cmp)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s vs %s\n\n%s\n", rocket1, rocket2, cmp.Text)
	return nil
}
