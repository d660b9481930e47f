package commands

import (
	"context"
	"fmt"
	"strconv"

	"FinSentinel/internal/model"
	"FinSentinel/internal/notifier"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan TIER MONTHLY TARGET YEARS",
	Short: "Build a goal-based monthly allocation plan",
	Long: `Split a monthly contribution across a recurring deposit, a mutual fund SIP
and one direct-equity pick for the given risk tier (low, medium or high),
and project the corpus against the target.`,
	Example: "  finsentinel plan low 20000 1000000 5",
	Args:    cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := parsePlanArgs(args)
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		plan, err := a.planner.Plan(context.Background(), in.tier, in.monthly, in.target, in.years)
		if err != nil {
			return err
		}
		if _, err := a.recorder.RecordPlan(plan); err != nil {
			logrus.Errorf("record plan: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), notifier.FormatPlan(plan))
		return nil
	},
}

type planArgs struct {
	tier    model.RiskTier
	monthly decimal.Decimal
	target  decimal.Decimal
	years   int
}

func parsePlanArgs(args []string) (planArgs, error) {
	var in planArgs
	var err error
	if in.tier, err = model.ParseRiskTier(args[0]); err != nil {
		return in, err
	}
	if in.monthly, err = decimal.NewFromString(args[1]); err != nil {
		return in, fmt.Errorf("invalid monthly amount %q: %w", args[1], err)
	}
	if in.target, err = decimal.NewFromString(args[2]); err != nil {
		return in, fmt.Errorf("invalid target %q: %w", args[2], err)
	}
	if in.years, err = strconv.Atoi(args[3]); err != nil {
		return in, fmt.Errorf("invalid years %q: %w", args[3], err)
	}
	return in, nil
}
