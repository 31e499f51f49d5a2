package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/qrt-closure/qrtrecon/internal/aggregate"
	"github.com/qrt-closure/qrtrecon/internal/compare"
	"github.com/qrt-closure/qrtrecon/internal/config"
	"github.com/qrt-closure/qrtrecon/internal/ledger"
	"github.com/qrt-closure/qrtrecon/internal/period"
	"github.com/qrt-closure/qrtrecon/internal/platform"
)

func newVerifyCommand(configPath *string) *cobra.Command {
	var periodStr string
	var checkAuth bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the API diagnostic suite against the platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if periodStr == "" {
				periodStr = period.Current(time.Now()).String()
			}
			if _, err := period.Parse(periodStr); err != nil {
				return err
			}
			return runVerify(cmd.Context(), cfg, periodStr, checkAuth)
		},
	}

	cmd.Flags().StringVar(&periodStr, "period", "", "reporting period, e.g. 2025-Q1 (default: current quarter)")
	cmd.Flags().BoolVar(&checkAuth, "check-auth", false, "also assert the 401/403 auth taxonomy")

	return cmd
}

type checker struct {
	failures int
}

func (c *checker) report(name string, err error) {
	if err != nil {
		c.failures++
		fmt.Printf("FAIL %s: %v\n", name, err)
		return
	}
	fmt.Printf("PASS %s\n", name)
}

func runVerify(ctx context.Context, cfg *config.Config, periodStr string, checkAuth bool) error {
	client := newClient(cfg)
	var c checker

	// Authentication comes first; nothing else is meaningful without it.
	user, err := client.CurrentUser(ctx)
	c.report("authenticate", err)
	if err != nil {
		return fmt.Errorf("verification aborted: %w", err)
	}
	fmt.Printf("  user %s tenant %s\n", user.Email, user.TenantID)

	entries, err := client.ListJournalEntries(ctx)
	c.report("fetch journal entries", err)

	if err == nil {
		// Double-entry invariant across the full ledger.
		balance := ledger.CheckBalance(entries)
		var balErr error
		if !balance.Balanced() {
			balErr = fmt.Errorf("debits %s != credits %s, difference %s",
				balance.TotalDebit.StringFixed(2), balance.TotalCredit.StringFixed(2), balance.Difference().StringFixed(2))
		}
		c.report(fmt.Sprintf("ledger balanced (%d entries)", len(entries)), balErr)

		var entryErr error
		if verrs := ledger.ValidateEntries(entries); len(verrs) > 0 {
			entryErr = fmt.Errorf("%d invariant violations, first: %v", len(verrs), verrs[0])
		}
		c.report("journal entry invariants", entryErr)

		// Derived trial balance vs the platform's report.
		derived := aggregate.TrialBalance(aggregate.Balances(entries))
		reported, err := client.TrialBalance(ctx, periodStr)
		c.report("fetch trial balance report", err)
		if err == nil {
			tol, terr := matchTolerance(cfg)
			if terr != nil {
				return terr
			}
			var diffErr error
			if diffs := compare.TrialBalanceDiff(derived, reported, tol); len(diffs) > 0 {
				d := diffs[0]
				diffErr = fmt.Errorf("%d account discrepancies, first: %s %s derived %s reported %s",
					len(diffs), d.AccountCode, d.Field, d.Derived.StringFixed(2), d.Reported.StringFixed(2))
			}
			c.report("trial balance matches derived totals", diffErr)
		}
	}

	_, err = client.ProfitLoss(ctx, periodStr)
	c.report("profit & loss report", err)
	_, err = client.BalanceSheet(ctx, periodStr)
	c.report("balance sheet report", err)
	_, err = client.CashFlow(ctx, periodStr)
	c.report("cash flow report", err)

	if checkAuth {
		bogus := platform.NewClient(cfg.Platform.BaseURL, "invalid-token", platform.WithTimeout(cfg.Timeout()))
		_, err := bogus.CurrentUser(ctx)
		var authErr error
		if !platform.IsUnauthorized(err) {
			authErr = fmt.Errorf("expected 401 for invalid token, got %v", err)
		}
		c.report("invalid token rejected with 401", authErr)

		err = client.DeleteJournalEntry(ctx, "00000000-0000-0000-0000-000000000000")
		var nfErr error
		if !platform.IsNotFound(err) {
			nfErr = fmt.Errorf("expected 404 for unknown id, got %v", err)
		}
		c.report("unknown id rejected with 404", nfErr)
	}

	if c.failures > 0 {
		return fmt.Errorf("%d checks failed", c.failures)
	}
	fmt.Println("all checks passed")
	return nil
}
