package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iho/budgetledger/internal/adapter/chart"
	"github.com/iho/budgetledger/internal/adapter/report"
	"github.com/iho/budgetledger/internal/domain"
	"github.com/iho/budgetledger/internal/usecase"
)

func addCmd(a *app) *cobra.Command {
	var entryType, category, amount string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income or expense entry",
		Example: `  budget add --type income --category salary --amount 1000
  budget add --type expense --category food --amount 150.50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.ledger.AddEntry(cmd.Context(), usecase.AddEntryInput{
				Type:     domain.EntryType(entryType),
				Category: category,
				Amount:   amount,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.MsgEntryAdded)
			return nil
		},
	}

	cmd.Flags().StringVarP(&entryType, "type", "t", "", "Entry type: income or expense")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount")

	return cmd
}

func summaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show total income, total expenses and balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.ledger.Summarize(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.Summary(s))
			return nil
		},
	}
}

func categoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show expenses grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			totals, err := a.ledger.ExpensesByCategory(cmd.Context())
			if err != nil && !errors.Is(err, domain.ErrNoExpenses) {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.ExpensesByCategory(totals))
			return nil
		},
	}
}

func chartCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Write a pie chart of expenses by category as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			totals, err := a.ledger.ExpensesByCategory(cmd.Context())
			if errors.Is(err, domain.ErrNoExpenses) {
				fmt.Fprintln(cmd.OutOrStdout(), report.MsgNoExpenses)
				return nil
			}
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := chart.ExpensesPie(&buf, totals); err != nil {
				return err
			}

			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Chart written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "expenses.png", "Output PNG file")

	return cmd
}

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that every row of the ledger file is readable and counted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.ledger.CheckConsistency(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d entries (%d income, %d expense)\n", r.Entries, r.Income, r.Expenses)
			if len(r.NonPositiveRows) > 0 {
				fmt.Fprintf(out, "Rows with zero or negative amount: %v\n", r.NonPositiveRows)
			}
			if !r.Consistent() {
				fmt.Fprintf(out, "Rows with unknown type (ignored by reports): %v\n", r.UnknownTypeRows)
				return errors.New("ledger is inconsistent")
			}

			fmt.Fprintln(out, "Ledger OK")
			return nil
		},
	}
}
