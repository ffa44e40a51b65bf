// Package renderer turns ledger aggregates and market data into
// markdown reports. Views are precomputed into plain structs so the
// templates only ever format strings.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"math"
	"strings"
	"text/template"

	"github.com/grana-cli/grana"
	"github.com/grana-cli/grana/coingecko"
)

//go:embed templates/*.md
var templates embed.FS

// DashboardView is the data behind the dashboard report.
type DashboardView struct {
	Balance string
	Income  string
	Expense string
	Days    []DayView
}

// DayView is one row of the daily income/expense breakdown.
type DayView struct {
	Date    string
	Income  string
	Expense string
}

// TransactionsView is the data behind the transaction list report.
type TransactionsView struct {
	Transactions []TransactionView
}

// TransactionView is one row of the transaction list.
type TransactionView struct {
	ID          string
	Date        string
	Kind        string
	Description string
	Category    string
	Amount      string
}

// CoinsView is the data behind the crypto watchlist report.
type CoinsView struct {
	Coins []CoinView
}

// CoinView is one row of the crypto watchlist.
type CoinView struct {
	Name   string
	Price  string
	Change string
}

// NewDashboardView precomputes the dashboard from the ledger totals and
// daily series.
func NewDashboardView(s grana.Summary, series grana.Series) *DashboardView {
	v := &DashboardView{
		Balance: s.Balance.Display(),
		Income:  s.Income.Display(),
		Expense: s.Expense.Display(),
	}
	for i, date := range series.Dates {
		v.Days = append(v.Days, DayView{
			Date:    date,
			Income:  series.Income[i].Display(),
			Expense: series.Expense[i].Display(),
		})
	}
	return v
}

// NewTransactionsView precomputes the transaction list, in the given
// order (newest first when it comes from a ledger snapshot).
func NewTransactionsView(transactions []grana.Transaction) *TransactionsView {
	v := &TransactionsView{}
	for _, t := range transactions {
		kind := "Receita"
		if t.Kind == grana.Expense {
			kind = "Despesa"
		}
		v.Transactions = append(v.Transactions, TransactionView{
			ID:          t.ID,
			Date:        t.Date,
			Kind:        kind,
			Description: t.Description,
			Category:    t.Category,
			Amount:      t.Amount.Display(),
		})
	}
	return v
}

// NewCoinsView precomputes the crypto watchlist in USD.
func NewCoinsView(coins []coingecko.Coin) *CoinsView {
	v := &CoinsView{}
	for _, c := range coins {
		change := "-"
		if !math.IsNaN(c.Change24h) {
			change = fmt.Sprintf("%+.2f%%", c.Change24h)
		}
		v.Coins = append(v.Coins, CoinView{
			Name:   c.Name,
			Price:  fmt.Sprintf("US$%.2f", c.CurrentPrice),
			Change: change,
		})
	}
	return v
}

// RenderDashboard renders the dashboard report to a markdown string.
func RenderDashboard(v *DashboardView) string {
	partials := map[string]string{
		"dashboard_summary": "templates/dashboard_summary.md",
		"dashboard_chart":   "templates/dashboard_chart.md",
	}
	return renderTemplate("dashboard", "templates/dashboard.md", partials, v)
}

// RenderTransactions renders the transaction list to a markdown string.
func RenderTransactions(v *TransactionsView) string {
	return renderTemplate("transactions", "templates/transactions.md", nil, v)
}

// RenderCoins renders the crypto watchlist to a markdown string.
func RenderCoins(v *CoinsView) string {
	return renderTemplate("coins", "templates/coins.md", nil, v)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
