package renderer

import (
	"math"
	"strings"
	"testing"

	"github.com/grana-cli/grana"
	"github.com/grana-cli/grana/coingecko"
)

func TestRenderDashboard(t *testing.T) {
	v := NewDashboardView(
		grana.Summary{Income: grana.A(110), Expense: grana.A(40), Balance: grana.A(70)},
		grana.Series{
			Dates:   []string{"01/01/2024", "05/01/2024"},
			Income:  []grana.Amount{grana.A(50), grana.A(60)},
			Expense: []grana.Amount{grana.A(0), grana.A(40)},
		},
	)
	got := RenderDashboard(v)

	for _, want := range []string{
		"Saldo Atual", "Receita", "Despesa",
		"R$70,00", "R$110,00", "R$40,00",
		"01/01/2024", "05/01/2024",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("dashboard is missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("dashboard rendered an error:\n%s", got)
	}
}

func TestRenderDashboardEmpty(t *testing.T) {
	got := RenderDashboard(NewDashboardView(grana.Summary{}, grana.Series{}))
	if !strings.Contains(got, "Nenhum dado para exibir no gráfico.") {
		t.Errorf("empty dashboard is missing the empty state:\n%s", got)
	}
}

func TestRenderTransactions(t *testing.T) {
	v := NewTransactionsView([]grana.Transaction{
		{
			ID: "b", Kind: grana.Expense, Description: "mercado",
			Amount: grana.A(59.90), Date: "05/01/2024", Category: "Alimentação",
		},
		{
			ID: "a", Kind: grana.Income, Description: "salário",
			Amount: grana.A(3500), Date: "01/01/2024", Category: "Outros",
		},
	})
	got := RenderTransactions(v)

	for _, want := range []string{"Despesa", "Receita", "mercado", "salário", "R$59,90", "Alimentação"} {
		if !strings.Contains(got, want) {
			t.Errorf("transaction list is missing %q:\n%s", want, got)
		}
	}
	// Newest first: the expense row comes before the income row.
	if strings.Index(got, "mercado") > strings.Index(got, "salário") {
		t.Errorf("transaction order is wrong:\n%s", got)
	}
}

func TestRenderTransactionsEmpty(t *testing.T) {
	got := RenderTransactions(NewTransactionsView(nil))
	if !strings.Contains(got, "Nenhuma transação registrada.") {
		t.Errorf("empty list is missing the empty state:\n%s", got)
	}
}

func TestRenderCoins(t *testing.T) {
	v := NewCoinsView([]coingecko.Coin{
		{Name: "Bitcoin", CurrentPrice: 64000.5, Change24h: -1.2},
		{Name: "Ethereum", CurrentPrice: 3100.25, Change24h: math.NaN()},
	})
	got := RenderCoins(v)

	for _, want := range []string{"Preço", "Variação 24h", "Bitcoin", "US$64000.50", "-1.20%"} {
		if !strings.Contains(got, want) {
			t.Errorf("coin list is missing %q:\n%s", want, got)
		}
	}
	// A NaN change renders as a dash, never as "NaN".
	if strings.Contains(got, "NaN") {
		t.Errorf("coin list leaks NaN:\n%s", got)
	}
}

func TestRenderCoinsEmpty(t *testing.T) {
	got := RenderCoins(NewCoinsView(nil))
	if !strings.Contains(got, "Não foi possível carregar as cotações.") {
		t.Errorf("empty coin list is missing the empty state:\n%s", got)
	}
}
