package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dukkan-app/ledger_core/internal/core/domain"
	"github.com/dukkan-app/ledger_core/internal/core/services"
	"github.com/dukkan-app/ledger_core/internal/utils/numeric"
)

func newIntegrity() *services.IntegrityService {
	return services.NewIntegrityService(numeric.RateResolver{}, decimal.Zero, decimal.Zero)
}

func goodProduct(id string) domain.Product {
	return domain.Product{
		SyncMeta:     domain.SyncMeta{ID: id, Version: 1, UpdatedAt: time.Now()},
		Name:         "soap",
		SellingPrice: decimal.NewFromInt(3),
		CostPrice:    decimal.NewFromInt(2),
		Quantity:     decimal.NewFromInt(10),
		Currency:     domain.CurrencyUSD,
	}
}

func goodClient(id string) domain.Client {
	return domain.Client{
		SyncMeta:     domain.SyncMeta{ID: id, Version: 1, UpdatedAt: time.Now()},
		Name:         "walk-in",
		DebtCurrency: domain.CurrencyUSD,
	}
}

func goodOrder(id string) domain.Order {
	return domain.Order{
		SyncMeta: domain.SyncMeta{ID: id, Version: 1, UpdatedAt: time.Now()},
		Total:    decimal.NewFromInt(9),
		Currency: domain.CurrencyUSD,
		Channel:  domain.MethodCash,
	}
}

func hasIssue(report domain.IntegrityReport, severity domain.Severity, substr string) bool {
	for _, issue := range report.Issues {
		if issue.Severity == severity && strings.Contains(issue.Message, substr) {
			return true
		}
	}
	return false
}

func check(svc *services.IntegrityService, products []domain.Product, orders []domain.Order, clients []domain.Client, txns []domain.Transaction) domain.IntegrityReport {
	return svc.Check(context.Background(), products, orders, clients, txns, nil, nil)
}

func TestCheck_EmptyDatasetIsHealthy(t *testing.T) {
	report := check(newIntegrity(), nil, nil, nil, nil)

	assert.True(t, report.Healthy())
	assert.Zero(t, report.Total())
}

func TestCheck_CleanDatasetIsHealthy(t *testing.T) {
	product := goodProduct("p1")
	order := goodOrder("o1")
	order.ClientID = "c1"
	order.Lines = []domain.OrderLine{{ProductID: "p1", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(3)}}

	report := check(newIntegrity(), []domain.Product{product}, []domain.Order{order}, []domain.Client{goodClient("c1")}, nil)

	assert.True(t, report.Healthy(), "unexpected issues: %+v", report.Issues)
}

func TestCheck_DuplicateID(t *testing.T) {
	report := check(newIntegrity(), []domain.Product{goodProduct("p1"), goodProduct("p1")}, nil, nil, nil)

	assert.GreaterOrEqual(t, report.Count(domain.SeverityCritical), 1)
	assert.True(t, hasIssue(report, domain.SeverityCritical, "Duplicate ID"))
}

func TestCheck_NegativeQuantity(t *testing.T) {
	product := goodProduct("p1")
	product.Quantity = decimal.NewFromInt(-5)

	report := check(newIntegrity(), []domain.Product{product}, nil, nil, nil)

	assert.True(t, hasIssue(report, domain.SeverityCritical, "Negative quantity"))
}

func TestCheck_DanglingOrderLine(t *testing.T) {
	order := goodOrder("o1")
	order.Lines = []domain.OrderLine{{ProductID: "ghost", Quantity: decimal.NewFromInt(1)}}

	report := check(newIntegrity(), []domain.Product{goodProduct("p1")}, []domain.Order{order}, nil, nil)

	assert.True(t, hasIssue(report, domain.SeverityHigh, "missing product"))
}

func TestCheck_DebtMismatchWithNoHistory(t *testing.T) {
	c := goodClient("c1")
	c.Debt = decimal.NewFromInt(100)

	report := check(newIntegrity(), nil, nil, []domain.Client{c}, nil)

	assert.True(t, hasIssue(report, domain.SeverityHigh, "Debt mismatch"))
}

func TestCheck_DebtConsistentWithHistory(t *testing.T) {
	c := goodClient("c1")
	c.Debt = decimal.NewFromInt(60)
	txns := []domain.Transaction{
		{SyncMeta: domain.SyncMeta{ID: "t1", UpdatedAt: time.Now()}, Type: domain.TxnClientDebt, Method: domain.MethodDebt, Amount: decimal.NewFromInt(100), Currency: domain.CurrencyUSD, ClientID: "c1"},
		{SyncMeta: domain.SyncMeta{ID: "t2", UpdatedAt: time.Now()}, Type: domain.TxnClientPayment, Method: domain.MethodCash, Amount: decimal.NewFromInt(40), Currency: domain.CurrencyUSD, ClientID: "c1"},
	}

	report := check(newIntegrity(), nil, nil, []domain.Client{c}, txns)

	assert.False(t, hasIssue(report, domain.SeverityHigh, "Debt mismatch"), "issues: %+v", report.Issues)
}

func TestCheck_DebtPaymentNormalizedAcrossCurrencies(t *testing.T) {
	// 100 USD owed, 4,475,000 LBP paid at 89,500 = 50 USD settled
	c := goodClient("c1")
	c.Debt = decimal.NewFromInt(50)
	txns := []domain.Transaction{
		{SyncMeta: domain.SyncMeta{ID: "t1", UpdatedAt: time.Now()}, Type: domain.TxnClientDebt, Method: domain.MethodDebt, Amount: decimal.NewFromInt(100), Currency: domain.CurrencyUSD, ClientID: "c1"},
		{SyncMeta: domain.SyncMeta{ID: "t2", UpdatedAt: time.Now()}, Type: domain.TxnClientPayment, Method: domain.MethodCash, Amount: decimal.NewFromInt(4_475_000), Currency: domain.CurrencyLBP, Rate: decimal.NewFromInt(89_500), ClientID: "c1"},
	}

	report := check(newIntegrity(), nil, nil, []domain.Client{c}, txns)

	assert.False(t, hasIssue(report, domain.SeverityHigh, "Debt mismatch"), "issues: %+v", report.Issues)
}

func TestCheck_DebtSettledReturnReducesDebt(t *testing.T) {
	c := goodClient("c1")
	c.Debt = decimal.NewFromInt(70)
	txns := []domain.Transaction{
		{SyncMeta: domain.SyncMeta{ID: "t1", UpdatedAt: time.Now()}, Type: domain.TxnClientDebt, Method: domain.MethodDebt, Amount: decimal.NewFromInt(100), Currency: domain.CurrencyUSD, ClientID: "c1"},
		{SyncMeta: domain.SyncMeta{ID: "t2", UpdatedAt: time.Now()}, Type: domain.TxnClientReturn, Method: domain.MethodDebt, Amount: decimal.NewFromInt(30), Currency: domain.CurrencyUSD, ClientID: "c1"},
	}

	report := check(newIntegrity(), nil, nil, []domain.Client{c}, txns)

	assert.False(t, hasIssue(report, domain.SeverityHigh, "Debt mismatch"), "issues: %+v", report.Issues)
}

func TestCheck_RecomputedDebtFlooredAtZero(t *testing.T) {
	// overpayment must not produce a negative expected debt
	c := goodClient("c1")
	txns := []domain.Transaction{
		{SyncMeta: domain.SyncMeta{ID: "t1", UpdatedAt: time.Now()}, Type: domain.TxnClientPayment, Method: domain.MethodCash, Amount: decimal.NewFromInt(500), Currency: domain.CurrencyUSD, ClientID: "c1"},
	}

	report := check(newIntegrity(), nil, nil, []domain.Client{c}, txns)

	assert.False(t, hasIssue(report, domain.SeverityHigh, "Debt mismatch"), "issues: %+v", report.Issues)
}

func TestCheck_EntryThreshold(t *testing.T) {
	product := goodProduct("p1")
	product.SellingPrice = decimal.NewFromInt(200_000_000)
	order := goodOrder("o1")
	order.Total = decimal.NewFromInt(150_000_000)

	report := check(newIntegrity(), []domain.Product{product}, []domain.Order{order}, nil, nil)

	assert.Equal(t, 2, report.Count(domain.SeverityMedium))
	assert.True(t, hasIssue(report, domain.SeverityMedium, "entry threshold"))
}

func TestCheck_LegacyTimestampID(t *testing.T) {
	report := check(newIntegrity(), []domain.Product{goodProduct("1700000000123")}, nil, nil, nil)

	assert.True(t, hasIssue(report, domain.SeverityMedium, "Legacy timestamp-style"))
}

func TestCheck_MissingRequiredField(t *testing.T) {
	product := goodProduct("p1")
	product.Name = ""

	report := check(newIntegrity(), []domain.Product{product}, nil, nil, nil)

	assert.True(t, hasIssue(report, domain.SeverityMedium, "Missing required field Name"))
}

func TestCheck_CostExceedsTwiceSellingPrice(t *testing.T) {
	product := goodProduct("p1")
	product.SellingPrice = decimal.NewFromInt(3)
	product.CostPrice = decimal.NewFromInt(7)

	report := check(newIntegrity(), []domain.Product{product}, nil, nil, nil)

	assert.True(t, hasIssue(report, domain.SeverityLow, "twice the selling price"))
}

func TestCheck_UnknownOrderCustomer(t *testing.T) {
	order := goodOrder("o1")
	order.ClientID = "nobody"

	report := check(newIntegrity(), nil, []domain.Order{order}, []domain.Client{goodClient("c1")}, nil)

	assert.True(t, hasIssue(report, domain.SeverityLow, "absent from the client registry"))
}

func TestCheck_MissingUpdatedAt(t *testing.T) {
	product := goodProduct("p1")
	product.UpdatedAt = time.Time{}

	report := check(newIntegrity(), []domain.Product{product}, nil, nil, nil)

	assert.True(t, hasIssue(report, domain.SeverityLow, "Missing updatedAt"))
}

func TestCheck_DoesNotMutateInput(t *testing.T) {
	product := goodProduct("p1")
	product.Quantity = decimal.NewFromInt(-5)
	products := []domain.Product{product}

	_ = check(newIntegrity(), products, nil, nil, nil)

	assert.True(t, products[0].Quantity.Equal(decimal.NewFromInt(-5)))
}
