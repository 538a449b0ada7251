package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/dukkan-app/ledger_core/internal/core/domain"
	"github.com/dukkan-app/ledger_core/internal/utils/currencyfmt"
	"github.com/dukkan-app/ledger_core/internal/utils/numeric"
)

// DefaultDebtEpsilon is the tolerance when comparing a client's stored debt
// against the value recomputed from transaction history.
var DefaultDebtEpsilon = decimal.NewFromFloat(0.01)

// DefaultAmountEntryThreshold flags order totals and product prices above it
// as probable currency-unit entry errors (an LBP amount typed into a USD field).
var DefaultAmountEntryThreshold = decimal.NewFromInt(100_000_000)

// legacyTimestampID matches ids minted from millisecond epoch timestamps by
// the pre-sync versions of the app.
var legacyTimestampID = regexp.MustCompile(`^\d{13}$`)

// IntegrityService runs the read-only batch audit over reconciled collections.
// It never mutates its input and never fails: every violation becomes an issue
// in the report. It is safe on stale or partially-synced snapshots.
type IntegrityService struct {
	BaseService
	rates           numeric.RateResolver
	debtEpsilon     decimal.Decimal
	amountThreshold decimal.Decimal
	validate        *validator.Validate
}

// NewIntegrityService creates a new IntegrityService. Zero-valued epsilon and
// threshold fall back to the package defaults.
func NewIntegrityService(rates numeric.RateResolver, debtEpsilon, amountThreshold decimal.Decimal) *IntegrityService {
	if debtEpsilon.IsZero() {
		debtEpsilon = DefaultDebtEpsilon
	}
	if amountThreshold.IsZero() {
		amountThreshold = DefaultAmountEntryThreshold
	}
	return &IntegrityService{
		rates:           rates,
		debtEpsilon:     debtEpsilon,
		amountThreshold: amountThreshold,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Check audits the six entity collections and returns a severity-classified
// report.
func (s *IntegrityService) Check(
	ctx context.Context,
	products []domain.Product,
	orders []domain.Order,
	clients []domain.Client,
	transactions []domain.Transaction,
	purchases []domain.Purchase,
	employees []domain.Employee,
) domain.IntegrityReport {
	report := domain.IntegrityReport{GeneratedAt: time.Now().UTC()}
	add := func(issues ...domain.IntegrityIssue) {
		report.Issues = append(report.Issues, issues...)
	}

	add(checkCollection(s, "product", products)...)
	add(checkCollection(s, "order", orders)...)
	add(checkCollection(s, "client", clients)...)
	add(checkCollection(s, "transaction", transactions)...)
	add(checkCollection(s, "purchase", purchases)...)
	add(checkCollection(s, "employee", employees)...)

	add(s.checkProducts(products)...)
	add(s.checkOrders(orders, products, clients)...)
	add(s.checkClients(clients, transactions)...)

	s.LogDebug(ctx, "integrity check complete",
		slog.Int("total_issues", report.Total()),
		slog.Int("critical", report.Count(domain.SeverityCritical)),
	)
	return report
}

// checkCollection applies the rules common to every audited collection:
// duplicate ids (critical), legacy timestamp-style ids (medium), missing
// required textual fields (medium) and missing UpdatedAt (low).
func checkCollection[T domain.Versioned](s *IntegrityService, entity string, records []T) []domain.IntegrityIssue {
	var issues []domain.IntegrityIssue
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		id := rec.RecordID()
		if seen[id] {
			issues = append(issues, domain.IntegrityIssue{
				Severity:   domain.SeverityCritical,
				Entity:     entity,
				RecordID:   id,
				Field:      "id",
				Message:    fmt.Sprintf("Duplicate ID %q within the %s collection", id, entity),
				Suggestion: "Keep the most recently updated record and delete the duplicates",
			})
		}
		seen[id] = true

		if legacyTimestampID.MatchString(id) {
			issues = append(issues, domain.IntegrityIssue{
				Severity:   domain.SeverityMedium,
				Entity:     entity,
				RecordID:   id,
				Field:      "id",
				Message:    "Legacy timestamp-style numeric id",
				Suggestion: "Re-key the record with a generated unique id",
			})
		}
		if rec.LastUpdated().IsZero() {
			issues = append(issues, domain.IntegrityIssue{
				Severity:   domain.SeverityLow,
				Entity:     entity,
				RecordID:   id,
				Field:      "updatedAt",
				Message:    "Missing updatedAt timestamp",
				Suggestion: "Stamp the record on its next write",
			})
		}
		issues = append(issues, s.missingFields(entity, id, rec)...)
	}
	return issues
}

// missingFields maps required-tag validation failures to medium issues.
func (s *IntegrityService) missingFields(entity, id string, rec any) []domain.IntegrityIssue {
	err := s.validate.Struct(rec)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	var issues []domain.IntegrityIssue
	for _, ve := range verrs {
		if ve.Tag() != "required" || ve.Field() == "ID" {
			// a missing id already surfaces through the duplicate/reference rules
			continue
		}
		issues = append(issues, domain.IntegrityIssue{
			Severity:   domain.SeverityMedium,
			Entity:     entity,
			RecordID:   id,
			Field:      ve.Field(),
			Message:    fmt.Sprintf("Missing required field %s", ve.Field()),
			Suggestion: "Fill in the field from the paper record or delete the entry",
		})
	}
	return issues
}

func (s *IntegrityService) checkProducts(products []domain.Product) []domain.IntegrityIssue {
	var issues []domain.IntegrityIssue
	two := decimal.NewFromInt(2)
	for _, p := range products {
		if p.Quantity.IsNegative() {
			issues = append(issues, domain.IntegrityIssue{
				Severity:   domain.SeverityCritical,
				Entity:     "product",
				RecordID:   p.ID,
				Field:      "quantity",
				Message:    fmt.Sprintf("Negative quantity %s for product %q", p.Quantity.String(), p.Name),
				Suggestion: "Recount the physical stock and correct the quantity",
			})
		}
		if p.SellingPrice.GreaterThan(s.amountThreshold) {
			issues = append(issues, domain.IntegrityIssue{
				Severity:   domain.SeverityMedium,
				Entity:     "product",
				RecordID:   p.ID,
				Field:      "sellingPrice",
				Message:    fmt.Sprintf("Selling price %s exceeds the plausible entry threshold", currencyfmt.FormatAmount(p.SellingPrice, p.Currency)),
				Suggestion: "Check whether the price was entered in the wrong currency unit",
			})
		}
		if p.SellingPrice.IsPositive() && p.CostPrice.GreaterThan(p.SellingPrice.Mul(two)) {
			issues = append(issues, domain.IntegrityIssue{
				Severity:   domain.SeverityLow,
				Entity:     "product",
				RecordID:   p.ID,
				Field:      "costPrice",
				Message:    fmt.Sprintf("Cost price %s is more than twice the selling price %s", currencyfmt.FormatAmount(p.CostPrice, p.Currency), currencyfmt.FormatAmount(p.SellingPrice, p.Currency)),
				Suggestion: "Verify cost and selling price were not swapped",
			})
		}
	}
	return issues
}

func (s *IntegrityService) checkOrders(orders []domain.Order, products []domain.Product, clients []domain.Client) []domain.IntegrityIssue {
	var issues []domain.IntegrityIssue
	productIDs := make(map[string]bool, len(products))
	for _, p := range products {
		productIDs[p.ID] = true
	}
	clientIDs := make(map[string]bool, len(clients))
	for _, c := range clients {
		clientIDs[c.ID] = true
	}
	for _, o := range orders {
		for _, line := range o.Lines {
			if line.ProductID != "" && !productIDs[line.ProductID] {
				issues = append(issues, domain.IntegrityIssue{
					Severity:   domain.SeverityHigh,
					Entity:     "order",
					RecordID:   o.ID,
					Field:      "lines",
					Message:    fmt.Sprintf("Order line references missing product %q", line.ProductID),
					Suggestion: "Restore the product or remove the dangling line",
				})
			}
		}
		if o.Total.GreaterThan(s.amountThreshold) {
			issues = append(issues, domain.IntegrityIssue{
				Severity:   domain.SeverityMedium,
				Entity:     "order",
				RecordID:   o.ID,
				Field:      "total",
				Message:    fmt.Sprintf("Order total %s exceeds the plausible entry threshold", currencyfmt.FormatAmount(o.Total, o.Currency)),
				Suggestion: "Check whether the total was entered in the wrong currency unit",
			})
		}
		if o.ClientID != "" && !clientIDs[o.ClientID] {
			issues = append(issues, domain.IntegrityIssue{
				Severity:   domain.SeverityLow,
				Entity:     "order",
				RecordID:   o.ID,
				Field:      "clientID",
				Message:    fmt.Sprintf("Order customer %q is absent from the client registry", o.ClientID),
				Suggestion: "Re-create the client record or clear the reference",
			})
		}
	}
	return issues
}

func (s *IntegrityService) checkClients(clients []domain.Client, transactions []domain.Transaction) []domain.IntegrityIssue {
	var issues []domain.IntegrityIssue
	for _, c := range clients {
		expected := s.recomputeDebt(c, transactions)
		if c.Debt.Sub(expected).Abs().GreaterThan(s.debtEpsilon) {
			issues = append(issues, domain.IntegrityIssue{
				Severity: domain.SeverityHigh,
				Entity:   "client",
				RecordID: c.ID,
				Field:    "debt",
				Message: fmt.Sprintf("Debt mismatch for client %q: stored %s, recomputed %s",
					c.Name,
					currencyfmt.FormatAmount(c.Debt, c.DebtCurrency),
					currencyfmt.FormatAmount(expected, c.DebtCurrency)),
				Suggestion: "Rebuild the stored debt from the transaction history",
			})
		}
	}
	return issues
}

// recomputeDebt rebuilds a client's debt purely from transaction history:
// debt obligations add, payments and debt-settled returns subtract (normalized
// to the client's debt currency), and the result is floored at zero.
func (s *IntegrityService) recomputeDebt(c domain.Client, transactions []domain.Transaction) decimal.Decimal {
	debt := decimal.Zero
	for _, t := range transactions {
		if t.ClientID != c.ID {
			continue
		}
		amount := s.normalizeToDebtCurrency(t, c.DebtCurrency)
		switch t.Type {
		case domain.TxnClientDebt:
			debt = debt.Add(amount)
		case domain.TxnClientPayment:
			debt = debt.Sub(amount)
		case domain.TxnClientReturn:
			if t.Method == domain.MethodDebt {
				debt = debt.Sub(amount)
			}
		}
	}
	if debt.IsNegative() {
		return decimal.Zero
	}
	return debt
}

func (s *IntegrityService) normalizeToDebtCurrency(t domain.Transaction, debtCurrency domain.Currency) decimal.Decimal {
	if t.Currency == debtCurrency {
		return t.Amount
	}
	rate := s.rates.Resolve(t.Rate, decimal.Zero)
	if debtCurrency == domain.CurrencyLBP {
		return t.Amount.Mul(rate)
	}
	return t.Amount.Div(rate)
}
