// Package reconciliation contains match proposal and confirmation use cases.
package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/domain/entity"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
	"github.com/invoice-recon/backend/internal/infra/db"
	"github.com/invoice-recon/backend/internal/integration/adapters"
	"github.com/invoice-recon/backend/internal/integration/persistence"
	"github.com/invoice-recon/backend/internal/integration/persistence/model"
)

type reconcileTestEnv struct {
	reconcile *ReconcileUseCase
	confirm   *ConfirmMatchUseCase
	list      *ListMatchesUseCase

	invoiceRepo     adapter.InvoiceRepository
	transactionRepo adapter.BankTransactionRepository
	matchRepo       adapter.MatchRepository
	lock            adapter.TenantLock

	seedKeys int
}

func setupReconcileTest(t *testing.T) *reconcileTestEnv {
	t.Helper()

	database, err := db.NewSQLiteMemory()
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.AutoMigrate(
		&model.TenantModel{},
		&model.InvoiceModel{},
		&model.BankTransactionModel{},
		&model.MatchModel{},
		&model.IdempotencyRecordModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	env := &reconcileTestEnv{
		invoiceRepo:     persistence.NewInvoiceRepository(database.DB()),
		transactionRepo: persistence.NewBankTransactionRepository(database.DB()),
		matchRepo:       persistence.NewMatchRepository(database.DB()),
		lock:            adapters.NewLocalTenantLock(),
	}
	env.reconcile = NewReconcileUseCase(env.invoiceRepo, env.transactionRepo, env.matchRepo, env.lock)
	env.confirm = NewConfirmMatchUseCase(env.matchRepo)
	env.list = NewListMatchesUseCase(env.matchRepo)
	return env
}

func (env *reconcileTestEnv) seedInvoice(
	t *testing.T,
	tenantID uint,
	amount string,
	invoiceDate *time.Time,
	description string,
) *entity.Invoice {
	t.Helper()

	value, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid seed amount %q: %v", amount, err)
	}
	invoice := entity.NewInvoice(
		tenantID, nil, fmt.Sprintf("INV-%d", env.seedKeys), value, "EUR", invoiceDate, description,
	)
	env.seedKeys++
	if err := env.invoiceRepo.Create(context.Background(), invoice); err != nil {
		t.Fatalf("failed to seed invoice: %v", err)
	}
	return invoice
}

func (env *reconcileTestEnv) seedTransaction(
	t *testing.T,
	tenantID uint,
	amount string,
	postedAt time.Time,
	description string,
) *entity.BankTransaction {
	t.Helper()

	value, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid seed amount %q: %v", amount, err)
	}
	transaction := entity.NewBankTransaction(tenantID, nil, postedAt, value, "EUR", description)
	record := entity.NewIdempotencyRecord(tenantID, fmt.Sprintf("seed-%d", env.seedKeys), "seed")
	env.seedKeys++

	summary, err := env.transactionRepo.ImportBatch(
		context.Background(), tenantID, []*entity.BankTransaction{transaction}, record,
	)
	if err != nil {
		t.Fatalf("failed to seed bank transaction: %v", err)
	}
	if summary.Inserted != 1 {
		t.Fatalf("expected seed transaction to insert, got summary %+v", summary)
	}
	return transaction
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestReconcileUseCase(t *testing.T) {
	ctx := context.Background()
	const tenantID = uint(1)

	t.Run("ranks the exact candidate first", func(t *testing.T) {
		env := setupReconcileTest(t)
		date := day(10)
		invoice := env.seedInvoice(t, tenantID, "100.00", &date, "acme hosting march")

		far := env.seedTransaction(t, tenantID, "250.00", day(12), "office chairs")
		exact := env.seedTransaction(t, tenantID, "100.00", day(10), "acme hosting march")

		output, err := env.reconcile.Execute(ctx, ReconcileInput{TenantID: tenantID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Matches) == 0 {
			t.Fatal("expected at least one proposed match")
		}
		best := output.Matches[0]
		if best.InvoiceID != invoice.ID || best.BankTransactionID != exact.ID {
			t.Errorf("expected best match invoice %d / transaction %d, got %d / %d",
				invoice.ID, exact.ID, best.InvoiceID, best.BankTransactionID)
		}
		if best.Score <= 0.99 {
			t.Errorf("expected near-perfect score for exact candidate, got %f", best.Score)
		}
		for _, m := range output.Matches {
			if m.BankTransactionID == far.ID && m.Score >= best.Score {
				t.Errorf("distant transaction must not outrank the exact one")
			}
			if m.Status != entity.MatchStatusProposed {
				t.Errorf("expected proposed status, got %s", m.Status)
			}
		}
	})

	t.Run("caps candidates per invoice", func(t *testing.T) {
		env := setupReconcileTest(t)
		date := day(10)
		env.seedInvoice(t, tenantID, "100.00", &date, "hosting")
		for i := 0; i < 5; i++ {
			env.seedTransaction(t, tenantID, "100.00", day(10), "hosting")
		}

		limit := 2
		output, err := env.reconcile.Execute(ctx, ReconcileInput{
			TenantID:                tenantID,
			MaxCandidatesPerInvoice: &limit,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Matches) != 2 {
			t.Errorf("expected 2 proposed matches, got %d", len(output.Matches))
		}
	})

	t.Run("breaks score ties by transaction id ascending", func(t *testing.T) {
		env := setupReconcileTest(t)
		date := day(10)
		env.seedInvoice(t, tenantID, "100.00", &date, "hosting")

		first := env.seedTransaction(t, tenantID, "100.00", day(10), "hosting")
		second := env.seedTransaction(t, tenantID, "100.00", day(10), "hosting")
		if first.ID >= second.ID {
			t.Fatalf("expected ascending seed ids, got %d then %d", first.ID, second.ID)
		}

		output, err := env.reconcile.Execute(ctx, ReconcileInput{TenantID: tenantID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Matches) != 2 {
			t.Fatalf("expected 2 proposed matches, got %d", len(output.Matches))
		}
		if output.Matches[0].Score != output.Matches[1].Score {
			t.Fatalf("expected equal scores, got %f and %f",
				output.Matches[0].Score, output.Matches[1].Score)
		}
		if output.Matches[0].BankTransactionID != first.ID {
			t.Errorf("expected the lower transaction id %d first, got %d",
				first.ID, output.Matches[0].BankTransactionID)
		}
	})

	t.Run("reruns produce the same proposal set", func(t *testing.T) {
		env := setupReconcileTest(t)
		date := day(10)
		env.seedInvoice(t, tenantID, "100.00", &date, "acme hosting")
		env.seedInvoice(t, tenantID, "42.50", &date, "coffee supplies")
		env.seedTransaction(t, tenantID, "100.00", day(11), "acme hosting")
		env.seedTransaction(t, tenantID, "42.50", day(9), "coffee supplies")
		env.seedTransaction(t, tenantID, "99.90", day(10), "acme")

		firstRun, err := env.reconcile.Execute(ctx, ReconcileInput{TenantID: tenantID})
		if err != nil {
			t.Fatalf("expected no error on first run, got %v", err)
		}
		secondRun, err := env.reconcile.Execute(ctx, ReconcileInput{TenantID: tenantID})
		if err != nil {
			t.Fatalf("expected no error on second run, got %v", err)
		}

		if len(firstRun.Matches) != len(secondRun.Matches) {
			t.Fatalf("expected equal proposal counts, got %d and %d",
				len(firstRun.Matches), len(secondRun.Matches))
		}
		for i := range firstRun.Matches {
			a, b := firstRun.Matches[i], secondRun.Matches[i]
			if a.InvoiceID != b.InvoiceID || a.BankTransactionID != b.BankTransactionID || a.Score != b.Score {
				t.Errorf("proposal %d differs between runs: %+v vs %+v", i, a, b)
			}
		}

		stored, err := env.list.Execute(ctx, ListMatchesInput{TenantID: tenantID})
		if err != nil {
			t.Fatalf("failed to list matches: %v", err)
		}
		if len(stored.Matches) != len(secondRun.Matches) {
			t.Errorf("expected %d stored matches after rerun, got %d",
				len(secondRun.Matches), len(stored.Matches))
		}
	})

	t.Run("confirmed matches survive a rerun", func(t *testing.T) {
		env := setupReconcileTest(t)
		date := day(10)
		matched := env.seedInvoice(t, tenantID, "100.00", &date, "acme hosting")
		env.seedInvoice(t, tenantID, "42.50", &date, "coffee supplies")
		env.seedTransaction(t, tenantID, "100.00", day(10), "acme hosting")
		env.seedTransaction(t, tenantID, "42.50", day(10), "coffee supplies")

		firstRun, err := env.reconcile.Execute(ctx, ReconcileInput{TenantID: tenantID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var toConfirm *MatchOutput
		for _, m := range firstRun.Matches {
			if m.InvoiceID == matched.ID {
				toConfirm = m
				break
			}
		}
		if toConfirm == nil {
			t.Fatal("expected a proposal for the first invoice")
		}
		if _, err := env.confirm.Execute(ctx, ConfirmMatchInput{TenantID: tenantID, MatchID: toConfirm.ID}); err != nil {
			t.Fatalf("failed to confirm match: %v", err)
		}

		secondRun, err := env.reconcile.Execute(ctx, ReconcileInput{TenantID: tenantID})
		if err != nil {
			t.Fatalf("expected no error on rerun, got %v", err)
		}
		for _, m := range secondRun.Matches {
			if m.InvoiceID == matched.ID {
				t.Errorf("matched invoice %d must not receive new proposals", matched.ID)
			}
		}

		status := entity.MatchStatusConfirmed
		confirmed, err := env.list.Execute(ctx, ListMatchesInput{TenantID: tenantID, Status: &status})
		if err != nil {
			t.Fatalf("failed to list confirmed matches: %v", err)
		}
		if len(confirmed.Matches) != 1 || confirmed.Matches[0].ID != toConfirm.ID {
			t.Errorf("expected confirmed match %d to survive the rerun, got %+v",
				toConfirm.ID, confirmed.Matches)
		}
	})

	t.Run("zero-score pairs are never proposed", func(t *testing.T) {
		env := setupReconcileTest(t)
		date := day(10)
		env.seedInvoice(t, tenantID, "100.00", &date, "alpha beta")
		env.seedTransaction(t, tenantID, "250.00", day(25), "gamma delta")

		output, err := env.reconcile.Execute(ctx, ReconcileInput{TenantID: tenantID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Matches) != 0 {
			t.Errorf("expected no proposals, got %d", len(output.Matches))
		}
	})

	t.Run("rejects out-of-range candidate limits", func(t *testing.T) {
		env := setupReconcileTest(t)
		for _, limit := range []int{0, 11} {
			value := limit
			_, err := env.reconcile.Execute(ctx, ReconcileInput{
				TenantID:                tenantID,
				MaxCandidatesPerInvoice: &value,
			})
			if !errors.Is(err, domainerror.ErrInvalidReconcileParams) {
				t.Errorf("limit %d: expected ErrInvalidReconcileParams, got %v", limit, err)
			}
		}
	})

	t.Run("rejects out-of-range date windows", func(t *testing.T) {
		env := setupReconcileTest(t)
		for _, window := range []int{-1, 31} {
			value := window
			_, err := env.reconcile.Execute(ctx, ReconcileInput{
				TenantID:       tenantID,
				DateWindowDays: &value,
			})
			if !errors.Is(err, domainerror.ErrInvalidReconcileParams) {
				t.Errorf("window %d: expected ErrInvalidReconcileParams, got %v", window, err)
			}
		}
	})

	t.Run("fails fast while another run holds the tenant lock", func(t *testing.T) {
		env := setupReconcileTest(t)
		release, err := env.lock.Acquire(ctx, tenantID)
		if err != nil {
			t.Fatalf("failed to pre-acquire lock: %v", err)
		}

		_, err = env.reconcile.Execute(ctx, ReconcileInput{TenantID: tenantID})
		if !errors.Is(err, domainerror.ErrReconcileInProgress) {
			t.Errorf("expected ErrReconcileInProgress, got %v", err)
		}

		release()
		if _, err := env.reconcile.Execute(ctx, ReconcileInput{TenantID: tenantID}); err != nil {
			t.Errorf("expected run to succeed after release, got %v", err)
		}
	})

	t.Run("locks are scoped per tenant", func(t *testing.T) {
		env := setupReconcileTest(t)
		release, err := env.lock.Acquire(ctx, tenantID)
		if err != nil {
			t.Fatalf("failed to pre-acquire lock: %v", err)
		}
		defer release()

		if _, err := env.reconcile.Execute(ctx, ReconcileInput{TenantID: tenantID + 1}); err != nil {
			t.Errorf("expected another tenant's run to proceed, got %v", err)
		}
	})
}
