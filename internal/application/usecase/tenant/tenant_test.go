// Package tenant contains tenant management use cases.
package tenant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/invoice-recon/backend/internal/domain/entity"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
	"github.com/invoice-recon/backend/internal/infra/db"
	"github.com/invoice-recon/backend/internal/integration/persistence"
	"github.com/invoice-recon/backend/internal/integration/persistence/model"
)

type tenantTestEnv struct {
	create *CreateTenantUseCase
	list   *ListTenantsUseCase
	get    *GetTenantUseCase
	delete *DeleteTenantUseCase

	gormDB *gorm.DB
}

func setupTenantTest(t *testing.T) *tenantTestEnv {
	t.Helper()

	database, err := db.NewSQLiteMemory()
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.AutoMigrate(
		&model.TenantModel{},
		&model.VendorModel{},
		&model.InvoiceModel{},
		&model.BankTransactionModel{},
		&model.MatchModel{},
		&model.IdempotencyRecordModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tenantRepo := persistence.NewTenantRepository(database.DB())
	return &tenantTestEnv{
		create: NewCreateTenantUseCase(tenantRepo),
		list:   NewListTenantsUseCase(tenantRepo),
		get:    NewGetTenantUseCase(tenantRepo),
		delete: NewDeleteTenantUseCase(tenantRepo),
		gormDB: database.DB(),
	}
}

func TestCreateTenantUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a tenant", func(t *testing.T) {
		env := setupTenantTest(t)

		output, err := env.create.Execute(ctx, CreateTenantInput{Name: "acme"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Tenant.ID == 0 {
			t.Error("expected a generated tenant id")
		}
		if output.Tenant.Name != "acme" {
			t.Errorf("expected name acme, got %s", output.Tenant.Name)
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		env := setupTenantTest(t)

		output, err := env.create.Execute(ctx, CreateTenantInput{Name: "  acme  "})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Tenant.Name != "acme" {
			t.Errorf("expected trimmed name, got %q", output.Tenant.Name)
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		env := setupTenantTest(t)
		for _, name := range []string{"", "   "} {
			_, err := env.create.Execute(ctx, CreateTenantInput{Name: name})
			if !errors.Is(err, domainerror.ErrInvalidTenantName) {
				t.Errorf("name %q: expected ErrInvalidTenantName, got %v", name, err)
			}
		}
	})

	t.Run("rejects a name over the length limit", func(t *testing.T) {
		env := setupTenantTest(t)

		_, err := env.create.Execute(ctx, CreateTenantInput{Name: strings.Repeat("a", MaxTenantNameLength+1)})
		if !errors.Is(err, domainerror.ErrInvalidTenantName) {
			t.Errorf("expected ErrInvalidTenantName, got %v", err)
		}
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		env := setupTenantTest(t)

		if _, err := env.create.Execute(ctx, CreateTenantInput{Name: "acme"}); err != nil {
			t.Fatalf("first create failed: %v", err)
		}
		_, err := env.create.Execute(ctx, CreateTenantInput{Name: "acme"})
		if !errors.Is(err, domainerror.ErrTenantNameTaken) {
			t.Errorf("expected ErrTenantNameTaken, got %v", err)
		}
	})
}

func TestListAndGetTenantUseCases(t *testing.T) {
	ctx := context.Background()

	t.Run("lists tenants in id order", func(t *testing.T) {
		env := setupTenantTest(t)
		for _, name := range []string{"acme", "globex", "initech"} {
			if _, err := env.create.Execute(ctx, CreateTenantInput{Name: name}); err != nil {
				t.Fatalf("failed to create tenant %s: %v", name, err)
			}
		}

		output, err := env.list.Execute(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Tenants) != 3 {
			t.Fatalf("expected 3 tenants, got %d", len(output.Tenants))
		}
		for i := 1; i < len(output.Tenants); i++ {
			if output.Tenants[i-1].ID >= output.Tenants[i].ID {
				t.Errorf("expected ascending ids, got %d before %d",
					output.Tenants[i-1].ID, output.Tenants[i].ID)
			}
		}
	})

	t.Run("gets a tenant by id", func(t *testing.T) {
		env := setupTenantTest(t)
		created, err := env.create.Execute(ctx, CreateTenantInput{Name: "acme"})
		if err != nil {
			t.Fatalf("failed to create tenant: %v", err)
		}

		output, err := env.get.Execute(ctx, GetTenantInput{TenantID: created.Tenant.ID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Tenant.Name != "acme" {
			t.Errorf("expected name acme, got %s", output.Tenant.Name)
		}
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		env := setupTenantTest(t)
		_, err := env.get.Execute(ctx, GetTenantInput{TenantID: 9999})
		if !errors.Is(err, domainerror.ErrTenantNotFound) {
			t.Errorf("expected ErrTenantNotFound, got %v", err)
		}
	})
}

func TestDeleteTenantUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		env := setupTenantTest(t)
		err := env.delete.Execute(ctx, DeleteTenantInput{TenantID: 9999})
		if !errors.Is(err, domainerror.ErrTenantNotFound) {
			t.Errorf("expected ErrTenantNotFound, got %v", err)
		}
	})

	t.Run("removes the tenant and everything scoped to it", func(t *testing.T) {
		env := setupTenantTest(t)
		created, err := env.create.Execute(ctx, CreateTenantInput{Name: "acme"})
		if err != nil {
			t.Fatalf("failed to create tenant: %v", err)
		}
		keep, err := env.create.Execute(ctx, CreateTenantInput{Name: "globex"})
		if err != nil {
			t.Fatalf("failed to create second tenant: %v", err)
		}

		date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		amount := decimal.RequireFromString("100.00")

		invoiceRepo := persistence.NewInvoiceRepository(env.gormDB)
		transactionRepo := persistence.NewBankTransactionRepository(env.gormDB)
		matchRepo := persistence.NewMatchRepository(env.gormDB)

		for _, tenantID := range []uint{created.Tenant.ID, keep.Tenant.ID} {
			invoice := entity.NewInvoice(tenantID, nil, "INV-1", amount, "EUR", &date, "hosting")
			if err := invoiceRepo.Create(ctx, invoice); err != nil {
				t.Fatalf("failed to seed invoice: %v", err)
			}
			transaction := entity.NewBankTransaction(tenantID, nil, date, amount, "EUR", "hosting")
			record := entity.NewIdempotencyRecord(tenantID, "seed", "seed")
			if _, err := transactionRepo.ImportBatch(ctx, tenantID, []*entity.BankTransaction{transaction}, record); err != nil {
				t.Fatalf("failed to seed transaction: %v", err)
			}
			match := entity.NewProposedMatch(tenantID, invoice.ID, transaction.ID, 1.0)
			if err := matchRepo.ReplaceProposed(ctx, tenantID, []*entity.Match{match}); err != nil {
				t.Fatalf("failed to seed match: %v", err)
			}
		}

		if err := env.delete.Execute(ctx, DeleteTenantInput{TenantID: created.Tenant.ID}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		_, err = env.get.Execute(ctx, GetTenantInput{TenantID: created.Tenant.ID})
		if !errors.Is(err, domainerror.ErrTenantNotFound) {
			t.Errorf("expected deleted tenant to be gone, got %v", err)
		}

		for table, want := range map[string]int64{
			"invoices":            1,
			"bank_transactions":   1,
			"matches":             1,
			"idempotency_records": 1,
		} {
			var count int64
			if err := env.gormDB.Table(table).Count(&count).Error; err != nil {
				t.Fatalf("failed to count %s: %v", table, err)
			}
			if count != want {
				t.Errorf("expected %d rows left in %s, got %d", want, table, count)
			}
		}

		remaining, err := invoiceRepo.FindOpenByTenant(ctx, keep.Tenant.ID)
		if err != nil {
			t.Fatalf("failed to list surviving invoices: %v", err)
		}
		if len(remaining) != 1 {
			t.Errorf("expected sibling tenant data to survive, got %d invoices", len(remaining))
		}
	})
}
