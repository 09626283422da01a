// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/invoice-recon/backend/config"
	"github.com/invoice-recon/backend/internal/infra/db"
	"github.com/invoice-recon/backend/internal/infra/dependency"
	"github.com/invoice-recon/backend/internal/integration/persistence/model"
)

// TestContext holds the test state for each scenario. Every scenario gets a
// fresh in-memory database and server, so scenarios cannot observe each other.
type TestContext struct {
	server   *httptest.Server
	engine   *gin.Engine
	client   *http.Client
	database *db.Database

	// Request building
	requestHeaders map[string]string

	// Last response
	response     *http.Response
	responseBody []byte
	responseJSON map[string]any

	// Ids captured from setup steps and responses
	tenantIDs         map[string]uint
	lastTenantID      uint
	lastInvoiceID     uint
	lastTransactionID uint
	lastMatchID       uint
}

func newTestContext() (*TestContext, error) {
	database, err := db.NewSQLiteMemory()
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(
		&model.TenantModel{},
		&model.VendorModel{},
		&model.InvoiceModel{},
		&model.BankTransactionModel{},
		&model.MatchModel{},
		&model.IdempotencyRecordModel{},
	); err != nil {
		return nil, err
	}

	cfg := config.Load()
	cfg.AI.Provider = "mock"
	cfg.Reconcile.LockBackend = "local"

	injector, err := dependency.NewInjector(cfg, database)
	if err != nil {
		return nil, err
	}

	tc := &TestContext{
		client:         &http.Client{Timeout: 10 * time.Second},
		database:       database,
		requestHeaders: make(map[string]string),
		tenantIDs:      make(map[string]uint),
	}
	tc.engine = injector.Router.Setup("test")
	tc.server = httptest.NewServer(tc.engine)
	return tc, nil
}

func (tc *TestContext) close() {
	if tc.server != nil {
		tc.server.Close()
	}
	if tc.database != nil {
		_ = tc.database.Close()
	}
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil {
			tc.close()
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, theAPIServerIsRunning)

	// Setup steps
	ctx.Given(`^a tenant named "([^"]*)" exists$`, aTenantNamedExists)
	ctx.Given(`^the tenant has an open invoice of "([^"]*)" "([^"]*)" dated "([^"]*)" described "([^"]*)"$`, theTenantHasAnOpenInvoice)
	ctx.Given(`^the tenant has an imported transaction of "([^"]*)" "([^"]*)" posted "([^"]*)" described "([^"]*)"$`, theTenantHasAnImportedTransaction)
	ctx.Given(`^the proposed matches have been computed$`, theProposedMatchesHaveBeenComputed)

	// Header steps
	ctx.Given(`^the header is empty$`, theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Then(`^the response should have (\d+) items in "([^"]*)"$`, theResponseShouldHaveItemsIn)
	ctx.Then(`^the response header "([^"]*)" should be "([^"]*)"$`, theResponseHeaderShouldBe)
	ctx.Then(`^the response header "([^"]*)" should be empty$`, theResponseHeaderShouldBeEmpty)
}
