// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"

	"github.com/finance-pulse/backend/config"
	"github.com/finance-pulse/backend/internal/infra/dependency"
	"github.com/finance-pulse/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// Backing services
	supabase *mock.SupabaseMock
	injector *dependency.Injector

	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string
	cookies        map[string]string
	accessToken    string

	// Registered users by email
	userIDs map[string]uuid.UUID

	cfg *config.Config
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
		tc := &TestContext{
			supabase:       mock.NewSupabase(),
			requestHeaders: make(map[string]string),
			cookies:        make(map[string]string),
			userIDs:        make(map[string]uuid.UUID),
		}

		tc.cfg = config.Load()
		tc.cfg.Server.Environment = "test"
		tc.cfg.Supabase.URL = tc.supabase.URL()
		tc.cfg.Supabase.AnonKey = "test-anon-key"
		tc.cfg.Supabase.JWTSecret = mock.JWTSecret

		client, err := supabase.NewClient(tc.cfg.Supabase.URL, tc.cfg.Supabase.AnonKey, &supabase.ClientOptions{})
		if err != nil {
			return ctx, err
		}

		tc.injector = dependency.NewInjector(tc.cfg, client, mock.NewRedis())
		tc.engine = tc.injector.Router.Setup(tc.cfg.Server.Environment)
		tc.server = httptest.NewServer(tc.engine)

		tc.injector.SessionState.Start(context.Background(), "")

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.injector != nil && tc.injector.SessionState != nil {
				tc.injector.SessionState.Close()
			}
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.supabase != nil {
				tc.supabase.Close()
			}
		}
		_ = mock.ClearRedis(mock.NewRedis())
		return ctx, nil
	})

	registerGivenSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerGivenSteps registers provider and data seeding steps.
func registerGivenSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, aRegisteredUserWithPassword)
	ctx.Step(`^an authorization code "([^"]*)" for "([^"]*)"$`, anAuthorizationCodeFor)
	ctx.Step(`^I am authenticated as "([^"]*)"$`, iAmAuthenticatedAs)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I have a session cookie for "([^"]*)"$`, iHaveASessionCookieFor)
	ctx.Step(`^the following "([^"]*)" rows:$`, theFollowingRows)
	ctx.Step(`^the "([^"]*)" table is unavailable$`, theTableIsUnavailable)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response header "([^"]*)" should be "([^"]*)"$`, theResponseHeaderShouldBe)
	ctx.Step(`^the response should match json:$`, theResponseShouldMatchJSON)
	ctx.Step(`^the "([^"]*)" table should have (\d+) rows?$`, theTableShouldHaveRows)
}
