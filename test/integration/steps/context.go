// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/config"
	"github.com/budget-ledger/backend/internal/infra/dependency"
	"github.com/budget-ledger/backend/internal/integration/persistence/model"
	"github.com/budget-ledger/backend/test/integration/mock"
)

// defaultWriteLimit keeps ordinary scenarios clear of the write rate limit.
const defaultWriteLimit = 1000

var placeholder = regexp.MustCompile(`\{\{(\w+)\}\}`)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Values captured from earlier responses, referenced as {{name}}
	saved map[string]string

	db  *mock.Db
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
		db := mock.NewDb(map[string]any{
			"transactions":    &model.TransactionModel{},
			"budgets":         &model.BudgetModel{},
			"fixed_expenses":  &model.FixedExpenseModel{},
			"financial_goals": &model.GoalModel{},
			"reports":         &model.ReportModel{},
			"user_settings":   &model.UserSettingsModel{},
		})
		if err := db.ClearDB(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}

		cfg := config.Load()
		cfg.RateLimit.Requests = defaultWriteLimit

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			saved:          make(map[string]string),
			db:             db,
			cfg:            cfg,
		}
		tc.startServer()

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	// Setup steps
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^the write rate limit is (\d+) requests? per minute$`, theWriteRateLimitIs)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, theHeaderContains)
	ctx.Step(`^the following transactions exist:$`, theFollowingTransactionsExist)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendRequest)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendRequestWithBody)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveResponseField)
	ctx.Step(`^pending reports are processed$`, pendingReportsAreProcessed)

	// Response steps
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be (true|false)$`, theResponseFieldShouldBeBool)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, theResponseHeaderShouldContain)

	// Database steps
	ctx.Step(`^the db should contain (\d+) objects? in the "([^"]*)" table$`, theDbShouldContainObjects)
	ctx.Step(`^the db should contain (\d+) objects? in the "([^"]*)" table with "([^"]*)" equal to "([^"]*)"$`, theDbShouldContainObjectsWhere)
}

// startServer builds the full application over the shared test stores.
func (tc *TestContext) startServer() {
	if tc.server != nil {
		tc.server.Close()
	}

	healthy := func() bool { return true }
	injector := dependency.NewInjector(tc.cfg, tc.db.DbConn, healthy, mock.NewRedis())
	tc.server = httptest.NewServer(injector.Router.Setup("test"))
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server not initialized")
	}
	return nil
}

func theWriteRateLimitIs(ctx context.Context, requests int) error {
	tc := GetTestContext(ctx)
	tc.cfg.RateLimit.Requests = requests
	tc.startServer()
	return nil
}

func theHeaderContains(ctx context.Context, key, value string) error {
	GetTestContext(ctx).requestHeaders[key] = value
	return nil
}

// theFollowingTransactionsExist posts each table row through the API.
// The first row holds the JSON field names.
func theFollowingTransactionsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if len(table.Rows) < 2 {
		return fmt.Errorf("transaction table needs a header and at least one row")
	}

	header := table.Rows[0].Cells
	for _, row := range table.Rows[1:] {
		body := make(map[string]any, len(header))
		for i, cell := range row.Cells {
			body[header[i].Value] = cell.Value
		}
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}

		if err := tc.send(http.MethodPost, "/api/v1/transactions", raw); err != nil {
			return err
		}
		if tc.response.StatusCode != http.StatusCreated {
			return fmt.Errorf("seeding transaction failed with %d: %s", tc.response.StatusCode, tc.responseBody)
		}
	}
	return nil
}

func iSendRequest(ctx context.Context, method, path string) error {
	return GetTestContext(ctx).send(method, path, nil)
}

func iSendRequestWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	return tc.send(method, path, []byte(tc.expand(body.Content)))
}

func (tc *TestContext) send(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.expand(path), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range tc.requestHeaders {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// Remember the id of whatever was just created
	if resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusAccepted {
		if id, err := tc.field("id"); err == nil {
			tc.saved["id"] = fmt.Sprint(id)
		}
	}
	return nil
}

// expand replaces {{name}} with a value saved from an earlier response.
func (tc *TestContext) expand(s string) string {
	return placeholder.ReplaceAllStringFunc(s, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		if v, ok := tc.saved[name]; ok {
			return v
		}
		return m
	})
}

func iSaveResponseField(ctx context.Context, path, name string) error {
	tc := GetTestContext(ctx)
	value, err := tc.field(path)
	if err != nil {
		return err
	}
	tc.saved[name] = fmt.Sprint(value)
	return nil
}

func pendingReportsAreProcessed(ctx context.Context) error {
	tc := GetTestContext(ctx)
	dependency.NewReportWorker(tc.cfg, tc.db.DbConn).ProcessNow(ctx)
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	value, err := tc.field(path)
	if err != nil {
		return err
	}
	if got := fmt.Sprint(value); got != tc.expand(expected) {
		return fmt.Errorf("expected %s to be %q, got %q", path, expected, got)
	}
	return nil
}

func theResponseFieldShouldBeBool(ctx context.Context, path, expected string) error {
	value, err := GetTestContext(ctx).field(path)
	if err != nil {
		return err
	}
	b, ok := value.(bool)
	if !ok || strconv.FormatBool(b) != expected {
		return fmt.Errorf("expected %s to be %s, got %v", path, expected, value)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	_, err := GetTestContext(ctx).field(path)
	return err
}

func theResponseFieldShouldHaveItems(ctx context.Context, path string, count int) error {
	value, err := GetTestContext(ctx).field(path)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("%s is not a list: %v", path, value)
	}
	if len(items) != count {
		return fmt.Errorf("expected %d items in %s, got %d", count, path, len(items))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, text string) error {
	tc := GetTestContext(ctx)
	if !strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response does not contain %q: %s", text, tc.responseBody)
	}
	return nil
}

func theResponseHeaderShouldContain(ctx context.Context, header, text string) error {
	tc := GetTestContext(ctx)
	got := tc.response.Header.Get(header)
	if !strings.Contains(got, text) {
		return fmt.Errorf("expected header %s to contain %q, got %q", header, text, got)
	}
	return nil
}

// field walks a dotted path such as "budgets.0.spent" through the JSON body.
func (tc *TestContext) field(path string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(tc.responseBody))
	dec.UseNumber()

	var current any
	if err := dec.Decode(&current); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}

	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %s not found in response", path)
			}
			current = value
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("index %s out of range in %s", part, path)
			}
			current = node[idx]
		default:
			return nil, fmt.Errorf("cannot descend into %s at %q", path, part)
		}
	}
	return current, nil
}

func theDbShouldContainObjects(ctx context.Context, count int, table string) error {
	return GetTestContext(ctx).countRows(table, count, "", "")
}

func theDbShouldContainObjectsWhere(ctx context.Context, count int, table, column, value string) error {
	return GetTestContext(ctx).countRows(table, count, column, value)
}

func (tc *TestContext) countRows(table string, expected int, column, value string) error {
	if _, ok := tc.db.GetModel(table); !ok {
		return fmt.Errorf("unknown table %s", table)
	}

	query := tc.db.DbConn.Table(table)
	if column != "" {
		query = query.Where(column+" = ?", value)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %s, got %d", expected, table, count)
	}
	return nil
}
