package steps

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

// Step implementations: given / seeding

func aRegisteredUserWithPassword(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	id := uuid.New()
	tc.userIDs[email] = id
	tc.supabase.RegisterUser(id, email, password)
	return SetTestContext(ctx, tc), nil
}

func anAuthorizationCodeFor(ctx context.Context, code, email string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if _, ok := tc.userIDs[email]; !ok {
		return ctx, fmt.Errorf("user %s is not registered", email)
	}

	tc.supabase.RegisterAuthCode(code, email)
	return SetTestContext(ctx, tc), nil
}

func iAmAuthenticatedAs(ctx context.Context, email string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	token, err := tc.supabase.IssueToken(email)
	if err != nil {
		return ctx, err
	}
	tc.accessToken = token
	return SetTestContext(ctx, tc), nil
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return SetTestContext(ctx, tc), nil
}

func iHaveASessionCookieFor(ctx context.Context, email string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	token, err := tc.supabase.IssueToken(email)
	if err != nil {
		return ctx, err
	}
	tc.cookies[tc.cfg.Supabase.SessionCookie] = token
	return SetTestContext(ctx, tc), nil
}

// theFollowingRows seeds a provider table from a Gherkin table. The first
// row holds column names; a user_id or id cell may hold a registered user's
// email, which is replaced with that user's ID.
func theFollowingRows(ctx context.Context, table string, data *godog.Table) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if len(data.Rows) < 2 {
		return ctx, fmt.Errorf("table %s needs a header row and at least one data row", table)
	}

	header := data.Rows[0].Cells
	for _, dataRow := range data.Rows[1:] {
		row := map[string]any{}
		for i, cell := range dataRow.Cells {
			column := header[i].Value
			row[column] = tc.seedValue(column, cell.Value)
		}
		tc.supabase.SeedRow(table, row)
	}
	return SetTestContext(ctx, tc), nil
}

// seedValue converts a Gherkin cell into the value the provider would store:
// emails in identity columns become user IDs, bare dates become RFC3339
// timestamps, and numerics become JSON numbers.
func (tc *TestContext) seedValue(column, value string) any {
	if column == "user_id" || column == "id" {
		if id, ok := tc.userIDs[value]; ok {
			return id.String()
		}
		return value
	}
	if strings.HasSuffix(column, "date") || strings.HasSuffix(column, "_at") {
		if len(value) == len("2006-01-02") {
			return value + "T00:00:00Z"
		}
		return value
	}
	if number, err := strconv.ParseFloat(value, 64); err == nil {
		return number
	}
	return value
}

func theTableIsUnavailable(ctx context.Context, table string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.supabase.FailTable(table)
	return SetTestContext(ctx, tc), nil
}

// Step implementations: requests

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, bytes.NewBufferString(body.Content))
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

// sendRequest performs the HTTP call without following redirects so gate
// responses can be asserted as-is.
func sendRequest(ctx context.Context, method, endpoint string, body io.Reader) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}
	for name, value := range tc.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}
