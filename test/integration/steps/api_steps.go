// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

// substitutePlaceholders replaces the id placeholders in a request path with
// the ids captured by earlier steps.
func (tc *TestContext) substitutePlaceholders(path string) string {
	replacer := strings.NewReplacer(
		"{tenantId}", strconv.FormatUint(uint64(tc.lastTenantID), 10),
		"{invoiceId}", strconv.FormatUint(uint64(tc.lastInvoiceID), 10),
		"{transactionId}", strconv.FormatUint(uint64(tc.lastTransactionID), 10),
		"{matchId}", strconv.FormatUint(uint64(tc.lastMatchID), 10),
	)
	return replacer.Replace(path)
}

// doRequest performs a request against the scenario's server and captures the
// response, including ids the next steps may refer to.
func (tc *TestContext) doRequest(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.substitutePlaceholders(path), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	tc.responseJSON = nil
	var parsed map[string]any
	if json.Unmarshal(tc.responseBody, &parsed) == nil {
		tc.responseJSON = parsed
		tc.captureIDs(parsed)
	}
	return nil
}

// captureIDs remembers ids from well-known response fields so later steps can
// reference them through path placeholders.
func (tc *TestContext) captureIDs(parsed map[string]any) {
	if matches, ok := parsed["matches"].([]any); ok && len(matches) > 0 {
		if first, ok := matches[0].(map[string]any); ok {
			if id, ok := first["id"].(float64); ok {
				tc.lastMatchID = uint(id)
			}
		}
	}
	if match, ok := parsed["match"].(map[string]any); ok {
		if id, ok := match["id"].(float64); ok {
			tc.lastMatchID = uint(id)
		}
	}
	if ids, ok := parsed["created_ids"].([]any); ok && len(ids) > 0 {
		if id, ok := ids[0].(float64); ok {
			tc.lastTransactionID = uint(id)
		}
	}
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if err := tc.doRequest(http.MethodGet, "/health", nil); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("expected the health endpoint to return 200, got %d", tc.response.StatusCode)
	}
	return nil
}

func aTenantNamedExists(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	body, _ := json.Marshal(map[string]string{"name": name})
	if err := tc.doRequest(http.MethodPost, "/api/v1/tenants", body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to create tenant %q: status %d, body %s",
			name, tc.response.StatusCode, tc.responseBody)
	}
	id, ok := tc.responseJSON["id"].(float64)
	if !ok {
		return fmt.Errorf("tenant response has no id: %s", tc.responseBody)
	}
	tc.tenantIDs[name] = uint(id)
	tc.lastTenantID = uint(id)
	return nil
}

func theTenantHasAnOpenInvoice(ctx context.Context, amount, currency, date, description string) error {
	tc := GetTestContext(ctx)
	body, _ := json.Marshal(map[string]string{
		"number":       fmt.Sprintf("INV-%d", tc.lastInvoiceID+1),
		"amount":       amount,
		"currency":     currency,
		"invoice_date": date,
		"description":  description,
	})
	if err := tc.doRequest(http.MethodPost, "/api/v1/tenants/{tenantId}/invoices", body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to create invoice: status %d, body %s",
			tc.response.StatusCode, tc.responseBody)
	}
	id, ok := tc.responseJSON["id"].(float64)
	if !ok {
		return fmt.Errorf("invoice response has no id: %s", tc.responseBody)
	}
	tc.lastInvoiceID = uint(id)
	return nil
}

func theTenantHasAnImportedTransaction(ctx context.Context, amount, currency, postedAt, description string) error {
	tc := GetTestContext(ctx)
	body, _ := json.Marshal(map[string]any{
		"transactions": []map[string]string{{
			"posted_at":   postedAt,
			"amount":      amount,
			"currency":    currency,
			"description": description,
		}},
	})

	headers := tc.requestHeaders
	tc.requestHeaders = map[string]string{
		"Idempotency-Key": fmt.Sprintf("setup-%d-%s", tc.lastTenantID, postedAt+amount+description),
	}
	err := tc.doRequest(http.MethodPost, "/api/v1/tenants/{tenantId}/bank-transactions/import", body)
	tc.requestHeaders = headers
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to import transaction: status %d, body %s",
			tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theProposedMatchesHaveBeenComputed(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if err := tc.doRequest(http.MethodPost, "/api/v1/tenants/{tenantId}/reconcile", nil); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("reconcile failed: status %d, body %s",
			tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theHeaderIsEmpty(ctx context.Context) error {
	GetTestContext(ctx).requestHeaders = make(map[string]string)
	return nil
}

func theHeaderContainsTheKeyWith(ctx context.Context, key, value string) error {
	GetTestContext(ctx).requestHeaders[key] = value
	return nil
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	return GetTestContext(ctx).doRequest(method, path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	return GetTestContext(ctx).doRequest(method, path, []byte(body.Content))
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d with body %s",
			status, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	var parsed any
	if err := json.Unmarshal(tc.responseBody, &parsed); err != nil {
		return fmt.Errorf("response is not valid JSON: %s", tc.responseBody)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("expected response to contain %q, got %s", expected, tc.responseBody)
	}
	return nil
}

// valueAtPath navigates a parsed JSON document along a dot-separated path.
// Numeric segments index into arrays.
func valueAtPath(document any, path string) (any, bool) {
	current := document
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, false
			}
			current = node[index]
		default:
			return nil, false
		}
	}
	return current, true
}

// formatJSONValue renders a JSON leaf the way the feature files write it.
func formatJSONValue(value any) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return "null"
	default:
		return fmt.Sprint(v)
	}
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	if tc.responseJSON == nil {
		return fmt.Errorf("response is not a JSON object: %s", tc.responseBody)
	}
	value, ok := valueAtPath(tc.responseJSON, path)
	if !ok {
		return fmt.Errorf("field %q not found in response %s", path, tc.responseBody)
	}
	if got := formatJSONValue(value); got != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, got)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc.responseJSON == nil {
		return fmt.Errorf("response is not a JSON object: %s", tc.responseBody)
	}
	if _, ok := valueAtPath(tc.responseJSON, path); !ok {
		return fmt.Errorf("field %q not found in response %s", path, tc.responseBody)
	}
	return nil
}

func theResponseShouldHaveItemsIn(ctx context.Context, count int, path string) error {
	tc := GetTestContext(ctx)
	if tc.responseJSON == nil {
		return fmt.Errorf("response is not a JSON object: %s", tc.responseBody)
	}
	value, ok := valueAtPath(tc.responseJSON, path)
	if !ok {
		return fmt.Errorf("field %q not found in response %s", path, tc.responseBody)
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not an array in response %s", path, tc.responseBody)
	}
	if len(items) != count {
		return fmt.Errorf("expected %d items in %q, got %d", count, path, len(items))
	}
	return nil
}

func theResponseHeaderShouldBe(ctx context.Context, name, expected string) error {
	tc := GetTestContext(ctx)
	if got := tc.response.Header.Get(name); got != expected {
		return fmt.Errorf("expected header %q to be %q, got %q", name, expected, got)
	}
	return nil
}

func theResponseHeaderShouldBeEmpty(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if got := tc.response.Header.Get(name); got != "" {
		return fmt.Errorf("expected header %q to be empty, got %q", name, got)
	}
	return nil
}
