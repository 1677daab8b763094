package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staffhub/internal/app/server"
	"staffhub/internal/platform/config"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error any             `json:"error"`
}

func testConfig() config.Config {
	return config.Config{
		KVDriver:     "memory",
		JWTSecret:    "test-secret",
		Environment:  "test",
		SeedDemoData: true,
		MaxBodyBytes: 1048576,
	}
}

func TestAdminJourney(t *testing.T) {
	app, err := server.New(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()
	client := ts.Client()

	token := login(t, client, ts.URL, "admin@company.com", "any-password")

	employees := listJSON(t, client, ts.URL+"/api/v1/employees", token)
	if len(employees) != 4 {
		t.Fatalf("expected 4 seeded employees, got %d", len(employees))
	}

	employeeID := createEmployee(t, client, ts.URL, token)

	employees = listJSON(t, client, ts.URL+"/api/v1/employees", token)
	if len(employees) != 5 {
		t.Fatalf("expected 5 employees after create, got %d", len(employees))
	}

	matches := listJSON(t, client, ts.URL+"/api/v1/employees?query=rivera&department=Engineering", token)
	if len(matches) != 1 {
		t.Fatalf("expected 1 search match, got %d", len(matches))
	}

	leaveID := submitLeave(t, client, ts.URL, token, employeeID)
	status := reviewLeave(t, client, ts.URL, token, leaveID, "approved")
	if status != "approved" {
		t.Fatalf("expected approved leave, got %s", status)
	}

	recordID := addPayrollRecord(t, client, ts.URL, token, employeeID)
	if recordID == "" {
		t.Fatal("expected payroll record id")
	}

	slipID := generateSlip(t, client, ts.URL, token, employeeID)
	downloadSlipPDF(t, client, ts.URL, token, slipID)
}

func TestGuardRejectsAnonymous(t *testing.T) {
	app, err := server.New(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/api/v1/employees")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous request, got %d", resp.StatusCode)
	}
}

func TestHealthEndpoints(t *testing.T) {
	app, err := server.New(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := ts.Client().Get(ts.URL + path)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 from %s, got %d", path, resp.StatusCode)
		}
	}
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) string {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/v1/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	var payload struct {
		Token string `json:"token"`
		User  struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if payload.Token == "" {
		t.Fatal("expected session token")
	}
	if payload.User.Name != "Admin User" {
		t.Fatalf("expected admin display name, got %q", payload.User.Name)
	}
	return payload.Token
}

func createEmployee(t *testing.T, client *http.Client, baseURL, token string) string {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/v1/employees", token, map[string]any{
		"name":       "Alex Rivera",
		"email":      "alex.rivera@company.com",
		"phone":      "+1 (555) 987-0000",
		"department": "Engineering",
		"position":   "Backend Developer",
		"joinDate":   "2025-06-01",
		"salary":     82000,
		"status":     "active",
		"address":    "12 Harbor Street, Seattle, WA 98101",
		"emergencyContact": map[string]any{
			"name":         "Sam Rivera",
			"phone":        "+1 (555) 987-0001",
			"relationship": "Spouse",
		},
	})
	var payload map[string]any
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode employee response: %v", err)
	}
	id, _ := payload["id"].(string)
	if id == "" {
		t.Fatal("expected employee id")
	}
	return id
}

func submitLeave(t *testing.T, client *http.Client, baseURL, token, employeeID string) string {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/v1/leave", token, map[string]any{
		"employeeId":    employeeID,
		"employeeName":  "Alex Rivera",
		"employeeEmail": "alex.rivera@company.com",
		"leaveType":     "vacation",
		"startDate":     "2026-01-10",
		"endDate":       "2026-01-12",
		"reason":        "Family trip",
	})
	var payload map[string]any
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode leave response: %v", err)
	}
	if status, _ := payload["status"].(string); status != "pending" {
		t.Fatalf("expected pending application, got %v", payload["status"])
	}
	if days, _ := payload["days"].(float64); days != 3 {
		t.Fatalf("expected 3 inclusive days, got %v", payload["days"])
	}
	id, _ := payload["id"].(string)
	if id == "" {
		t.Fatal("expected leave application id")
	}
	return id
}

func reviewLeave(t *testing.T, client *http.Client, baseURL, token, leaveID, decision string) string {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/v1/leave/"+leaveID+"/review", token, map[string]any{
		"decision": decision,
		"comments": "Enjoy",
	})
	var payload map[string]any
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode review response: %v", err)
	}
	if reviewer, _ := payload["reviewedBy"].(string); reviewer != "Admin User" {
		t.Fatalf("expected reviewer from session, got %q", reviewer)
	}
	status, _ := payload["status"].(string)
	return status
}

func addPayrollRecord(t *testing.T, client *http.Client, baseURL, token, employeeID string) string {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/v1/payroll/records", token, map[string]any{
		"employeeId":   employeeID,
		"employeeName": "Alex Rivera",
		"month":        "January",
		"year":         2026,
		"basicSalary":  6800,
		"allowances":   900,
		"deductions":   700,
		"status":       "pending",
	})
	var payload map[string]any
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode payroll response: %v", err)
	}
	if net, _ := payload["netSalary"].(float64); net != 7000 {
		t.Fatalf("expected net salary 7000, got %v", payload["netSalary"])
	}
	id, _ := payload["id"].(string)
	return id
}

func generateSlip(t *testing.T, client *http.Client, baseURL, token, employeeID string) string {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/v1/payroll/slips", token, map[string]any{
		"employeeId":         employeeID,
		"employeeName":       "Alex Rivera",
		"position":           "Backend Developer",
		"department":         "Engineering",
		"month":              "January",
		"year":               2026,
		"basicSalary":        6800,
		"hra":                500,
		"transportAllowance": 200,
		"medicalAllowance":   200,
		"otherAllowances":    0,
		"providentFund":      400,
		"tax":                250,
		"otherDeductions":    50,
	})
	var payload map[string]any
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode slip response: %v", err)
	}
	if gross, _ := payload["grossSalary"].(float64); gross != 7700 {
		t.Fatalf("expected gross 7700, got %v", payload["grossSalary"])
	}
	if net, _ := payload["netSalary"].(float64); net != 7000 {
		t.Fatalf("expected net 7000, got %v", payload["netSalary"])
	}
	id, _ := payload["id"].(string)
	if id == "" {
		t.Fatal("expected slip id")
	}
	return id
}

func downloadSlipPDF(t *testing.T, client *http.Client, baseURL, token, slipID string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v1/payroll/slips/"+slipID+"/download", nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for slip download, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %s", ct)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read pdf body: %v", err)
	}
	if !strings.HasPrefix(string(raw), "%PDF") {
		t.Fatal("expected PDF payload")
	}
}

func listJSON(t *testing.T, client *http.Client, url, token string) []map[string]any {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if resp.StatusCode >= 400 {
		t.Fatalf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	var payload []map[string]any
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("failed to decode list payload: %v", err)
	}
	return payload
}

func postJSON(t *testing.T, client *http.Client, url, token string, body any) envelope {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	}
	req, err := http.NewRequest(http.MethodPost, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if resp.StatusCode >= 400 {
		t.Fatalf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return env
}
