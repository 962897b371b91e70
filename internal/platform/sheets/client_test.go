package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func decodeAction(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	if err := r.ParseForm(); err != nil {
		t.Fatalf("parse form failed: %v", err)
	}
	raw := r.PostFormValue("data")
	if raw == "" {
		t.Fatalf("expected a data form field")
	}
	payload := map[string]any{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	return payload
}

func TestLoadEmployees(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := decodeAction(t, r)
		if payload["action"] != "carregarFuncionarios" {
			t.Fatalf("unexpected action %v", payload["action"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"funcionarios": []string{"Ana", "Carlos"},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	names, err := client.LoadEmployees(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != "Ana" || names[1] != "Carlos" {
		t.Fatalf("unexpected roster: %v", names)
	}
}

func TestSaveDayWireFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := decodeAction(t, r)
		if payload["action"] != "salvarDia" {
			t.Fatalf("unexpected action %v", payload["action"])
		}
		if payload["chaveData"] != "2025-06-16" {
			t.Fatalf("unexpected date key %v", payload["chaveData"])
		}
		entries, ok := payload["dados"].(map[string]any)
		if !ok {
			t.Fatalf("expected dados map, got %T", payload["dados"])
		}
		entry, ok := entries["Ana"].(map[string]any)
		if !ok {
			t.Fatalf("expected an entry for Ana")
		}
		if entry["entrada"] != "08:00" || entry["saida"] != "17:00" {
			t.Fatalf("unexpected punch fields: %v", entry)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	err := client.SaveDay(context.Background(), "2025-06-16", map[string]DayEntry{
		"Ana": {ClockIn: "08:00", BreakStart: "12:00", BreakEnd: "13:00", ClockOut: "17:00"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCallSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "planilha indisponível"})
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	if _, err := client.LoadHolidays(context.Background()); err == nil {
		t.Fatalf("expected error from unsuccessful response")
	}
}

func TestDisabledClient(t *testing.T) {
	if New("", time.Second).Enabled() {
		t.Fatalf("expected empty URL to disable the client")
	}
	var nilClient *Client
	if nilClient.Enabled() {
		t.Fatalf("expected nil client to report disabled")
	}
}
