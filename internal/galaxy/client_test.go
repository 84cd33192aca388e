package galaxy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blankenberg/ephemeris/internal/domain"
)

func TestClient_SubmitJob(t *testing.T) {
	var gotPath, gotKey string
	var gotBody submitRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(domain.JobSubmission{
			Outputs: []domain.JobOutput{{ID: "ds1", HID: 7}},
			Jobs:    []domain.JobRef{{ID: "job1"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	submission, err := client.SubmitJob(context.Background(), "dm_fetch",
		domain.ResolvedInputs{"dbkey": "hg19"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/tools" {
		t.Errorf("expected /api/tools, got %s", gotPath)
	}
	if gotKey != "secret" {
		t.Errorf("expected api key header, got %q", gotKey)
	}
	if gotBody.ToolID != "dm_fetch" {
		t.Errorf("expected tool_id dm_fetch, got %s", gotBody.ToolID)
	}
	if gotBody.Inputs["dbkey"] != "hg19" {
		t.Errorf("expected dbkey input, got %v", gotBody.Inputs)
	}

	if len(submission.Outputs) != 1 || submission.Outputs[0].ID != "ds1" {
		t.Errorf("unexpected outputs: %+v", submission.Outputs)
	}
	if submission.Outputs[0].HID != 7 {
		t.Errorf("expected hid 7, got %d", submission.Outputs[0].HID)
	}
}

func TestClient_SubmitJob_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"err_msg": "tool not installed"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	_, err := client.SubmitJob(context.Background(), "missing_dm", nil)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "tool not installed" {
		t.Errorf("expected err_msg in error, got %q", apiErr.Message)
	}
}

func TestClient_DatasetState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/datasets/ds1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "ds1", "state": "running"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	state, err := client.DatasetState(context.Background(), "ds1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != "running" {
		t.Errorf("expected running, got %s", state)
	}
	if state.IsTerminal() {
		t.Error("running should not be terminal")
	}
}

func TestClient_DataTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.LookupTable{
			Name:    "all_fasta",
			Columns: []string{"value", "dbkey", "name", "path"},
			Fields:  [][]string{{"hg19", "hg19", "Human hg19", "/data/hg19.fa"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	table, err := client.DataTable(context.Background(), "all_fasta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Name != "all_fasta" {
		t.Errorf("unexpected table name %s", table.Name)
	}

	found, columnExists := table.HasEntry("value", "hg19")
	if !columnExists || !found {
		t.Error("expected hg19 entry in value column")
	}
}

func TestClient_DataTable_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.DataTable(context.Background(), "no_such_table")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrTableNotFound) {
		t.Errorf("expected ErrTableNotFound, got %v", err)
	}
}

func TestClient_Genomes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([][]string{
			{"Human Dec. 2013 (hg38)", "hg38"},
			{"Yeast Apr. 2011 (sacCer3)", "sacCer3"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	genomes, err := client.Genomes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(genomes) != 2 {
		t.Errorf("expected 2 genomes, got %d", len(genomes))
	}
	if genomes[0][1] != "hg38" {
		t.Errorf("expected hg38 dbkey, got %v", genomes[0])
	}
}

func TestAuthenticate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "admin@example.org" || pass != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"api_key": "generated-key"})
	}))
	defer server.Close()

	key, err := Authenticate(context.Background(), server.URL, "admin@example.org", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "generated-key" {
		t.Errorf("expected generated-key, got %q", key)
	}

	// Неверный пароль.
	_, err = Authenticate(context.Background(), server.URL, "admin@example.org", "wrong")
	if !errors.Is(err, ErrAuthFailed) {
		t.Errorf("expected ErrAuthFailed, got %v", err)
	}
}
