// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rahul5Q/judicial-system/cmd/casetrack/cli"
	"github.com/rahul5Q/judicial-system/lib/casefile"
	"github.com/rahul5Q/judicial-system/lib/docket"
)

// testDataFile creates a case data file holding the given cases and
// returns its path.
func testDataFile(t *testing.T, cases ...docket.Case) string {
	t.Helper()
	// Keep the run functions away from any real user config.
	t.Setenv("CASETRACK_CONFIG", filepath.Join(t.TempDir(), "no-config.yaml"))
	path := filepath.Join(t.TempDir(), "cases.json")
	file := casefile.New(path, slog.New(slog.DiscardHandler))
	if err := file.Save(cases); err != nil {
		t.Fatalf("seeding data file: %v", err)
	}
	return path
}

// loadDataFile reads the case data file back for assertions.
func loadDataFile(t *testing.T, path string) []docket.Case {
	t.Helper()
	cases, err := casefile.New(path, slog.New(slog.DiscardHandler)).Load()
	if err != nil {
		t.Fatalf("loading data file: %v", err)
	}
	return cases
}

func TestOpenStoreDropsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.json")
	content := `[
		{"caseId": "CRIM-01", "title": "first"},
		{"caseId": "crim-01", "title": "second"},
		{"caseId": "CIV-02", "title": "third"}
	]`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	store, _, dropped, err := openStore(path, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	if dropped != 1 {
		t.Errorf("expected 1 dropped duplicate, got %d", dropped)
	}
	if store.Len() != 2 {
		t.Errorf("store should hold 2 cases, got %d", store.Len())
	}

	kept, err := store.Get("CRIM-01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if kept.Title != "first" {
		t.Errorf("dedupe should keep the first occurrence, got %q", kept.Title)
	}
}

func TestRunRegisterWritesThrough(t *testing.T) {
	path := testDataFile(t)

	err := runRegister(path, docket.Case{
		CaseID:      "crim-2024-001",
		Title:       "State v. Doe",
		Status:      "filed",
		HearingDate: "2024-05-01",
	})
	if err != nil {
		t.Fatalf("runRegister: %v", err)
	}

	cases := loadDataFile(t, path)
	if len(cases) != 1 {
		t.Fatalf("data file should hold 1 case, got %d", len(cases))
	}
	if cases[0].CaseID != "CRIM-2024-001" {
		t.Errorf("case ID should be normalized, got %q", cases[0].CaseID)
	}
	if cases[0].Status != docket.StatusFiled {
		t.Errorf("lowercase status flag should canonicalize, got %q", cases[0].Status)
	}
}

func TestRunRegisterRejectsDuplicate(t *testing.T) {
	path := testDataFile(t, docket.Case{CaseID: "CRIM-01", Title: "existing"})

	err := runRegister(path, docket.Case{CaseID: "crim-01", Status: docket.StatusFiled})
	if err == nil {
		t.Fatal("duplicate ID should fail")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Errorf("unexpected error: %v", err)
	}

	if cases := loadDataFile(t, path); len(cases) != 1 || cases[0].Title != "existing" {
		t.Errorf("failed register must not modify the data file, got %+v", cases)
	}
}

func TestRunRegisterRejectsUnknownStatus(t *testing.T) {
	path := testDataFile(t)

	err := runRegister(path, docket.Case{CaseID: "CRIM-01", Status: "pending appeal"})
	if err == nil {
		t.Fatal("unknown status should fail")
	}
	if !strings.Contains(err.Error(), "unknown status") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunRemoveWritesThrough(t *testing.T) {
	path := testDataFile(t,
		docket.Case{CaseID: "CRIM-01"},
		docket.Case{CaseID: "CIV-02"},
	)

	if err := runRemove(path, "crim-01", true); err != nil {
		t.Fatalf("runRemove: %v", err)
	}

	cases := loadDataFile(t, path)
	if len(cases) != 1 || cases[0].CaseID != "CIV-02" {
		t.Errorf("data file should hold only CIV-02, got %+v", cases)
	}
}

func TestRunRemoveNotFound(t *testing.T) {
	path := testDataFile(t, docket.Case{CaseID: "CRIM-01"})

	err := runRemove(path, "CIV-99", true)
	if err == nil {
		t.Fatal("removing an absent case should fail")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}

	if cases := loadDataFile(t, path); len(cases) != 1 {
		t.Errorf("failed remove must not modify the data file, got %+v", cases)
	}
}

func TestRunListNoMatchesExitsNonZero(t *testing.T) {
	path := testDataFile(t, docket.Case{CaseID: "CRIM-01", Title: "State v. Doe"})

	err := runList(path, "zzz")
	var exitErr *cli.ExitError
	if err == nil {
		t.Fatal("no matches should produce an ExitError")
	}
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Errorf("expected exit code 1, got %v", err)
	}
}

func TestRunListEmptyDocketIsNotAnError(t *testing.T) {
	path := testDataFile(t)

	if err := runList(path, ""); err != nil {
		t.Errorf("listing an empty docket should succeed, got %v", err)
	}
}
