// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package docketui

import (
	"strings"
	"testing"

	"github.com/rahul5Q/judicial-system/lib/docket"
)

func searchFixture() []docket.Case {
	return []docket.Case{
		{CaseID: "CRIM-01", Title: "State v. Doe", Parties: "State; J. Doe"},
		{CaseID: "CIV-02", Title: "Smith v. Jones", Parties: "A. Smith; B. Jones"},
		{CaseID: "CRIM-03", Title: "State v. Roe", Parties: "State; R. Roe"},
	}
}

func TestSearchApplyEmptyQueryReturnsAll(t *testing.T) {
	search := &SearchModel{}
	got := search.Apply(searchFixture())
	if len(got) != 3 {
		t.Errorf("empty query should match all 3 cases, got %d", len(got))
	}
}

func TestSearchApplyFiltersAcrossFields(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"crim", []string{"CRIM-01", "CRIM-03"}},
		{"smith", []string{"CIV-02"}},
		{"state", []string{"CRIM-01", "CRIM-03"}},
		{"doe", []string{"CRIM-01"}},
		{"nothing-matches", nil},
	}

	for _, test := range tests {
		search := &SearchModel{Input: test.query}
		got := search.Apply(searchFixture())
		if len(got) != len(test.want) {
			t.Errorf("query %q: expected %d matches, got %d", test.query, len(test.want), len(got))
			continue
		}
		for index, wantID := range test.want {
			if got[index].CaseID != wantID {
				t.Errorf("query %q match %d: expected %s, got %s", test.query, index, wantID, got[index].CaseID)
			}
		}
	}
}

func TestSearchHandleBackspace(t *testing.T) {
	search := &SearchModel{Input: "ab"}

	if !search.HandleBackspace() {
		t.Error("backspace on non-empty query should report a change")
	}
	if search.Input != "a" {
		t.Errorf("expected query %q, got %q", "a", search.Input)
	}

	search.HandleBackspace()
	if search.HandleBackspace() {
		t.Error("backspace on empty query should report no change")
	}
}

func TestSearchHandleBackspaceMultibyte(t *testing.T) {
	search := &SearchModel{Input: "Ñ"}
	search.HandleBackspace()
	if search.Input != "" {
		t.Errorf("backspace should remove the whole rune, got %q", search.Input)
	}
}

func TestSearchClear(t *testing.T) {
	search := &SearchModel{Input: "crim", Active: true}
	search.Clear()
	if search.Input != "" || search.Active {
		t.Errorf("clear should reset query and focus, got %+v", search)
	}
}

func TestSearchView(t *testing.T) {
	search := &SearchModel{}
	if view := search.View(DefaultTheme, 80); view != "" {
		t.Errorf("inactive empty search should render nothing, got %q", view)
	}

	search.Active = true
	search.Input = "crim"
	if view := search.View(DefaultTheme, 80); !strings.Contains(view, "crim") {
		t.Errorf("active search should show the query, got %q", view)
	}

	search.Active = false
	if view := search.View(DefaultTheme, 80); !strings.Contains(view, "search: crim") {
		t.Errorf("inactive search with text should show the filter indicator, got %q", view)
	}
}
