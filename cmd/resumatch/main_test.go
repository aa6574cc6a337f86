package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/resumatch/candidate-search/internal/core/access"
	"github.com/resumatch/candidate-search/internal/core/domain"
	"github.com/resumatch/candidate-search/internal/core/matching"
	"github.com/resumatch/candidate-search/internal/infrastructure/memory"
)

func TestAuthorizeCommand_JSON(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"authorize", "--path", "/search", "--role", "applicant", "--json"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		authorizeJSON = false
		authorizeRole = ""
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var d access.Decision
	if err := json.Unmarshal(out.Bytes(), &d); err != nil {
		t.Fatalf("invalid json %q: %v", out.String(), err)
	}
	if d.Allow || d.RedirectTo != access.PathUploadStatus {
		t.Fatalf("unexpected decision: %+v", d)
	}
}

func TestPrintDecision(t *testing.T) {
	var out bytes.Buffer
	printDecision(&out, "/admin/candidates", domain.Session{}, access.Decision{RedirectTo: "/login"})
	if !strings.Contains(out.String(), "anonymous") || !strings.Contains(out.String(), "/login") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestPrintResults(t *testing.T) {
	var out bytes.Buffer
	results := matching.Rank("python developer", memory.MockCandidates())
	printResults(&out, "python developer", results)

	if !strings.Contains(out.String(), "John Smith Resume.pdf") || !strings.Contains(out.String(), "Matched skills: Python.") {
		t.Fatalf("unexpected output: %q", out.String())
	}

	out.Reset()
	printResults(&out, "cobol", nil)
	if !strings.Contains(out.String(), "No candidates match") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
