package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"booknerd/internal/catalog"
	"booknerd/internal/config"
)

// setupTestCatalog points the package globals at a fresh temp library.
// The one-shot commands run against whatever these globals hold.
func setupTestCatalog(t *testing.T) {
	t.Helper()

	logger = zap.NewNop()
	appCfg = config.DefaultConfig()
	appCfg.Library.Path = filepath.Join(t.TempDir(), "library.json")

	if err := os.WriteFile(appCfg.Library.Path, []byte("[]"), 0644); err != nil {
		t.Fatalf("failed to seed library: %v", err)
	}

	st := catalog.NewStore(appCfg.Library.Path)
	if err := st.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	store = st
}

func TestRunAdd(t *testing.T) {
	setupTestCatalog(t)

	output := captureOutput(t, func() {
		if err := runAdd(&cobra.Command{}, []string{"Dune", "Frank Herbert", "1965"}); err != nil {
			t.Fatalf("runAdd returned error: %v", err)
		}
	})

	if !strings.Contains(output, "ID 1") {
		t.Fatalf("expected assigned ID in output, got: %s", output)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 book in store, got %d", store.Len())
	}
}

func TestRunAdd_BadYear(t *testing.T) {
	setupTestCatalog(t)

	if err := runAdd(&cobra.Command{}, []string{"Dune", "Frank Herbert", "sixty-five"}); err == nil {
		t.Fatal("expected error for non-numeric year")
	}
	if store.Len() != 0 {
		t.Fatalf("store mutated by rejected add: %d books", store.Len())
	}
}

func TestRunRemove_Unknown(t *testing.T) {
	setupTestCatalog(t)

	err := runRemove(&cobra.Command{}, []string{"999"})
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunSearch(t *testing.T) {
	setupTestCatalog(t)
	if _, err := store.Add("The Theory of Everything", "John Smith", 2002); err != nil {
		t.Fatalf("seed add failed: %v", err)
	}

	output := captureOutput(t, func() {
		if err := runSearch(&cobra.Command{}, []string{"author", "SMITH"}); err != nil {
			t.Fatalf("runSearch returned error: %v", err)
		}
	})
	if !strings.Contains(output, "John Smith") {
		t.Fatalf("expected match in output, got: %s", output)
	}

	output = captureOutput(t, func() {
		if err := runSearch(&cobra.Command{}, []string{"title", "dragons"}); err != nil {
			t.Fatalf("runSearch returned error: %v", err)
		}
	})
	if !strings.Contains(output, "No books match") {
		t.Fatalf("expected empty-result message, got: %s", output)
	}
}

func TestRunSearch_JoinsQueryWords(t *testing.T) {
	setupTestCatalog(t)
	if _, err := store.Add("A Brief History of Time", "Stephen Hawking", 1988); err != nil {
		t.Fatalf("seed add failed: %v", err)
	}

	output := captureOutput(t, func() {
		if err := runSearch(&cobra.Command{}, []string{"title", "history", "of", "time"}); err != nil {
			t.Fatalf("runSearch returned error: %v", err)
		}
	})
	if !strings.Contains(output, "Stephen Hawking") {
		t.Fatalf("expected multi-word query to match, got: %s", output)
	}
}

func TestRunList(t *testing.T) {
	setupTestCatalog(t)

	output := captureOutput(t, func() {
		if err := runList(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runList returned error: %v", err)
		}
	})
	if !strings.Contains(output, "empty") {
		t.Fatalf("expected empty-catalog message, got: %s", output)
	}

	if _, err := store.Add("Dune", "Frank Herbert", 1965); err != nil {
		t.Fatalf("seed add failed: %v", err)
	}
	output = captureOutput(t, func() {
		if err := runList(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runList returned error: %v", err)
		}
	})
	if !strings.Contains(output, "Dune") || !strings.Contains(output, "1 book") {
		t.Fatalf("expected listing with count, got: %s", output)
	}
}

func TestRunStatus(t *testing.T) {
	setupTestCatalog(t)
	if _, err := store.Add("Dune", "Frank Herbert", 1965); err != nil {
		t.Fatalf("seed add failed: %v", err)
	}

	output := captureOutput(t, func() {
		if err := runStatus(&cobra.Command{}, []string{"1", "CheckedOut"}); err != nil {
			t.Fatalf("runStatus returned error: %v", err)
		}
	})
	if !strings.Contains(output, "CheckedOut") {
		t.Fatalf("expected status confirmation, got: %s", output)
	}

	if err := runStatus(&cobra.Command{}, []string{"1", "borrowed"}); !errors.Is(err, catalog.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown label, got %v", err)
	}
}

func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	logger = zap.NewNop()
	appCfg = config.DefaultConfig()
	appCfg.Library.Path = filepath.Join(dir, "data", "library.json")

	configPath = filepath.Join(dir, "config.yaml")
	t.Cleanup(func() { configPath = "" })

	output := captureOutput(t, func() {
		if err := runInit(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runInit returned error: %v", err)
		}
	})
	if !strings.Contains(output, "Library created") {
		t.Fatalf("expected creation notice, got: %s", output)
	}

	// The created library must be loadable.
	st := catalog.NewStore(appCfg.Library.Path)
	if err := st.Load(); err != nil {
		t.Fatalf("created library failed to load: %v", err)
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("starter config missing: %v", err)
	}

	// A second init must refuse to touch the existing library.
	if err := runInit(&cobra.Command{}, nil); err == nil {
		t.Fatal("expected error when library already exists")
	}
}

func TestOpenStore_MissingLibrary(t *testing.T) {
	logger = zap.NewNop()
	appCfg = config.DefaultConfig()
	appCfg.Library.Path = filepath.Join(t.TempDir(), "nope", "library.json")

	_, err := openStore()
	if !errors.Is(err, catalog.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "booknerd init") {
		t.Fatalf("expected init advice in error, got: %v", err)
	}
}

func TestResolveConfigPath(t *testing.T) {
	configPath = "/tmp/custom.yaml"
	t.Cleanup(func() { configPath = "" })

	if got := resolveConfigPath(); got != "/tmp/custom.yaml" {
		t.Fatalf("expected flag override, got %q", got)
	}

	configPath = ""
	if got := resolveConfigPath(); got == "" {
		t.Fatal("expected a default config path")
	}
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	origErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		_, _ = io.Copy(&buf, rErr)
		done <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = origOut
	os.Stderr = origErr
	return <-done
}
