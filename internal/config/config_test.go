package config

import (
	"testing"
	"time"
)

func TestLoadDefaultConfig(t *testing.T) {
	opts, err := GetConfig()
	if err != nil {
		t.Errorf("Error loading config: %s", err)
	}

	if opts.Version != defaultVersion {
		t.Errorf("Version not set")
	}
	if opts.Stylesheet != "/static/catalog.css" {
		t.Errorf("Stylesheet not set, got %q", opts.Stylesheet)
	}
	if opts.SearchAction != "/bookserver/catalog/search" {
		t.Errorf("SearchAction not set, got %q", opts.SearchAction)
	}
	if opts.OpenSearchTimeoutDuration() != 10*time.Second {
		t.Errorf("unexpected timeout %s", opts.OpenSearchTimeoutDuration())
	}
}

func TestLoadConfigFile(t *testing.T) {
	opts, err := ParseFile("config_test.toml")
	if err != nil {
		t.Fatalf("Error loading config: %s", err)
	}
	t.Logf(`Config
		Version: %s
		Host: %s
		Port: %d
		LogLevel: %s
		LogFile: %s
		`, opts.Version, opts.Host, opts.Port, opts.LogLevel, opts.LogFile)
	if opts.Version != "1.0.0" {
		t.Errorf("Version not set")
	}
	if opts.Host != "127.0.0.1" {
		t.Errorf("Host not set")
	}
	if opts.LogFile != "test.log" {
		t.Errorf("LogFile not set")
	}
	if opts.Port != 2333 {
		t.Errorf("Port not set")
	}
	if opts.LogLevel != "DEBUG" {
		t.Errorf("LogLevel not set")
	}
	if opts.Provider != "Feedbooks" || !opts.FabricateContent {
		t.Errorf("renderer options not set: %+v", opts)
	}
	// Keys missing from the file keep their defaults.
	if opts.SearchAction != defaultSearchAction {
		t.Errorf("SearchAction lost its default, got %q", opts.SearchAction)
	}
}

func TestParseFileErrors(t *testing.T) {
	if _, err := ParseFile("missing.toml"); err == nil {
		t.Error("expected an error for a missing file")
	}
	if _, err := ParseFile("bad_config_test.toml"); err == nil {
		t.Error("expected a validation error for worker_pool_size = 0")
	}
}
