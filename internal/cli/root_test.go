package cli

import (
	"testing"
)

func TestNewRootCmd(t *testing.T) {
	root := newRootCmd()

	if root.Use != "pindex" {
		t.Errorf("Use = %q, want %q", root.Use, "pindex")
	}
	if !root.SilenceUsage {
		t.Error("SilenceUsage should be set")
	}

	want := []string{"deps", "resolve", "lockfiles", "completion"}
	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, name := range want {
		if !names[name] {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestRootPersistentFlags(t *testing.T) {
	root := newRootCmd()

	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("missing --verbose flag")
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}
