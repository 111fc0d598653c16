// ABOUTME: Tests for the dream command structure
// ABOUTME: Verifies flags, argument limits and help text
package commands

import (
	"strings"
	"testing"
)

func TestNewDreamCmd(t *testing.T) {
	cmd := NewDreamCmd()

	if !strings.HasPrefix(cmd.Use, "dream") {
		t.Errorf("Use = %q, want prefix %q", cmd.Use, "dream")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	for _, flagName := range []string{"file", "style", "review"} {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("--%s flag not found", flagName)
		}
	}

	if flag := cmd.Flags().Lookup("style"); flag != nil && flag.DefValue != "surreal" {
		t.Errorf("--style default = %q, want %q", flag.DefValue, "surreal")
	}
}

func TestDreamCmd_RejectsExtraArgs(t *testing.T) {
	cmd := NewDreamCmd()
	if err := cmd.Args(cmd, []string{"one", "two"}); err == nil {
		t.Error("expected error for more than one positional argument")
	}
	if err := cmd.Args(cmd, []string{"one"}); err != nil {
		t.Errorf("single argument should be accepted: %v", err)
	}
}
