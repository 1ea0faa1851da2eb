package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/gluefinance/parse-schema/pkg/parseschema"
)

func TestRequireDumpArgs(t *testing.T) {
	cmd := &cobra.Command{
		Use: "parse-schema <dump_file> [output_dir]",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireDumpArgs(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <dump_file>") {
			t.Errorf("expected error to contain 'missing required argument: <dump_file>', got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "Example:") {
			t.Errorf("expected error to contain 'Example:', got: %s", err.Error())
		}
		exitCode := parseschema.ExitCodeForError(err)
		if exitCode != parseschema.ExitUsageError {
			t.Errorf("expected exit code %d (usage), got %d for: %v", parseschema.ExitUsageError, exitCode, err)
		}
	})

	t.Run("returns nil when dump file provided", func(t *testing.T) {
		err := RequireDumpArgs(cmd, []string{"dump.sql"})
		if err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns nil when output dir also provided", func(t *testing.T) {
		err := RequireDumpArgs(cmd, []string{"dump.sql", "myschema"})
		if err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequireDumpArgs(cmd, []string{"a", "b", "c"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "accepts at most 2 arg(s)") {
			t.Errorf("expected error to contain 'accepts at most 2 arg(s)', got: %s", err.Error())
		}
	})
}
