package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gluefinance/parse-schema/pkg/parseschema"
)

// RequireDumpArgs validates the positional arguments: a required dump
// file path and an optional output directory name. Returns a helpful
// error message with usage and examples when the count is wrong.
func RequireDumpArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <dump_file>

Usage: %s

Example:
  pg_dump --schema-only mydb > dump.sql
  %s dump.sql
  %s dump.sql myschema: %w`, cmd.UseLine(), cmd.CommandPath(), cmd.CommandPath(), parseschema.ErrUsage)
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts at most 2 arg(s), received %d: %w", len(args), parseschema.ErrUsage)
	}
	return nil
}
