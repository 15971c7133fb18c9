package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/metaguid/pkg/metaguid"
)

// usageError carries a user-facing usage message and matches metaguid.ErrUsage.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }
func (e *usageError) Unwrap() error { return metaguid.ErrUsage }

// RequireMappingFile validates that exactly one mapping_csv argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireMappingFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return &usageError{msg: fmt.Sprintf(`missing required argument: <mapping_csv>

Usage: %s

Example:
  %s guid_map_all.csv`, cmd.UseLine(), cmd.CommandPath())}
	}
	if len(args) > 1 {
		return &usageError{msg: fmt.Sprintf("accepts 1 arg(s), received %d", len(args))}
	}
	return nil
}
