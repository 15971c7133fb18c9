package mapping

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/vvka-141/metaguid/pkg/metaguid"
)

// Write emits entries as a mapping file that Read accepts in headered form:
// a UTF-8 byte-order mark, a path,guid header, then one row per entry with
// the path always quoted.
func Write(w io.Writer, entries []metaguid.MappingEntry) error {
	tw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())

	if _, err := io.WriteString(tw, metaguid.PathColumn+","+metaguid.IdentifierColumn+"\n"); err != nil {
		return fmt.Errorf("failed to write mapping header: %w", err)
	}
	for _, e := range entries {
		row := `"` + strings.ReplaceAll(e.Path, `"`, `""`) + `",` + e.Identifier + "\n"
		if _, err := io.WriteString(tw, row); err != nil {
			return fmt.Errorf("failed to write mapping row for %s: %w", e.Path, err)
		}
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to flush mapping: %w", err)
	}
	return nil
}
