package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/metaguid/internal/checksum"
	"github.com/vvka-141/metaguid/internal/files/filesystem"
	"github.com/vvka-141/metaguid/internal/logging"
	"github.com/vvka-141/metaguid/internal/mapping"
	"github.com/vvka-141/metaguid/internal/services"
	"github.com/vvka-141/metaguid/internal/sidecar"
	"github.com/vvka-141/metaguid/internal/tui"
	"github.com/vvka-141/metaguid/pkg/metaguid"
)

type fixFlagValues struct {
	dryRun bool
}

var fixFlags fixFlagValues

func init() {
	rootCmd.Flags().BoolVar(&fixFlags.dryRun, "dry-run", false,
		"Report what would change without writing sidecars or backups")
}

func runFix(cmd *cobra.Command, args []string) error {
	mappingPath := args[0]
	verbose := globalFlags.verbose

	s, err := resolveSettings(globalFlags)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLoggerTo(cmd.OutOrStdout(), cmd.ErrOrStderr(), verbose)
	fsProvider := filesystem.NewOSFileSystem()

	res, err := mapping.ReadFile(fsProvider, mappingPath)
	if err != nil {
		return err
	}
	logger.Verbose("Read %d entries from %s (%s)", res.Mapping.Len(), mappingPath, res.Format)

	patcher := sidecar.NewPatcherWithFS(checksum.New(), fsProvider, sidecar.Options{
		BackupSuffix:  s.BackupSuffix,
		FormatVersion: s.FileFormatVersion,
		DryRun:        fixFlags.dryRun,
	})
	fixer := services.NewFixService(patcher, fsProvider, logger)

	summary, err := fixer.Fix(res.Mapping, metaguid.FixConfig{
		ProjectRoot:   s.ProjectRoot,
		AssetPrefix:   s.AssetPrefix,
		MetaExtension: s.MetaExtension,
		DryRun:        fixFlags.dryRun,
		Verbose:       verbose,
	})
	if err != nil {
		return fmt.Errorf("fix aborted: %w", err)
	}

	tui.RenderSummary(cmd.OutOrStdout(), summary, tui.SummaryOptions{
		Styled:        tui.IsStyled(),
		DryRun:        fixFlags.dryRun,
		BackupSuffix:  s.BackupSuffix,
		MetaExtension: s.MetaExtension,
	})
	logger.Verbose("Unchanged metas: %d, ignored entries: %d", summary.Unchanged, summary.Ignored)
	return nil
}
