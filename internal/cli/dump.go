package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/metaguid/internal/files/filesystem"
	"github.com/vvka-141/metaguid/internal/files/scanner"
	"github.com/vvka-141/metaguid/internal/logging"
	"github.com/vvka-141/metaguid/internal/services"
	"github.com/vvka-141/metaguid/pkg/metaguid"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write the current asset identifiers to a mapping CSV",
	Long: `Dump walks the project's asset folder, reads the guid of every .meta file
whose asset still exists, and writes them as a mapping CSV that metaguid can
apply later, e.g. after a reimport regenerated identifiers.

Examples:
  # All assets -> guid_map_all.csv in the project root
  metaguid dump

  # C# scripts only -> guid_map_scripts.csv
  metaguid dump --scripts

  # Explicit project and output
  metaguid dump --root ./MyGame --output /tmp/guids.csv`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

type dumpFlagValues struct {
	scripts bool
	output  string
}

var dumpFlags dumpFlagValues

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().BoolVar(&dumpFlags.scripts, "scripts", false,
		"Only dump C# script (.cs) assets")
	dumpCmd.Flags().StringVarP(&dumpFlags.output, "output", "o", "",
		"Output CSV path\n"+
			"(default: <root>/guid_map_all.csv, or <root>/guid_map_scripts.csv with --scripts)")
}

func runDump(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(globalFlags)
	if err != nil {
		return err
	}

	output := dumpFlags.output
	if output == "" {
		name := metaguid.DefaultDumpFileAll
		if dumpFlags.scripts {
			name = metaguid.DefaultDumpFileScripts
		}
		output = filepath.Join(s.ProjectRoot, name)
	}

	logger := logging.NewConsoleLoggerTo(cmd.OutOrStdout(), cmd.ErrOrStderr(), globalFlags.verbose)
	fsProvider := filesystem.NewOSFileSystem()
	dumper := services.NewDumpService(scanner.NewScannerWithFS(fsProvider, s.MetaExtension), fsProvider, logger)

	_, err = dumper.Dump(metaguid.DumpConfig{
		ProjectRoot: s.ProjectRoot,
		AssetPrefix: s.AssetPrefix,
		ScriptsOnly: dumpFlags.scripts,
		OutputPath:  output,
	})
	return err
}
