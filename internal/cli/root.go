package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "metaguid <mapping_csv>",
	Short: "Rewrite asset identifiers in .meta sidecar files",
	Long: `metaguid restores or rewrites the guid of asset sidecar (.meta) files from a
CSV mapping of asset paths to identifiers.

For every mapping row under Assets/ the matching <asset>.meta is located
relative to the project root, its "guid:" line is replaced (or inserted after
"fileFormatVersion:"), and a one-time <asset>.meta.bak backup is kept next to it.
An existing backup is never overwritten.

Mapping file (UTF-8, optional BOM):
  path,guid
  "Assets/Scripts/Player.cs",0123456789abcdef0123456789abcdef

A file without header is read as path,guid[,...] rows.

Exit Codes:
  0  - Run completed (skipped or missing entries included)
  1  - General error or missing mapping argument
  3  - Panic or unexpected system error
  10 - Invalid configuration or mapping file is not UTF-8
  11 - Mapping file not found`,
	Args:         RequireMappingFile,
	RunE:         runFix,
	SilenceUsage: true,
}

// globalFlagValues holds flags shared by all commands.
type globalFlagValues struct {
	verbose     bool
	root        string
	configPath  string
	assetPrefix string
}

var globalFlags globalFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.verbose, "verbose", "v", false,
		"Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&globalFlags.root, "root", "",
		"Project root that mapping paths are resolved against\n"+
			"Precedence: --root > $METAGUID_ROOT > current directory")
	rootCmd.PersistentFlags().StringVar(&globalFlags.configPath, "config", "",
		"Path to a metaguid.yaml (default: <root>/metaguid.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.assetPrefix, "asset-prefix", "",
		"Only mapping paths under this folder are processed\n"+
			"Precedence: --asset-prefix > $METAGUID_ASSET_PREFIX > metaguid.yaml > Assets/")
}
