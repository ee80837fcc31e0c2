package cli

import (
	"fmt"
	"sort"

	"github.com/hostkit-labs/hostkit/internal/config"
	"github.com/hostkit-labs/hostkit/internal/extension"
	"github.com/hostkit-labs/hostkit/internal/manifest"
	"github.com/hostkit-labs/hostkit/internal/packages"
	"github.com/hostkit-labs/hostkit/internal/schema"
	"github.com/spf13/cobra"
)

var (
	checkManifest     string
	checkPackagesRoot string
)

func init() {
	checkCmd.Flags().StringVar(&checkManifest, "manifest", "", "Path to the extensions manifest (default from config)")
	checkCmd.Flags().StringVar(&checkPackagesRoot, "packages-root", "", "Installed packages root (default from config)")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate installed extension metadata and schemas",
	Long: `Check every extension declared in the manifest: descriptor metadata,
configuration schema well-formedness, and schema registration conflicts.
Extensions with problems are reported without aborting the rest of the batch.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	manifestPath := checkManifest
	if manifestPath == "" {
		manifestPath = config.Get(config.KeyManifest)
	}
	if manifestPath == "" {
		return fmt.Errorf("no manifest path given; use --manifest or set %q in config", config.KeyManifest)
	}

	packagesRoot := checkPackagesRoot
	if packagesRoot == "" {
		packagesRoot = config.Get(config.KeyPackagesRoot)
	}

	f, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	locator := packages.NewDirLocator(packagesRoot)

	kinds := f.Kinds()
	sort.Strings(kinds)

	failed := 0
	checked := 0
	for _, kind := range kinds {
		view := f.View(kind)
		facade := extension.New(view, locator, schema.NewRegistry(kind))

		for _, d := range view.Descriptors() {
			checked++

			problems := facade.GetConfigProblems(&d)
			problems = append(problems, facade.GetSchemaProblems(&d, d.Name)...)

			desc := facade.ExtensionDesc(d.Name, &d)
			if len(problems) == 0 {
				fmt.Fprintf(out, "  [ OK ] %s %s\n", kind, desc)
				continue
			}

			failed++
			fmt.Fprintf(out, "  [FAIL] %s %s\n", kind, desc)
			for _, p := range problems {
				fmt.Fprintf(out, "         %s (value: %v)\n", p.Err, p.Val)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d extensions have problems", failed, checked)
	}
	fmt.Fprintf(out, "All %d extensions OK.\n", checked)
	return nil
}
