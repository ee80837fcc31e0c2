package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/hostkit-labs/hostkit/internal/config"
	"github.com/hostkit-labs/hostkit/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	listManifest   string
	listKindFilter string
	listJSON       bool
)

func init() {
	listCmd.Flags().StringVar(&listManifest, "manifest", "", "Path to the extensions manifest (default from config)")
	listCmd.Flags().StringVar(&listKindFilter, "kind", "", "Filter by extension kind (e.g. plugins, drivers)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents an installed extension for display.
type listEntry struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Package     string `json:"package"`
	Version     string `json:"version"`
	InstallType string `json:"installType"`
}

func runList(cmd *cobra.Command, args []string) error {
	manifestPath := listManifest
	if manifestPath == "" {
		manifestPath = config.Get(config.KeyManifest)
	}
	if manifestPath == "" {
		return fmt.Errorf("no manifest path given; use --manifest or set %q in config", config.KeyManifest)
	}

	f, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	kinds := f.Kinds()
	sort.Strings(kinds)

	var entries []listEntry
	for _, kind := range kinds {
		if listKindFilter != "" && kind != listKindFilter {
			continue
		}
		for _, d := range f.View(kind).Descriptors() {
			entries = append(entries, listEntry{
				Kind:        kind,
				Name:        d.Name,
				Package:     d.PkgName,
				Version:     d.Version,
				InstallType: string(d.InstallType),
			})
		}
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		if listKindFilter != "" {
			fmt.Fprintf(out, "No extensions of kind %q in the manifest.\n", listKindFilter)
		} else {
			fmt.Fprintln(out, "No extensions in the manifest.")
		}
		return nil
	}

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling list output: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tNAME\tPACKAGE\tVERSION\tINSTALL TYPE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Kind, e.Name, e.Package, e.Version, e.InstallType)
	}
	return w.Flush()
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List extensions declared in the manifest",
	Long:  `List all extensions in the installed-extensions manifest, per kind.`,
	RunE:  runList,
}
