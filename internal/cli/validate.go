package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/claimprobe/claimprobe/internal/product"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [products-dir]",
	Short: "Validate product spec YAML files",
	Long: `Validate checks every product YAML in a directory before any
evaluation runs: required fields must be present and every spec line must
carry a recognizable unit token (mg, GB, Hz, %, ...).

Example:
  claimprobe validate products`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir := "products"
	if len(args) == 1 {
		dir = args[0]
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return fmt.Errorf("no YAML files found in %s", dir)
	}

	valid := 0
	for _, file := range files {
		if _, err := product.Load(file); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", filepath.Base(file), err)
			continue
		}
		valid++
		fmt.Fprintf(os.Stderr, "✓ %s\n", filepath.Base(file))
	}

	fmt.Fprintf(os.Stderr, "\n%d/%d products valid\n", valid, len(files))

	if valid != len(files) {
		return fmt.Errorf("%d invalid product files", len(files)-valid)
	}

	return nil
}
