package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fnwatchdog/fnwatchdog/internal/domain"
	"github.com/spf13/cobra"
)

const definitionFileName = "ConventionDefinition.yaml"

var companyRe = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

func newInitCmd() *cobra.Command {
	var (
		company string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .fnwatchdog.yaml and a sample convention definition",
		Long:  "Create a .fnwatchdog.yaml pointing at a sample ConventionDefinition.yaml for a Java-style source tree.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if !companyRe.MatchString(company) {
				return fmt.Errorf("invalid company %q (lowercase letters and digits only)", company)
			}

			files := []struct {
				name    string
				content string
			}{
				{domain.ConfigFileName, generateConfig(company)},
				{definitionFileName, sampleDefinition},
			}

			if !force {
				for _, f := range files {
					if _, err := os.Stat(filepath.Join(absPath, f.name)); err == nil {
						return fmt.Errorf("%s already exists (use --force to overwrite)", f.name)
					}
				}
			}

			for _, f := range files {
				if err := os.WriteFile(filepath.Join(absPath, f.name), []byte(f.content), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", f.name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", f.name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "example", "Value of the company placeholder")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

func generateConfig(company string) string {
	return fmt.Sprintf(`# fnwatchdog configuration

definition_sources:
  - %s

placeholders:
  company: %s

# scan_roots default to the directories of src/<source_set>, minus resources.
# scan_roots:
#   - src/main/java
# source_set: main

fail_on_violation: true

# parallelism: 4
# locale: en
`, definitionFileName, company)
}

const sampleDefinition = `# Naming conventions checked by fnwatchdog.
# Package patterns match the dot-joined directory path below a source root.

packages:
  - pattern: 'com\.${company}(\.[a-z][a-z0-9]*)*'
    files:
      - pattern: '[A-Za-z0-9]+\.java'
        style: upper-camel
      - pattern: 'package-info\.java'
  - pattern: 'META-INF(\..*)?'

ignore:
  - '*.orig'
  - '*.bak'
`
