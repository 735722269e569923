package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .sassvars.yaml config file",
	Long:  `Create a .sassvars.yaml configuration file in the current directory with sensible defaults.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return writeDefaultConfig(defaultConfigPath, force)
	},
}

// writeDefaultConfig writes the default config to path, refusing to overwrite unless force is set.
func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

const defaultConfig = `# sassvars configuration
# Docs: https://github.com/yacobolo/sassvars

# Shared settings
verbose: false
quiet: false
color: false

# Scan settings
scan:
  include:
    - "**/*.scss"
  count-mode: literal       # literal | token
  respect-gitignore: false

# Output settings
output:
  format: text              # text | issues | json
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
