package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/strategycanvas/internal/config"
	"github.com/dbmrq/strategycanvas/internal/definition"
)

// exampleDefinitionPath is where init --example writes its sample canvas.
const exampleDefinitionPath = "canvas.yaml"

func newInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write the default configuration to ` + config.DefaultConfigPath + `
(or the path given with --config).

Use --force to overwrite an existing file and --example to also write a
sample canvas definition for the render command.

Examples:
  strategycanvas init
  strategycanvas init --force
  strategycanvas init --example`,
		RunE: runInit,
	}

	c.Flags().BoolP("force", "f", false, "Overwrite existing files")
	c.Flags().Bool("example", false, "Also write a sample "+exampleDefinitionPath)
	return c
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	example, _ := cmd.Flags().GetBool("example")

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath
	}

	if err := refuseOverwrite(path, force); err != nil {
		return err
	}
	if err := config.Save(config.NewConfig(), path); err != nil {
		return err
	}
	cmd.Printf("Created %s\n", path)

	if example {
		if err := refuseOverwrite(exampleDefinitionPath, force); err != nil {
			return err
		}
		data, err := definition.Example().Marshal()
		if err != nil {
			return err
		}
		if err := os.WriteFile(exampleDefinitionPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exampleDefinitionPath, err)
		}
		cmd.Printf("Created %s\n", exampleDefinitionPath)
	}

	cmd.Println("")
	cmd.Println("Run 'strategycanvas' to start the wizard.")
	return nil
}

func refuseOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return nil
}
