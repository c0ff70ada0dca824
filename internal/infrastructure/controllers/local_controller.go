package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depmeta/internal/domain/commands"
	"github.com/rios0rios0/depmeta/internal/domain/entities"
)

// LocalController handles the "local" subcommand (update read from a Git checkout).
type LocalController struct {
	command  commands.Local
	settings *entities.Settings
}

// NewLocalController creates a new LocalController.
func NewLocalController(command commands.Local, settings *entities.Settings) *LocalController {
	return &LocalController{command: command, settings: settings}
}

// GetBind returns the Cobra command metadata for the local controller.
func (it *LocalController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "local [path]",
		Short: "Parse the HEAD commit of a local Dependabot branch",
		Long: `Read the HEAD commit message and branch name of a local Git
repository checked out on a Dependabot branch and print its dependency records.`,
	}
}

// Execute runs the local mode.
func (it *LocalController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	body, err := textOrFile(cmd, "body", "body-file")
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	targetBranch, _ := cmd.Flags().GetString("target-branch")

	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}

	records, err := it.command.Execute(ctx, commands.LocalOptions{
		RepoDir:      repoDir,
		Body:         body,
		TargetBranch: targetBranch,
	})
	if err != nil {
		return fmt.Errorf("local parse failed: %w", err)
	}
	logger.Debugf("Rendering %d records", len(records))

	if renderErr := Render(cmd.OutOrStdout(), outputFormat(cmd, it.settings), records); renderErr != nil {
		return fmt.Errorf("failed to render output: %w", renderErr)
	}
	return nil
}

// AddFlags adds the local-specific flags to the given Cobra command.
func (it *LocalController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("body", "", "Pull request body of the update")
	cmd.Flags().String("body-file", "", "Read the pull request body from this file")
	cmd.Flags().String("target-branch", "main", "Base branch the update targets")
	cmd.Flags().StringP("output", "o", "", "Output format: json, yaml or table (default from config)")
}
