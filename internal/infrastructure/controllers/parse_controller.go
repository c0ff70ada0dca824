package controllers

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depmeta/internal/domain/commands"
	"github.com/rios0rios0/depmeta/internal/domain/entities"
)

// ParseController handles the "parse" subcommand (text given through flags or files).
type ParseController struct {
	command  commands.Parse
	settings *entities.Settings
}

// NewParseController creates a new ParseController.
func NewParseController(command commands.Parse, settings *entities.Settings) *ParseController {
	return &ParseController{command: command, settings: settings}
}

// GetBind returns the Cobra command metadata for the parse controller.
func (it *ParseController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "parse",
		Short: "Parse the metadata of a Dependabot update",
		Long: `Extract structured dependency-update records from a Dependabot
commit message, pull request body and branch name.

The commit message and body can be passed inline or read from files.
Inputs that were not produced by Dependabot yield an empty list.`,
	}
}

// Execute parses the update described by the flags and prints the records.
// Invalid input, malformed metadata and hook failures are returned as errors.
func (it *ParseController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	signal, err := readSignalFlags(cmd)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	records, err := it.command.Execute(ctx, signal)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	logger.Debugf("Rendering %d records", len(records))

	if renderErr := Render(cmd.OutOrStdout(), outputFormat(cmd, it.settings), records); renderErr != nil {
		return fmt.Errorf("failed to render output: %w", renderErr)
	}
	return nil
}

// AddFlags adds the parse-specific flags to the given Cobra command.
func (it *ParseController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("commit-message", "", "Commit message of the update")
	cmd.Flags().String("commit-message-file", "", "Read the commit message from this file")
	cmd.Flags().String("body", "", "Pull request body of the update")
	cmd.Flags().String("body-file", "", "Read the pull request body from this file")
	cmd.Flags().String("branch", "", "Head branch name of the update")
	cmd.Flags().String("target-branch", "main", "Base branch the update targets")
	cmd.Flags().StringP("output", "o", "", "Output format: json, yaml or table (default from config)")
}

func readSignalFlags(cmd *cobra.Command) (entities.RawUpdateSignal, error) {
	commitMessage, err := textOrFile(cmd, "commit-message", "commit-message-file")
	if err != nil {
		return entities.RawUpdateSignal{}, err
	}
	body, err := textOrFile(cmd, "body", "body-file")
	if err != nil {
		return entities.RawUpdateSignal{}, err
	}
	branch, _ := cmd.Flags().GetString("branch")
	targetBranch, _ := cmd.Flags().GetString("target-branch")

	return entities.RawUpdateSignal{
		CommitMessage: commitMessage,
		Body:          body,
		BranchName:    branch,
		TargetBranch:  targetBranch,
	}, nil
}

// textOrFile returns the inline flag value, or the content of the file flag when set.
func textOrFile(cmd *cobra.Command, textFlag, fileFlag string) (string, error) {
	path, _ := cmd.Flags().GetString(fileFlag)
	if path == "" {
		text, _ := cmd.Flags().GetString(textFlag)
		return text, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s: %w", fileFlag, err)
	}
	return string(data), nil
}

// outputFormat returns the --output flag, falling back to the configured format.
func outputFormat(cmd *cobra.Command, settings *entities.Settings) string {
	if format, _ := cmd.Flags().GetString("output"); format != "" {
		return format
	}
	return settings.Output
}
