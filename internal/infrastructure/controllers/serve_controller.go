package controllers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depmeta/internal/domain/commands"
	"github.com/rios0rios0/depmeta/internal/domain/entities"
)

// ParseRequest is the JSON body accepted by POST /parse.
type ParseRequest struct {
	CommitMessage string `json:"commitMessage"`
	Body          string `json:"body"`
	BranchName    string `json:"branchName"`
	TargetBranch  string `json:"targetBranch"`
}

// ServeController handles the "serve" subcommand.
type ServeController struct {
	command  commands.Parse
	settings *entities.Settings
}

// NewServeController creates a new ServeController.
func NewServeController(command commands.Parse, settings *entities.Settings) *ServeController {
	return &ServeController{command: command, settings: settings}
}

// GetBind returns the Cobra command metadata for the serve controller.
func (it *ServeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "serve",
		Short: "Expose the parser over HTTP",
		Long: `Start an HTTP server exposing:

  POST /parse   parse a Dependabot update sent as JSON
  GET  /health  liveness probe`,
	}
}

// Execute starts the server and blocks until SIGINT or SIGTERM.
func (it *ServeController) Execute(cmd *cobra.Command, _ []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = it.settings.Server.Addr
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := NewServer(it.command)
	listenErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on %s", addr)
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// AddFlags adds the serve-specific flags to the given Cobra command.
func (it *ServeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("addr", "", "Listen address (default from config)")
}

// NewServer builds the HTTP application around the parse command.
func NewServer(command commands.Parse) *fiber.App {
	//nolint:exhaustruct // Minimal Config initialization with required fields only
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Post("/parse", parseHandler(command))

	return app
}

func parseHandler(command commands.Parse) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request ParseRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		records, err := command.Execute(c.UserContext(), entities.RawUpdateSignal{
			CommitMessage: request.CommitMessage,
			Body:          request.Body,
			BranchName:    request.BranchName,
			TargetBranch:  request.TargetBranch,
		})
		if errors.Is(err, entities.ErrMalformedMetadata) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			logger.Errorf("Parse failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return c.JSON(records)
	}
}
