package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewParseController); err != nil {
		return err
	}
	if err := container.Provide(NewLocalController); err != nil {
		return err
	}
	if err := container.Provide(NewServeController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	parseController *ParseController,
	localController *LocalController,
	serveController *ServeController,
) *[]entities.Controller {
	return &[]entities.Controller{
		parseController,
		localController,
		serveController,
	}
}
