package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ovalentin/tracker/internal/domain"
	"github.com/ovalentin/tracker/internal/domain/dto"
	"github.com/ovalentin/tracker/internal/pkg/constants"
)

func (c *Controller) GetActionItems(ctx echo.Context) error {
	snapshot, err := c.items.Snapshot(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

func (c *Controller) CreateActionItem(ctx echo.Context) error {
	var req dto.ItemCreate
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	id, err := c.items.Create(ctx.Request().Context(), req.Fields())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, domain.SuccessResponse{Success: true, ID: id})
}

func (c *Controller) UpdateActionItem(ctx echo.Context) error {
	id := ctx.Param("id")

	var req dto.ItemUpdate
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return constants.ErrEmptyUpdate
	}

	if err := c.items.Update(ctx.Request().Context(), id, fields); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.SuccessResponse{Success: true, ID: id})
}

func (c *Controller) DeleteActionItem(ctx echo.Context) error {
	id := ctx.Param("id")

	if err := c.items.Delete(ctx.Request().Context(), id); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.SuccessResponse{Success: true})
}
