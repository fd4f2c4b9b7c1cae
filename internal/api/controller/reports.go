package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ovalentin/tracker/internal/engine"
	"github.com/ovalentin/tracker/internal/pkg/constants"
)

// parseFilters builds a FilterSet from query parameters. Absent parameters
// leave predicates unset; malformed date bounds are a client error.
func parseFilters(ctx echo.Context) (engine.FilterSet, error) {
	q := ctx.QueryParams()

	var f engine.FilterSet
	f.SetBusiness(q.Get("business"))
	f.SetBusinessType(q.Get("businessType"))
	f.SetProcess(q.Get("process"))
	f.SetSubType(q.Get("subType"))
	f.SetStatus(q.Get("status"))
	f.SetOwner(q.Get("owner"))

	if !f.SetDateFrom(q.Get("from")) {
		return f, fmt.Errorf("from=%q: %w", q.Get("from"), constants.ErrBadDateBound)
	}
	if !f.SetDateTo(q.Get("to")) {
		return f, fmt.Errorf("to=%q: %w", q.Get("to"), constants.ErrBadDateBound)
	}

	return f, nil
}

func pivotDims(ctx echo.Context) (rowDim, colDim string) {
	rowDim = ctx.QueryParam("rows")
	if rowDim == "" {
		rowDim = engine.DimBusiness
	}
	colDim = ctx.QueryParam("cols")
	if colDim == "" {
		colDim = engine.DimOwner
	}
	return rowDim, colDim
}

func (c *Controller) GetPivot(ctx echo.Context) error {
	filters, err := parseFilters(ctx)
	if err != nil {
		return err
	}

	metric, err := engine.ParseMetric(ctx.QueryParam("metric"))
	if err != nil {
		return err
	}

	rowDim, colDim := pivotDims(ctx)
	table, err := c.reports.Pivot(ctx.Request().Context(), filters, rowDim, colDim, metric)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, table)
}

func (c *Controller) GetDaywise(ctx echo.Context) error {
	filters, err := parseFilters(ctx)
	if err != nil {
		return err
	}

	tree, err := c.reports.Daywise(ctx.Request().Context(), filters)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, tree)
}

func (c *Controller) GetDrilldown(ctx echo.Context) error {
	filters, err := parseFilters(ctx)
	if err != nil {
		return err
	}

	rowDim, colDim := pivotDims(ctx)
	records, err := c.reports.Drilldown(
		ctx.Request().Context(),
		filters,
		rowDim, colDim,
		ctx.QueryParam("row"), ctx.QueryParam("col"),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, records)
}

func (c *Controller) GetDashboard(ctx echo.Context) error {
	summary, err := c.reports.Dashboard(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, summary)
}
