package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ovalentin/tracker/internal/api/controller"
	"github.com/ovalentin/tracker/internal/pkg/logger"
	"github.com/ovalentin/tracker/internal/pkg/store"
	"github.com/ovalentin/tracker/internal/service/items"
	"github.com/ovalentin/tracker/internal/service/reports"
)

type APIService struct {
	router         *echo.Echo
	itemsService   *items.Service
	reportsService *reports.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store, rowLimit int) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(requestIDMiddleware())
	svc.router.Use(corsMiddleware())

	svc.itemsService = items.NewItemsService(store, rowLimit)
	svc.reportsService = reports.NewReportsService(svc.itemsService)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.itemsService, svc.reportsService)

	actionItems := api.Group("/action-items")
	actionItems.GET("", cntrl.GetActionItems)
	actionItems.POST("", cntrl.CreateActionItem)
	actionItems.PUT("/:id", cntrl.UpdateActionItem)
	actionItems.DELETE("/:id", cntrl.DeleteActionItem)

	rep := api.Group("/reports")
	rep.GET("/pivot", cntrl.GetPivot)
	rep.GET("/daywise", cntrl.GetDaywise)
	rep.GET("/drilldown", cntrl.GetDrilldown)
	rep.GET("/dashboard", cntrl.GetDashboard)

	return svc, nil
}
