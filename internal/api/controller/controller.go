package controller

import (
	"github.com/ovalentin/tracker/internal/service/items"
	"github.com/ovalentin/tracker/internal/service/reports"
)

type Controller struct {
	items   *items.Service
	reports *reports.Service
}

func NewController(items *items.Service, reports *reports.Service) *Controller {
	return &Controller{items: items, reports: reports}
}
