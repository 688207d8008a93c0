package routes

import (
	"opticai/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing    = "/ping"
	PathOrders  = "/orders"
	PathDrafts  = "/drafts"
	PathCharges = "/charges"
)

func registerRoutes(r *gin.Engine, set handlerSet) {
	v1 := r.Group("/v1")
	addPingRoutes(v1)

	// Everything below runs in the caller's tenant.
	tenant := v1.Group("", set.session)
	addOrderRoutes(tenant, set)
	addDraftRoutes(tenant, set)
	tenant.GET(PathCharges+"/:charge_id", set.charges.GetCharge)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addOrderRoutes(rg *gin.RouterGroup, set handlerSet) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", set.orders.ListOrders)
		orders.GET("/next-number", set.orders.NextOrderNumber)
		orders.POST("", set.orders.CreateOrder)
		orders.GET("/:id", set.orders.GetOrder)
		orders.PUT("/:id", set.orders.UpdateOrder)
		orders.PATCH("/:id/arrival", set.orders.ToggleArrival)
		orders.GET("/:id/documents/:kind", set.documents.OrderDocument)
		orders.POST("/:id/charges", set.charges.ChargeOrder)
		orders.GET("/:id/charges", set.charges.LatestCharge)
	}
}

func addDraftRoutes(rg *gin.RouterGroup, set handlerSet) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", set.drafts.StartDraft)
		drafts.GET("/:id", set.drafts.GetDraft)
		drafts.PATCH("/:id/fields", set.drafts.SetFields)
		drafts.POST("/:id/adjust", set.drafts.Adjust)
		drafts.POST("/:id/blur", set.drafts.Blur)
		drafts.PUT("/:id/order-number", set.drafts.SetOrderNumber)
		drafts.POST("/:id/save", set.drafts.SaveDraft)
		drafts.DELETE("/:id", set.drafts.DiscardDraft)
		drafts.GET("/:id/documents/:kind", set.documents.DraftDocument)
	}
}
