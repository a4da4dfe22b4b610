package internal

import (
	"net/http"

	"ptd/internal/controllers"
	"ptd/internal/providers"
	"ptd/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, licenseController *controllers.LicenseController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/track", http.HandlerFunc(apiController.TrackProduct))
	routers.Post("/check", http.HandlerFunc(apiController.CheckPrice))
	routers.Get("/products", http.HandlerFunc(apiController.GetProducts))
	routers.Delete("/product", http.HandlerFunc(apiController.DeleteProduct))
	routers.Post("/products/clear", http.HandlerFunc(apiController.DeleteAllProducts))
	routers.Get("/alerts", http.HandlerFunc(apiController.GetAlerts))
	routers.Delete("/alert", http.HandlerFunc(apiController.DeleteAlert))
	routers.Post("/alerts/clear", http.HandlerFunc(apiController.ClearAlerts))
	routers.Get("/stats", http.HandlerFunc(apiController.GetStats))
	routers.Get("/badge", http.HandlerFunc(apiController.GetBadge))
	routers.Handle("/settings", http.HandlerFunc(apiController.Settings))
	routers.Get("/license", http.HandlerFunc(licenseController.Info))
	routers.Post("/license/activate", http.HandlerFunc(licenseController.Activate))
	routers.Post("/license/deactivate", http.HandlerFunc(licenseController.Deactivate))
	return routers
}
