// SPDX-License-Identifier: MIT
package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes wires every handler onto the router
func RegisterRoutes(r gin.IRouter) {
	r.GET("/", IndexHandler)
	r.GET("/health", HealthHandler)
	r.GET("/presets", PresetsHandler)
	r.GET("/history", HistoryHandler)
	r.GET("/preview/:code", PreviewHandler)
	r.GET("/css/:code", CSSHandler)

	// Raw hex codes, e.g. /3f51b5
	r.GET("/:code", PaletteHandler)
}
