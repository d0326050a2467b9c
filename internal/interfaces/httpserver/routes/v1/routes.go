package v1

import (
	"github.com/gin-gonic/gin"

	"adcraft/creative-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches all v1 routes under the /api/v1 prefix.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/api/v1")
	group.POST("/generate_ad_content", r.handlers.Creative.Generate)
	group.GET("/persona-segments", r.handlers.Persona.Segments)
	group.GET("/generations/recent", r.handlers.Ops.RecentGenerations)
}
