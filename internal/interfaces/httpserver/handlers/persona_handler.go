package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"adcraft/creative-api/internal/domain/persona"
	"adcraft/creative-api/internal/interfaces/httpserver/responses"
)

// PersonaHandler exposes the persona segment projection.
type PersonaHandler struct {
	service *persona.Service
	log     zerolog.Logger
}

func NewPersonaHandler(service *persona.Service, log zerolog.Logger) *PersonaHandler {
	return &PersonaHandler{
		service: service,
		log:     log.With().Str("component", "persona-handler").Logger(),
	}
}

// Segments godoc
// @Summary      List persona segments
// @Description  Returns the persona segment projection as column name to ordered value lists.
// @Tags         personas
// @Produce      json
// @Success      200  {object}  responses.PersonaSegmentsResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /api/v1/persona-segments [get]
func (h *PersonaHandler) Segments(c *gin.Context) {
	segments, err := h.service.Segments(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("persona segment fetch failed")
		responses.HandleError(c, err, "failed to fetch persona segments")
		return
	}
	c.JSON(http.StatusOK, responses.PersonaSegmentsResponse(segments))
}
