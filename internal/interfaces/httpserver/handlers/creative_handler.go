package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"adcraft/creative-api/internal/config"
	"adcraft/creative-api/internal/domain/creative"
	"adcraft/creative-api/internal/interfaces/httpserver/requests"
	"adcraft/creative-api/internal/interfaces/httpserver/responses"
	"adcraft/creative-api/internal/utils/platformerrors"
)

// CreativeHandler exposes the ad generation endpoint.
type CreativeHandler struct {
	cfg     *config.Config
	service *creative.Service
	log     zerolog.Logger
}

func NewCreativeHandler(cfg *config.Config, service *creative.Service, log zerolog.Logger) *CreativeHandler {
	return &CreativeHandler{
		cfg:     cfg,
		service: service,
		log:     log.With().Str("component", "creative-handler").Logger(),
	}
}

// Generate godoc
// @Summary      Generate ad creatives
// @Description  Produces N ad copy and image pairs for a product.
// @Tags         creatives
// @Accept       json
// @Produce      json
// @Param        request  body      requests.GenerateAdContentRequest  true  "Generation request"
// @Success      200      {object}  responses.GenerateAdContentResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /api/v1/generate_ad_content [post]
func (h *CreativeHandler) Generate(c *gin.Context) {
	var req requests.GenerateAdContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), "")
		return
	}

	count := h.cfg.DefaultVariations
	if req.NumberOfVariations != nil {
		count = *req.NumberOfVariations
	}
	aspectRatio := req.AspectRatio
	if aspectRatio == "" {
		aspectRatio = h.cfg.DefaultAspectRatio
	}

	creatives, err := h.service.Generate(c.Request.Context(), creative.GenerationRequest{
		Product:     req.Product,
		Description: req.ProductDescription,
		Persona:     req.PersonaDescription,
		Variations:  count,
		AspectRatio: aspectRatio,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("generation failed")
		responses.HandleError(c, err, "ad content generation failed")
		return
	}

	out := make([]responses.AdCreative, len(creatives))
	for i, cr := range creatives {
		out[i] = responses.AdCreative{AdText: cr.AdText, AdImageData: cr.ImageData}
	}
	c.JSON(http.StatusOK, responses.GenerateAdContentResponse{Creatives: out})
}
