package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"adcraft/creative-api/internal/infrastructure/repository/genlog"
	"adcraft/creative-api/internal/interfaces/httpserver/responses"
	"adcraft/creative-api/internal/utils/platformerrors"
)

// OpsHandler exposes operational endpoints backed by the generation audit log.
type OpsHandler struct {
	genlog *genlog.Repository
	log    zerolog.Logger
}

func NewOpsHandler(repo *genlog.Repository, log zerolog.Logger) *OpsHandler {
	return &OpsHandler{
		genlog: repo,
		log:    log.With().Str("component", "ops-handler").Logger(),
	}
}

// RecentGenerations godoc
// @Summary      List recent generation batches
// @Description  Returns recent generation audit records, newest first. Requires audit logging to be configured.
// @Tags         ops
// @Produce      json
// @Param        limit  query     int  false  "Maximum records to return"
// @Success      200    {array}   entities.GenerationRecord
// @Failure      500    {object}  responses.ErrorResponse
// @Router       /api/v1/generations/recent [get]
func (h *OpsHandler) RecentGenerations(c *gin.Context) {
	if h.genlog == nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotImplemented, "generation audit log is not configured", "")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	records, err := h.genlog.Recent(c.Request.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to read generation records")
		responses.HandleError(c, err, "failed to read generation records")
		return
	}
	c.JSON(http.StatusOK, records)
}
