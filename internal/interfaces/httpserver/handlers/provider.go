package handlers

import (
	"github.com/rs/zerolog"

	"adcraft/creative-api/internal/config"
	"adcraft/creative-api/internal/domain/creative"
	"adcraft/creative-api/internal/domain/persona"
	"adcraft/creative-api/internal/infrastructure/repository/genlog"
)

// Provider wires HTTP handlers.
type Provider struct {
	Creative *CreativeHandler
	Persona  *PersonaHandler
	Ops      *OpsHandler
}

// NewProvider constructs all handlers. genlogRepo may be nil when audit
// logging is not configured.
func NewProvider(
	cfg *config.Config,
	creativeService *creative.Service,
	personaService *persona.Service,
	genlogRepo *genlog.Repository,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Creative: NewCreativeHandler(cfg, creativeService, log),
		Persona:  NewPersonaHandler(personaService, log),
		Ops:      NewOpsHandler(genlogRepo, log),
	}
}
