package handler

import (
	"context"
	"net/http"

	"github.com/mcoot/rebirth/internal/api/request"
	"github.com/mcoot/rebirth/internal/api/response"
	"github.com/mcoot/rebirth/internal/model"
)

// IdentityProvider returns today's identity for a user
type IdentityProvider interface {
	GetOrCreate(ctx context.Context, key model.UserKey, displayName string) (*model.Identity, error)
}

// IdentityHandler handles identity endpoints
type IdentityHandler struct {
	identities IdentityProvider
}

// NewIdentityHandler creates a new identity handler
func NewIdentityHandler(identities IdentityProvider) *IdentityHandler {
	return &IdentityHandler{
		identities: identities,
	}
}

// Get handles GET /api/v1/identities/{user_key}
func (h *IdentityHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, err := request.IdentityFromHTTP(r)
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	identity, err := h.identities.GetOrCreate(r.Context(), model.UserKey(req.UserKey), req.DisplayName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.IdentityFromModel(identity))
}
