// Package handlers wires the REST surface of the service: one handler per
// resource, each registering its own routes on the shared chi router.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/internal/services"
	"github.com/embryolab/backend/libs/handlers"
	"github.com/embryolab/backend/libs/validation"
)

// decodeBody decodes a JSON request body into dst and runs the struct
// validation tags on it
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body")
	}
	if err := validation.Validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

// parsePageQuery reads the page and pageSize query parameters. Values are
// clamped later by the service layer, not here.
func parsePageQuery(r *http.Request) models.PageQuery {
	var q models.PageQuery
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("pageSize")); err == nil {
		q.PageSize = v
	}
	return q
}

// respondServiceError maps service error kinds to HTTP statuses. Anything
// unrecognized is logged and reported as a 500 without leaking details.
func respondServiceError(b *handlers.BaseHandler, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrParentNotFound):
		b.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		b.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidOptions), errors.Is(err, services.ErrInvalidAnswer):
		b.RespondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrValidation):
		b.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		b.Logger.Error("request failed", zap.Error(err))
		b.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
