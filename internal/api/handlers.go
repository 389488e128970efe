package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"flightdesk/dispatch/internal/common"
	"flightdesk/dispatch/internal/db/repositories"
	"flightdesk/dispatch/internal/logging"
	"flightdesk/dispatch/internal/models/dtos"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	gormlib "gorm.io/gorm"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

const maxBodyBytes = 1 << 20

// pathID reads a positive numeric URL parameter.
func pathID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

// decodeBody reads a JSON body into req and runs its validate tags.
func decodeBody(w http.ResponseWriter, r *http.Request, req any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if n, ok := req.(interface{ Normalize() }); ok {
		n.Normalize()
	}
	if err := dtos.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid field %s: failed %s", fe.Field(), fe.Tag())
		}
		return err
	}
	return nil
}

// respondStoreError maps persistence errors onto HTTP status codes.
func respondStoreError(w http.ResponseWriter, initTime time.Time, err error, action string) {
	switch {
	case errors.Is(err, gormlib.ErrDuplicatedKey):
		common.RespondError(w, initTime, nil, action+": a record with the same unique key already exists", http.StatusConflict)
	case errors.Is(err, gormlib.ErrForeignKeyViolated):
		common.RespondError(w, initTime, nil, action+": referenced record does not exist", http.StatusBadRequest)
	case errors.Is(err, repositories.ErrInUse), errors.Is(err, repositories.ErrScheduleConflict):
		common.RespondError(w, initTime, err, action, http.StatusConflict)
	default:
		logging.Error(action, "error", err.Error())
		common.RespondError(w, initTime, nil, action, http.StatusInternalServerError)
	}
}
