package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/latin-ecom/backoffice-manager/internal/apisrv/auth"
	"github.com/latin-ecom/backoffice-manager/internal/form"
	"github.com/latin-ecom/backoffice-manager/internal/store"
)

// Spanish user-facing messages, matching the wire contract of the dashboard
// client.
const (
	msgUnauthorized       = "No autorizado"
	msgForbidden          = "Acceso denegado"
	msgInvalidCredentials = "Credenciales inválidas"
	msgInvalidRequest     = "Solicitud inválida"
	msgProductNotFound    = "Producto no encontrado"
	msgOrderNotFound      = "Pedido no encontrado"
	msgRequestNotFound    = "Solicitud no encontrada"
	msgConnectionNotFound = "Conexión no encontrada"
	msgRequestProcessed   = "La solicitud ya fue procesada"
)

type dataResponse struct {
	Data interface{} `json:"data"`
}

type errorResponse struct {
	Error interface{} `json:"error"`
}

type validationError struct {
	Message     string           `json:"message"`
	FieldErrors form.FieldErrors `json:"fieldErrors"`
}

func respondData(w http.ResponseWriter, r *http.Request, v interface{}) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, dataResponse{Data: v})
}

func respondCreated(w http.ResponseWriter, r *http.Request, v interface{}) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, dataResponse{Data: v})
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: message})
}

// respondBindErr maps a render.Bind failure: structured field errors become a
// 400 with per-field detail, anything else (malformed JSON) a generic 400.
func respondBindErr(w http.ResponseWriter, r *http.Request, err error) {
	var fe form.FieldErrors
	if errors.As(err, &fe) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: validationError{
			Message:     msgInvalidRequest,
			FieldErrors: fe,
		}})
		return
	}
	respondError(w, r, http.StatusBadRequest, msgInvalidRequest)
}

// respondStoreErr maps repository errors; notFound carries the per-resource
// Spanish message.
func respondStoreErr(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, r, http.StatusNotFound, notFound)
	case errors.Is(err, store.ErrInvalidTransition):
		respondError(w, r, http.StatusBadRequest, msgRequestProcessed)
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, r, http.StatusUnauthorized, msgInvalidCredentials)
	case errors.Is(err, auth.ErrInvalidToken):
		respondError(w, r, http.StatusUnauthorized, msgUnauthorized)
	default:
		slog.Default().ErrorContext(r.Context(), "unhandled store error",
			slog.String("err", err.Error()),
		)
		respondError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
