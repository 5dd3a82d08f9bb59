package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/cognitogw/internal/gateway/domain"
	"github.com/aussiebroadwan/cognitogw/internal/gateway/service"
	"github.com/aussiebroadwan/cognitogw/pkg/authsdk"
	"github.com/aussiebroadwan/cognitogw/pkg/httpx"
	"github.com/aussiebroadwan/cognitogw/pkg/slogx"
)

// decodeRequest reads a JSON body into v. Any decoding failure is reported
// as domain.ErrInvalidRequest.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) error {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	return nil
}

// writeResult writes the success envelope.
func writeResult[T any](w http.ResponseWriter, message string, result T) {
	httpx.WriteJSON(w, http.StatusOK, authsdk.Response[T]{
		Message: message,
		Result:  result,
	})
}

// writeFailure logs err and writes the failure envelope. Invalid requests
// are answered with 400, everything else with 500.
func writeFailure(w http.ResponseWriter, r *http.Request, message string, err error) {
	log := slogx.FromContext(r.Context())

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
		log.Warn("invalid request", "path", r.URL.Path, "err", err)
	default:
		attrs := []any{"path", r.URL.Path, "err", err}
		var upstream *service.UpstreamError
		if errors.As(err, &upstream) {
			attrs = append(attrs, "op", upstream.Op)
			if code := upstream.Code(); code != "" {
				attrs = append(attrs, "provider_code", code)
			}
		}
		log.Error("request failed", attrs...)
	}

	httpx.WriteJSON(w, status, authsdk.ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}
