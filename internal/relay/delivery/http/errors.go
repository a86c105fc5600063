package http

import (
	"errors"
	"fmt"
	"net/http"

	"gemini-relay/internal/relay"
	pkgErrors "gemini-relay/pkg/errors"
)

var (
	errInvalidBody       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body.")
	errConfiguration     = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Gemini API Key not configured!")
	errPromptRequired    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Prompt is required.")
	errSafetyRejection   = pkgErrors.NewHTTPError(http.StatusBadRequest, "The request was blocked by Gemini's safety filters.")
	errMalformedResponse = pkgErrors.NewHTTPError(http.StatusBadRequest, "No results found or unexpected response format from Gemini.")
	errTransport         = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Server error occurred when trying to connect to Gemini.")
)

func (h *handler) mapError(err error) error {
	var (
		upstreamErr *relay.UpstreamError
		blockedErr  *relay.PromptBlockedError
		historyErr  *relay.HistoryError
	)
	switch {
	case errors.Is(err, relay.ErrConfiguration):
		return errConfiguration
	case errors.Is(err, relay.ErrPromptRequired):
		return errPromptRequired
	case errors.As(err, &historyErr):
		return pkgErrors.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid history: turn %d: %s.", historyErr.Index, historyErr.Reason))
	case errors.Is(err, relay.ErrSafetyRejection):
		return errSafetyRejection
	case errors.As(err, &upstreamErr):
		return pkgErrors.NewHTTPError(upstreamErr.Code, upstreamErr.Message)
	case errors.As(err, &blockedErr):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Request blocked by Gemini: "+blockedErr.Reason)
	case errors.Is(err, relay.ErrMalformedUpstreamResponse):
		return errMalformedResponse
	case errors.Is(err, relay.ErrTransport):
		return errTransport
	default:
		return err
	}
}
