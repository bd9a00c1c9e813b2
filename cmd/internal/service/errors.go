package service

import (
	"dealership/cmd/internal/metrics"
	"dealership/cmd/internal/utils/apierror"
	"errors"
)

// reject counts a refused command under its error kind and passes resp through.
func reject(m *metrics.Metrics, command string, resp apierror.ErrorResponse) apierror.ErrorResponse {
	kind := "unknown"
	var apiErr *apierror.APIError
	if errors.As(resp, &apiErr) {
		kind = apiErr.Kind
	}
	m.Rejected(command, kind)
	return resp
}
