// Package service composes repositories and validators into the business operations
// for adverts, feedback and complaints.
package service

import (
	"simpleadvert/internal/models"
	"simpleadvert/internal/observability"
)

// observe counts rejected operations and returns err unchanged.
func observe(resource, operation string, err error) error {
	switch models.ErrorCode(err) {
	case models.CodeForbidden:
		observability.PermissionDenials.WithLabelValues(resource, operation).Inc()
	case models.CodeConflict:
		observability.DescriptionConflicts.Inc()
	}
	return err
}
