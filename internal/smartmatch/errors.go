// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package smartmatch

import "errors"

var (
	// ErrNoCandidates is returned when no movie survives filtering.
	// The user can recover by relaxing the decade or popularity choice.
	ErrNoCandidates = errors.New("no movies match the selected criteria")

	// ErrCatalogUnavailable wraps failures of the movie catalog. Retryable.
	ErrCatalogUnavailable = errors.New("movie catalog unavailable")
)
