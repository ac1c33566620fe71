// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

// Package validation validates API request structs with go-playground/validator v10.
//
// A single validator instance is shared by every handler. Field errors are
// reported under their JSON names and converted to the VALIDATION_ERROR
// envelope by ToAPIError:
//
//	if verr := validation.ValidateStruct(&prefs); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// # Custom Rules
//
//	genres  up to three distinct non-empty genres, or exactly ["surprise"]
//
// The scorer tolerates values this package rejects; validation only guards
// the HTTP boundary.
package validation
