// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

// Package logging provides the zerolog-based structured logger used by every
// Oscarmatch component.
//
// The global logger is configured once at startup:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
// Components derive child loggers with a component field:
//
//	logger := logging.WithComponent("smartmatch")
//
// Request-scoped code logs through the context so that request_id and
// correlation_id are attached automatically:
//
//	logging.Ctx(ctx).Info().Str("preferences_hash", h).Msg("smart match served")
//
// Suture requires an slog.Logger; NewSlogLogger bridges slog records into
// zerolog so that supervisor events share the same output.
//
// # Configuration
//
//	LOG_LEVEL   trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  json, console (default: json)
//	LOG_CALLER  include caller file:line (default: false)
package logging
