// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

// Package testinfra starts throwaway Redis and MongoDB containers for
// integration tests with testcontainers-go.
//
// Every file is behind the integration build tag:
//
//	go test -tags integration ./...
//
// Tests call SkipIfNoDocker first so that the suite still passes on machines
// without a Docker daemon.
package testinfra
