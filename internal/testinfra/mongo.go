// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

//go:build integration

package testinfra

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultMongoImage is the MongoDB image used by catalog tests.
	DefaultMongoImage = "mongo:7"

	mongoPort = "27017/tcp"
)

// MongoContainer is a running MongoDB server without authentication.
type MongoContainer struct {
	testcontainers.Container

	// URI is a mongodb:// connection string.
	URI string
}

// NewMongoContainer starts a MongoDB container.
func NewMongoContainer(ctx context.Context, opts ...Option) (*MongoContainer, error) {
	cfg := applyOptions(DefaultMongoImage, opts)

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        cfg.image,
			ExposedPorts: []string{mongoPort},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(mongoPort),
				wait.ForLog("Waiting for connections"),
			).WithStartupTimeout(cfg.startTimeout),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create mongo container: %w", err)
	}

	addr, err := endpoint(ctx, container, mongoPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, err
	}

	return &MongoContainer{Container: container, URI: "mongodb://" + addr}, nil
}
