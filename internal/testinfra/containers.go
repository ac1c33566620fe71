// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
)

// SkipIfNoDocker skips the test if Docker is not available.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	if !IsDockerAvailable() {
		t.Skip("Skipping test: Docker not available")
	}
}

// IsDockerAvailable checks if the Docker daemon is reachable.
func IsDockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "docker", "info")
	return cmd.Run() == nil
}

// CleanupContainer terminates a container and logs failures.
func CleanupContainer(t *testing.T, ctx context.Context, container testcontainers.Container) {
	t.Helper()

	if container != nil {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// containerOptions is shared by every container constructor in this package.
type containerOptions struct {
	image        string
	startTimeout time.Duration
}

// Option configures a test container.
type Option func(*containerOptions)

// WithImage overrides the Docker image.
func WithImage(image string) Option {
	return func(o *containerOptions) {
		o.image = image
	}
}

// WithStartTimeout sets how long to wait for the container to become ready.
func WithStartTimeout(timeout time.Duration) Option {
	return func(o *containerOptions) {
		o.startTimeout = timeout
	}
}

func applyOptions(image string, opts []Option) *containerOptions {
	o := &containerOptions{image: image, startTimeout: 60 * time.Second}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// endpoint returns host:port of the mapped port.
func endpoint(ctx context.Context, container testcontainers.Container, port string) (string, error) {
	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		return "", fmt.Errorf("mapped port %s: %w", port, err)
	}
	return fmt.Sprintf("%s:%s", host, mapped.Port()), nil
}
