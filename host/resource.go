// Package host invokes resource executables the way the CI host does: one
// process per step, JSON request on stdin, JSON response on stdout.
package host

import (
	"context"
	"io"

	resource "github.com/concourse/go-resource"
)

type Source map[string]interface{}

type Params map[string]interface{}

type Version map[string]string

type VersionResult struct {
	Version  Version                  `json:"version"`
	Metadata []resource.MetadataField `json:"metadata,omitempty"`
}

type IOConfig struct {
	Stderr io.Writer
	Env    []string
}

type Resource interface {
	Check(context.Context, IOConfig, Source, Version) ([]Version, error)
	Get(ctx context.Context, ioConfig IOConfig, source Source, params Params, version Version, dir string) (VersionResult, error)
	Put(ctx context.Context, ioConfig IOConfig, source Source, params Params, dir string) (VersionResult, error)
}

func NewResource(runnable Runnable) Resource {
	return &hostResource{
		runnable: runnable,
	}
}

type hostResource struct {
	runnable Runnable
}
