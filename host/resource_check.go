package host

import (
	"context"
)

type checkRequest struct {
	Source  Source  `json:"source"`
	Version Version `json:"version"`
}

func (resource *hostResource) Check(
	ctx context.Context,
	ioConfig IOConfig,
	source Source,
	fromVersion Version,
) ([]Version, error) {
	var versions []Version

	err := resource.runScript(
		ctx,
		checkPath,
		nil,
		checkRequest{source, fromVersion},
		&versions,
		ioConfig,
	)
	if err != nil {
		return nil, err
	}

	return versions, nil
}
