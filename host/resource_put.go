package host

import (
	"context"
)

type putRequest struct {
	Source Source `json:"source"`
	Params Params `json:"params,omitempty"`
}

func (resource *hostResource) Put(
	ctx context.Context,
	ioConfig IOConfig,
	source Source,
	params Params,
	dir string,
) (VersionResult, error) {
	var vr VersionResult

	err := resource.runScript(
		ctx,
		outPath,
		[]string{dir},
		putRequest{source, params},
		&vr,
		ioConfig,
	)
	if err != nil {
		return VersionResult{}, err
	}

	return vr, nil
}
