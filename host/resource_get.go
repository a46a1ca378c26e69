package host

import (
	"context"
	"encoding/json"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagerctx"
	"github.com/gowebpki/jcs"
)

type getRequest struct {
	Source  Source  `json:"source"`
	Params  Params  `json:"params,omitempty"`
	Version Version `json:"version"`
}

func (resource *hostResource) Get(
	ctx context.Context,
	ioConfig IOConfig,
	source Source,
	params Params,
	version Version,
	dir string,
) (VersionResult, error) {
	var vr VersionResult

	err := resource.runScript(
		ctx,
		inPath,
		[]string{dir},
		getRequest{source, params, version},
		&vr,
		ioConfig,
	)
	if err != nil {
		return VersionResult{}, err
	}

	normalized, err := versionsDiffer(version, vr.Version)
	if err != nil {
		return VersionResult{}, err
	}

	if normalized {
		lagerctx.FromContext(ctx).Info("version-normalized", lager.Data{
			"requested": version,
			"fetched":   vr.Version,
		})
	}

	return vr, nil
}

// versionsDiffer compares the canonical JSON of two versions. A resource
// may return a different version from in than it was asked for.
func versionsDiffer(requested Version, fetched Version) (bool, error) {
	a, err := canonicalVersion(requested)
	if err != nil {
		return false, err
	}

	b, err := canonicalVersion(fetched)
	if err != nil {
		return false, err
	}

	return string(a) != string(b), nil
}

func canonicalVersion(version Version) ([]byte, error) {
	payload, err := json.Marshal(version)
	if err != nil {
		return nil, err
	}

	return jcs.Transform(payload)
}
