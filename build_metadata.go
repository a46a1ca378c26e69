package resource

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v6"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// BuildMetadata describes the build running a get or put step, as exposed by
// the host through environment variables.
//
// For one-off builds Name, JobName, PipelineName and PipelineInstanceVars are
// empty. PipelineInstanceVars is also nil when the pipeline is not an
// instanced pipeline.
type BuildMetadata struct {
	// Internal identifier of the build. Treat it as an opaque reference.
	ID string `json:"id"`

	// Build number within the job.
	Name string `json:"name,omitempty"`

	JobName              string                 `json:"job_name,omitempty"`
	PipelineName         string                 `json:"pipeline_name,omitempty"`
	PipelineInstanceVars map[string]interface{} `json:"pipeline_instance_vars,omitempty"`
	TeamName             string                 `json:"team_name"`

	// Public URL of the host; useful for linking back to the build.
	ATCExternalURL string `json:"atc_external_url"`
}

type buildEnvironment struct {
	ID                   string `env:"BUILD_ID"`
	Name                 string `env:"BUILD_NAME"`
	JobName              string `env:"BUILD_JOB_NAME"`
	PipelineName         string `env:"BUILD_PIPELINE_NAME"`
	PipelineInstanceVars string `env:"BUILD_PIPELINE_INSTANCE_VARS"`
	TeamName             string `env:"BUILD_TEAM_NAME"`
	ATCExternalURL       string `env:"ATC_EXTERNAL_URL"`
}

type ErrMissingBuildVariable struct {
	Name string
}

func (err ErrMissingBuildVariable) Error() string {
	return fmt.Sprintf("environment variable %s should be present", err.Name)
}

// ReadBuildMetadata reads the build metadata from the process environment.
func ReadBuildMetadata() (BuildMetadata, error) {
	return ReadBuildMetadataFrom(nil)
}

// ReadBuildMetadataFrom reads the build metadata from the given environment,
// or from the process environment when environ is nil. Every missing
// required variable is reported in the returned error.
func ReadBuildMetadataFrom(environ map[string]string) (BuildMetadata, error) {
	var vars buildEnvironment

	options := env.Options{}
	if environ != nil {
		options.Environment = environ
	}

	err := env.Parse(&vars, options)
	if err != nil {
		return BuildMetadata{}, errors.Wrap(err, "read build metadata")
	}

	var missing *multierror.Error
	for _, required := range []struct {
		name  string
		value string
	}{
		{"BUILD_ID", vars.ID},
		{"BUILD_TEAM_NAME", vars.TeamName},
		{"ATC_EXTERNAL_URL", vars.ATCExternalURL},
	} {
		if required.value == "" {
			missing = multierror.Append(missing, ErrMissingBuildVariable{Name: required.name})
		}
	}

	if missing != nil {
		missing.ErrorFormat = joinErrors
		return BuildMetadata{}, missing
	}

	return BuildMetadata{
		ID:                   vars.ID,
		Name:                 vars.Name,
		JobName:              vars.JobName,
		PipelineName:         vars.PipelineName,
		PipelineInstanceVars: parseInstanceVars(vars.PipelineInstanceVars),
		TeamName:             vars.TeamName,
		ATCExternalURL:       vars.ATCExternalURL,
	}, nil
}

// an unparseable value is treated as if the variable were not set
func parseInstanceVars(raw string) map[string]interface{} {
	if raw == "" {
		return nil
	}

	var instanceVars map[string]interface{}
	err := json.Unmarshal([]byte(raw), &instanceVars)
	if err != nil {
		return nil
	}

	return instanceVars
}

func joinErrors(errs []error) string {
	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Error()
	}

	return strings.Join(messages, "; ")
}

var (
	buildMetadataOnce sync.Once
	buildMetadata     BuildMetadata
	buildMetadataErr  error
)

// MustBuildMetadata returns the metadata of the running build, reading the
// environment on first use. A missing required variable is a configuration
// error: the diagnostic is printed to stderr and the process exits.
func MustBuildMetadata() BuildMetadata {
	buildMetadataOnce.Do(func() {
		buildMetadata, buildMetadataErr = ReadBuildMetadata()
	})

	if buildMetadataErr != nil {
		fmt.Fprintln(os.Stderr, buildMetadataErr)
		os.Exit(ExitProtocolError)
	}

	return buildMetadata
}
