// Package helloworld is a minimal resource type: in writes a greeting to
// hello_world.txt, and there is only ever one version.
package helloworld

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"

	"code.cloudfoundry.org/lager"
	resource "github.com/concourse/go-resource"
)

const (
	StaticVersion = "static"
	GreetingFile  = "hello_world.txt"
)

type Source struct {
	Name string `json:"name,omitempty"`
}

type Version struct {
	Ver string `json:"ver"`
}

type InParams struct {
	Name   string `json:"name,omitempty"`
	Action Action `json:"action,omitempty"`
}

type Action string

const (
	Hello   Action = "hello"
	Goodbye Action = "goodbye"
)

func (action *Action) UnmarshalJSON(payload []byte) error {
	var name string
	err := json.Unmarshal(payload, &name)
	if err != nil {
		return err
	}

	switch Action(name) {
	case Hello, Goodbye:
		*action = Action(name)
		return nil
	default:
		return fmt.Errorf("unknown action '%s'", name)
	}
}

func (action Action) String() string {
	if action == Goodbye {
		return "Goodbye"
	}

	return "Hello"
}

type InMetadata struct {
	Said string `json:"said"`
}

type Resource = resource.Resource[Source, Version, InParams, resource.Empty, InMetadata, resource.Empty]

func New() Resource {
	return NewWithBuildMetadata(resource.MustBuildMetadata)
}

// NewWithBuildMetadata takes the build metadata from buildMetadata instead
// of the process environment.
func NewWithBuildMetadata(buildMetadata func() resource.BuildMetadata) Resource {
	return helloWorld{buildMetadata: buildMetadata}
}

type helloWorld struct {
	buildMetadata func() resource.BuildMetadata
}

func (helloWorld) Check(logger lager.Logger, source *Source, version *Version) []Version {
	return []Version{{Ver: StaticVersion}}
}

func (helloWorld) In(
	logger lager.Logger,
	source *Source,
	version Version,
	params *InParams,
	outputDir string,
) (resource.InResult[Version, InMetadata], error) {
	if version.Ver != StaticVersion {
		return resource.InResult[Version, InMetadata]{}, fmt.Errorf("no such version '%s'", version.Ver)
	}

	action := Hello
	name := "world"

	if source != nil && source.Name != "" {
		name = source.Name
	}

	if params != nil {
		if params.Action != "" {
			action = params.Action
		}

		if params.Name != "" {
			name = params.Name
		}
	}

	greeting := fmt.Sprintf("%s, %s!", action, name)

	path := filepath.Join(outputDir, GreetingFile)

	logger.Debug("writing-greeting", lager.Data{"path": path})

	err := ioutil.WriteFile(path, []byte(greeting), 0644)
	if err != nil {
		return resource.InResult[Version, InMetadata]{}, err
	}

	return resource.InResult[Version, InMetadata]{
		Version:  Version{Ver: StaticVersion},
		Metadata: &InMetadata{Said: greeting},
	}, nil
}

func (hw helloWorld) Out(logger lager.Logger, source *Source, params *resource.Empty, inputDir string) resource.OutResult[Version, resource.Empty] {
	build := hw.buildMetadata()

	logger.Debug("publishing", lager.Data{
		"build-id": build.ID,
		"team":     build.TeamName,
		"pipeline": build.PipelineName,
		"job":      build.JobName,
	})

	return resource.OutResult[Version, resource.Empty]{
		Version: Version{Ver: StaticVersion},
	}
}
