// Package resource implements the executable side of a Concourse resource
// type: the check, in and out scripts the host invokes at
// /opt/resource/{check,in,out}.
//
// A resource type is one binary. Implement Resource for your payload types
// and hand it to Run from main:
//
//	func main() {
//		var r resource.Resource[Source, Version, InParams, resource.Empty, InMetadata, resource.Empty] = MyResource{}
//		resource.Run(r)
//	}
//
// The host links the binary under the three fixed names; Run picks the step
// from argv[0], decodes the JSON request on stdin and writes the JSON
// response to stdout.
package resource

import (
	"code.cloudfoundry.org/lager"
)

const (
	CheckPath = "/opt/resource/check"
	InPath    = "/opt/resource/in"
	OutPath   = "/opt/resource/out"
)

// Resource is the contract a resource type implements.
//
// Optional payloads are passed as pointers and are nil when the host sent
// null or omitted the field. The logger writes to stderr, which the host
// shows verbatim in the build log.
type Resource[Source, Version, InParams, OutParams, InMetadata, OutMetadata any] interface {
	// Check detects versions of the resource. It returns versions in
	// chronological order, oldest first, including the given version if it
	// is still valid. An empty result means there is nothing new.
	Check(logger lager.Logger, source *Source, version *Version) []Version

	// In fetches the given version into outputDir. An error fails the step:
	// its message goes to stderr and the process exits 1.
	In(logger lager.Logger, source *Source, version Version, params *InParams, outputDir string) (InResult[Version, InMetadata], error)

	// Out publishes a new version from the build's sources in inputDir.
	Out(logger lager.Logger, source *Source, params *OutParams, inputDir string) OutResult[Version, OutMetadata]
}

// InResult is what In returns. A nil Metadata is sent to the host as null.
type InResult[Version, Metadata any] struct {
	Version  Version
	Metadata *Metadata
}

// OutResult is what Out returns. A nil Metadata is sent to the host as null.
type OutResult[Version, Metadata any] struct {
	Version  Version
	Metadata *Metadata
}

// Empty can stand in for any params or metadata type the resource does not
// use. As metadata it flattens to an empty list.
type Empty struct{}

func (Empty) MetadataFields() []MetadataField {
	return []MetadataField{}
}
