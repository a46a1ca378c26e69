package resource

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

type CheckRequest[Source, Version any] struct {
	Source  *Source  `json:"source"`
	Version *Version `json:"version"`
}

// CheckResponse always encodes as a JSON array, never null.
type CheckResponse[Version any] []Version

func (response CheckResponse[Version]) MarshalJSON() ([]byte, error) {
	versions := []Version(response)
	if versions == nil {
		versions = []Version{}
	}

	return json.Marshal(versions)
}

type InRequest[Source, Version, Params any] struct {
	Source  *Source `json:"source"`
	Version Version `json:"version"`
	Params  *Params `json:"params"`
}

var ErrMissingVersion = errors.New("missing required field 'version'")

func (request *InRequest[Source, Version, Params]) UnmarshalJSON(payload []byte) error {
	var envelope struct {
		Source  *Source         `json:"source"`
		Version json.RawMessage `json:"version"`
		Params  *Params         `json:"params"`
	}

	err := json.Unmarshal(payload, &envelope)
	if err != nil {
		return err
	}

	if len(envelope.Version) == 0 || bytes.Equal(envelope.Version, []byte("null")) {
		return ErrMissingVersion
	}

	var version Version
	err = json.Unmarshal(envelope.Version, &version)
	if err != nil {
		return errors.Wrap(err, "version")
	}

	request.Source = envelope.Source
	request.Version = version
	request.Params = envelope.Params

	return nil
}

type OutRequest[Source, Params any] struct {
	Source *Source `json:"source"`
	Params *Params `json:"params"`
}

// MetadataField is one name/value pair shown on the build page.
type MetadataField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// VersionResult is the response document of both in and out. A nil
// Metadata encodes as null; an empty one as [].
type VersionResult[Version any] struct {
	Version  Version         `json:"version"`
	Metadata []MetadataField `json:"metadata"`
}

type InResponse[Version any] VersionResult[Version]

type OutResponse[Version any] VersionResult[Version]

// decodeRequest decodes one request envelope. Unknown fields are ignored so
// newer hosts can add to the envelope.
func decodeRequest(payload []byte, request interface{}) error {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return errors.New("empty request")
	}

	if bytes.Equal(trimmed, []byte("null")) {
		return errors.New("request must be a JSON object, got null")
	}

	return json.Unmarshal(payload, request)
}

// encodeResponse renders exactly one JSON document followed by a newline.
// Nothing is returned on failure, so a failed encode never reaches stdout.
func encodeResponse(response interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)

	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)

	err := encoder.Encode(response)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
