package main

import (
	"encoding/json"

	"github.com/concourse/go-resource/host"
	"github.com/pkg/errors"
)

type SourceFlag host.Source

func (f *SourceFlag) UnmarshalFlag(value string) error {
	return unmarshalObject(value, (*map[string]interface{})(f))
}

type ParamsFlag host.Params

func (f *ParamsFlag) UnmarshalFlag(value string) error {
	return unmarshalObject(value, (*map[string]interface{})(f))
}

type VersionFlag host.Version

func (f *VersionFlag) UnmarshalFlag(value string) error {
	var version map[string]string
	err := json.Unmarshal([]byte(value), &version)
	if err != nil {
		return errors.Wrap(err, "version must be a JSON object of strings")
	}

	*f = version
	return nil
}

func unmarshalObject(value string, dest *map[string]interface{}) error {
	var object map[string]interface{}
	err := json.Unmarshal([]byte(value), &object)
	if err != nil {
		return errors.Wrap(err, "must be a JSON object")
	}

	*dest = object
	return nil
}
