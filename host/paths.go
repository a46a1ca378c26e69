package host

import resource "github.com/concourse/go-resource"

const (
	checkPath = resource.CheckPath
	inPath    = resource.InPath
	outPath   = resource.OutPath
)
