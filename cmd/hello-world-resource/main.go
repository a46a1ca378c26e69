package main

import (
	resource "github.com/concourse/go-resource"
	"github.com/concourse/go-resource/internal/helloworld"
)

func main() {
	resource.Run(helloworld.New())
}
