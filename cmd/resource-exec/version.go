package main

import (
	"fmt"
)

// set with -ldflags "-X main.Version=..."
var Version = "0.0.0-dev"

type VersionCommand struct{}

func (command *VersionCommand) Execute([]string) error {
	fmt.Println(Version)
	return nil
}
