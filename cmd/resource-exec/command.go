package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagerctx"
	"github.com/concourse/flag"
	"github.com/concourse/go-resource/host"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type ResourceExecCommand struct {
	Check CheckCommand `command:"check" description:"Run the resource's check script and print the versions"`
	In    InCommand    `command:"in"    description:"Fetch a version into a directory"`
	Out   OutCommand   `command:"out"   description:"Publish a version from a directory"`

	Version VersionCommand `command:"version" description:"Print the version of resource-exec"`
}

var ResourceExec ResourceExecCommand

type ResourceFlags struct {
	Resource flag.File  `short:"r" long:"resource" required:"true" description:"Path to the resource executable."`
	Source   SourceFlag `short:"s" long:"source"   description:"Source configuration, as a JSON object."`

	EnvFile flag.File `long:"env-file" description:"File of KEY=value variables (e.g. BUILD_ID) passed to the resource."`

	Timeout time.Duration `long:"timeout" default:"10m" description:"Interrupt the script after this long."`

	Logger flag.Lager
}

type CheckCommand struct {
	ResourceFlags

	Version VersionFlag `short:"v" long:"version" description:"Version to check from, as a JSON object."`
}

func (command *CheckCommand) Execute([]string) error {
	ctx, cancel, ioConfig, err := command.setup()
	if err != nil {
		return err
	}

	defer cancel()

	versions, err := command.resource().Check(ctx, ioConfig, host.Source(command.Source), host.Version(command.Version))
	if err != nil {
		return err
	}

	for _, version := range versions {
		err := printDigest(os.Stderr, "found", version)
		if err != nil {
			return err
		}
	}

	return printJSON(os.Stdout, versions)
}

type InCommand struct {
	ResourceFlags

	Version VersionFlag `short:"v" long:"version" required:"true" description:"Version to fetch, as a JSON object."`
	Params  ParamsFlag  `short:"p" long:"params" description:"Params for the get step, as a JSON object."`

	Dir flag.Dir `short:"d" long:"dir" required:"true" description:"Directory to fetch the version into."`
}

func (command *InCommand) Execute([]string) error {
	ctx, cancel, ioConfig, err := command.setup()
	if err != nil {
		return err
	}

	defer cancel()

	result, err := command.resource().Get(
		ctx,
		ioConfig,
		host.Source(command.Source),
		host.Params(command.Params),
		host.Version(command.Version),
		string(command.Dir),
	)
	if err != nil {
		return err
	}

	return printResult(os.Stdout, os.Stderr, "fetched", result)
}

type OutCommand struct {
	ResourceFlags

	Params ParamsFlag `short:"p" long:"params" description:"Params for the put step, as a JSON object."`

	Dir flag.Dir `short:"d" long:"dir" required:"true" description:"Directory containing the build's sources."`
}

func (command *OutCommand) Execute([]string) error {
	ctx, cancel, ioConfig, err := command.setup()
	if err != nil {
		return err
	}

	defer cancel()

	result, err := command.resource().Put(
		ctx,
		ioConfig,
		host.Source(command.Source),
		host.Params(command.Params),
		string(command.Dir),
	)
	if err != nil {
		return err
	}

	return printResult(os.Stdout, os.Stderr, "published", result)
}

func (flags ResourceFlags) resource() host.Resource {
	return host.NewResource(host.NewExecutable(string(flags.Resource)))
}

func (flags ResourceFlags) setup() (context.Context, context.CancelFunc, host.IOConfig, error) {
	flags.Logger.SetWriterSink(os.Stderr)
	logger, _ := flags.Logger.Logger("resource-exec")

	env, err := flags.environment(logger.Session("environment"))
	if err != nil {
		return nil, nil, host.IOConfig{}, err
	}

	ctx := lagerctx.NewContext(context.Background(), logger)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, flags.Timeout)

	return ctx, func() { cancel(); stop() }, host.IOConfig{
		Stderr: os.Stderr,
		Env:    env,
	}, nil
}

// environment is this process's environment plus the env file, which wins.
func (flags ResourceFlags) environment(logger lager.Logger) ([]string, error) {
	env := os.Environ()

	if flags.EnvFile != "" {
		vars, err := godotenv.Read(string(flags.EnvFile))
		if err != nil {
			return nil, errors.Wrap(err, "read env file")
		}

		for name, value := range vars {
			if name == "" {
				logger.Info("bogus-env", lager.Data{"value": value})
				continue
			}

			env = append(env, name+"="+value)

			logger.Debug("forwarding-env-var", lager.Data{
				"env": name,
			})
		}
	}

	if flags.Logger.LogLevel == flag.LogLevelDebug {
		env = append(env, "RESOURCE_DEBUG=1")
	}

	return env, nil
}

func printResult(stdout io.Writer, stderr io.Writer, verb string, result host.VersionResult) error {
	err := printDigest(stderr, verb, result.Version)
	if err != nil {
		return err
	}

	for _, field := range result.Metadata {
		fmt.Fprintf(stderr, "  %s: %s\n", color.New(color.Bold).Sprint(field.Name), field.Value)
	}

	return printJSON(stdout, result)
}

func printDigest(stderr io.Writer, verb string, version host.Version) error {
	digest, err := host.VersionDigest(version)
	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "%s %s\n", color.GreenString(verb), color.CyanString(digest[:12]))
	return nil
}

func printJSON(stdout io.Writer, value interface{}) error {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, string(payload))
	return err
}
