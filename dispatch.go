package resource

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager"
	"github.com/pkg/errors"
)

const (
	ExitSuccess       = 0
	ExitStepFailed    = 1
	ExitProtocolError = 2
)

type Step string

const (
	CheckStep Step = "check"
	InStep    Step = "in"
	OutStep   Step = "out"
)

type ErrUnknownStep struct {
	Invocation string
}

func (err ErrUnknownStep) Error() string {
	return fmt.Sprintf("unexpected being called as '%s'", err.Invocation)
}

type ErrMissingPath struct {
	Step Step
}

func (err ErrMissingPath) Error() string {
	return fmt.Sprintf("%s: expected directory path as first argument", err.Step)
}

// StepFor maps the name the binary was invoked as to a step. Both the full
// path (/opt/resource/check) and the bare name (check) are accepted.
func StepFor(invocation string) (Step, error) {
	switch Step(filepath.Base(invocation)) {
	case CheckStep:
		return CheckStep, nil
	case InStep:
		return InStep, nil
	case OutStep:
		return OutStep, nil
	default:
		return "", ErrUnknownStep{Invocation: invocation}
	}
}

// Invocation is the process context a step runs in.
type Invocation struct {
	// Args[0] selects the step; Args[1] is the working directory for in
	// and out.
	Args []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Debug lowers the log level of the step's logger to debug.
	Debug bool
}

// Run dispatches the current process to the right step of r and exits with
// the step's exit code. It never returns.
func Run[Source, Version, InParams, OutParams, InMetadata, OutMetadata any](
	r Resource[Source, Version, InParams, OutParams, InMetadata, OutMetadata],
) {
	os.Exit(Dispatch(r, Invocation{
		Args:   os.Args,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Debug:  os.Getenv("RESOURCE_DEBUG") != "",
	}))
}

// Dispatch runs exactly one step of r for the given invocation and returns
// the exit code.
//
// On success one JSON document and a newline are written to Stdout. On any
// failure nothing is written to Stdout and a one-line diagnostic goes to
// Stderr. A failed In exits ExitStepFailed; malformed requests, unknown
// invocation names and unencodable responses exit ExitProtocolError.
func Dispatch[Source, Version, InParams, OutParams, InMetadata, OutMetadata any](
	r Resource[Source, Version, InParams, OutParams, InMetadata, OutMetadata],
	invocation Invocation,
) int {
	logger := newLogger(invocation)

	d := &dispatcher[Source, Version, InParams, OutParams, InMetadata, OutMetadata]{
		resource: r,
	}

	response, err := d.dispatch(logger, invocation)
	if err != nil {
		logger.Debug("failed", lager.Data{"error": err.Error()})
		fmt.Fprintln(invocation.Stderr, err)

		if _, ok := err.(errStepFailed); ok {
			return ExitStepFailed
		}

		return ExitProtocolError
	}

	_, err = invocation.Stdout.Write(response)
	if err != nil {
		fmt.Fprintln(invocation.Stderr, errors.Wrap(err, "write response"))
		return ExitProtocolError
	}

	return ExitSuccess
}

func newLogger(invocation Invocation) lager.Logger {
	name := "resource"
	if len(invocation.Args) > 0 {
		name = filepath.Base(invocation.Args[0])
	}

	level := lager.INFO
	if invocation.Debug {
		level = lager.DEBUG
	}

	logger := lager.NewLogger(name)
	logger.RegisterSink(lager.NewWriterSink(invocation.Stderr, level))

	return logger
}

type errStepFailed struct {
	step Step
	err  error
}

func (err errStepFailed) Error() string {
	return fmt.Sprintf("%s failed: %s", err.step, err.err)
}

type dispatcher[Source, Version, InParams, OutParams, InMetadata, OutMetadata any] struct {
	resource Resource[Source, Version, InParams, OutParams, InMetadata, OutMetadata]
}

func (d *dispatcher[S, V, Pi, Po, Mi, Mo]) dispatch(logger lager.Logger, invocation Invocation) ([]byte, error) {
	if len(invocation.Args) == 0 {
		return nil, ErrUnknownStep{}
	}

	request, err := io.ReadAll(invocation.Stdin)
	if err != nil {
		return nil, errors.Wrap(err, "read request")
	}

	step, err := StepFor(invocation.Args[0])
	if err != nil {
		logger.Debug("unexpected-invocation", lager.Data{"args": invocation.Args})
		return nil, err
	}

	logger = logger.Session(string(step))
	logger.Debug("start", lager.Data{"args": invocation.Args[1:]})
	defer logger.Debug("done")

	switch step {
	case CheckStep:
		return d.check(logger, request)
	case InStep:
		dir, err := workingDir(step, invocation.Args)
		if err != nil {
			return nil, err
		}

		return d.in(logger, request, dir)
	default:
		dir, err := workingDir(step, invocation.Args)
		if err != nil {
			return nil, err
		}

		return d.out(logger, request, dir)
	}
}

func workingDir(step Step, args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrMissingPath{Step: step}
	}

	return args[1], nil
}

func (d *dispatcher[S, V, Pi, Po, Mi, Mo]) check(logger lager.Logger, payload []byte) ([]byte, error) {
	var request CheckRequest[S, V]
	err := decodeRequest(payload, &request)
	if err != nil {
		logger.Debug("failed-to-decode-request", lager.Data{"error": err.Error()})
		return nil, errors.Wrap(err, "decode check request")
	}

	versions := d.resource.Check(logger, request.Source, request.Version)

	logger.Debug("checked", lager.Data{"versions": len(versions)})

	response, err := encodeResponse(CheckResponse[V](versions))
	if err != nil {
		return nil, errors.Wrap(err, "encode check response")
	}

	return response, nil
}

func (d *dispatcher[S, V, Pi, Po, Mi, Mo]) in(logger lager.Logger, payload []byte, outputDir string) ([]byte, error) {
	var request InRequest[S, V, Pi]
	err := decodeRequest(payload, &request)
	if err != nil {
		logger.Debug("failed-to-decode-request", lager.Data{"error": err.Error()})
		return nil, errors.Wrap(err, "decode in request")
	}

	result, err := d.resource.In(logger, request.Source, request.Version, request.Params, outputDir)
	if err != nil {
		return nil, errStepFailed{step: InStep, err: err}
	}

	metadata, err := flattenOptional(result.Metadata)
	if err != nil {
		return nil, errors.Wrap(err, "encode in response")
	}

	response, err := encodeResponse(InResponse[V]{
		Version:  result.Version,
		Metadata: metadata,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode in response")
	}

	return response, nil
}

func (d *dispatcher[S, V, Pi, Po, Mi, Mo]) out(logger lager.Logger, payload []byte, inputDir string) ([]byte, error) {
	var request OutRequest[S, Po]
	err := decodeRequest(payload, &request)
	if err != nil {
		logger.Debug("failed-to-decode-request", lager.Data{"error": err.Error()})
		return nil, errors.Wrap(err, "decode out request")
	}

	result := d.resource.Out(logger, request.Source, request.Params, inputDir)

	metadata, err := flattenOptional(result.Metadata)
	if err != nil {
		return nil, errors.Wrap(err, "encode out response")
	}

	response, err := encodeResponse(OutResponse[V]{
		Version:  result.Version,
		Metadata: metadata,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode out response")
	}

	return response, nil
}

// nil metadata stays nil so it encodes as null rather than []
func flattenOptional[M any](metadata *M) ([]MetadataField, error) {
	if metadata == nil {
		return nil, nil
	}

	return FlattenMetadata(metadata)
}
