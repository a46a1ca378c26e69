package host

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"syscall"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagerctx"
	"github.com/pkg/errors"
)

type ErrResourceScriptFailed struct {
	Path       string
	Args       []string
	ExitStatus int

	Stderr string
}

func (err ErrResourceScriptFailed) Error() string {
	msg := fmt.Sprintf(
		"resource script '%s %v' failed: exit status %d",
		err.Path,
		err.Args,
		err.ExitStatus,
	)

	if len(err.Stderr) > 0 {
		msg += "\n\nstderr:\n" + err.Stderr
	}

	return msg
}

func (resource *hostResource) runScript(
	ctx context.Context,
	path string,
	args []string,
	input interface{},
	output interface{},
	ioConfig IOConfig,
) error {
	logger := lagerctx.FromContext(ctx).Session("run-script", lager.Data{
		"path": path,
		"args": args,
	})

	request, err := json.Marshal(input)
	if err != nil {
		return errors.Wrap(err, "encode request")
	}

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	var logDest io.Writer = stderr
	if ioConfig.Stderr != nil {
		logDest = io.MultiWriter(stderr, ioConfig.Stderr)
	}

	process, err := resource.runnable.Run(
		ctx,
		ProcessSpec{
			Path: path,
			Args: args,
			Env:  ioConfig.Env,
		},
		ProcessIO{
			Stdin:  bytes.NewBuffer(request),
			Stdout: stdout,
			Stderr: logDest,
		},
	)
	if err != nil {
		logger.Error("failed-to-run", err)
		return err
	}

	processExited := make(chan struct{})

	var processStatus int
	var processErr error

	go func() {
		processStatus, processErr = process.Wait()
		close(processExited)
	}()

	select {
	case <-processExited:
		if processErr != nil {
			return processErr
		}

		logger.Debug("exited", lager.Data{"status": processStatus})

		if processStatus != 0 {
			return ErrResourceScriptFailed{
				Path:       path,
				Args:       args,
				ExitStatus: processStatus,

				Stderr: stderr.String(),
			}
		}

		err := json.Unmarshal(stdout.Bytes(), output)
		if err != nil {
			return errors.Wrapf(err, "decode response of '%s'", path)
		}

		return nil

	case <-ctx.Done():
		logger.Info("interrupting")
		process.Signal(syscall.SIGTERM)
		<-processExited
		return ctx.Err()
	}
}
