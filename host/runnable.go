package host

import (
	"context"
	"io"
	"os"
	"os/exec"
	"syscall"
)

type ProcessSpec struct {
	// Path is passed to the process as argv[0]; it selects the step.
	Path string
	Args []string
	Env  []string
}

type ProcessIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

//go:generate counterfeiter . Process

type Process interface {
	Wait() (int, error)
	Signal(os.Signal) error
}

//go:generate counterfeiter . Runnable

type Runnable interface {
	Run(context.Context, ProcessSpec, ProcessIO) (Process, error)
}

// NewExecutable runs every script from the one resource binary at
// binaryPath, the way the host links it under /opt/resource.
func NewExecutable(binaryPath string) Runnable {
	return &executable{binaryPath: binaryPath}
}

type executable struct {
	binaryPath string
}

func (e *executable) Run(ctx context.Context, spec ProcessSpec, pio ProcessIO) (Process, error) {
	cmd := &exec.Cmd{
		Path:   e.binaryPath,
		Args:   append([]string{spec.Path}, spec.Args...),
		Env:    spec.Env,
		Stdin:  pio.Stdin,
		Stdout: pio.Stdout,
		Stderr: pio.Stderr,
	}

	err := cmd.Start()
	if err != nil {
		return nil, err
	}

	return &process{cmd: cmd}, nil
}

type process struct {
	cmd *exec.Cmd
}

func (p *process) Wait() (int, error) {
	err := p.cmd.Wait()
	if err == nil {
		return 0, nil
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return 128 + int(status.Signal()), nil
		}

		return exitErr.ExitCode(), nil
	}

	return 0, err
}

func (p *process) Signal(signal os.Signal) error {
	return p.cmd.Process.Signal(signal)
}
