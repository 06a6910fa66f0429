// Package shell evaluates DI extension points by running an external command.
package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ExtensionInvoker = (*Invoker)(nil)

// Invoker implements ports.ExtensionInvoker using os/exec.
//
// The configured command is run with the extension point identifier appended
// as its last argument and must print a JSON object of definitions on stdout.
// Stderr is forwarded to the logger line by line.
type Invoker struct {
	logger  ports.Logger
	command []string
	dir     string
}

// NewInvoker creates a new Invoker running command in the current directory.
func NewInvoker(logger ports.Logger, command []string) *Invoker {
	return &Invoker{
		logger:  logger,
		command: command,
	}
}

// WithDir returns a copy of the invoker that runs the command in dir.
func (i *Invoker) WithDir(dir string) *Invoker {
	c := *i
	c.dir = dir
	return &c
}

// Call runs the command for identifier and decodes its output.
func (i *Invoker) Call(ctx context.Context, identifier string) (domain.Definitions, error) {
	if len(i.command) == 0 {
		err := zerr.With(domain.ErrExtensionPointFailed, "identifier", identifier)
		return nil, zerr.With(err, "reason", "no extension command configured")
	}

	name := i.command[0]
	args := append(append([]string{}, i.command[1:]...), identifier)

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // command comes from the user's configuration
	if i.dir != "" {
		cmd.Dir = i.dir
	}

	var stdout bytes.Buffer
	stderr := &logWriter{logger: i.logger}
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	runErr := cmd.Run()
	stderr.Flush()
	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err := zerr.Wrap(runErr, domain.ErrExtensionPointFailed.Error())
		err = zerr.With(err, "identifier", identifier)
		return nil, zerr.With(err, "exit_code", exitCode)
	}

	out := bytes.TrimSpace(stdout.Bytes())
	if isEmptyArray(out) {
		// PHP encodes an empty definitions array as [].
		return domain.Definitions{}, nil
	}

	defs := domain.Definitions{}
	if err := json.Unmarshal(out, &defs); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrExtensionPointFailed.Error())
		wrapped = zerr.With(wrapped, "identifier", identifier)
		return nil, zerr.With(wrapped, "reason", "output is not a JSON object")
	}
	return defs, nil
}

func isEmptyArray(data []byte) bool {
	var items []json.RawMessage
	return len(data) > 0 && data[0] == '[' && json.Unmarshal(data, &items) == nil && len(items) == 0
}

// logWriter forwards complete lines to the logger as warnings.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		idx := bytes.IndexByte(w.buf, '\n')
		if idx < 0 {
			break
		}
		w.emit(string(w.buf[:idx]))
		w.buf = w.buf[idx+1:]
	}
	return len(p), nil
}

// Flush emits any trailing partial line.
func (w *logWriter) Flush() {
	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *logWriter) emit(line string) {
	line = strings.TrimRight(line, "\r")
	if line != "" {
		w.logger.Warn(line)
	}
}
