// Package host builds the process console from the built-in defaults, an
// optional YAML profile, the QUILL_* environment and explicit overrides.
package host

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/exp/slices"

	"omibyte.io/quill/rtio"
)

// Stream targets that refer to the process streams rather than a file.
var processStreams = []string{"", "-", "stdout", "stderr"}

type Host struct {
	Console *rtio.Console
	Profile Profile

	files map[string]*os.File
}

// Resolve layers the configuration sources in order of increasing precedence:
// built-in defaults, the profile file, the environment and the overrides.
func Resolve(opts Options) (Profile, error) {
	env := opts.Environment
	if env == nil {
		env = Environment()
	}

	p := Defaults()

	configFile := opts.ConfigFile
	if len(configFile) == 0 {
		configFile = env.Value("QUILL_CONFIG")
	}
	if len(configFile) > 0 {
		file, err := LoadProfile(configFile)
		if err != nil {
			return Profile{}, err
		}
		p = p.Merge(file)
	}

	fromEnv, err := ProfileFromEnv(env)
	if err != nil {
		return Profile{}, err
	}
	return p.Merge(fromEnv).Merge(opts.Overrides), nil
}

// Open resolves the configuration and opens the stream targets it names.
// The caller must Close the host to release any files it opened.
func Open(opts Options) (*Host, error) {
	profile, err := Resolve(opts)
	if err != nil {
		return nil, err
	}

	verbosity, err := rtio.ParseVerbosity(profile.Verbosity)
	if err != nil {
		return nil, err
	}

	procStdout, procStderr := opts.Stdout, opts.Stderr
	if procStdout == nil {
		procStdout = os.Stdout
	}
	if procStderr == nil {
		procStderr = os.Stderr
	}

	h := &Host{
		Profile: profile,
		files:   map[string]*os.File{},
	}

	stdout, err := h.stream(profile.Stdout, procStdout, procStdout, procStderr)
	if err != nil {
		h.Close()
		return nil, err
	}
	stderr, err := h.stream(profile.Stderr, procStderr, procStdout, procStderr)
	if err != nil {
		h.Close()
		return nil, err
	}

	diag := opts.Diagnostics
	if diag == nil {
		diag = procStderr
	}

	consoleOpts := []rtio.Option{rtio.WithDiagnostics(diag, verbosity)}
	if profile.IsStrict() {
		consoleOpts = append(consoleOpts, rtio.WithStrictWrites())
	}
	if opts.Exit != nil {
		consoleOpts = append(consoleOpts, rtio.WithExit(opts.Exit))
	}
	h.Console = rtio.NewConsole(stdout, stderr, consoleOpts...)
	return h, nil
}

func (h *Host) stream(target string, self, procStdout, procStderr io.Writer) (io.Writer, error) {
	if slices.Contains(processStreams, target) {
		switch target {
		case "stdout":
			return procStdout, nil
		case "stderr":
			return procStderr, nil
		}
		return self, nil
	}

	path, err := filepath.Abs(target)
	if err != nil {
		return nil, errors.Join(ErrOpenStream, err)
	}
	if f, ok := h.files[path]; ok {
		return f, nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Join(ErrOpenStream, err)
	}
	h.files[path] = f
	return f, nil
}

// Close closes every file opened for stream targets. The process streams are
// never closed.
func (h *Host) Close() error {
	var errs []error
	for path, f := range h.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(h.files, path)
	}
	return errors.Join(errs...)
}
