package host

import (
	_ "embed"
	"errors"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var rawDefaults []byte
var defaults Profile

// Profile holds the runtime output settings. Zero values mean "unset" when
// profiles are layered with Merge.
type Profile struct {
	Strict    *bool  `yaml:"strict"`
	Stdout    string `yaml:"stdout"`
	Stderr    string `yaml:"stderr"`
	Verbosity string `yaml:"verbosity"`
}

// Defaults returns the built-in profile.
func Defaults() Profile {
	return defaults
}

// LoadProfile parses the YAML profile at path.
func LoadProfile(path string) (Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, errors.Join(ErrProfile, err)
	}

	var p Profile
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Profile{}, errors.Join(ErrProfile, err)
	}
	return p, nil
}

// ProfileFromEnv builds a profile layer from the QUILL_* variables in env.
func ProfileFromEnv(env Env) (Profile, error) {
	p := Profile{
		Stdout:    env.Value("QUILL_STDOUT"),
		Stderr:    env.Value("QUILL_STDERR"),
		Verbosity: env.Value("QUILL_VERBOSITY"),
	}
	if s := env.Value("QUILL_STRICT"); len(s) > 0 {
		strict, err := strconv.ParseBool(s)
		if err != nil {
			return Profile{}, errors.Join(ErrInvalidStrict, err)
		}
		p.Strict = &strict
	}
	return p, nil
}

// Merge returns p with every field that is set in layer replaced.
func (p Profile) Merge(layer Profile) Profile {
	if layer.Strict != nil {
		strict := *layer.Strict
		p.Strict = &strict
	}
	if len(layer.Stdout) > 0 {
		p.Stdout = layer.Stdout
	}
	if len(layer.Stderr) > 0 {
		p.Stderr = layer.Stderr
	}
	if len(layer.Verbosity) > 0 {
		p.Verbosity = layer.Verbosity
	}
	return p
}

// IsStrict reports whether strict writes are enabled.
func (p Profile) IsStrict() bool {
	return p.Strict != nil && *p.Strict
}

func init() {
	if err := yaml.Unmarshal(rawDefaults, &defaults); err != nil {
		panic(err)
	}
}
