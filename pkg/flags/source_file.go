package flags

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Overrides is the parsed content of a local overrides file.
type Overrides struct {
	Flags    map[Flag]bool
	Rollouts map[Flag]int
}

type overridesDocument struct {
	Flags    map[string]bool `yaml:"flags"`
	Rollouts map[string]int  `yaml:"rollouts"`
}

// FileSource reads flag and rollout overrides from a YAML file.
// A missing file is not an error: the layer is simply absent.
type FileSource struct {
	path   string
	logger *zap.Logger
}

func NewFileSource(path string, logger *zap.Logger) *FileSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSource{
		path:   path,
		logger: logger,
	}
}

func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Load() (*Overrides, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read overrides file")
	}

	var document overridesDocument
	err = yaml.Unmarshal(data, &document)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse overrides file")
	}

	overrides := &Overrides{
		Flags:    make(map[Flag]bool, len(document.Flags)),
		Rollouts: make(map[Flag]int, len(document.Rollouts)),
	}

	for name, value := range document.Flags {
		flag := Flag(name)
		if !flag.Known() {
			s.logger.Warn("skipping unrecognized flag in overrides file", zap.String("flag", name))
			continue
		}
		overrides.Flags[flag] = value
	}

	for name, percentage := range document.Rollouts {
		flag := Flag(name)
		if !flag.Known() {
			s.logger.Warn("skipping unrecognized rollout in overrides file", zap.String("flag", name))
			continue
		}
		overrides.Rollouts[flag] = percentage
	}

	return overrides, nil
}

// Set records a flag override in the file, creating it if necessary.
// A watching process picks the change up on its next reload.
func (s *FileSource) Set(flag Flag, enabled bool) error {
	if !flag.Known() {
		return errors.Errorf("unrecognized flag: %s", flag)
	}

	var document overridesDocument
	data, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to read overrides file")
	}
	if err == nil {
		err = yaml.Unmarshal(data, &document)
		if err != nil {
			return errors.Wrap(err, "failed to parse overrides file")
		}
	}

	if document.Flags == nil {
		document.Flags = make(map[string]bool)
	}
	document.Flags[flag.String()] = enabled

	updated, err := yaml.Marshal(&document)
	if err != nil {
		return errors.Wrap(err, "failed to marshal overrides")
	}

	err = os.MkdirAll(filepath.Dir(s.path), 0770)
	if err != nil {
		return errors.Wrap(err, "failed to create overrides directory")
	}

	err = os.WriteFile(s.path, updated, 0644)
	return errors.Wrap(err, "failed to write overrides file")
}
