package fontparts

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Environment creates and opens fonts. Implementations register
// themselves with RegisterEnvironment; the built-in "memory"
// environment serves in-memory fonts with no file backing.
type Environment interface {
	// Name returns the environment's registry name.
	Name() string

	// NewFont returns a new empty font.
	NewFont() (*Font, error)

	// OpenFont loads a font from a file. Environments that cannot
	// read the file return an error wrapping ErrUnsupported.
	OpenFont(path string) (*Font, error)
}

var (
	envMu      sync.RWMutex
	envs       = make(map[string]Environment)
	defaultEnv = "memory"
)

// RegisterEnvironment makes an environment available by name.
// Registering a second environment with the same name replaces the
// first.
func RegisterEnvironment(env Environment) {
	envMu.Lock()
	defer envMu.Unlock()
	name := env.Name()
	if _, ok := envs[name]; ok {
		Logger().Warn("environment replaced", "name", name)
	}
	envs[name] = env
}

// SetDefaultEnvironment selects the environment NewFont uses when no
// WithEnvironment option is given. The environment must be registered.
func SetDefaultEnvironment(name string) error {
	envMu.Lock()
	defer envMu.Unlock()
	if _, ok := envs[name]; !ok {
		return fmt.Errorf("environment %q: %w", name, ErrNotFound)
	}
	defaultEnv = name
	return nil
}

// DefaultEnvironment returns the name of the environment NewFont uses
// by default.
func DefaultEnvironment() string {
	envMu.RLock()
	defer envMu.RUnlock()
	return defaultEnv
}

// Environments returns the registered environment names, sorted.
func Environments() []string {
	envMu.RLock()
	defer envMu.RUnlock()
	names := make([]string, 0, len(envs))
	for name := range envs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func environmentNamed(name string) (Environment, error) {
	envMu.RLock()
	defer envMu.RUnlock()
	env, ok := envs[name]
	if !ok {
		return nil, fmt.Errorf("environment %q: %w", name, ErrNotFound)
	}
	return env, nil
}

// memoryEnvironment is the built-in environment serving fonts that
// live only in memory.
type memoryEnvironment struct{}

func (memoryEnvironment) Name() string { return "memory" }

func (memoryEnvironment) NewFont() (*Font, error) {
	f := NewEmptyFont()
	f.environment = "memory"
	return f, nil
}

func (memoryEnvironment) OpenFont(path string) (*Font, error) {
	return nil, fmt.Errorf("memory environment cannot open files: %w", ErrUnsupported)
}

func init() {
	RegisterEnvironment(memoryEnvironment{})
}

// FontOption configures NewFont and OpenFont.
type FontOption func(*fontConfig)

type fontConfig struct {
	environment string
	familyName  string
	styleName   string
}

// WithEnvironment selects the environment by name. NewFont defaults
// to the default environment; OpenFont defaults to trying every
// registered environment.
func WithEnvironment(name string) FontOption {
	return func(cfg *fontConfig) { cfg.environment = name }
}

// WithFamilyName sets the new font's family name.
func WithFamilyName(name string) FontOption {
	return func(cfg *fontConfig) { cfg.familyName = name }
}

// WithStyleName sets the new font's style name.
func WithStyleName(name string) FontOption {
	return func(cfg *fontConfig) { cfg.styleName = name }
}

// NewFont creates a new font in the selected environment.
func NewFont(opts ...FontOption) (*Font, error) {
	cfg := fontConfig{environment: DefaultEnvironment()}
	for _, opt := range opts {
		opt(&cfg)
	}
	env, err := environmentNamed(cfg.environment)
	if err != nil {
		return nil, err
	}
	f, err := env.NewFont()
	if err != nil {
		return nil, err
	}
	if cfg.familyName != "" {
		if err := f.info.SetFamilyName(cfg.familyName); err != nil {
			return nil, err
		}
	}
	if cfg.styleName != "" {
		if err := f.info.SetStyleName(cfg.styleName); err != nil {
			return nil, err
		}
	}
	Logger().Debug("font created", "environment", cfg.environment)
	return f, nil
}

// OpenFont loads a font from a file. With no explicit environment,
// every registered environment is tried in name order; environments
// that do not support the file are skipped.
func OpenFont(path string, opts ...FontOption) (*Font, error) {
	var cfg fontConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.environment != "" {
		env, err := environmentNamed(cfg.environment)
		if err != nil {
			return nil, err
		}
		return env.OpenFont(path)
	}
	var firstErr error
	for _, name := range Environments() {
		env, err := environmentNamed(name)
		if err != nil {
			continue
		}
		f, err := env.OpenFont(path)
		if err == nil {
			Logger().Debug("font opened", "environment", name, "path", path)
			return f, nil
		}
		if firstErr == nil && !errors.Is(err, ErrUnsupported) {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = fmt.Errorf("no environment can open %q: %w", path, ErrUnsupported)
	}
	return nil, firstErr
}

// OpenFonts loads several fonts, collecting the ones that open
// successfully. The error reports the first failure, if any.
func OpenFonts(paths []string, opts ...FontOption) (FontList, error) {
	var fonts FontList
	var firstErr error
	for _, path := range paths {
		f, err := OpenFont(path, opts...)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", path, err)
			}
			continue
		}
		fonts = append(fonts, f)
	}
	return fonts, firstErr
}
