package config

// FileName is the optional workspace config file.
const FileName = "launch.yaml"

// Defaults applied when launch.yaml is absent or a field is empty.
const (
	DefaultInterpreter = "python3"
	DefaultVenvDir     = ".venv"
	DefaultSrcDir      = "src"
	DefaultModule      = "icpc_trainer.tui"
)

// Launch represents the top-level launch.yaml config.
type Launch struct {
	Version     int               `yaml:"version"`
	Interpreter string            `yaml:"interpreter,omitempty"`
	VenvDir     string            `yaml:"venv_dir,omitempty"`
	SrcDir      string            `yaml:"src_dir,omitempty"`
	Module      string            `yaml:"module,omitempty"`
	Env         map[string]string `yaml:"env,omitempty"`
}

// Default returns a config with every field at its default value.
func Default() *Launch {
	return &Launch{
		Version:     1,
		Interpreter: DefaultInterpreter,
		VenvDir:     DefaultVenvDir,
		SrcDir:      DefaultSrcDir,
		Module:      DefaultModule,
	}
}

// EffectiveInterpreter returns the base interpreter, falling back to the default.
func (l *Launch) EffectiveInterpreter() string {
	if l.Interpreter != "" {
		return l.Interpreter
	}
	return DefaultInterpreter
}

// EffectiveVenvDir returns the venv directory name, falling back to the default.
func (l *Launch) EffectiveVenvDir() string {
	if l.VenvDir != "" {
		return l.VenvDir
	}
	return DefaultVenvDir
}

// EffectiveSrcDir returns the source directory name, falling back to the default.
func (l *Launch) EffectiveSrcDir() string {
	if l.SrcDir != "" {
		return l.SrcDir
	}
	return DefaultSrcDir
}

// EffectiveModule returns the target module, falling back to the default.
func (l *Launch) EffectiveModule() string {
	if l.Module != "" {
		return l.Module
	}
	return DefaultModule
}
