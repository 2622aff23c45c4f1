package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/icpctrainer/trainerlaunch/internal/config"
)

// Context holds the resolved paths and loaded config for a workspace.
type Context struct {
	Root       string
	ConfigPath string
	Config     *config.Launch // defaults when launch.yaml is absent
}

// Load resolves the workspace root and loads launch.yaml if present.
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}

	configPath := filepath.Join(root, config.FileName)

	ctx := &Context{
		Root:       root,
		ConfigPath: configPath,
		Config:     config.Default(),
	}

	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		ctx.Config = cfg
	}

	return ctx, nil
}

// VenvDir returns the absolute path of the isolated environment directory.
func (c *Context) VenvDir() string {
	return filepath.Join(c.Root, c.Config.EffectiveVenvDir())
}

// SrcDir returns the absolute path of the workspace's source directory.
func (c *Context) SrcDir() string {
	return filepath.Join(c.Root, c.Config.EffectiveSrcDir())
}

// StampPath returns the absolute path of a freshness stamp inside the venv.
func (c *Context) StampPath(name string) string {
	return filepath.Join(c.VenvDir(), name)
}
