package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/icpctrainer/trainerlaunch/internal/config"
)

func TestLoad_defaultsWithoutConfig(t *testing.T) {
	root := t.TempDir()

	ctx, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ctx.Root != root {
		t.Errorf("root: %s", ctx.Root)
	}
	if ctx.VenvDir() != filepath.Join(root, ".venv") {
		t.Errorf("venv dir: %s", ctx.VenvDir())
	}
	if ctx.SrcDir() != filepath.Join(root, "src") {
		t.Errorf("src dir: %s", ctx.SrcDir())
	}
	if ctx.Config.EffectiveModule() != config.DefaultModule {
		t.Errorf("module: %s", ctx.Config.EffectiveModule())
	}
}

func TestLoad_readsConfig(t *testing.T) {
	root := t.TempDir()
	data := []byte("version: 1\nvenv_dir: .env\nmodule: trainer.app\n")
	if err := os.WriteFile(filepath.Join(root, config.FileName), data, 0644); err != nil {
		t.Fatal(err)
	}

	ctx, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ctx.VenvDir() != filepath.Join(root, ".env") {
		t.Errorf("venv dir: %s", ctx.VenvDir())
	}
	if ctx.Config.EffectiveModule() != "trainer.app" {
		t.Errorf("module: %s", ctx.Config.EffectiveModule())
	}
}

func TestLoad_invalidConfigFails(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, config.FileName), []byte("version: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(root); err == nil {
		t.Error("invalid launch.yaml should fail the load")
	}
}

func TestLoad_resolvesRelativeRoot(t *testing.T) {
	root := t.TempDir()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })

	ctx, err := Load(".")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !filepath.IsAbs(ctx.Root) {
		t.Errorf("root should be absolute: %s", ctx.Root)
	}
}

func TestStampPath(t *testing.T) {
	root := t.TempDir()
	ctx, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, ".venv", ".requirements.stamp")
	if got := ctx.StampPath(".requirements.stamp"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
