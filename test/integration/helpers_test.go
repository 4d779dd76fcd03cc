//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jrebirth-labs/jrforge/internal/output"
	"github.com/jrebirth-labs/jrforge/internal/project"
	"github.com/jrebirth-labs/jrforge/internal/scaffold"
	"github.com/spf13/afero"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // JRFORGE_HOME: user config and version cache
	ProjectDir string // a mock Java project
	Fs         afero.Fs
	Reporter   *output.Recorder
}

// setupTestEnv creates isolated temp directories and points JRFORGE_HOME at
// one of them so no test touches the user's settings.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
		Fs:         afero.NewOsFs(),
		Reporter:   &output.Recorder{},
	}
	t.Setenv("JRFORGE_HOME", env.HomeDir)
	return env
}

// initProject writes a descriptor for a project named demo in com.example.
func initProject(t *testing.T, env *testEnv) *project.Store {
	t.Helper()

	store := project.NewStore(env.Fs, env.ProjectDir)
	d := &project.Descriptor{Name: "demo", TopLevelPackage: "com.example"}
	if err := store.Init(d); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return store
}

// newGenerator returns a generator writing to the real filesystem.
func newGenerator(t *testing.T, env *testEnv) *scaffold.Generator {
	t.Helper()

	engine, err := scaffold.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return scaffold.NewGenerator(env.Fs, engine, env.Reporter)
}

// sourcePath joins parts under src/main/java of the project.
func sourcePath(env *testEnv, parts ...string) string {
	return filepath.Join(append([]string{env.ProjectDir, "src", "main", "java"}, parts...)...)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
