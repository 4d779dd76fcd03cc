package cli

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jrebirth-labs/jrforge/internal/facet"
	"github.com/jrebirth-labs/jrforge/internal/project"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const demoDir = "/work/demo"

// setupTest isolates a test from the user's config and disk.
func setupTest(t *testing.T) {
	t.Helper()
	t.Setenv("JRFORGE_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	prev := appFs
	appFs = afero.NewMemMapFs()
	t.Cleanup(func() { appFs = prev })
}

// execute runs the command tree with args and returns what it printed.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	viper.Reset()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, "", args...)
	if err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out)
	}
	return out
}

func initDemo(t *testing.T, setup bool) {
	t.Helper()
	mustExecute(t, "init", "-p", demoDir, "--package", "com.example", "--name", "demo")
	if setup {
		mustExecute(t, "setup", "-p", demoDir)
	}
}

func loadDemo(t *testing.T) *project.Descriptor {
	t.Helper()
	d, err := project.NewStore(appFs, demoDir).Load()
	if err != nil {
		t.Fatalf("loading descriptor: %v", err)
	}
	return d
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(appFs, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestStatusWithoutDescriptor(t *testing.T) {
	setupTest(t)

	_, err := execute(t, "", "-p", demoDir)
	if !errors.Is(err, project.ErrDescriptorNotFound) {
		t.Fatalf("expected ErrDescriptorNotFound, got %v", err)
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	setupTest(t)
	initDemo(t, false)

	if _, err := execute(t, "", "init", "-p", demoDir, "--package", "org.other"); err == nil {
		t.Fatal("expected error on second init")
	}
	if got := loadDemo(t).TopLevelPackage; got != "com.example" {
		t.Errorf("descriptor was overwritten: package %q", got)
	}
}

func TestInitValidatesPackage(t *testing.T) {
	setupTest(t)

	if _, err := execute(t, "", "init", "-p", demoDir, "--package", "com..example"); err == nil {
		t.Fatal("expected invalid package error")
	}
	if ok, _ := afero.Exists(appFs, project.DescriptorPath(demoDir)); ok {
		t.Error("descriptor should not be written")
	}
}

func TestInitDefaultsNameToDirectory(t *testing.T) {
	setupTest(t)
	mustExecute(t, "init", "-p", demoDir, "--package", "com.example")

	if got := loadDemo(t).Name; got != "demo" {
		t.Errorf("Name = %q, want demo", got)
	}
}

func TestSetupAndStatus(t *testing.T) {
	setupTest(t)
	initDemo(t, false)

	out := mustExecute(t, "-p", demoDir)
	if !strings.Contains(out, "JRebirth is not installed. Use 'jrforge setup' to install.") {
		t.Errorf("unexpected status output:\n%s", out)
	}

	out = mustExecute(t, "setup", "-p", demoDir)
	if !strings.Contains(out, "JRebirth is installed.") {
		t.Errorf("setup output:\n%s", out)
	}

	d := loadDemo(t)
	if !facet.IsConfigured(d) {
		t.Error("facet should be recorded")
	}
	if !d.HasDependency(facet.CoreDependency) || !d.HasDependency(facet.JavaFXDependency) {
		t.Errorf("dependencies = %v", d.Dependencies)
	}

	// Second setup changes nothing.
	mustExecute(t, "setup", "-p", demoDir)
	if got := len(loadDemo(t).Dependencies); got != 2 {
		t.Errorf("got %d dependencies after second setup, want 2", got)
	}

	out = mustExecute(t, "-p", demoDir)
	if !strings.Contains(out, "JRebirth is installed.") {
		t.Errorf("unexpected status output:\n%s", out)
	}
}

func TestSetupRejectsUnknownModule(t *testing.T) {
	setupTest(t)
	initDemo(t, false)

	_, err := execute(t, "", "setup", "-p", demoDir, "--module", "widgets")
	if !errors.Is(err, facet.ErrUnknownModule) {
		t.Fatalf("expected ErrUnknownModule, got %v", err)
	}
	if facet.IsConfigured(loadDemo(t)) {
		t.Error("project must be unchanged")
	}
}

func TestSetupPresentationModule(t *testing.T) {
	setupTest(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/org/jrebirth/presentation/maven-metadata.xml" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<metadata><versioning><versions>
			<version>0.7.4</version><version>0.7.10</version>
		</versions></versioning></metadata>`))
	}))
	defer srv.Close()

	mustExecute(t, "config", "set", "repositories.release", srv.URL)
	mustExecute(t, "config", "set", "repositories.snapshot", srv.URL+"/snapshots")
	initDemo(t, false)

	// Enter accepts the newest version.
	out, err := execute(t, "\n", "setup", "-p", demoDir, "-m", "presentation")
	if err != nil {
		t.Fatalf("setup: %v\n%s", err, out)
	}
	if !strings.Contains(out, "1) 0.7.10") {
		t.Errorf("versions menu missing:\n%s", out)
	}

	dep := loadDemo(t).FindDependency(facet.PresentationDependency)
	if dep == nil || dep.Version != "0.7.10" {
		t.Fatalf("presentation dependency = %+v", dep)
	}
}

func TestSetupPresentationNoVersionsLeavesDescriptor(t *testing.T) {
	setupTest(t)

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	mustExecute(t, "config", "set", "repositories.release", srv.URL)
	mustExecute(t, "config", "set", "repositories.snapshot", srv.URL)
	initDemo(t, false)

	_, err := execute(t, "", "setup", "-p", demoDir, "-m", "Presentation")
	if !errors.Is(err, facet.ErrNoVersions) {
		t.Fatalf("expected ErrNoVersions, got %v", err)
	}
	if facet.IsConfigured(loadDemo(t)) {
		t.Error("failed setup must not be saved")
	}
}

func TestUninstall(t *testing.T) {
	setupTest(t)
	initDemo(t, true)

	out := mustExecute(t, "uninstall", "-p", demoDir)
	if !strings.Contains(out, "JRebirth Maven Snapshot Repository is still declared") {
		t.Errorf("missing snapshot warning:\n%s", out)
	}

	d := loadDemo(t)
	if facet.IsConfigured(d) || len(d.Dependencies) != 0 {
		t.Errorf("descriptor after uninstall: %+v", d)
	}
	if !d.HasRepository(facet.SnapshotRepositoryName) || d.HasRepository(facet.ReleaseRepositoryName) {
		t.Errorf("repositories after uninstall: %v", d.Repositories)
	}

	// Nothing left to remove.
	out = mustExecute(t, "uninstall", "-p", demoDir)
	if !strings.Contains(out, "Nothing to uninstall") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCreateRequiresSetup(t *testing.T) {
	setupTest(t)
	initDemo(t, false)

	_, err := execute(t, "", "mvc-create", "-p", demoDir, "--name", "student")
	if !errors.Is(err, facet.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestCreateRequiresName(t *testing.T) {
	setupTest(t)
	initDemo(t, true)

	for _, cmd := range []string{"mvc-create", "mv-create", "fxml-create", "command-create", "service-create", "resource-create", "color-add"} {
		if _, err := execute(t, "", cmd, "-p", demoDir); err == nil {
			t.Errorf("%s: expected missing --name error", cmd)
		}
	}

	_, err := execute(t, "", "service-create", "-p", demoDir, "--name", "")
	if err == nil {
		t.Error("expected error for empty name")
	}
}

func TestMVCCreate(t *testing.T) {
	setupTest(t)
	initDemo(t, true)

	out := mustExecute(t, "mvc-create", "-p", demoDir, "-n", "student")

	src := filepath.Join(demoDir, "src", "main", "java", "com", "example")
	for _, f := range []string{"StudentModel.java", "StudentView.java", "StudentController.java"} {
		if ok, _ := afero.Exists(appFs, filepath.Join(src, "ui", "student", f)); !ok {
			t.Errorf("missing %s", f)
		}
	}
	if !strings.Contains(out, "The UI package does not exist. Creating it.") {
		t.Errorf("output:\n%s", out)
	}

	out = mustExecute(t, "mvc-create", "-p", demoDir, "-n", "student")
	if strings.Contains(out, "Created") {
		t.Errorf("second run should not create anything:\n%s", out)
	}
	if !strings.Contains(out, "StudentModel.java already exists.") {
		t.Errorf("second run output:\n%s", out)
	}
}

func TestSingleFileCreateCommands(t *testing.T) {
	setupTest(t)
	initDemo(t, true)
	src := filepath.Join(demoDir, "src", "main", "java", "com", "example")

	mustExecute(t, "command-create", "-p", demoDir, "-n", "openWindow")
	mustExecute(t, "service-create", "-p", demoDir, "-n", "userService")
	mustExecute(t, "resource-create", "-p", demoDir, "-n", "windowBorder")
	mustExecute(t, "fxml-create", "-p", demoDir, "-n", "dashboard")

	for _, p := range []string{
		filepath.Join(src, "command", "OpenWindow.java"),
		filepath.Join(src, "service", "UserService.java"),
		filepath.Join(src, "resource", "DemoColors.java"),
		filepath.Join(src, "ui", "fxml", "dashboard", "DashboardController.java"),
		filepath.Join(demoDir, "src", "main", "resources", "com", "example", "ui", "fxml", "dashboard", "Dashboard.fxml"),
	} {
		if ok, _ := afero.Exists(appFs, p); !ok {
			t.Errorf("missing %s", p)
		}
	}
}

func TestColorAdd(t *testing.T) {
	setupTest(t)
	initDemo(t, true)
	colors := filepath.Join(demoDir, "src", "main", "java", "com", "example", "resource", "DemoColors.java")

	mustExecute(t, "color-add", "-p", demoDir, "--name", "windowBorder", "--value", "CCCCCC", "--colorType", "web")
	content := readFile(t, colors)
	if !strings.Contains(content, `WINDOW_BORDER = Resources.create(new WebColor("CCCCCC"));`) {
		t.Errorf("colors interface:\n%s", content)
	}

	mustExecute(t, "color-add", "-p", demoDir, "--name", "shadow", "--value", "0.2", "--color-type", "gray")
	content = readFile(t, colors)
	if !strings.Contains(content, "SHADOW = Resources.create(new GrayColor(0.2));") {
		t.Errorf("colors interface:\n%s", content)
	}

	if _, err := execute(t, "", "color-add", "-p", demoDir, "--name", "bad", "--value", "XYZ"); err == nil {
		t.Error("expected invalid hex error")
	}
}

func TestVersion(t *testing.T) {
	setupTest(t)
	buildVersion = "1.2.3"

	out := mustExecute(t, "version", "--short")
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version --short = %q", out)
	}
}
