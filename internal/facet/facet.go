package facet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jrebirth-labs/jrforge/internal/project"
)

// FacetName is the marker recorded in a project once JRebirth is set up.
const FacetName = "org.jrebirth"

// Repositories added by setup.
const (
	ReleaseRepositoryName  = "JRebirth Maven Repository"
	SnapshotRepositoryName = "JRebirth Maven Snapshot Repository"
)

var (
	// CoreDependency is the JRebirth core framework.
	CoreDependency = project.Dependency{
		GroupID:    "org.jrebirth",
		ArtifactID: "core",
		Version:    "0.7.4-SNAPSHOT",
	}

	// JavaFXDependency points at the JavaFX runtime shipped with the JDK.
	JavaFXDependency = project.Dependency{
		GroupID:    "javafx",
		ArtifactID: "jfxrt",
		Version:    "2.2",
		Scope:      "system",
		SystemPath: "${java.home}/lib/jfxrt.jar",
	}

	// PresentationDependency is the optional presentation module. Its
	// version is chosen at install time.
	PresentationDependency = project.Dependency{
		GroupID:    "org.jrebirth",
		ArtifactID: "presentation",
	}
)

var (
	// ErrNotConfigured is returned when an operation needs the facet but
	// the project does not have it.
	ErrNotConfigured = errors.New("JRebirth is not installed")

	// ErrNoVersions is returned when no published version of a dependency
	// could be found.
	ErrNoVersions = errors.New("no versions available")

	// ErrUnknownModule is returned for module names setup does not know.
	ErrUnknownModule = errors.New("unknown module")
)

// Project is what the facet needs from a host project: the facet markers
// and the dependency manager. *project.Descriptor implements it.
type Project interface {
	HasFacet(name string) bool
	AddFacet(name string)
	RemoveFacet(name string) bool

	HasDependency(dep project.Dependency) bool
	AddDependency(dep project.Dependency) bool
	RemoveDependency(dep project.Dependency) bool

	AddRepository(name, url string) bool
	RemoveRepository(name string) bool
}

var _ Project = (*project.Descriptor)(nil)

// Module is an optional JRebirth module installed by setup.
type Module string

const (
	ModuleNone         Module = ""
	ModulePresentation Module = "Presentation"
)

// Modules lists the modules setup accepts.
var Modules = []Module{ModulePresentation}

// ParseModule matches s against the known modules, ignoring case.
// An empty string is ModuleNone.
func ParseModule(s string) (Module, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ModuleNone, nil
	}
	for _, m := range Modules {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return ModuleNone, fmt.Errorf("%w %q: available modules are %s", ErrUnknownModule, s, moduleList())
}

// Dependency returns the coordinate the module installs.
func (m Module) Dependency() (project.Dependency, bool) {
	switch m {
	case ModulePresentation:
		return PresentationDependency, true
	}
	return project.Dependency{}, false
}

func moduleList() string {
	names := make([]string, len(Modules))
	for i, m := range Modules {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// IsConfigured reports whether the facet is installed on p.
func IsConfigured(p Project) bool {
	return p.HasFacet(FacetName)
}
