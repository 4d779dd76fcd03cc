package facet

import (
	"context"
	"fmt"

	"github.com/jrebirth-labs/jrforge/internal/branding"
	"github.com/jrebirth-labs/jrforge/internal/output"
	"github.com/jrebirth-labs/jrforge/internal/project"
)

// Repositories holds the URLs setup declares.
type Repositories struct {
	Release  string
	Snapshot string
}

// Coordinator runs setup, uninstall and status against a project.
type Coordinator struct {
	installer *Installer
	repos     Repositories
	reporter  output.Reporter
}

// NewCoordinator returns a Coordinator installing through installer.
func NewCoordinator(installer *Installer, repos Repositories, reporter output.Reporter) *Coordinator {
	return &Coordinator{installer: installer, repos: repos, reporter: reporter}
}

// Status reports whether the facet is installed and returns the same.
func (c *Coordinator) Status(p Project) bool {
	if IsConfigured(p) {
		c.reporter.Info("JRebirth is installed.")
		return true
	}
	c.reporter.Info("JRebirth is not installed. Use '%s setup' to install.", branding.CLIName())
	return false
}

// Setup installs the facet when p does not have it yet, then installs
// module if one is given. Running it again on a configured project only
// reports the status.
func (c *Coordinator) Setup(ctx context.Context, p Project, module Module) error {
	dep, hasModule := module.Dependency()
	if module != ModuleNone && !hasModule {
		return fmt.Errorf("%w %q", ErrUnknownModule, module)
	}

	if !IsConfigured(p) {
		if err := c.install(ctx, p); err != nil {
			return err
		}
	}
	c.Status(p)

	if hasModule {
		if _, err := c.installer.Install(ctx, p, dep, true); err != nil {
			return fmt.Errorf("installing %s module: %w", module, err)
		}
	}
	return nil
}

func (c *Coordinator) install(ctx context.Context, p Project) error {
	if p.AddRepository(ReleaseRepositoryName, c.repos.Release) {
		c.reporter.Success("Added repository %s", ReleaseRepositoryName)
	}
	if p.AddRepository(SnapshotRepositoryName, c.repos.Snapshot) {
		c.reporter.Success("Added repository %s", SnapshotRepositoryName)
	}

	for _, dep := range []project.Dependency{CoreDependency, JavaFXDependency} {
		if _, err := c.installer.Install(ctx, p, dep, false); err != nil {
			return fmt.Errorf("installing %s: %w", dep.Key(), err)
		}
	}

	p.AddFacet(FacetName)
	output.Debug("facet installed", "facet", FacetName)
	return nil
}

// Uninstall removes the facet, its dependencies and the release
// repository. The snapshot repository is left in place. It returns
// ErrNotConfigured when p does not have the facet.
func (c *Coordinator) Uninstall(p Project) error {
	if !IsConfigured(p) {
		c.reporter.Info("JRebirth is not installed. Nothing to uninstall.")
		return ErrNotConfigured
	}

	for _, dep := range []project.Dependency{CoreDependency, JavaFXDependency} {
		if p.RemoveDependency(dep) {
			c.reporter.Success("Removed dependency %s", dep.Key())
		}
	}
	if p.RemoveRepository(ReleaseRepositoryName) {
		c.reporter.Success("Removed repository %s", ReleaseRepositoryName)
	}
	p.RemoveFacet(FacetName)

	c.reporter.Warn("%s is still declared. Remove it by hand if nothing else needs it.", SnapshotRepositoryName)
	c.reporter.Success("JRebirth has been uninstalled.")
	return nil
}
