package facet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrebirth-labs/jrforge/internal/maven"
	"github.com/jrebirth-labs/jrforge/internal/output"
	"github.com/jrebirth-labs/jrforge/internal/project"
	"github.com/jrebirth-labs/jrforge/internal/prompt"
)

// VersionLister lists the published versions of an artifact, newest first.
// *maven.Client implements it.
type VersionLister interface {
	Versions(ctx context.Context, groupID, artifactID string) ([]string, error)
}

var _ VersionLister = (*maven.Client)(nil)

// Installer adds dependencies to a project, optionally asking which
// published version to use.
type Installer struct {
	versions VersionLister
	prompter prompt.Prompter
	reporter output.Reporter
}

// NewInstaller returns an Installer. versions and prompter are only used
// when a dependency is installed with askVersion set.
func NewInstaller(versions VersionLister, prompter prompt.Prompter, reporter output.Reporter) *Installer {
	return &Installer{versions: versions, prompter: prompter, reporter: reporter}
}

// Install adds dep to p. When askVersion is true the version of dep is
// replaced by the one the user picks among the published versions.
// It returns false when p already declares the dependency.
func (i *Installer) Install(ctx context.Context, p Project, dep project.Dependency, askVersion bool) (bool, error) {
	if p.HasDependency(dep) {
		i.reporter.Info("%s is already installed.", dep.Key())
		return false, nil
	}

	if askVersion {
		version, err := i.chooseVersion(ctx, dep)
		if err != nil {
			return false, err
		}
		dep = dep.WithVersion(version)
	}

	p.AddDependency(dep)
	output.Debug("added dependency", "coordinate", dep.String())
	i.reporter.Success("Added dependency %s", dep)
	return true, nil
}

func (i *Installer) chooseVersion(ctx context.Context, dep project.Dependency) (string, error) {
	if i.versions == nil || i.prompter == nil {
		return "", fmt.Errorf("cannot choose a version of %s: no version source", dep.Key())
	}

	versions, err := i.versions.Versions(ctx, dep.GroupID, dep.ArtifactID)
	if errors.Is(err, maven.ErrNotFound) {
		return "", fmt.Errorf("%w for %s", ErrNoVersions, dep.Key())
	}
	if err != nil {
		return "", fmt.Errorf("listing versions of %s: %w", dep.Key(), err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("%w for %s", ErrNoVersions, dep.Key())
	}

	idx, err := i.prompter.Select(fmt.Sprintf("Which version of %s?", dep.Key()), versionLabels(versions), 0)
	if err != nil {
		return "", fmt.Errorf("choosing a version of %s: %w", dep.Key(), err)
	}
	return versions[idx], nil
}

// versionLabels marks snapshot versions in the version menu.
func versionLabels(versions []string) []string {
	labels := make([]string, len(versions))
	for i, v := range versions {
		labels[i] = v
		if maven.IsSnapshot(v) {
			labels[i] += " (snapshot)"
		}
	}
	return labels
}
