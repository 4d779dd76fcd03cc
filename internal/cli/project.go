package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jrebirth-labs/jrforge/internal/branding"
	"github.com/jrebirth-labs/jrforge/internal/config"
	"github.com/jrebirth-labs/jrforge/internal/facet"
	"github.com/jrebirth-labs/jrforge/internal/maven"
	"github.com/jrebirth-labs/jrforge/internal/output"
	"github.com/jrebirth-labs/jrforge/internal/project"
	"github.com/jrebirth-labs/jrforge/internal/prompt"
	"github.com/jrebirth-labs/jrforge/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is the filesystem every command works on.
var appFs afero.Fs = afero.NewOsFs()

// session is a loaded project plus the collaborators commands share.
type session struct {
	store      *project.Store
	descriptor *project.Descriptor
	reporter   output.Reporter
}

func newReporter(w io.Writer) output.Reporter {
	return output.NewConsole(w, config.NoColor() || os.Getenv("NO_COLOR") != "")
}

// projectDir resolves the --project flag to an absolute path.
func projectDir() (string, error) {
	dir, err := filepath.Abs(projectPath)
	if err != nil {
		return "", fmt.Errorf("resolving project directory %s: %w", projectPath, err)
	}
	return dir, nil
}

// openProject loads the descriptor of the project named by --project.
func openProject(cmd *cobra.Command) (*session, error) {
	dir, err := projectDir()
	if err != nil {
		return nil, err
	}

	store := project.NewStore(appFs, dir)
	d, err := store.Load()
	if err != nil {
		return nil, err
	}
	output.Debug("loaded project", "name", d.Name, "package", d.TopLevelPackage, "path", store.Path())

	return &session{
		store:      store,
		descriptor: d,
		reporter:   newReporter(cmd.OutOrStdout()),
	}, nil
}

// requireFacet fails unless JRebirth is set up on the project.
func (s *session) requireFacet() error {
	if !facet.IsConfigured(s.descriptor) {
		return fmt.Errorf("%w: run '%s setup' first", facet.ErrNotConfigured, branding.CLIName())
	}
	return nil
}

func (s *session) save() error {
	if err := s.store.Save(s.descriptor); err != nil {
		return err
	}
	output.Debug("saved project descriptor", "path", s.store.Path())
	return nil
}

func (s *session) generator() (*scaffold.Generator, error) {
	engine, err := scaffold.NewEngine()
	if err != nil {
		return nil, err
	}
	return scaffold.NewGenerator(appFs, engine, s.reporter), nil
}

// request fills the project part of a generation request.
func (s *session) request(kind scaffold.Kind, name string) scaffold.Request {
	return scaffold.Request{
		Kind:            kind,
		Name:            name,
		TopLevelPackage: s.descriptor.TopLevelPackage,
		ProjectName:     s.descriptor.Name,
		SourceRoot:      s.store.SourceDir(s.descriptor),
		ResourceRoot:    s.store.ResourceDir(s.descriptor),
	}
}

func (s *session) coordinator(cmd *cobra.Command) *facet.Coordinator {
	repos := facet.Repositories{
		Release:  config.ReleaseRepository(),
		Snapshot: config.SnapshotRepository(),
	}

	urls := s.descriptor.RepositoryURLs()
	if len(urls) == 0 {
		urls = []string{repos.Release, repos.Snapshot}
	}
	client := maven.New(
		maven.WithRepositories(urls...),
		maven.WithHTTPClient(&http.Client{Timeout: config.HTTPTimeout()}),
		maven.WithCache(appFs, filepath.Join(config.Dir(), "cache"), config.CacheTTL()),
		maven.WithUserAgent(branding.CLIName()+"/"+buildVersion),
	)

	prompter := prompt.NewNumbered(cmd.InOrStdin(), cmd.OutOrStdout())
	return facet.NewCoordinator(facet.NewInstaller(client, prompter, s.reporter), repos, s.reporter)
}
