package project

// Maven conventions for source and resource directories.
const (
	DefaultSourceRoot   = "src/main/java"
	DefaultResourceRoot = "src/main/resources"
)

// Dependency is a build dependency coordinate. Two dependencies are the same
// entry when their group and artifact match; the version is not part of the
// identity.
type Dependency struct {
	GroupID    string `yaml:"group_id" json:"group_id"`
	ArtifactID string `yaml:"artifact_id" json:"artifact_id"`
	Version    string `yaml:"version,omitempty" json:"version,omitempty"`
	Scope      string `yaml:"scope,omitempty" json:"scope,omitempty"`
	SystemPath string `yaml:"system_path,omitempty" json:"system_path,omitempty"`
}

// Key returns "group:artifact".
func (d Dependency) Key() string {
	return d.GroupID + ":" + d.ArtifactID
}

// WithVersion returns a copy of d with the version replaced.
func (d Dependency) WithVersion(v string) Dependency {
	d.Version = v
	return d
}

// String renders the coordinate in Maven's group:artifact:version[:scope] form.
func (d Dependency) String() string {
	s := d.Key()
	if d.Version != "" {
		s += ":" + d.Version
	}
	if d.Scope != "" {
		s += ":" + d.Scope
	}
	return s
}

// Repository is a named artifact repository.
type Repository struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Descriptor is the on-disk build descriptor of a host project.
type Descriptor struct {
	Name            string       `yaml:"name" json:"name"`
	TopLevelPackage string       `yaml:"top_level_package" json:"top_level_package"`
	SourceRoot      string       `yaml:"source_root,omitempty" json:"source_root,omitempty"`
	ResourceRoot    string       `yaml:"resource_root,omitempty" json:"resource_root,omitempty"`
	Facets          []string     `yaml:"facets,omitempty" json:"facets,omitempty"`
	Dependencies    []Dependency `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	Repositories    []Repository `yaml:"repositories,omitempty" json:"repositories,omitempty"`
}

// JavaSourceRoot returns the source root relative to the project directory.
func (d *Descriptor) JavaSourceRoot() string {
	if d.SourceRoot == "" {
		return DefaultSourceRoot
	}
	return d.SourceRoot
}

// JavaResourceRoot returns the resource root relative to the project directory.
func (d *Descriptor) JavaResourceRoot() string {
	if d.ResourceRoot == "" {
		return DefaultResourceRoot
	}
	return d.ResourceRoot
}

// HasFacet reports whether the named facet is installed.
func (d *Descriptor) HasFacet(name string) bool {
	for _, f := range d.Facets {
		if f == name {
			return true
		}
	}
	return false
}

// AddFacet records the facet as installed. It is a no-op when already present.
func (d *Descriptor) AddFacet(name string) {
	if !d.HasFacet(name) {
		d.Facets = append(d.Facets, name)
	}
}

// RemoveFacet forgets the facet. Returns false if it was not installed.
func (d *Descriptor) RemoveFacet(name string) bool {
	for i, f := range d.Facets {
		if f == name {
			d.Facets = append(d.Facets[:i], d.Facets[i+1:]...)
			return true
		}
	}
	return false
}

// FindDependency returns the entry with the same group and artifact, or nil.
func (d *Descriptor) FindDependency(dep Dependency) *Dependency {
	for i := range d.Dependencies {
		if d.Dependencies[i].Key() == dep.Key() {
			return &d.Dependencies[i]
		}
	}
	return nil
}

// HasDependency reports whether a dependency with the same key is declared.
func (d *Descriptor) HasDependency(dep Dependency) bool {
	return d.FindDependency(dep) != nil
}

// AddDependency appends dep unless an entry with the same key exists.
// Returns true if the descriptor changed.
func (d *Descriptor) AddDependency(dep Dependency) bool {
	if d.HasDependency(dep) {
		return false
	}
	d.Dependencies = append(d.Dependencies, dep)
	return true
}

// RemoveDependency removes the entry with the same key as dep.
// Returns false if no such entry exists.
func (d *Descriptor) RemoveDependency(dep Dependency) bool {
	for i := range d.Dependencies {
		if d.Dependencies[i].Key() == dep.Key() {
			d.Dependencies = append(d.Dependencies[:i], d.Dependencies[i+1:]...)
			return true
		}
	}
	return false
}

// HasRepository reports whether a repository with the given name exists.
func (d *Descriptor) HasRepository(name string) bool {
	for _, r := range d.Repositories {
		if r.Name == name {
			return true
		}
	}
	return false
}

// AddRepository appends a repository unless one with the same name exists.
// Returns true if the descriptor changed.
func (d *Descriptor) AddRepository(name, url string) bool {
	if d.HasRepository(name) {
		return false
	}
	d.Repositories = append(d.Repositories, Repository{Name: name, URL: url})
	return true
}

// RemoveRepository removes the named repository.
// Returns false if no such repository exists.
func (d *Descriptor) RemoveRepository(name string) bool {
	for i, r := range d.Repositories {
		if r.Name == name {
			d.Repositories = append(d.Repositories[:i], d.Repositories[i+1:]...)
			return true
		}
	}
	return false
}

// RepositoryURLs returns the URLs of all declared repositories in order.
func (d *Descriptor) RepositoryURLs() []string {
	urls := make([]string, 0, len(d.Repositories))
	for _, r := range d.Repositories {
		urls = append(urls, r.URL)
	}
	return urls
}
