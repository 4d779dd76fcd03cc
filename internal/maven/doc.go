// Package maven lists the published versions of an artifact by reading
// maven-metadata.xml from one or more Maven repositories. Results are sorted
// newest first and cached on disk for a configurable time.
package maven
