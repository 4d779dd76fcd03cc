package maven

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Metadata is the subset of maven-metadata.xml the client reads.
type Metadata struct {
	XMLName    xml.Name   `xml:"metadata"`
	GroupID    string     `xml:"groupId"`
	ArtifactID string     `xml:"artifactId"`
	Versioning Versioning `xml:"versioning"`
}

// Versioning holds the published versions of an artifact.
type Versioning struct {
	Latest      string   `xml:"latest"`
	Release     string   `xml:"release"`
	Versions    []string `xml:"versions>version"`
	LastUpdated string   `xml:"lastUpdated"`
}

// ParseMetadata decodes a maven-metadata.xml document.
func ParseMetadata(r io.Reader) (*Metadata, error) {
	var md Metadata
	if err := xml.NewDecoder(r).Decode(&md); err != nil {
		return nil, fmt.Errorf("parsing maven metadata: %w", err)
	}
	return &md, nil
}
