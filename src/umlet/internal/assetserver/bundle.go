package assetserver

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

const _pomFile = "pom.xml"

type pomProject struct {
	ArtifactID string `xml:"artifactId"`
	Parent     struct {
		Version string `xml:"version"`
	} `xml:"parent"`
}

// BundleDirectory locates the built web application shipped next to the
// extension: target/<artifactId>-<parent version>, as named by pom.xml.
func BundleDirectory(extensionPath string) (string, error) {
	pomPath := filepath.Join(extensionPath, _pomFile)
	data, err := os.ReadFile(pomPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", pomPath, err)
	}

	var project pomProject
	if err := xml.Unmarshal(data, &project); err != nil {
		return "", fmt.Errorf("parsing %s: %w", pomPath, err)
	}
	if project.ArtifactID == "" || project.Parent.Version == "" {
		return "", fmt.Errorf("%s is missing artifactId or parent version", pomPath)
	}

	return filepath.Join(extensionPath, "target", project.ArtifactID+"-"+project.Parent.Version), nil
}
