package models

// DefaultArtifactName is shown when the service does not name the archive.
const DefaultArtifactName = "Converted Files.zip"

// ConvertedArtifact describes a successful conversion. It does not hold the
// archive itself; that is fetched from the download endpoint.
type ConvertedArtifact struct {
	Filename string `json:"filename"`
}

// DisplayName returns the artifact file name, or DefaultArtifactName when the
// service left it empty.
func (a *ConvertedArtifact) DisplayName() string {
	if a == nil || a.Filename == "" {
		return DefaultArtifactName
	}
	return a.Filename
}
