package manifest

// InstallType classifies where an extension's package came from. It is a
// domain value recorded at install time, not a build concept.
type InstallType string

const (
	InstallRegistry InstallType = "registry-package"
	InstallLocal    InstallType = "local-path"
	InstallVCS      InstallType = "version-control"
	InstallArchive  InstallType = "archive"
)

// ValidInstallTypes contains all valid install type values.
var ValidInstallTypes = []InstallType{
	InstallRegistry,
	InstallLocal,
	InstallVCS,
	InstallArchive,
}

// Descriptor is one installed extension's declared metadata. Schema is the
// optional configuration-schema reference: absent, an inline schema object,
// or a file path relative to the extension's package root. Any other shape
// is reported as malformed by the schema pipeline.
type Descriptor struct {
	Name        string      `yaml:"name" json:"name"`
	PkgName     string      `yaml:"pkgName" json:"pkgName"`
	Version     string      `yaml:"version" json:"version"`
	MainClass   string      `yaml:"mainClass" json:"mainClass"`
	InstallType InstallType `yaml:"installType" json:"installType"`
	InstallSpec string      `yaml:"installSpec,omitempty" json:"installSpec,omitempty"`
	Schema      any         `yaml:"schema,omitempty" json:"schema,omitempty"`
}
