package entity

// Configuration keys read by the controllers.
const (
	AssetsConfigKey    = "assets"
	EditorConfigKey    = "editor"
	DocumentsConfigKey = "documents"
	CommandsConfigKey  = "commands"
)

// AssetsConfig locates the bundled web application.
type AssetsConfig struct {
	Host string `yaml:"host"`
	// Root is served as-is when set.
	Root string `yaml:"root"`
	// ExtensionPath holds pom.xml and the target/ build output.
	ExtensionPath string `yaml:"extensionPath"`
}

// EditorConfig configures the custom editor registration.
type EditorConfig struct {
	ViewType                string `yaml:"viewType"`
	FilenamePattern         string `yaml:"filenamePattern"`
	RetainContextWhenHidden bool   `yaml:"retainContextWhenHidden"`
}

// DocumentsConfig configures the document lifecycle.
type DocumentsConfig struct {
	SerializeTimeoutMs   int  `yaml:"serializeTimeoutMs"`
	WatchExternalChanges bool `yaml:"watchExternalChanges"`
}

// CommandsConfig configures the host commands.
type CommandsConfig struct {
	ExportScaleSection string  `yaml:"exportScaleSection"`
	DefaultExportScale float64 `yaml:"defaultExportScale"`
}
