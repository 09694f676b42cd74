package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestRoot is the generated test tree, relative to the project
	DefaultTestRoot = "tests"
	// DefaultConfigFile is the optional project config file (JSON with comments)
	DefaultConfigFile = ".scaffix.jsonc"
	// DefaultEnvFile is loaded into the environment when present
	DefaultEnvFile = ".env"
	// DefaultReportDir is where run reports are stored
	DefaultReportDir = ".scaffix"
	// DefaultMarker must appear in a file name for the patcher to touch it
	DefaultMarker = "Test"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "SCAFFIX_"
)

// DefaultExtensions are the file extensions the patcher rewrites
var DefaultExtensions = []string{".cpp"}

// DefaultPathsToIgnore are directory names never descended into when scanning
var DefaultPathsToIgnore = []string{
	"build",
	"cmake-build-debug",
	"cmake-build-release",
	"node_modules",
	"third_party",
}
