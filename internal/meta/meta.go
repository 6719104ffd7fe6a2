// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep naming and file locations consistent across packages.
package meta

const (
	// Project Identity
	AppName   = "lambda-cli"
	Slug      = "lambda-cli"
	EnvPrefix = "LAMBDA_CLI"

	// Config Store Layout
	ConfigDirName  = ".aws"
	ConfigFileName = "lambda-cli.json"

	// StagingPrefix namespaces generated S3 object keys.
	StagingPrefix = "lambda-cli"
)
