package errors

import "errors"

// Error message constants for the goimpfmt application
const (
	// File processing errors
	ErrMsgFailedToReadFile  = "failed to read file"
	ErrMsgFailedToStatFile  = "failed to stat file"
	ErrMsgFailedToWriteFile = "failed to write file"

	// Directory processing errors
	ErrMsgFailedToCheckPath    = "failed to check path"
	ErrMsgFailedToFindGoFiles  = "failed to find Go files in directory"
	ErrMsgFilesFailedToProcess = "%d files failed to process"

	// Configuration errors
	ErrMsgFailedToReadConfig      = "failed to read config"
	ErrMsgFailedToUnmarshalConfig = "failed to unmarshal config"
	ErrMsgFailedToBindFlags       = "failed to bind flags"
	ErrMsgInvalidWorkers          = "workers must be at least 1, got %d"
	ErrMsgInvalidIgnorePattern    = "invalid ignore pattern %q"
	ErrMsgFailedToBuildLogger     = "failed to build logger"

	// Result errors
	ErrMsgChangesDetected = "import blocks need formatting"

	// Info/warning messages
	WarnMsgNoProject       = "no project prefix given and no go.mod found, local imports will be grouped as external"
	InfoMsgNoGoFilesFound  = "No Go files found in: %s"
	InfoMsgErrorProcessing = "Error processing %s: %v"
	InfoMsgChangedFile     = "Formatted: %s"
	InfoMsgWouldChangeFile = "Would format: %s"
	InfoMsgProcessedCount  = "\nProcessed %d files, %d changed"
	InfoMsgErrorCount      = ", %d files had errors"
)

// ErrChangesDetected is returned when at least one file needed formatting
var ErrChangesDetected = errors.New(ErrMsgChangesDetected)
