package domain

// Message bundles.
const (
	BundleErrors = "errors"
	BundleLog    = "log"
)

// Keys of the errors bundle.
const (
	// No argument.
	MsgMissingDefinitionSources = "error.missing_definition_sources"
	// %[1]s config file name.
	MsgInvalidConfig = "error.invalid_config"
	// No argument.
	MsgEngineCreation = "error.engine_creation"
	// %[1]s source root.
	MsgEngineCheck = "error.engine_check"
	// %[1]s source root.
	MsgRootInspection = "error.root_inspection"
)

// Keys of the log bundle.
const (
	// %[1]s source root.
	MsgScanningRoot = "log.scanning_root"
	// %[1]s absolute source root.
	MsgFoundRoot = "log.found_root"
	// No argument.
	MsgNoSourceRoots = "log.no_source_roots"
	// %[1]s package.
	MsgNoncompliantPackage = "log.noncompliant_package"
	// %[1]s file, %[2]s package.
	MsgNoncompliantFile = "log.noncompliant_file"
)
