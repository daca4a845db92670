package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Routing Errors (N001-N099)
	// ============================================

	"N001": {
		Category: CategoryRouting,
		Message:  "Unknown routing mode",
		Detail:   "The routing mode must be \"window\" or \"hash\". Any other value stops location updates until the mode is corrected.",
		DocURL:   "https://navkit.dev/docs/errors/N001",
	},

	// ============================================
	// Link Errors (N100-N199)
	// ============================================

	"N101": {
		Category: CategoryLink,
		Message:  "Invalid link href",
		Detail:   "The anchor's href could not be resolved against the document URL. This is an authoring error in the host page.",
		DocURL:   "https://navkit.dev/docs/errors/N101",
	},

	// ============================================
	// Config Errors (N200-N299)
	// ============================================

	"N201": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No navkit.json was found in the given directory.",
		DocURL:   "https://navkit.dev/docs/errors/N201",
	},
	"N202": {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		Detail:   "navkit.json could not be parsed as JSON.",
		DocURL:   "https://navkit.dev/docs/errors/N202",
	},
	"N203": {
		Category: CategoryConfig,
		Message:  "Config write failed",
		Detail:   "navkit.json could not be written.",
		DocURL:   "https://navkit.dev/docs/errors/N203",
	},
	"N204": {
		Category: CategoryConfig,
		Message:  "Config watch failed",
		Detail:   "The config file could not be watched for changes.",
		DocURL:   "https://navkit.dev/docs/errors/N204",
	},
	"N205": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A navkit.json field has a value outside its allowed set.",
		DocURL:   "https://navkit.dev/docs/errors/N205",
	},

	// ============================================
	// Host Errors (N300-N399)
	// ============================================

	"N301": {
		Category: CategoryHost,
		Message:  "Invalid window URL",
		Detail:   "A window location must be an absolute URL with a scheme and host.",
		DocURL:   "https://navkit.dev/docs/errors/N301",
	},
	"N302": {
		Category: CategoryHost,
		Message:  "Cross-origin history update",
		Detail:   "History entries can only be pushed or replaced with URLs of the current document's origin.",
		DocURL:   "https://navkit.dev/docs/errors/N302",
	},
	"N303": {
		Category: CategoryHost,
		Message:  "No history entry",
		Detail:   "There is no history entry in the requested direction.",
		DocURL:   "https://navkit.dev/docs/errors/N303",
	},

	// ============================================
	// CLI Errors (N400-N499)
	// ============================================

	"N401": {
		Category: CategoryCLI,
		Message:  "Server failed",
		Detail:   "The SPA server stopped with an error.",
		DocURL:   "https://navkit.dev/docs/errors/N401",
	},
	"N402": {
		Category: CategoryCLI,
		Message:  "Invalid server config",
		Detail:   "The SPA server needs a directory or file system containing the index document.",
		DocURL:   "https://navkit.dev/docs/errors/N402",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
