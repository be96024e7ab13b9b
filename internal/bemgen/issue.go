package bemgen

// LinterName is reported as the issue source
const LinterName = "bemcheck"

// Issue represents a single validation failure in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "bemcheck"
	Text        string   `json:"Text"`        // "the block must not be empty"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of the definition with the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/components/card.bem.yaml"
	Line     int    `json:"Line"`     // 4
	Column   int    `json:"Column"`   // 3 (1-based, 0 if unknown)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)
