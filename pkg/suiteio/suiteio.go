// Package suiteio loads and validates YAML suite definitions and maps
// them onto create requests. Validation is line-referenced: every
// problem carries the line of the offending node so an editor can jump
// to it.
package suiteio

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/neonhq/neon/pkg/models"
)

// SuiteFile is the parsed form of one suite definition.
type SuiteFile struct {
	Name                  string     `yaml:"name"`
	Description           string     `yaml:"description"`
	AgentID               string     `yaml:"agent_id"`
	DefaultScorers        []string   `yaml:"default_scorers"`
	DefaultMinScore       *float64   `yaml:"default_min_score"`
	DefaultTimeoutSeconds *int       `yaml:"default_timeout_seconds"`
	Parallel              *bool      `yaml:"parallel"`
	StopOnFailure         *bool      `yaml:"stop_on_failure"`
	Cases                 []CaseFile `yaml:"cases"`
}

// CaseFile is one case entry in a suite definition. Pointer slices keep
// "omitted" distinct from "explicitly empty".
type CaseFile struct {
	Name                   string                 `yaml:"name"`
	Description            string                 `yaml:"description"`
	Input                  CaseInputFile          `yaml:"input"`
	ExpectedTools          *[]string              `yaml:"expected_tools"`
	ExpectedToolSequence   *[]string              `yaml:"expected_tool_sequence"`
	ExpectedOutputContains *[]string              `yaml:"expected_output_contains"`
	ExpectedOutputPattern  string                 `yaml:"expected_output_pattern"`
	Scorers                []string               `yaml:"scorers"`
	ScorerConfig           map[string]interface{} `yaml:"scorer_config"`
	MinScore               *float64               `yaml:"min_score"`
	TimeoutSeconds         *int                   `yaml:"timeout_seconds"`
	Tags                   []string               `yaml:"tags"`
}

// CaseInputFile is the input block of a case entry.
type CaseInputFile struct {
	Query   string                 `yaml:"query"`
	Context map[string]interface{} `yaml:"context"`
}

// ValidationIssue is one line-referenced problem in a suite file.
type ValidationIssue struct {
	Line    int
	Field   string
	Message string
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("line %d: %s: %s", i.Line, i.Field, i.Message)
}

// ValidationErrors rejects a suite file with at least one issue.
type ValidationErrors struct {
	Issues []ValidationIssue
}

func (e *ValidationErrors) Error() string {
	lines := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		lines[i] = issue.String()
	}
	return fmt.Sprintf("suite definition invalid:\n%s", strings.Join(lines, "\n"))
}

// LoadFile reads, parses, and validates a suite definition from disk.
// knownScorers guards against typos in scorer lists; pass nil to skip
// that check.
func LoadFile(path string, knownScorers []string) (*SuiteFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	return Load(data, knownScorers)
}

// Load parses and validates a suite definition.
func Load(data []byte, knownScorers []string) (*SuiteFile, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	var sf SuiteFile
	if err := doc.Decode(&sf); err != nil {
		return nil, fmt.Errorf("suite definition does not match schema: %w", err)
	}

	if issues := validate(&sf, &doc, knownScorers); len(issues) > 0 {
		return nil, &ValidationErrors{Issues: issues}
	}
	return &sf, nil
}

// SuiteRequest maps the file header to a create request.
func (sf *SuiteFile) SuiteRequest() models.CreateSuiteRequest {
	return models.CreateSuiteRequest{
		Name:                  sf.Name,
		AgentID:               sf.AgentID,
		Description:           sf.Description,
		Parallel:              sf.Parallel,
		StopOnFailure:         sf.StopOnFailure,
		DefaultScorers:        sf.DefaultScorers,
		DefaultMinScore:       sf.DefaultMinScore,
		DefaultTimeoutSeconds: sf.DefaultTimeoutSeconds,
	}
}

// CaseRequests maps the case entries to create requests, substituting
// suite-level defaults where a case is silent.
func (sf *SuiteFile) CaseRequests() []models.CreateCaseRequest {
	requests := make([]models.CreateCaseRequest, 0, len(sf.Cases))
	for _, cf := range sf.Cases {
		req := models.CreateCaseRequest{
			Name:        cf.Name,
			Description: cf.Description,
			Input: models.CaseInput{
				Query:   cf.Input.Query,
				Context: cf.Input.Context,
			},
			ExpectedTools:          cf.ExpectedTools,
			ExpectedToolSequence:   cf.ExpectedToolSequence,
			ExpectedOutputContains: cf.ExpectedOutputContains,
			ExpectedOutputPattern:  cf.ExpectedOutputPattern,
			Scorers:                cf.Scorers,
			ScorerConfig:           cf.ScorerConfig,
			MinScore:               cf.MinScore,
			TimeoutSeconds:         cf.TimeoutSeconds,
			Tags:                   cf.Tags,
		}
		if req.Scorers == nil {
			req.Scorers = sf.DefaultScorers
		}
		if req.MinScore == nil {
			req.MinScore = sf.DefaultMinScore
		}
		if req.TimeoutSeconds == nil {
			req.TimeoutSeconds = sf.DefaultTimeoutSeconds
		}
		if req.Tags == nil {
			req.Tags = []string{}
		}
		requests = append(requests, req)
	}
	return requests
}

func validate(sf *SuiteFile, doc *yaml.Node, knownScorers []string) []ValidationIssue {
	var issues []ValidationIssue
	report := func(node *yaml.Node, field, message string) {
		line := 0
		if node != nil {
			line = node.Line
		}
		issues = append(issues, ValidationIssue{Line: line, Field: field, Message: message})
	}

	root := documentRoot(doc)
	if sf.Name == "" {
		report(fieldNode(root, "name", root), "name", "required")
	}
	if sf.AgentID == "" {
		report(fieldNode(root, "agent_id", root), "agent_id", "required")
	}
	if sf.DefaultMinScore != nil && (*sf.DefaultMinScore < 0 || *sf.DefaultMinScore > 1) {
		report(fieldNode(root, "default_min_score", root), "default_min_score", "must be in [0, 1]")
	}
	if sf.DefaultTimeoutSeconds != nil && *sf.DefaultTimeoutSeconds <= 0 {
		report(fieldNode(root, "default_timeout_seconds", root), "default_timeout_seconds", "must be positive")
	}
	checkScorers(sf.DefaultScorers, knownScorers, fieldNode(root, "default_scorers", root), "default_scorers", report)

	casesNode := fieldNode(root, "cases", nil)
	if len(sf.Cases) == 0 {
		report(casesNode, "cases", "at least one case is required")
	}

	seen := map[string]int{}
	for i, cf := range sf.Cases {
		caseNode := sequenceItem(casesNode, i)
		field := func(name string) *yaml.Node { return fieldNode(caseNode, name, caseNode) }
		prefix := fmt.Sprintf("cases[%d]", i)

		if cf.Name == "" {
			report(caseNode, prefix+".name", "required")
		} else if firstLine, dup := seen[cf.Name]; dup {
			report(field("name"), prefix+".name", fmt.Sprintf("duplicate case name %q (first defined at line %d)", cf.Name, firstLine))
		} else {
			nameLine := 0
			if n := field("name"); n != nil {
				nameLine = n.Line
			}
			seen[cf.Name] = nameLine
		}

		if cf.Input.Query == "" {
			report(field("input"), prefix+".input.query", "required")
		}
		if cf.ExpectedOutputPattern != "" {
			if _, err := regexp.Compile(cf.ExpectedOutputPattern); err != nil {
				report(field("expected_output_pattern"), prefix+".expected_output_pattern", "not a valid regular expression")
			}
		}
		if cf.MinScore != nil && (*cf.MinScore < 0 || *cf.MinScore > 1) {
			report(field("min_score"), prefix+".min_score", "must be in [0, 1]")
		}
		if cf.TimeoutSeconds != nil && *cf.TimeoutSeconds <= 0 {
			report(field("timeout_seconds"), prefix+".timeout_seconds", "must be positive")
		}
		checkScorers(cf.Scorers, knownScorers, field("scorers"), prefix+".scorers", report)
	}
	return issues
}

func checkScorers(names, known []string, node *yaml.Node, field string, report func(*yaml.Node, string, string)) {
	if known == nil {
		return
	}
	knownSet := make(map[string]bool, len(known))
	for _, name := range known {
		knownSet[name] = true
	}
	for _, name := range names {
		if !knownSet[name] {
			report(node, field, fmt.Sprintf("unknown scorer %q", name))
		}
	}
}

// documentRoot unwraps the document node down to the top-level mapping.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc != nil && doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0]
	}
	return doc
}

// fieldNode returns the value node of a mapping key, or fallback.
func fieldNode(mapping *yaml.Node, key string, fallback *yaml.Node) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return fallback
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return fallback
}

func sequenceItem(sequence *yaml.Node, i int) *yaml.Node {
	if sequence == nil || sequence.Kind != yaml.SequenceNode || i >= len(sequence.Content) {
		return nil
	}
	return sequence.Content[i]
}
