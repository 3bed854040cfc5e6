// Package scenario loads scripted list edits from YAML, runs them against an
// infinitelist.List and checks the resulting values.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/infinitelist/pkg/infinitelist"
)

// Step operations.
const (
	OpSet         = "set"
	OpSetLeft     = "set_left"
	OpSetRight    = "set_right"
	OpSetRange    = "set_range"
	OpSetAll      = "set_all"
	OpAssign      = "assign"
	OpSpliceLeft  = "splice_left"
	OpSpliceRight = "splice_right"
)

// ErrInvalidScenario is returned when a document does not match the schema.
var ErrInvalidScenario = errors.New("invalid scenario")

//go:embed schema.json
var schemaJSON []byte

// Schema returns the JSON schema every scenario document is validated against.
func Schema() []byte {
	return schemaJSON
}

// Scenario is one scripted sequence of list edits.
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Domain      string        `yaml:"domain"`
	Fill        string        `yaml:"fill"`
	Steps       []Step        `yaml:"steps"`
	Window      *Window       `yaml:"window"`
	Expect      []Expectation `yaml:"expect"`
}

// ListSpec describes a list built from scratch, e.g. the source of a splice.
type ListSpec struct {
	Domain string `yaml:"domain"`
	Fill   string `yaml:"fill"`
	Steps  []Step `yaml:"steps"`
}

// Step is one list edit. Which fields are set depends on Op.
type Step struct {
	Op     string    `yaml:"op"`
	Index  int       `yaml:"index"`
	Start  int       `yaml:"start"`
	Stop   int       `yaml:"stop"`
	Value  string    `yaml:"value"`
	Values []string  `yaml:"values"`
	List   *ListSpec `yaml:"list"`
}

// Window is the index range [Start, Stop) printed by the run command.
type Window struct {
	Start int `yaml:"start"`
	Stop  int `yaml:"stop"`
}

// Expectation asserts the values read from [Start, Stop) walking by Step.
type Expectation struct {
	Start  int      `yaml:"start"`
	Stop   int      `yaml:"stop"`
	Step   int      `yaml:"step"`
	Values []string `yaml:"values"`
}

// Span returns the list span the expectation reads.
func (exp Expectation) Span() infinitelist.Span {
	return infinitelist.Between(exp.Start, exp.Stop).Step(exp.Step)
}

// String renders the expectation as a slice expression.
func (exp Expectation) String() string {
	return exp.Span().String()
}

// ListSpec returns the top-level list of the scenario.
func (sc *Scenario) ListSpec() ListSpec {
	return ListSpec{Domain: sc.Domain, Fill: sc.Fill, Steps: sc.Steps}
}

// LoadFile reads every scenario document in the YAML file at path.
func LoadFile(path string) ([]*Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer file.Close()

	scenarios, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return scenarios, nil
}

// Load decodes and validates every document of a YAML stream. Documents are
// separated by "---".
func Load(reader io.Reader) ([]*Scenario, error) {
	decoder := yaml.NewDecoder(reader)

	var scenarios []*Scenario

	for idx := 0; ; idx++ {
		var node yaml.Node

		err := decoder.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("decode document %d: %w", idx, err)
		}

		scenario, err := decodeDocument(&node)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", idx, err)
		}

		scenarios = append(scenarios, scenario)
	}

	return scenarios, nil
}

func decodeDocument(node *yaml.Node) (*Scenario, error) {
	var raw any

	err := node.Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	err = Validate(raw)
	if err != nil {
		return nil, err
	}

	var scenario Scenario

	err = node.Decode(&scenario)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return &scenario, nil
}

// Validate checks a decoded document against the embedded schema.
func Validate(document any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewGoLoader(document),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))

	for _, verr := range result.Errors() {
		messages = append(messages, verr.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidScenario, strings.Join(messages, "; "))
}
