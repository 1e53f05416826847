package verify

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidStep = errors.New("invalid verification step")

// Kind names one browser action or assertion.
type Kind string

const (
	KindNavigate        Kind = "navigate"
	KindFill            Kind = "fill"
	KindClick           Kind = "click"
	KindWaitURL         Kind = "wait-url"
	KindExpectVisible   Kind = "expect-visible"
	KindExpectHidden    Kind = "expect-hidden"
	KindSetLocalStorage Kind = "set-local-storage"
	KindScreenshot      Kind = "screenshot"
	KindSelect          Kind = "select"
	KindExpectClass     Kind = "expect-class"
	KindExpectNoClass   Kind = "expect-no-class"
)

// Step is one scripted action. Elements are located by CSS Selector,
// optionally narrowed to those whose text contains Text. A step with only
// Text matches any element with that text.
type Step struct {
	Kind     Kind   `yaml:"kind"`
	Selector string `yaml:"selector,omitempty"`
	Text     string `yaml:"text,omitempty"`
	Value    string `yaml:"value,omitempty"`
	URL      string `yaml:"url,omitempty"`
	Key      string `yaml:"key,omitempty"`
	File     string `yaml:"file,omitempty"`
}

func Navigate(url string) Step         { return Step{Kind: KindNavigate, URL: url} }
func Fill(selector, value string) Step { return Step{Kind: KindFill, Selector: selector, Value: value} }
func Click(selector string) Step       { return Step{Kind: KindClick, Selector: selector} }
func ClickText(selector, text string) Step {
	return Step{Kind: KindClick, Selector: selector, Text: text}
}
func WaitURL(pattern string) Step { return Step{Kind: KindWaitURL, URL: pattern} }
func Screenshot(file string) Step { return Step{Kind: KindScreenshot, File: file} }

func ExpectVisible(selector, text string) Step {
	return Step{Kind: KindExpectVisible, Selector: selector, Text: text}
}

func ExpectHidden(selector, text string) Step {
	return Step{Kind: KindExpectHidden, Selector: selector, Text: text}
}

// Select picks the option of a <select> whose label matches value.
func Select(selector, value string) Step {
	return Step{Kind: KindSelect, Selector: selector, Value: value}
}

// ExpectClass waits until the element's class list contains class.
func ExpectClass(selector, class string) Step {
	return Step{Kind: KindExpectClass, Selector: selector, Value: class}
}

func ExpectNoClass(selector, class string) Step {
	return Step{Kind: KindExpectNoClass, Selector: selector, Value: class}
}

func SetLocalStorage(key, value string) Step {
	return Step{Kind: KindSetLocalStorage, Key: key, Value: value}
}

func (s Step) Validate() error {
	var missing string
	switch s.Kind {
	case KindNavigate, KindWaitURL:
		if s.URL == "" {
			missing = "url"
		}
	case KindFill:
		if s.Selector == "" {
			missing = "selector"
		}
	case KindSelect, KindExpectClass, KindExpectNoClass:
		switch {
		case s.Selector == "":
			missing = "selector"
		case s.Value == "":
			missing = "value"
		}
	case KindClick, KindExpectVisible, KindExpectHidden:
		if s.Selector == "" && s.Text == "" {
			missing = "selector or text"
		}
	case KindSetLocalStorage:
		if s.Key == "" {
			missing = "key"
		}
	case KindScreenshot:
		if s.File == "" {
			missing = "file"
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidStep, s.Kind)
	}
	if missing != "" {
		return fmt.Errorf("%w: %s step needs %s", ErrInvalidStep, s.Kind, missing)
	}
	return nil
}

func (s Step) String() string {
	parts := []string{string(s.Kind)}
	vals := []string{s.URL, s.Selector, s.Text, s.Key, s.File}
	if s.Kind == KindSelect || s.Kind == KindExpectClass || s.Kind == KindExpectNoClass {
		vals = append(vals, s.Value)
	}
	for _, v := range vals {
		if v != "" {
			parts = append(parts, fmt.Sprintf("%q", v))
		}
	}
	return strings.Join(parts, " ")
}

// Scenario is a named sequence of steps run on a fresh page.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

func (sc Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("%w: scenario without name", ErrInvalidStep)
	}
	for i, st := range sc.Steps {
		if err := st.Validate(); err != nil {
			return fmt.Errorf("scenario %s step %d: %w", sc.Name, i+1, err)
		}
	}
	return nil
}

// LoadScenarios reads a YAML list of scenarios. Relative navigate URLs are
// resolved against the frontend base URL when the runner executes them.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenarios: %w", err)
	}
	var scenarios []Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("failed to parse scenarios: %w", err)
	}
	for _, sc := range scenarios {
		if err := sc.Validate(); err != nil {
			return nil, err
		}
	}
	return scenarios, nil
}

// urlMatches supports the "**/suffix" form used by the recorded scripts,
// plus exact matches. Query strings are ignored.
func urlMatches(url, pattern string) bool {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	url = strings.TrimSuffix(url, "/")
	if suffix, ok := strings.CutPrefix(pattern, "**"); ok {
		return strings.HasSuffix(url, strings.TrimSuffix(suffix, "/"))
	}
	return url == strings.TrimSuffix(pattern, "/")
}
