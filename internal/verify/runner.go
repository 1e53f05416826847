package verify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/gofiber/fiber/v2"
)

var ErrScenariosFailed = errors.New("verification scenarios failed")

// hiddenSettle is how long expect-hidden waits for late rendering before
// checking the element is absent.
const hiddenSettle = time.Second

type Options struct {
	FrontendURL   string
	Headless      bool
	Bin           string
	ScreenshotDir string
	Timeout       time.Duration
	// API, when set, answers the pages' /api calls in-process.
	API *fiber.App
}

type Result struct {
	Scenario string
	Err      error
	Duration time.Duration
}

type Report struct {
	Results []Result
}

func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Err summarizes failed scenarios, or returns nil when all passed.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Scenario, res.Err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w (%d of %d): %w", ErrScenariosFailed, len(errs), len(r.Results), errors.Join(errs...))
}

type Runner struct {
	opts    Options
	browser *rod.Browser
}

// NewRunner launches (or downloads) a browser and connects to it.
func NewRunner(ctx context.Context, opts Options) (*Runner, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	opts.FrontendURL = strings.TrimRight(opts.FrontendURL, "/")

	l := launcher.New().Headless(opts.Headless)
	if opts.Bin != "" {
		l = l.Bin(opts.Bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to browser: %w", err)
	}

	return &Runner{opts: opts, browser: browser}, nil
}

func (r *Runner) Close() error {
	return r.browser.Close()
}

// Run executes every scenario on its own incognito page. A failing
// scenario is recorded and the next one still runs.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) Report {
	var report Report
	for _, sc := range scenarios {
		if ctx.Err() != nil {
			report.Results = append(report.Results, Result{Scenario: sc.Name, Err: ctx.Err()})
			continue
		}
		start := time.Now()
		err := r.runScenario(ctx, sc)
		res := Result{Scenario: sc.Name, Err: err, Duration: time.Since(start)}
		if err != nil {
			slog.Error("scenario failed", "scenario", sc.Name, "error", err, "duration", res.Duration)
		} else {
			slog.Info("scenario passed", "scenario", sc.Name, "duration", res.Duration)
		}
		report.Results = append(report.Results, res)
	}
	return report
}

func (r *Runner) runScenario(ctx context.Context, sc Scenario) error {
	if err := sc.Validate(); err != nil {
		return err
	}

	incognito, err := r.browser.Incognito()
	if err != nil {
		return fmt.Errorf("open incognito context: %w", err)
	}
	defer incognito.Close()

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}
	defer page.Close()
	page = page.Context(ctx)

	if r.opts.API != nil {
		router, err := hijackAPI(page, r.opts.API)
		if err != nil {
			return err
		}
		defer func() {
			if err := router.Stop(); err != nil {
				slog.Warn("failed to stop request router", "scenario", sc.Name, "error", err)
			}
		}()
	}

	for i, st := range sc.Steps {
		if err := r.runStep(page, st); err != nil {
			r.captureFailure(page, sc.Name)
			return fmt.Errorf("step %d (%s): %w", i+1, st, err)
		}
	}
	return nil
}

func (r *Runner) runStep(page *rod.Page, st Step) error {
	timed := page.Timeout(r.opts.Timeout)
	defer timed.CancelTimeout()

	switch st.Kind {
	case KindNavigate:
		if err := timed.Navigate(r.resolve(st.URL)); err != nil {
			return err
		}
		return timed.WaitLoad()

	case KindFill:
		el, err := find(timed, st)
		if err != nil {
			return err
		}
		if err := el.SelectAllText(); err != nil {
			return err
		}
		return el.Input(st.Value)

	case KindClick:
		el, err := find(timed, st)
		if err != nil {
			return err
		}
		return el.Click(proto.InputMouseButtonLeft, 1)

	case KindWaitURL:
		return waitURL(timed, st.URL)

	case KindExpectVisible:
		el, err := find(timed, st)
		if err != nil {
			return err
		}
		return el.WaitVisible()

	case KindExpectHidden:
		time.Sleep(hiddenSettle)
		found, el, err := has(page, st)
		if err != nil || !found {
			return err
		}
		visible, err := el.Visible()
		if err != nil {
			return err
		}
		if visible {
			return fmt.Errorf("element %s is visible", st)
		}
		return nil

	case KindSelect:
		el, err := find(timed, st)
		if err != nil {
			return err
		}
		return el.Select([]string{st.Value}, true, rod.SelectorTypeText)

	case KindExpectClass, KindExpectNoClass:
		el, err := find(timed, st)
		if err != nil {
			return err
		}
		return waitClass(timed, el, st.Value, st.Kind == KindExpectClass)

	case KindSetLocalStorage:
		_, err := timed.Eval(`(k, v) => localStorage.setItem(k, v)`, st.Key, st.Value)
		return err

	case KindScreenshot:
		return r.screenshot(timed, st.File)
	}
	return fmt.Errorf("%w: unknown kind %q", ErrInvalidStep, st.Kind)
}

func (r *Runner) resolve(url string) string {
	if strings.HasPrefix(url, "/") {
		return r.opts.FrontendURL + url
	}
	return url
}

func (r *Runner) screenshot(page *rod.Page, file string) error {
	img, err := page.Screenshot(false, nil)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	if err := os.MkdirAll(r.opts.ScreenshotDir, 0o755); err != nil {
		return fmt.Errorf("screenshot dir: %w", err)
	}
	path := filepath.Join(r.opts.ScreenshotDir, file)
	if err := os.WriteFile(path, img, 0o644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	slog.Info("screenshot saved", "path", path)
	return nil
}

func (r *Runner) captureFailure(page *rod.Page, scenario string) {
	if r.opts.ScreenshotDir == "" {
		return
	}
	if err := r.screenshot(page.Timeout(5*time.Second), scenario+"_failure.png"); err != nil {
		slog.Warn("failed to capture failure screenshot", "scenario", scenario, "error", err)
	}
}

func textXPath(text string) string {
	return fmt.Sprintf(`//*[text()[contains(., %s)]]`, xpathLiteral(text))
}

// xpathLiteral quotes s for XPath 1.0, which has no escape sequences.
func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	return "concat('" + strings.Join(parts, `', "'", '`) + "')"
}

// find waits for the element a step addresses.
func find(page *rod.Page, st Step) (*rod.Element, error) {
	switch {
	case st.Selector != "" && st.Text != "":
		return page.ElementR(st.Selector, regexp.QuoteMeta(st.Text))
	case st.Selector != "":
		return page.Element(st.Selector)
	default:
		return page.ElementX(textXPath(st.Text))
	}
}

// has looks up the element a step addresses without waiting.
func has(page *rod.Page, st Step) (bool, *rod.Element, error) {
	switch {
	case st.Selector != "" && st.Text != "":
		return page.HasR(st.Selector, regexp.QuoteMeta(st.Text))
	case st.Selector != "":
		return page.Has(st.Selector)
	default:
		return page.HasX(textXPath(st.Text))
	}
}

func waitURL(page *rod.Page, pattern string) error {
	for {
		info, err := page.Info()
		if err != nil {
			return err
		}
		if urlMatches(info.URL, pattern) {
			return nil
		}
		select {
		case <-page.GetContext().Done():
			return fmt.Errorf("url %q never matched %q: %w", info.URL, pattern, page.GetContext().Err())
		case <-time.After(100 * time.Millisecond):
		}
	}
}

// waitClass polls the element's class attribute until the presence of class
// equals want.
func waitClass(page *rod.Page, el *rod.Element, class string, want bool) error {
	var current string
	for {
		attr, err := el.Attribute("class")
		if err != nil {
			return err
		}
		current = ""
		if attr != nil {
			current = *attr
		}
		if hasClass(current, class) == want {
			return nil
		}
		select {
		case <-page.GetContext().Done():
			return fmt.Errorf("class %q never matched %q (want present: %t): %w", current, class, want, page.GetContext().Err())
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func hasClass(attr, class string) bool {
	return slices.Contains(strings.Fields(attr), class)
}
