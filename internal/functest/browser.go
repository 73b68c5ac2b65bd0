package functest

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
	"github.com/pkg/errors"
)

const (
	MaxWait      = 10 * time.Second
	PollInterval = 500 * time.Millisecond

	ViewportWidth  = 1024
	ViewportHeight = 768
)

// Browser drives a headless Chrome with its own profile, hence its own
// cookies, against a running site.
type Browser struct {
	ctx     context.Context
	cancel  context.CancelFunc
	baseURL string
}

func (b *Browser) run(actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(b.ctx, MaxWait)
	defer cancel()

	if err := chromedp.Run(ctx, actions...); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (b *Browser) Visit(path string) error {
	return b.run(chromedp.Navigate(b.baseURL + path))
}

func (b *Browser) Title() (string, error) {
	var title string
	if err := b.run(chromedp.Title(&title)); err != nil {
		return "", errors.WithStack(err)
	}

	return title, nil
}

func (b *Browser) CurrentURL() (string, error) {
	var location string
	if err := b.run(chromedp.Location(&location)); err != nil {
		return "", errors.WithStack(err)
	}

	return location, nil
}

func (b *Browser) Text(selector string) (string, error) {
	var text string
	if err := b.run(chromedp.Text(selector, &text, chromedp.ByQuery)); err != nil {
		return "", errors.WithStack(err)
	}

	return strings.TrimSpace(text), nil
}

func (b *Browser) Attribute(selector string, name string) (string, error) {
	var (
		value string
		ok    bool
	)

	if err := b.run(chromedp.AttributeValue(selector, name, &value, &ok, chromedp.ByQuery)); err != nil {
		return "", errors.WithStack(err)
	}

	if !ok {
		return "", errors.Errorf("element '%s' has no attribute '%s'", selector, name)
	}

	return value, nil
}

// SubmitItem types the text in the new item input and hits enter.
func (b *Browser) SubmitItem(text string) error {
	return b.run(chromedp.SendKeys("#id_new_item", text+kb.Enter, chromedp.ByQuery))
}

// HorizontalCenter returns the x coordinate of the middle of the element.
func (b *Browser) HorizontalCenter(selector string) (float64, error) {
	var center float64

	script := `(() => {
		const rect = document.querySelector(` + quoteJS(selector) + `).getBoundingClientRect();
		return rect.left + rect.width / 2;
	})()`

	if err := b.run(chromedp.WaitVisible(selector, chromedp.ByQuery), chromedp.Evaluate(script, &center)); err != nil {
		return 0, errors.WithStack(err)
	}

	return center, nil
}

// Rows returns the text of the list table rows, if any.
func (b *Browser) Rows() ([]string, error) {
	rows := make([]string, 0)

	script := `Array.from(document.querySelectorAll('#id_list_table tr')).map(row => row.innerText.trim())`

	if err := b.run(chromedp.Evaluate(script, &rows)); err != nil {
		return nil, errors.WithStack(err)
	}

	return rows, nil
}

// WaitForRowInListTable polls the list table until it holds the expected row
// or MaxWait is elapsed.
func (b *Browser) WaitForRowInListTable(row string) error {
	return b.waitFor(func() error {
		rows, err := b.Rows()
		if err != nil {
			return errors.WithStack(err)
		}

		if !slices.Contains(rows, row) {
			return errors.Errorf("row '%s' not found in list table %v", row, rows)
		}

		return nil
	})
}

// WaitForText polls the element until its text contains the expected value
// or MaxWait is elapsed.
func (b *Browser) WaitForText(selector string, expected string) error {
	return b.waitFor(func() error {
		var texts []string

		script := `Array.from(document.querySelectorAll(` + quoteJS(selector) + `)).map(el => el.innerText.trim())`

		if err := b.run(chromedp.Evaluate(script, &texts)); err != nil {
			return errors.WithStack(err)
		}

		for _, t := range texts {
			if strings.Contains(t, expected) {
				return nil
			}
		}

		return errors.Errorf("text '%s' not found in '%s' elements %v", expected, selector, texts)
	})
}

func (b *Browser) waitFor(assert func() error) error {
	start := time.Now()

	for {
		err := assert()
		if err == nil {
			return nil
		}

		if time.Since(start) > MaxWait {
			return errors.WithStack(err)
		}

		select {
		case <-b.ctx.Done():
			return errors.WithStack(b.ctx.Err())
		case <-time.After(PollInterval):
		}
	}
}

func (b *Browser) Close() {
	b.cancel()
}

func NewBrowser(ctx context.Context, baseURL string) (*Browser, error) {
	opts := append(
		slices.Clone(chromedp.DefaultExecAllocatorOptions[:]),
		chromedp.NoSandbox,
		chromedp.WindowSize(ViewportWidth, ViewportHeight),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	cancel := func() {
		cancelBrowser()
		cancelAlloc()
	}

	err := chromedp.Run(browserCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		return emulation.SetDeviceMetricsOverride(ViewportWidth, ViewportHeight, 1, false).Do(ctx)
	}))
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "could not start browser")
	}

	return &Browser{
		ctx:     browserCtx,
		cancel:  cancel,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func quoteJS(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}
