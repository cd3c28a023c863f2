// ABOUTME: Headless-browser renderer implementation backed by chromedp
// ABOUTME: Browser allocation is lazy so runs without SPA pages never start Chrome

package chromedp

import (
	"context"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
)

const renderTimeout = 30 * time.Second

// ChromeRenderer implements the Renderer interface using a shared headless
// Chrome instance.
type ChromeRenderer struct {
	once        sync.Once
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromeRenderer creates a renderer. Chrome itself is not started until
// the first Render call.
func NewChromeRenderer() *ChromeRenderer {
	return &ChromeRenderer{}
}

func (r *ChromeRenderer) allocator() context.Context {
	r.once.Do(func() {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
		)
		r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	})
	return r.allocCtx
}

// Render navigates to the URL in a fresh tab and returns the document HTML
// after scripts have run.
func (r *ChromeRenderer) Render(ctx context.Context, url string) (string, error) {
	tabCtx, cancel := chromedp.NewContext(r.allocator())
	defer cancel()

	tabCtx, timeoutCancel := context.WithTimeout(tabCtx, renderTimeout)
	defer timeoutCancel()

	// Honor the caller's cancellation as well
	go func() {
		select {
		case <-ctx.Done():
			timeoutCancel()
		case <-tabCtx.Done():
		}
	}()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close shuts down the shared browser instance if one was started.
func (r *ChromeRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}
