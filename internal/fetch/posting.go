package fetch

import (
	"context"
	"log"

	"github.com/jonathan/recruiter-portal/internal/types"
)

// ImportPosting fetches a job board URL and converts it into a job posting.
// When the static HTML yields too little text, the page is re-rendered in a
// headless browser before giving up.
func ImportPosting(ctx context.Context, urlStr string, opts *Options) (*types.JobPosting, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	title, description, err := ExtractPosting(result.HTML)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to extract posting", Cause: err}
	}

	if opts.ForceBrowser || ShouldUseBrowser(description) {
		if opts.Verbose {
			log.Printf("fetch: static extraction too short (%d chars), rendering %s in browser", len(description), urlStr)
		}
		html, berr := WithBrowser(ctx, urlStr, opts.Timeout)
		if berr == nil {
			if t, d, perr := ExtractPosting(html); perr == nil && len(d) > len(description) {
				title, description = t, d
			}
		}
	}

	if description == "" {
		return nil, &Error{URL: urlStr, Message: "page contains no posting text"}
	}

	return &types.JobPosting{
		Title:       title,
		Description: description,
	}, nil
}
