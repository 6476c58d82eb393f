package git

import (
	"context"
	"fmt"
)

// Changed lists paths that differ from base (HEAD when base is empty), one
// path per line. This is the simple line source: no structured parsing beyond
// line splitting.
func Changed(ctx context.Context, r *Runner, root, base string) ([]string, error) {
	if base == "" {
		base = "HEAD"
	}
	if err := r.Builder().Validate("gitRef", base); err != nil {
		return nil, fmt.Errorf("changed base: %w", err)
	}

	return r.Lines(ctx, root, "diff", "--name-only", base)
}
