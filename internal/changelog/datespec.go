package changelog

import (
	"strconv"
	"strings"
	"time"

	gitflowerrors "gitflow.dev/gitflow/internal/errors"
)

const isoDateLayout = "2006-01-02"

// ParseSince resolves the --since grammar into a calendar date git's log
// filter understands. Accepted forms:
//
//	""            all history (no bound)
//	"<N>.days"    N days before now
//	"YYYY-MM-DD"  that literal date
//
// Anything else is a usage error; garbage never silently widens the range to
// the full history.
func ParseSince(spec string, now time.Time) (string, error) {
	if spec == "" {
		return "", nil
	}

	if days, ok := strings.CutSuffix(spec, ".days"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return "", gitflowerrors.NewUsageError("invalid --since value %q: expected a number of days like 7.days", spec)
		}
		return now.AddDate(0, 0, -n).Format(isoDateLayout), nil
	}

	if _, err := time.Parse(isoDateLayout, spec); err != nil {
		return "", gitflowerrors.NewUsageError("invalid --since value %q: expected <N>.days or YYYY-MM-DD", spec)
	}
	return spec, nil
}
