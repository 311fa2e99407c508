package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL optionally appends disable_prepared_binary_result=yes, which
// pgbouncer in transaction pooling mode requires. An existing value wins.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil || u == nil {
		return raw
	}

	q := u.Query()
	if q.Get("disable_prepared_binary_result") != "" {
		return raw
	}
	q.Set("disable_prepared_binary_result", "yes")
	u.RawQuery = q.Encode()

	return u.String()
}

// dbNameFromURL extracts the database name for trace attributes. Both URL
// form (postgres://host/name) and key=value DSN form are accepted; unknown
// shapes yield "".
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)

	if u, err := url.Parse(raw); err == nil && u != nil && u.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(u.Path, "/")); name != "" {
			return name
		}
	}

	for _, part := range strings.Fields(raw) {
		value, ok := strings.CutPrefix(part, "dbname=")
		if !ok {
			continue
		}
		if name := strings.Trim(strings.TrimSpace(value), `"'`); name != "" {
			return name
		}
	}

	return ""
}
