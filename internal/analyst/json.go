package analyst

// ExtractJSONObject returns the first balanced brace-delimited object in the
// reply, skipping any surrounding prose. The scan is string- and
// escape-aware, so braces inside JSON string values do not affect the depth.
// A greedy first-{ to last-} match would over-collect when the reply contains
// several JSON-like fragments.
func ExtractJSONObject(reply string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(reply); i++ {
		c := reply[i]

		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return reply[start : i+1], true
				}
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}
	return "", false
}
