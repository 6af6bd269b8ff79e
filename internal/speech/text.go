package speech

import "strings"

// splitSegments breaks input text into sentence-sized segments for
// chunked generation. Whitespace runs collapse to single spaces and
// empty segments are dropped, so every returned segment synthesizes to
// some audio. Order is preserved.
func splitSegments(text string) []string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil
	}

	var segments []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == ';' {
			if seg := strings.TrimSpace(b.String()); seg != "" && !isPunctOnly(seg) {
				segments = append(segments, seg)
			}
			b.Reset()
		}
	}
	if seg := strings.TrimSpace(b.String()); seg != "" && !isPunctOnly(seg) {
		segments = append(segments, seg)
	}
	return segments
}

func isPunctOnly(s string) bool {
	return strings.Trim(s, ".!?;,: ") == ""
}
