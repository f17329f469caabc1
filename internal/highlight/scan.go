package highlight

// Scan applies rules to one line in order and returns the resulting spans
// in application order.
//
// Each rule is searched repeatedly from the end of its previous capture.
// Every search advances the cursor by at least one rune, and empty or
// non-participating captures produce no span. If a capture falls outside
// the line or the regex engine fails (a match timeout), scanning stops and
// the spans collected so far are returned with a *SpanApplicationFault.
func Scan(line []rune, rules []CompiledRule) ([]Span, error) {
	var spans []Span

	for i, rule := range rules {
		pos := 0
		for pos <= len(line) {
			m, err := rule.Pattern.FindRunesMatchStartingAt(line, pos)
			if err != nil {
				return spans, &SpanApplicationFault{
					Rule:     i,
					Category: rule.Category,
					Offset:   pos,
					Err:      err,
				}
			}
			if m == nil {
				break
			}

			next := m.Index + m.Length
			offset, length, ok := m.Index, m.Length, true
			if rule.Group > 0 {
				g := m.GroupByNumber(rule.Group)
				ok = g != nil && len(g.Captures) > 0
				if ok {
					offset, length = g.Index, g.Length
				}
			}

			if ok {
				if offset < 0 || length < 0 || offset+length > len(line) {
					return spans, &SpanApplicationFault{
						Rule:     i,
						Category: rule.Category,
						Offset:   offset,
						Length:   length,
						Err:      ErrSpanOutOfRange,
					}
				}
				if length > 0 {
					spans = append(spans, Span{
						Offset:   offset,
						Length:   length,
						Format:   rule.Format,
						Category: rule.Category,
					})
				}
				next = offset + length
			}

			if next <= pos {
				next = pos + 1
			}
			pos = next
		}
	}

	return spans, nil
}
