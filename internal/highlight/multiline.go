package highlight

// Track finds the regions of delimiter kind d on one line.
//
// When prev is d.State the line starts inside an open region. Otherwise the
// first delimiter occurrence opens one. Each region extends through the next
// occurrence (closing it) or to end of line (leaving it open), and scanning
// resumes after a closed region so one line may hold several regions. The
// returned state is d.State if the line ends inside a region and
// StateClosed otherwise.
func Track(line []rune, d Delimiter, prev LineState) ([]Span, LineState) {
	if d.Pattern == nil {
		return nil, StateClosed
	}

	var spans []Span
	state := StateClosed

	start, skip := -1, 0
	if prev == d.State {
		start = 0
	} else if idx, n, ok := d.find(line, 0); ok {
		start, skip = idx, n
	}

	for start >= 0 {
		end := len(line)
		if idx, n, ok := d.find(line, start+skip); ok {
			end = idx + n
			state = StateClosed
		} else {
			state = d.State
		}

		if end > start {
			spans = append(spans, Span{
				Offset:   start,
				Length:   end - start,
				Format:   d.Format,
				Category: d.Category,
			})
		}

		start = -1
		if end < len(line) {
			if idx, n, ok := d.find(line, end); ok {
				start, skip = idx, n
			}
		}
	}

	return spans, state
}

// find returns the next non-empty delimiter match at or after pos. Engine
// errors count as no match.
func (d Delimiter) find(line []rune, pos int) (int, int, bool) {
	if pos > len(line) {
		return 0, 0, false
	}
	m, err := d.Pattern.FindRunesMatchStartingAt(line, pos)
	if err != nil || m == nil || m.Length == 0 {
		return 0, 0, false
	}
	return m.Index, m.Length, true
}
