package command

// atoi parses the leading decimal integer of s. Leading blanks are
// skipped, an optional sign is accepted and parsing stops at the first
// non-digit. Input without digits yields 0. Overflow saturates.
func atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	const limit = 1 << 31
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n < limit {
			n = n*10 + int(s[i]-'0')
		}
	}
	if n > limit {
		n = limit
	}
	if neg {
		return -n
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
