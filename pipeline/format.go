package pipeline

import (
	"math"
	"strconv"
)

// formatINR renders an amount as a whole number with comma-grouped
// thousands for log lines, e.g. 152340.6 -> "152,341".
func formatINR(v float64) string {
	s := strconv.FormatInt(int64(math.Round(v)), 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) > 3 {
		var out []byte
		lead := len(s) % 3
		if lead > 0 {
			out = append(out, s[:lead]...)
		}
		for i := lead; i < len(s); i += 3 {
			if len(out) > 0 {
				out = append(out, ',')
			}
			out = append(out, s[i:i+3]...)
		}
		s = string(out)
	}
	if neg {
		s = "-" + s
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
