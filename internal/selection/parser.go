// Package selection parses and drives the choice of which recommended
// agents to generate.
package selection

import (
	"sort"
	"strconv"
	"strings"

	"github.com/JimmyBlanquet/assistant-architect/internal/catalog"
	stderrors "github.com/JimmyBlanquet/assistant-architect/internal/common/errors"
	"github.com/JimmyBlanquet/assistant-architect/internal/feedback"
)

// Parse resolves a selection expression against the recommendation list and
// returns 0-based indices, deduplicated and ascending.
//
// Grammar, in priority order:
//
//	A            all recommendations
//	H            all high-priority recommendations
//	U            recommendations rated useful in the session
//	(empty)      high-priority recommendations, or {0} if there are none
//	1,3 / 2-4    comma list of 1-based indices and inclusive ranges
//
// Out-of-range indices are silently dropped. A malformed expression or one
// that yields nothing returns a recoverable error so the caller re-prompts.
func Parse(input string, recs []catalog.Recommendation, session *feedback.Session) ([]int, error) {
	expr := strings.TrimSpace(input)

	switch strings.ToUpper(expr) {
	case "A":
		return allIndices(len(recs)), nil
	case "H":
		high := highPriorityIndices(recs)
		if len(high) == 0 {
			return nil, stderrors.NewSelectionNoHighMatchesError()
		}
		return high, nil
	case "U":
		if session == nil || len(session.Records) == 0 {
			return nil, stderrors.NewNoFeedbackAvailableError()
		}
		useful := session.UsefulTypes()
		var out []int
		for i, r := range recs {
			if useful[r.AgentType] {
				out = append(out, i)
			}
		}
		if len(out) == 0 {
			return nil, stderrors.NewSelectionNoUsefulMatchesError()
		}
		return out, nil
	case "":
		if high := highPriorityIndices(recs); len(high) > 0 {
			return high, nil
		}
		if len(recs) == 0 {
			return nil, stderrors.NewSelectionOutOfRangeError(expr, 0)
		}
		return []int{0}, nil
	}

	return parseIndexList(expr, len(recs))
}

// parseIndexList handles "1,3,5" and "2-4" style expressions.
func parseIndexList(expr string, total int) ([]int, error) {
	seen := map[int]bool{}

	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if start, end, ok := splitRange(token); ok {
			for i := start; i <= end; i++ {
				if i >= 1 && i <= total {
					seen[i-1] = true
				}
			}
			continue
		}

		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, stderrors.NewSelectionInvalidFormatError(expr)
		}
		if n >= 1 && n <= total {
			seen[n-1] = true
		}
	}

	if len(seen) == 0 {
		return nil, stderrors.NewSelectionOutOfRangeError(expr, total)
	}

	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out, nil
}

// splitRange parses "start-end". Both bounds must be integers with
// start <= end; anything else is not treated as a range.
func splitRange(token string) (int, int, bool) {
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || start > end {
		return 0, 0, false
	}
	return start, end, true
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func highPriorityIndices(recs []catalog.Recommendation) []int {
	var out []int
	for i, r := range recs {
		if r.Priority == catalog.PriorityHigh {
			out = append(out, i)
		}
	}
	return out
}
