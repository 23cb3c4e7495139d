package selection

import (
	"strings"

	"github.com/JimmyBlanquet/assistant-architect/internal/catalog"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/console"
	stderrors "github.com/JimmyBlanquet/assistant-architect/internal/common/errors"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/logger"
	"github.com/JimmyBlanquet/assistant-architect/internal/feedback"
)

// Selector runs the interactive selection loop: parse, re-prompt on
// recoverable conditions, confirm, and return the chosen recommendations.
type Selector struct {
	io             console.IO
	log            logger.Logger
	maxAttempts    int
	requireConfirm bool
}

// NewSelector creates a Selector. maxAttempts bounds how many times the
// loop re-prompts before giving up.
func NewSelector(io console.IO, log logger.Logger, maxAttempts int, requireConfirm bool) *Selector {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Selector{io: io, log: log, maxAttempts: maxAttempts, requireConfirm: requireConfirm}
}

// Select shows the recommendations and runs the loop until the user
// confirms a non-empty selection or attempts run out.
func (s *Selector) Select(recs []catalog.Recommendation, session *feedback.Session) ([]catalog.Recommendation, error) {
	s.printMenu(recs)

	var lastErr error
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		input, err := s.io.Prompt("\nYour selection (A=all, H=high priority, U=useful, or e.g. 1,3 or 2-4): ")
		if err != nil {
			return nil, err
		}

		indices, err := Parse(input, recs, session)
		if err != nil {
			if stderrors.IsRecoverable(err) {
				s.io.Print("%s", recoveryHint(err))
				lastErr = err
				continue
			}
			return nil, err
		}

		chosen := pick(recs, indices)
		if !s.requireConfirm {
			return chosen, nil
		}

		if s.confirm(chosen) {
			s.log.Info("selection confirmed", map[string]interface{}{
				"selected": len(chosen),
				"total":    len(recs),
			})
			return chosen, nil
		}
		s.io.Print("Selection cancelled, choose again.")
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, stderrors.NewSelectionOutOfRangeError("", len(recs))
}

// AutoSelect picks for non-interactive runs: high priority first, then by
// rank, capped at max.
func AutoSelect(recs []catalog.Recommendation, max int) []catalog.Recommendation {
	var chosen []catalog.Recommendation
	for _, r := range recs {
		if r.Priority == catalog.PriorityHigh {
			chosen = append(chosen, r)
		}
	}
	for _, r := range recs {
		if len(chosen) >= max {
			break
		}
		if r.Priority != catalog.PriorityHigh {
			chosen = append(chosen, r)
		}
	}
	if max > 0 && len(chosen) > max {
		chosen = chosen[:max]
	}
	return chosen
}

func (s *Selector) printMenu(recs []catalog.Recommendation) {
	s.io.Print("\nSelect the agents to generate:")
	for i, r := range recs {
		s.io.Print("  %d. %s [%s] - %s", i+1, r.Name, strings.ToUpper(r.Priority), r.Justification)
	}
}

func (s *Selector) confirm(chosen []catalog.Recommendation) bool {
	names := make([]string, len(chosen))
	for i, r := range chosen {
		names[i] = r.Name
	}
	answer, err := s.io.Prompt("Generate " + strings.Join(names, ", ") + "? [Y/n]: ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "" || answer == "y" || answer == "yes"
}

func pick(recs []catalog.Recommendation, indices []int) []catalog.Recommendation {
	out := make([]catalog.Recommendation, 0, len(indices))
	for _, i := range indices {
		out = append(out, recs[i])
	}
	return out
}

// recoveryHint maps recoverable parse errors to what the user should do.
func recoveryHint(err error) string {
	switch stderrors.CodeOf(err) {
	case stderrors.ErrCodeSelectionInvalidFormat:
		return "Could not parse that selection, use A, H, U or a list like 1,3 or 2-4."
	case stderrors.ErrCodeSelectionOutOfRange:
		return "No valid indices in that selection, try again."
	case stderrors.ErrCodeSelectionNoHighMatches:
		return "There are no high priority recommendations, pick indices instead."
	case stderrors.ErrCodeSelectionNoUsefulMatch:
		return "Nothing was rated useful, pick indices instead."
	case stderrors.ErrCodeNoFeedbackAvailable:
		return "No feedback was collected this run, use A, H or indices."
	default:
		return err.Error()
	}
}
