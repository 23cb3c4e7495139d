// Package feedback collects user ratings on recommendations and refines the
// recommendation list with them.
package feedback

import (
	"encoding/json"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JimmyBlanquet/assistant-architect/internal/catalog"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/console"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/logger"
)

// Rating values. Anything unrecognized is treated as the default.
const (
	RatingUseful      = "useful"
	RatingMaybe       = "maybe"
	RatingNotRelevant = "not_relevant"
)

// Auto-rating thresholds on the match score.
const (
	autoUsefulThreshold = 0.6
	autoMaybeThreshold  = 0.3
)

// UserFeedback is one rating on one recommendation.
type UserFeedback struct {
	AgentType string    `json:"agent_type"`
	AgentName string    `json:"agent_name"`
	Rating    string    `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is an append-only record of the ratings given in one run.
type Session struct {
	ID        string         `json:"session_id"`
	StartedAt time.Time      `json:"session_start"`
	Records   []UserFeedback `json:"feedback"`
	Refined   bool           `json:"refined"`
}

// NewSession starts an empty session.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
}

// Add appends a rating. Unknown rating strings fall back to maybe.
func (s *Session) Add(agentType, agentName, rating, comment string) {
	s.Records = append(s.Records, UserFeedback{
		AgentType: agentType,
		AgentName: agentName,
		Rating:    NormalizeRating(rating),
		Comment:   comment,
		Timestamp: time.Now().UTC(),
	})
}

// NormalizeRating maps arbitrary input to a valid rating value.
func NormalizeRating(rating string) string {
	switch strings.TrimSpace(strings.ToLower(rating)) {
	case RatingUseful, "u", "+":
		return RatingUseful
	case RatingNotRelevant, "n", "-":
		return RatingNotRelevant
	default:
		return RatingMaybe
	}
}

// UsefulTypes returns the set of agent types whose latest rating is useful.
func (s *Session) UsefulTypes() map[string]bool {
	latest := s.latestRatings()
	out := map[string]bool{}
	for agentType, rating := range latest {
		if rating == RatingUseful {
			out[agentType] = true
		}
	}
	return out
}

// latestRatings resolves repeated ratings per agent type: the last one wins.
func (s *Session) latestRatings() map[string]string {
	latest := map[string]string{}
	for _, r := range s.Records {
		latest[r.AgentType] = r.Rating
	}
	return latest
}

// ratingRank orders ratings for refinement: useful first, not_relevant last.
func ratingRank(rating string) int {
	switch rating {
	case RatingUseful:
		return 0
	case RatingNotRelevant:
		return 2
	default:
		return 1
	}
}

// Refine reorders recommendations by (rating, match score). Recommendations
// without feedback count as maybe. With dropNotRelevant set, recommendations
// rated not_relevant are removed.
func (s *Session) Refine(recs []catalog.Recommendation, dropNotRelevant bool) []catalog.Recommendation {
	latest := s.latestRatings()

	rated := func(agentType string) string {
		if r, ok := latest[agentType]; ok {
			return r
		}
		return RatingMaybe
	}

	out := make([]catalog.Recommendation, 0, len(recs))
	for _, r := range recs {
		if dropNotRelevant && rated(r.AgentType) == RatingNotRelevant {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := ratingRank(rated(out[i].AgentType)), ratingRank(rated(out[j].AgentType))
		if ri != rj {
			return ri < rj
		}
		return out[i].MatchScore > out[j].MatchScore
	})

	s.Refined = true
	return out
}

// AutoRate fills the session from match scores alone, for non-interactive
// runs: >=0.6 useful, >=0.3 maybe, below that not_relevant.
func (s *Session) AutoRate(recs []catalog.Recommendation) {
	for _, r := range recs {
		switch {
		case r.MatchScore >= autoUsefulThreshold:
			s.Add(r.AgentType, r.Name, RatingUseful, "auto: strong match")
		case r.MatchScore >= autoMaybeThreshold:
			s.Add(r.AgentType, r.Name, RatingMaybe, "auto: moderate match")
		default:
			s.Add(r.AgentType, r.Name, RatingNotRelevant, "auto: weak match")
		}
	}
}

// ExportJSON writes the session to path.
func (s *Session) ExportJSON(path string) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Collector runs the interactive rating loop over an IO surface.
type Collector struct {
	io  console.IO
	log logger.Logger
}

// NewCollector creates a Collector.
func NewCollector(io console.IO, log logger.Logger) *Collector {
	return &Collector{io: io, log: log}
}

// Collect asks for a rating on every recommendation and returns the filled
// session. Empty answers keep the default rating.
func (c *Collector) Collect(recs []catalog.Recommendation) (*Session, error) {
	session := NewSession()

	c.io.Print("Rate each recommendation: [u]seful / [m]aybe / [n]ot relevant (default: maybe)")

	for i, r := range recs {
		answer, err := c.io.Prompt(formatRatingPrompt(i+1, r))
		if err != nil {
			return nil, err
		}
		session.Add(r.AgentType, r.Name, answer, "")
	}

	c.log.Info("feedback collected", map[string]interface{}{
		"sessionId": session.ID,
		"records":   len(session.Records),
	})
	return session, nil
}

func formatRatingPrompt(index int, r catalog.Recommendation) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(strconv.Itoa(index) + ". " + r.Name + " [" + strings.ToUpper(r.Priority) + "]")
	sb.WriteString("\n   " + r.Justification)
	sb.WriteString("\nYour rating: ")
	return sb.String()
}
