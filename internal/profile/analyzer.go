package profile

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/JimmyBlanquet/assistant-architect/internal/common/cache"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/logger"
	"github.com/JimmyBlanquet/assistant-architect/internal/llm"
)

// Header is a markdown header with its nesting level.
type Header struct {
	Level int
	Text  string
}

// CodeBlock is a fenced code block with its declared language.
type CodeBlock struct {
	Language string
	Code     string
}

var (
	headerRe    = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	codeBlockRe = regexp.MustCompile("(?s)```(\\w*)\n(.*?)```")
)

// techPattern pairs a display name with its detection regex. Ordered so
// detection output stays reproducible.
type techPattern struct {
	name string
	re   *regexp.Regexp
}

var techPatterns = []techPattern{
	{"Python", regexp.MustCompile(`(?i)\bpython\b|\.py\b|pip\s+install|requirements\.txt`)},
	{"JavaScript", regexp.MustCompile(`(?i)\bjavascript\b|\.js\b|npm\s+install|node_modules`)},
	{"TypeScript", regexp.MustCompile(`(?i)\btypescript\b|\.ts\b|tsconfig`)},
	{"Java", regexp.MustCompile(`(?i)\bjava\b|\.java\b|maven|gradle|pom\.xml`)},
	{"Go", regexp.MustCompile(`(?i)\bgolang\b|\.go\b|go\s+mod`)},
	{"Rust", regexp.MustCompile(`(?i)\brust\b|\.rs\b|cargo`)},
	{"React", regexp.MustCompile(`(?i)\breact\b|jsx|useState|useEffect`)},
	{"Vue", regexp.MustCompile(`(?i)\bvue\b|\.vue\b|vuex`)},
	{"Angular", regexp.MustCompile(`(?i)\bangular\b|ng\s+serve`)},
	{"Spring", regexp.MustCompile(`(?i)\bspring\b|@SpringBoot|@RestController`)},
	{"Django", regexp.MustCompile(`(?i)\bdjango\b|manage\.py`)},
	{"FastAPI", regexp.MustCompile(`(?i)\bfastapi\b|@app\.(get|post)`)},
	{"Flask", regexp.MustCompile(`(?i)\bflask\b|@app\.route`)},
	{"PostgreSQL", regexp.MustCompile(`(?i)\bpostgres|postgresql\b|psql`)},
	{"MySQL", regexp.MustCompile(`(?i)\bmysql\b`)},
	{"MongoDB", regexp.MustCompile(`(?i)\bmongodb\b|mongoose`)},
	{"Redis", regexp.MustCompile(`(?i)\bredis\b`)},
	{"Docker", regexp.MustCompile(`(?i)\bdocker\b|dockerfile|docker-compose`)},
	{"Kubernetes", regexp.MustCompile(`(?i)\bkubernetes\b|kubectl|k8s`)},
	{"Git", regexp.MustCompile(`(?i)\bgit\b|\.git`)},
	{"CI/CD", regexp.MustCompile(`(?i)\bci/cd\b|github\s+actions|gitlab\s+ci|jenkins`)},
	{"Kafka", regexp.MustCompile(`(?i)\bkafka\b`)},
}

var archPatterns = []techPattern{
	{"microservices", regexp.MustCompile(`(?i)\bmicroservices?\b`)},
	{"monolith", regexp.MustCompile(`(?i)\bmonolith\b`)},
	{"event-driven", regexp.MustCompile(`(?i)\bevent[- ]driven\b|event\s+sourcing`)},
	{"REST API", regexp.MustCompile(`(?i)\brest\s+api\b|restful`)},
	{"GraphQL", regexp.MustCompile(`(?i)\bgraphql\b`)},
	{"serverless", regexp.MustCompile(`(?i)\bserverless\b|lambda|cloud\s+functions`)},
	{"MVC", regexp.MustCompile(`(?i)\bmvc\b|model[- ]view[- ]controller`)},
	{"clean architecture", regexp.MustCompile(`(?i)\bclean\s+architecture\b|hexagonal`)},
	{"DDD", regexp.MustCompile(`(?i)\bdomain[- ]driven\b|ddd\b`)},
	{"CQRS", regexp.MustCompile(`(?i)\bcqrs\b|command\s+query`)},
	{"pub/sub", regexp.MustCompile(`(?i)\bpub/?sub\b|publish[- ]subscribe`)},
}

// Analyzer builds a ProjectProfile out of markdown documentation, with
// optional model enrichment and a Redis-backed result cache.
type Analyzer struct {
	provider llm.Provider
	cache    *cache.RedisCache
	log      logger.Logger
}

// NewAnalyzer creates an Analyzer. Both provider and cache may be nil; the
// analyzer then runs pattern matching only.
func NewAnalyzer(provider llm.Provider, c *cache.RedisCache, log logger.Logger) *Analyzer {
	return &Analyzer{provider: provider, cache: c, log: log}
}

// ExtractHeaders returns every markdown header with its level.
func ExtractHeaders(content string) []Header {
	var headers []Header
	for _, m := range headerRe.FindAllStringSubmatch(content, -1) {
		headers = append(headers, Header{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headers
}

// ExtractCodeBlocks returns every fenced code block.
func ExtractCodeBlocks(content string) []CodeBlock {
	var blocks []CodeBlock
	for _, m := range codeBlockRe.FindAllStringSubmatch(content, -1) {
		lang := m[1]
		if lang == "" {
			lang = "unknown"
		}
		blocks = append(blocks, CodeBlock{
			Language: lang,
			Code:     strings.TrimSpace(m[2]),
		})
	}
	return blocks
}

// DetectTechnologies runs the technology patterns over the content plus
// every code block and returns the sorted match names.
func DetectTechnologies(content string, blocks []CodeBlock) []string {
	var sb strings.Builder
	sb.WriteString(content)
	for _, b := range blocks {
		sb.WriteString("\n")
		sb.WriteString(b.Code)
	}
	haystack := sb.String()

	var detected []string
	for _, tp := range techPatterns {
		if tp.re.MatchString(haystack) {
			detected = append(detected, tp.name)
		}
	}
	sort.Strings(detected)
	return detected
}

// DetectPatterns returns the architectural patterns mentioned in content, in
// detection-table order.
func DetectPatterns(content string) []string {
	var detected []string
	for _, ap := range archPatterns {
		if ap.re.MatchString(content) {
			detected = append(detected, ap.name)
		}
	}
	return detected
}

// EstimateComplexity scores documentation depth into low/medium/high.
func EstimateComplexity(content string, headers []Header, blocks []CodeBlock, tech []string) string {
	score := 0

	switch {
	case len(headers) > 20:
		score += 2
	case len(headers) > 10:
		score++
	}

	switch {
	case len(blocks) > 15:
		score += 2
	case len(blocks) > 5:
		score++
	}

	switch {
	case len(tech) > 8:
		score += 2
	case len(tech) > 4:
		score++
	}

	switch {
	case len(content) > 20000:
		score += 2
	case len(content) > 5000:
		score++
	}

	switch {
	case score >= 5:
		return ComplexityHigh
	case score >= 2:
		return ComplexityMedium
	default:
		return ComplexityLow
	}
}

// AnalyzeContent analyzes raw markdown content into a profile.
func (a *Analyzer) AnalyzeContent(ctx context.Context, content string) (*ProjectProfile, error) {
	if a.cache != nil {
		var cached ProjectProfile
		found, err := a.cache.Get(ctx, cache.Key(content), &cached)
		if err != nil {
			a.log.Warn("analysis cache lookup failed", map[string]interface{}{"error": err.Error()})
		} else if found {
			cached.RawContent = content
			return &cached, nil
		}
	}

	headers := ExtractHeaders(content)
	blocks := ExtractCodeBlocks(content)
	tech := DetectTechnologies(content, blocks)
	patterns := DetectPatterns(content)

	p := &ProjectProfile{
		Stack:      tech,
		Patterns:   patterns,
		Complexity: EstimateComplexity(content, headers, blocks, tech),
		RawContent: content,
	}

	if a.provider != nil {
		a.enrich(ctx, p, content)
	}

	if a.cache != nil {
		if err := a.cache.Set(ctx, cache.Key(content), p); err != nil {
			a.log.Warn("analysis cache store failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return p, nil
}

// AnalyzeDirectory analyzes every markdown file under docPath.
func (a *Analyzer) AnalyzeDirectory(ctx context.Context, docPath string) (*ProjectProfile, error) {
	var parts []string

	err := filepath.WalkDir(docPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		parts = append(parts, "# File: "+filepath.Base(path)+"\n\n"+string(raw))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.AnalyzeContent(ctx, strings.Join(parts, "\n\n---\n\n"))
}

const maxEnrichmentContent = 15000

// enrich asks the model provider for name, description, features and pain
// points. Failures are logged and ignored; pattern analysis stands alone.
func (a *Analyzer) enrich(ctx context.Context, p *ProjectProfile, content string) {
	truncated := content
	if len(truncated) > maxEnrichmentContent {
		truncated = truncated[:maxEnrichmentContent] + "\n\n[... content truncated ...]"
	}

	schema := map[string]interface{}{
		"name":        "string - project name",
		"description": "string - brief project description (1-2 sentences)",
		"features":    []string{"list of main features/capabilities"},
		"pain_points": []string{"potential difficulties/challenges for developers"},
	}

	result, err := a.provider.Analyze(ctx, truncated, schema)
	if err != nil {
		a.log.WithError(err).Warn("model enrichment failed, keeping pattern analysis", nil)
		return
	}

	if v, ok := result["name"].(string); ok && v != "" {
		p.Name = v
	}
	if v, ok := result["description"].(string); ok && v != "" {
		p.Description = v
	}
	if v, ok := result["features"]; ok {
		p.Features = toStringSlice(v)
	}
	if v, ok := result["pain_points"]; ok {
		p.PainPoints = toStringSlice(v)
	}
}

func toStringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
