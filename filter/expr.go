package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/s0up4200/crunchy/crunchyroll"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	custom     map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size <= 0 {
			return
		}
		if cache, err := newProgramCache(size); err == nil {
			c.cache = cache
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.custom, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		custom: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CompileFilter compiles expression with an uncached compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return NewExprCompiler().Compile(expression)
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	custom map[string]any
	cache  *programCache
}

// Compile compiles an expression into an executable filter. Every name an
// expression can use is known up front, so typos fail here rather than
// silently never matching.
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	env := newEnvironment(&crunchyroll.Collection{}, c.custom)
	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		custom:     c.custom,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate reports whether item matches. Results the expression fails on
// (for example a nil metadata block) do not match.
func (f *exprFilter) Evaluate(item *crunchyroll.Collection) bool {
	ok, err := f.Match(item)
	return err == nil && ok
}

// Match evaluates the filter against item
func (f *exprFilter) Match(item *crunchyroll.Collection) (bool, error) {
	if item == nil {
		return false, nil
	}

	result, err := expr.Run(f.program, newEnvironment(item, f.custom))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			ItemID:     item.ID,
			ItemTitle:  item.Title,
			Err:        err,
		}
	}

	// AsBool at compile time guarantees the type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// addHelperFunctions adds the item independent helpers to env
func addHelperFunctions(env map[string]any) {
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Date helpers
	env["now"] = time.Now
	env["yearsSince"] = func(year int) int {
		if year <= 0 {
			return 0
		}
		return time.Now().Year() - year
	}
}

// newEnvironment creates the evaluation environment for item. extra is
// copied in after the built-in helpers.
func newEnvironment(item *crunchyroll.Collection, extra map[string]any) map[string]any {
	env := make(map[string]any, 48)
	addHelperFunctions(env)
	maps.Copy(env, extra)

	env["Collection"] = item

	env["ID"] = item.ID
	env["Title"] = item.Title
	env["Slug"] = item.SlugTitle
	env["Description"] = item.Description
	env["Type"] = string(item.Type)
	env["ChannelID"] = item.ChannelID
	env["New"] = item.New
	env["IsPremiumOnly"] = item.IsPremiumOnly()
	env["Available"] = item.Available()
	env["Score"] = score(item)

	md := metadataOf(item)
	env["Year"] = md.year
	env["EpisodeCount"] = md.episodeCount
	env["SeasonCount"] = md.seasonCount
	env["IsSimulcast"] = md.simulcast
	env["IsSubbed"] = md.subbed
	env["IsDubbed"] = md.dubbed
	env["IsMature"] = md.mature
	env["AudioLocales"] = md.audio
	env["SubtitleLocales"] = md.subtitles

	env["isType"] = func(kind string) bool {
		return strings.EqualFold(string(item.Type), kind)
	}
	env["hasAudio"] = createLocaleFunc(md.audio)
	env["hasSubtitle"] = createLocaleFunc(md.subtitles)

	return env
}

// metadata flattens the kind specific metadata blocks of a collection
type metadata struct {
	year         int
	episodeCount int
	seasonCount  int
	simulcast    bool
	subbed       bool
	dubbed       bool
	mature       bool
	audio        []string
	subtitles    []string
}

func metadataOf(item *crunchyroll.Collection) metadata {
	var md metadata
	switch {
	case item.SeriesMetadata != nil:
		s := item.SeriesMetadata
		md = metadata{
			year:         int(s.SeriesLaunchYear),
			episodeCount: int(s.EpisodeCount),
			seasonCount:  int(s.SeasonCount),
			simulcast:    s.IsSimulcast,
			subbed:       s.IsSubbed,
			dubbed:       s.IsDubbed,
			mature:       s.IsMature,
			audio:        localeStrings(s.AudioLocales),
			subtitles:    localeStrings(s.SubtitleLocales),
		}
	case item.MovieListingMetadata != nil:
		m := item.MovieListingMetadata
		md = metadata{
			year:      int(m.MovieReleaseYear),
			subbed:    m.IsSubbed,
			dubbed:    m.IsDubbed,
			mature:    m.IsMature,
			subtitles: localeStrings(m.SubtitleLocales),
		}
	case item.EpisodeMetadata != nil:
		ep := item.EpisodeMetadata
		md = metadata{
			episodeCount: 1,
			subbed:       ep.IsSubbed,
			dubbed:       ep.IsDubbed,
			mature:       ep.IsMature,
			subtitles:    localeStrings(ep.SubtitleLocales),
		}
		if ep.AudioLocale != "" {
			md.audio = []string{string(ep.AudioLocale)}
		}
	}

	if md.audio == nil {
		md.audio = []string{}
	}
	if md.subtitles == nil {
		md.subtitles = []string{}
	}
	return md
}

func score(item *crunchyroll.Collection) float64 {
	if item.SearchMetadata == nil {
		return 0
	}
	return item.SearchMetadata.Score
}

func localeStrings(locales []crunchyroll.Locale) []string {
	out := make([]string, len(locales))
	for i, l := range locales {
		out[i] = l.String()
	}
	return out
}

func createLocaleFunc(locales []string) func(string) bool {
	return func(locale string) bool {
		return slices.ContainsFunc(locales, func(l string) bool {
			return strings.EqualFold(l, locale)
		})
	}
}
