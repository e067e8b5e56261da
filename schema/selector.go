package schema

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/mbenson/jcrbox/errors"
	"github.com/mbenson/jcrbox/literal"
)

// DefaultSelectorNameStrategy assigns each source the lowercase initials of
// its symbolic name's underscore-delimited tokens. Repeated initials gain a
// numeric suffix starting at 2, in iteration order.
type DefaultSelectorNameStrategy struct{}

// GenerateSelectors implements literal.SelectorNameStrategy.
func (DefaultSelectorNameStrategy) GenerateSelectors(sources []literal.Source) (map[literal.Source]string, error) {
	counts := make(map[string]int, len(sources))
	result := make(map[literal.Source]string, len(sources))
	for _, s := range sources {
		initials := initials(s.Name())
		counts[initials]++
		if n := counts[initials]; n > 1 {
			result[s] = fmt.Sprintf("%s%d", initials, n)
		} else {
			result[s] = initials
		}
	}
	return result, nil
}

// initials returns the lowercased first letters of the underscore-delimited
// tokens of symbol.
func initials(symbol string) string {
	var sb strings.Builder
	for _, token := range strings.Split(symbol, "_") {
		if token == "" {
			continue
		}
		for _, r := range token {
			sb.WriteRune(unicode.ToLower(r))
			break
		}
	}
	return sb.String()
}

// Selector tables are memoized per resolved group descriptor for the
// process lifetime; the metadata is static, so there is no invalidation.
// Concurrent first computations are idempotent; sync.Map's LoadOrStore
// keeps one winner.
var (
	schemaTables   sync.Map // *literal.Schema  -> map[literal.Source]string
	implicitTables sync.Map // *literal.NodeSet -> map[literal.Source]string
)

// SelectorNames returns the selector-name table of the schema group the
// source belongs to, resolving the group by walking the source's scope
// chain and falling back to an implicit group containing only the source's
// own enumeration.
func SelectorNames(source literal.Source) (map[literal.Source]string, error) {
	set := source.SourceSet()
	if set == nil {
		return nil, errors.AssertionFailedf("source %s has no declaring set", source.Name())
	}

	if sch := set.Scope().Schema(); sch != nil {
		if cached, ok := schemaTables.Load(sch); ok {
			return cached.(map[literal.Source]string), nil
		}
		table, err := generate(strategyOf(sch), sch.Sources())
		if err != nil {
			return nil, err
		}
		actual, _ := schemaTables.LoadOrStore(sch, table)
		return actual.(map[literal.Source]string), nil
	}

	if cached, ok := implicitTables.Load(set); ok {
		return cached.(map[literal.Source]string), nil
	}
	nodes := set.Nodes()
	sources := make([]literal.Source, len(nodes))
	for i, n := range nodes {
		sources[i] = n
	}
	table, err := generate(DefaultSelectorNameStrategy{}, sources)
	if err != nil {
		return nil, err
	}
	actual, _ := implicitTables.LoadOrStore(set, table)
	return actual.(map[literal.Source]string), nil
}

// SelectorName returns the unique selector name assigned to the source
// within its schema group.
func SelectorName(source literal.Source) (string, error) {
	table, err := SelectorNames(source)
	if err != nil {
		return "", err
	}
	name, ok := table[source]
	if !ok {
		return "", errors.Wrapf(errors.ErrSchemaInstantiation,
			"selector table is missing source %s", source.Name())
	}
	return name, nil
}

func strategyOf(sch *literal.Schema) literal.SelectorNameStrategy {
	if s := sch.Strategy(); s != nil {
		return s
	}
	return DefaultSelectorNameStrategy{}
}

// generate runs the strategy and verifies the mapping is total and unique
// within the source list.
func generate(strategy literal.SelectorNameStrategy, sources []literal.Source) (map[literal.Source]string, error) {
	table, err := strategy.GenerateSelectors(sources)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "selector name strategy %T failed", strategy),
			errors.ErrSchemaInstantiation)
	}
	names := make(map[string]literal.Source, len(sources))
	for _, s := range sources {
		name, ok := table[s]
		if !ok || name == "" {
			return nil, errors.Wrapf(errors.ErrSchemaInstantiation,
				"strategy %T returned no selector name for %s", strategy, s.Name())
		}
		if prior, clash := names[name]; clash {
			return nil, errors.Wrapf(errors.ErrSchemaInstantiation,
				"strategy %T assigned selector %q to both %s and %s",
				strategy, name, prior.Name(), s.Name())
		}
		names[name] = s
	}
	return table, nil
}
