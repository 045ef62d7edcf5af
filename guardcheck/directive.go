package guardcheck

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"
)

const ignoreDirective = "guardcheck:ignore"

// reporter drops diagnostics on lines covered by an ignore directive.
type reporter struct {
	pass    *analysis.Pass
	ignored map[string]map[int]bool // file name -> line
}

func newReporter(pass *analysis.Pass) *reporter {
	r := &reporter{
		pass:    pass,
		ignored: make(map[string]map[int]bool),
	}

	for _, f := range pass.Files {
		for _, group := range f.Comments {
			for _, c := range group.List {
				found, err := parseDirective(c.Text)
				if !found {
					continue
				}
				if err != nil {
					pass.Reportf(c.Pos(), "%s", err)
					continue
				}
				r.ignore(c.Pos())
			}
		}
	}

	return r
}

// ignore covers the line of pos and the line below it.
func (r *reporter) ignore(pos token.Pos) {
	p := r.pass.Fset.Position(pos)
	lines, ok := r.ignored[p.Filename]
	if !ok {
		lines = make(map[int]bool)
		r.ignored[p.Filename] = lines
	}
	lines[p.Line] = true
	lines[p.Line+1] = true
}

func (r *reporter) reportf(pos token.Pos, format string, args ...interface{}) {
	p := r.pass.Fset.Position(pos)
	if r.ignored[p.Filename][p.Line] {
		return
	}
	r.pass.Reportf(pos, format, args...)
}

// parseDirective reports whether comment holds an ignore directive, and an
// error if the directive is malformed. The reason is everything after the
// directive up to the end of the comment or a nested "//".
func parseDirective(comment string) (bool, error) {
	cnt := strings.Count(comment, ignoreDirective)
	if cnt == 0 {
		return false, nil
	}
	if cnt > 1 {
		return true, fmt.Errorf("found %d %q in %q, expected exactly one", cnt, ignoreDirective, comment)
	}

	idx := strings.Index(comment, ignoreDirective)
	reason := comment[idx+len(ignoreDirective):]
	if i := strings.Index(reason, "//"); i != -1 {
		reason = reason[:i]
	}
	reason = strings.TrimSuffix(strings.TrimSpace(reason), "*/")
	if strings.TrimSpace(reason) == "" {
		return true, errors.New("ignore directive without a reason")
	}

	return true, nil
}
