// Package outline reads structure out of note content: the heading tree a
// note renders as, and the checklist items written inline.
package outline

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type Heading struct {
	Level int
	Text  string
	Line  int // 1-based
}

type Task struct {
	Text string
	Done bool
}

func parse(source []byte) ast.Node {
	return goldmark.DefaultParser().Parse(text.NewReader(source))
}

// Headings lists every heading in document order.
func Headings(content string) []Heading {
	source := []byte(content)
	var headings []Heading

	_ = ast.Walk(parse(source), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		line := 1
		if h.Lines().Len() > 0 {
			line += bytes.Count(source[:h.Lines().At(0).Start], []byte("\n"))
		}
		headings = append(headings, Heading{
			Level: h.Level,
			Text:  strings.TrimSpace(string(h.Text(source))),
			Line:  line,
		})
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// Tasks lists "- [ ] item" and "- [x] item" entries with non-empty text.
func Tasks(content string) []Task {
	source := []byte(content)
	var tasks []Task

	_ = ast.Walk(parse(source), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		item, ok := n.(*ast.ListItem)
		if !ok {
			return ast.WalkContinue, nil
		}
		body := strings.TrimSpace(string(item.Text(source)))
		if len(body) < 3 {
			return ast.WalkContinue, nil
		}
		marker := strings.ToLower(body[:3])
		if marker != "[ ]" && marker != "[x]" {
			return ast.WalkContinue, nil
		}
		if rest := strings.TrimSpace(body[3:]); rest != "" {
			tasks = append(tasks, Task{Text: rest, Done: marker == "[x]"})
		}
		return ast.WalkContinue, nil
	})

	return tasks
}
