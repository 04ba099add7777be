package outline

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
)

func TestHeadings(t *testing.T) {
	content := heredoc.Doc(`
		# Trip

		Some prose.

		## Packing
		### Day 1
		text
	`)

	got := Headings(content)

	assert.Equal(t, []Heading{
		{Level: 1, Text: "Trip", Line: 1},
		{Level: 2, Text: "Packing", Line: 5},
		{Level: 3, Text: "Day 1", Line: 6},
	}, got)
}

func TestHeadings_None(t *testing.T) {
	assert.Empty(t, Headings("just a line"))
	assert.Empty(t, Headings(""))
}

func TestTasks(t *testing.T) {
	content := heredoc.Doc(`
		- [ ] buy milk
		- [x] call mom
		- [ ]
		- plain item
	`)

	assert.Equal(t, []Task{
		{Text: "buy milk", Done: false},
		{Text: "call mom", Done: true},
	}, Tasks(content))
}
