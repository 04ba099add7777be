package main

type demoNote struct {
	title   string
	content string
	todos   []string
	starred string
	indexed string
}

var demoNotes = []demoNote{
	{
		title: "Weekly planning",
		content: `# Weekly planning

## Goals
- [ ] Finish the quarterly report
- [x] Book the team offsite

## Notes
Keep Fridays free of meetings.`,
		todos:   []string{"Finish the quarterly report", "Review hiring pipeline"},
		starred: "Keep Fridays free of meetings.",
	},
	{
		title: "Reading list",
		content: `# Reading list

- Designing Data-Intensive Applications
- The Pragmatic Programmer`,
		indexed: "Designing Data-Intensive Applications",
	},
	{
		title:   "Groceries",
		content: "# Groceries\n\nmilk, eggs, coffee",
		todos:   []string{"Buy coffee"},
	},
}
