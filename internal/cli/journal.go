package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/wellnest/internal/models"
	"github.com/julianstephens/wellnest/internal/stats"
)

type JournalAddCmd struct {
	Mood   string `short:"m" help:"Mood (Great|Good|Okay|Low|Bad)." required:""`
	Energy string `short:"e" help:"Energy level (High|Good|Medium|Low|Empty)." required:""`
	Notes  string `short:"n" help:"Free-text notes."`
	Tags   string `short:"t" help:"Comma-separated tags."`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Writing again on the same day updates today's check-in in place
	id := ""
	if entries, err := ctx.Tracker.Entries(); err == nil {
		if existing, ok := stats.EntryForDay(entries, ctx.Tracker.Now()); ok {
			id = existing.ID
		}
	}

	entry, err := ctx.Tracker.SaveJournalEntry(id,
		models.Mood(c.Mood), models.Energy(c.Energy), c.Notes, splitTags(c.Tags))
	if err != nil {
		return err
	}

	verb := "Logged"
	if id != "" {
		verb = "Updated"
	}
	fmt.Printf("%s check-in for %s: mood %s, energy %s\n", verb, entry.Date, entry.Mood, entry.Energy)
	return nil
}

type JournalListCmd struct {
	Limit int `short:"n" help:"Show at most this many entries." default:"10"`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Tracker.Entries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No journal entries yet")
		return nil
	}

	shown := entries
	if c.Limit > 0 && len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}
	for _, e := range shown {
		fmt.Printf("%s  mood: %-5s  energy: %-6s  (%s)\n", e.Date, e.Mood, e.Energy, e.ID)
		if len(e.Tags) > 0 {
			fmt.Printf("            tags: %s\n", strings.Join(e.Tags, ", "))
		}
		if e.Notes != "" {
			fmt.Printf("            %s\n", e.Notes)
		}
	}
	if len(entries) > len(shown) {
		fmt.Printf("… and %d more\n", len(entries)-len(shown))
	}

	return nil
}

type JournalStatsCmd struct{}

func (c *JournalStatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Tracker.Entries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No journal entries yet")
		return nil
	}

	fmt.Printf("Mood across %d entries:\n", len(entries))
	for _, share := range stats.MoodShares(entries) {
		fmt.Printf("  %-5s %s %5.1f%%  (%d)\n",
			share.Mood, progressBar(share.Percent, 20), share.Percent, share.Count)
	}

	return nil
}

type JournalDeleteCmd struct {
	ID string `arg:"" help:"Entry ID to delete."`
}

func (c *JournalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Tracker.DeleteJournalEntry(strings.TrimSpace(c.ID)); err != nil {
		return err
	}
	fmt.Println("Deleted entry (if it existed)")
	return nil
}
