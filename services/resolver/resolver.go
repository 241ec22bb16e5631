package resolver

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Mention is one recognized date/time fragment within a larger utterance.
type Mention struct {
	Text string
	Time time.Time
}

// DateTimeResolver resolves natural-language fragments into concrete instants
// relative to a reference time.
type DateTimeResolver interface {
	// Resolve parses text as a single date/time mention. The second return is
	// false when nothing in the text could be resolved.
	Resolve(text string, ref time.Time) (time.Time, bool)
	// Mentions scans text left to right and returns every date/time mention
	// found, in order of appearance. The result may be empty.
	Mentions(text string, ref time.Time) []Mention
}

// maxMentions bounds the left-to-right scan; the extractor only ever consumes
// the first two mentions.
const maxMentions = 4

// WhenResolver implements DateTimeResolver on top of the when parser with the
// English and common rule sets.
type WhenResolver struct {
	parser *when.Parser
}

// NewWhenResolver builds a resolver with the default rule sets.
func NewWhenResolver() *WhenResolver {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &WhenResolver{parser: w}
}

func (r *WhenResolver) Resolve(text string, ref time.Time) (time.Time, bool) {
	res, err := r.parser.Parse(text, ref)
	if err != nil || res == nil {
		return time.Time{}, false
	}
	return res.Time, true
}

func (r *WhenResolver) Mentions(text string, ref time.Time) []Mention {
	var mentions []Mention
	rest := text
	for i := 0; i < maxMentions; i++ {
		res, err := r.parser.Parse(rest, ref)
		if err != nil || res == nil {
			break
		}
		mentions = append(mentions, Mention{Text: res.Text, Time: res.Time})
		next := res.Index + len(res.Text)
		if next >= len(rest) {
			break
		}
		rest = rest[next:]
	}
	return mentions
}
