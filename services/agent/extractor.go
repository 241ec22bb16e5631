// File: services/agent/extractor.go
package agent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"meetsync/models"
	"meetsync/utils"

	"go.uber.org/zap"
)

const defaultDurationMinutes = 30

// weekdayNames is the canonical Monday-first order; when an utterance mentions
// several weekdays, the first name in this order wins.
var weekdayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// hourRangePattern matches "between 3-5pm ... next week": two 1-2 digit hours
// sharing a single meridiem marker.
var hourRangePattern = regexp.MustCompile(`between\s*(\d{1,2})\s*-\s*(\d{1,2})\s*(am|pm).*next week`)

// ruleContext carries one turn's input through the rule table. Matchers that
// already resolved something stash it here so apply does not re-parse.
type ruleContext struct {
	state models.DialogueState
	input string
	now   time.Time

	rangeDigits [2]string
	rangeMarker string
	rangeHours  models.HourRange

	weekday   string
	weekdayAt time.Time
}

type rule struct {
	name    string
	matches func(s *DefaultAgentService, rc *ruleContext) bool
	apply   func(s *DefaultAgentService, rc *ruleContext) models.DialogueState
}

// extractRules is evaluated top to bottom; the first rule whose matcher
// returns true handles the whole turn. The order is the tie-break contract:
// a delete keyword abandons any in-progress booking and pending phases are
// served before fresh intents. The general parser is not in the table; it is
// the unconditional default when no rule matches.
var extractRules = []rule{
	{name: "delete-request", matches: matchDeleteRequest, apply: applyDeleteRequest},
	{name: "delete-target", matches: matchDeleteTarget, apply: applyDeleteTarget},
	{name: "hour-range-next-week", matches: matchHourRange, apply: applyHourRange},
	{name: "date-follow-up", matches: matchDateFollowUp, apply: applyDateFollowUp},
	{name: "time-follow-up", matches: matchTimeFollowUp, apply: applyTimeFollowUp},
	{name: "free-time-query", matches: matchFreeTime, apply: applyFreeTime},
	{name: "weekday-booking", matches: matchWeekdayBooking, apply: applyWeekdayBooking},
}

// ExtractIntent classifies the utterance and fills as much of the state as it
// supports. It never fails: unresolvable input leaves the state unchanged
// except for a diagnostic message.
func (s *DefaultAgentService) ExtractIntent(state models.DialogueState) models.DialogueState {
	rc := &ruleContext{
		state: state,
		input: strings.ToLower(strings.TrimSpace(state.Input)),
		now:   s.now(),
	}
	for _, r := range extractRules {
		if !r.matches(s, rc) {
			continue
		}
		out := r.apply(s, rc)
		utils.GetLogger().Debug("extractor rule fired",
			zap.String("rule", r.name),
			zap.String("sessionID", state.SessionID),
			zap.String("phase", string(out.Phase)))
		return out
	}
	out := applyGeneral(s, rc)
	utils.GetLogger().Debug("extractor rule fired",
		zap.String("rule", "general"),
		zap.String("sessionID", state.SessionID),
		zap.String("phase", string(out.Phase)))
	return out
}

func matchDeleteRequest(s *DefaultAgentService, rc *ruleContext) bool {
	return strings.Contains(rc.input, "delete") || strings.Contains(rc.input, "remove")
}

func applyDeleteRequest(s *DefaultAgentService, rc *ruleContext) models.DialogueState {
	st := rc.state
	st.Phase = models.PhaseDeleting
	st.Range = nil
	st.Message = "Which meeting would you like to delete? Please specify date and time."
	return st
}

// matchDeleteTarget interprets the follow-up turn after a delete request: the
// input is the date/time of the meeting to remove.
func matchDeleteTarget(s *DefaultAgentService, rc *ruleContext) bool {
	return rc.state.Phase == models.PhaseDeleting
}

func applyDeleteTarget(s *DefaultAgentService, rc *ruleContext) models.DialogueState {
	st := rc.state
	at, ok := s.Resolver.Resolve(rc.input, rc.now)
	if !ok {
		st.Message = "❓ Could not parse the date/time of the meeting to delete."
		return st
	}
	start := at.In(s.location()).Truncate(time.Minute)
	end := start.Add(time.Duration(durationOrDefault(st.DurationMinutes)) * time.Minute)
	st.WindowStart = &start
	st.WindowEnd = &end
	st.Message = ""
	return st
}

func matchHourRange(s *DefaultAgentService, rc *ruleContext) bool {
	if rc.state.Phase == models.PhaseAwaitingDate {
		return false
	}
	m := hourRangePattern.FindStringSubmatch(rc.input)
	if m == nil {
		return false
	}
	startDigits, endDigits, marker := m[1], m[2], m[3]
	startHr, _ := strconv.Atoi(startDigits)
	endHr, _ := strconv.Atoi(endDigits)
	startHr %= 12
	endHr %= 12
	if marker == "pm" {
		startHr += 12
		endHr += 12
	}
	// A degenerate range (end not after start) is not recognized and falls
	// through to the general parser, like a range crossing noon.
	if endHr <= startHr {
		return false
	}
	rc.rangeDigits = [2]string{startDigits, endDigits}
	rc.rangeMarker = marker
	rc.rangeHours = models.HourRange{StartHour: startHr, EndHour: endHr}
	return true
}

func applyHourRange(s *DefaultAgentService, rc *ruleContext) models.DialogueState {
	st := rc.state
	st.Phase = models.PhaseAwaitingDate
	st.Range = &models.HourRange{StartHour: rc.rangeHours.StartHour, EndHour: rc.rangeHours.EndHour}
	marker := strings.ToUpper(rc.rangeMarker)
	st.Message = fmt.Sprintf("Sure! What day next week would you like between %s%s and %s%s?",
		rc.rangeDigits[0], marker, rc.rangeDigits[1], marker)
	return st
}

func matchDateFollowUp(s *DefaultAgentService, rc *ruleContext) bool {
	return rc.state.Phase == models.PhaseAwaitingDate
}

func applyDateFollowUp(s *DefaultAgentService, rc *ruleContext) models.DialogueState {
	st := rc.state
	day, ok := s.Resolver.Resolve(rc.input, rc.now)
	if !ok {
		st.Message = "❓ Could not parse the date. Please specify a day next week."
		return st
	}
	day = day.In(s.location())
	hours := st.Range
	if hours == nil {
		// Range bounds are only captured together with the awaiting-date
		// phase; losing them means the session record was corrupted.
		st.Message = "❓ I lost track of the requested hours. Please start over."
		st.Phase = models.PhaseIdle
		return st
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), hours.StartHour, 0, 0, 0, s.location())
	end := time.Date(day.Year(), day.Month(), day.Day(), hours.EndHour, 0, 0, 0, s.location())
	st.WindowStart = &start
	st.WindowEnd = &end
	st.DurationMinutes = int(end.Sub(start).Minutes())
	st.Phase = models.PhaseIdle
	st.Range = nil
	st.Message = ""
	return st
}

func matchTimeFollowUp(s *DefaultAgentService, rc *ruleContext) bool {
	return rc.state.Phase == models.PhaseAwaitingTime
}

func applyTimeFollowUp(s *DefaultAgentService, rc *ruleContext) models.DialogueState {
	st := rc.state
	at, ok := s.Resolver.Resolve(rc.input, rc.now)
	if !ok {
		st.Message = "❓ I still couldn't parse the time. Try like '3pm'."
		return st
	}
	at = at.In(s.location())
	base := rc.now
	if st.WindowStart != nil {
		base = *st.WindowStart
	}
	start := time.Date(base.Year(), base.Month(), base.Day(), at.Hour(), at.Minute(), 0, 0, s.location())
	end := start.Add(time.Duration(durationOrDefault(st.DurationMinutes)) * time.Minute)
	st.WindowStart = &start
	st.WindowEnd = &end
	st.Phase = models.PhaseIdle
	st.Message = ""
	return st
}

func matchFreeTime(s *DefaultAgentService, rc *ruleContext) bool {
	if !strings.Contains(rc.input, "free time") {
		return false
	}
	rc.weekday = firstWeekday(rc.input)
	return rc.weekday != ""
}

func applyFreeTime(s *DefaultAgentService, rc *ruleContext) models.DialogueState {
	st := rc.state
	day, ok := s.Resolver.Resolve("next "+rc.weekday, rc.now)
	if !ok {
		st.Message = "❓ Could not parse the weekday for free time."
		return st
	}
	day = day.In(s.location())
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.location())
	st.WindowStart = &midnight
	st.WindowEnd = nil
	st.Phase = models.PhaseAwaitingTime
	st.Message = fmt.Sprintf("✅ Yes, you're free on %s! What time would you like to book?", capitalize(rc.weekday))
	return st
}

func matchWeekdayBooking(s *DefaultAgentService, rc *ruleContext) bool {
	if !strings.Contains(rc.input, "book") {
		return false
	}
	rc.weekday = firstWeekday(rc.input)
	if rc.weekday == "" {
		return false
	}
	// An unresolvable weekday falls through to the general parser.
	at, ok := s.Resolver.Resolve("next "+rc.weekday, rc.now)
	if !ok {
		return false
	}
	rc.weekdayAt = at
	return true
}

func applyWeekdayBooking(s *DefaultAgentService, rc *ruleContext) models.DialogueState {
	st := rc.state
	day := rc.weekdayAt.In(s.location())
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.location())
	st.WindowStart = &midnight
	st.WindowEnd = nil
	st.Phase = models.PhaseAwaitingTime
	st.Message = fmt.Sprintf("📅 Got it! What time on %s?", capitalize(rc.weekday))
	return st
}

// applyGeneral treats the first two date/time mentions as an explicit start
// and end; a single mention gets the default duration appended.
func applyGeneral(s *DefaultAgentService, rc *ruleContext) models.DialogueState {
	st := rc.state

	var start, end time.Time
	mentions := s.Resolver.Mentions(rc.input, rc.now)
	if len(mentions) >= 2 {
		start, end = mentions[0].Time, mentions[1].Time
		if end.Before(start) {
			start, end = end, start
		}
	} else {
		at, ok := s.Resolver.Resolve(rc.input, rc.now)
		if !ok {
			st.Message = "❓ I couldn't understand the date/time. Please specify."
			return st
		}
		start = at
		end = start.Add(time.Duration(durationOrDefault(st.DurationMinutes)) * time.Minute)
	}

	start = start.In(s.location()).Truncate(time.Minute)
	end = end.In(s.location()).Truncate(time.Minute)
	st.WindowStart = &start
	st.WindowEnd = &end
	st.DurationMinutes = int(end.Sub(start).Minutes())
	st.Available = false
	st.Phase = models.PhaseIdle
	st.Message = ""
	return st
}

// firstWeekday returns the first weekday name mentioned in the input, in
// canonical Monday-first order, or "" when none appears.
func firstWeekday(input string) string {
	for _, day := range weekdayNames {
		if strings.Contains(input, day) {
			return day
		}
	}
	return ""
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func durationOrDefault(minutes int) int {
	if minutes <= 0 {
		return defaultDurationMinutes
	}
	return minutes
}
