// Package timeparse turns the raw time/date text of a schedule request into
// an absolute timestamp in the bot's configured timezone.
package timeparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/studyping/slack-study-bot/internal/domain"
)

const (
	badTimeMessage = "Incorrect time format: hh:mm using 24 hour time"
	badDateMessage = "Incorrect date format: mm/dd/yyyy"
	passedMessage  = "This time has already passed"
)

// Parse validates timeText (24h "hh:mm") and the optional dateText
// ("mm/dd/yyyy") and composes them into a timestamp in loc. An empty
// dateText means today in loc. The result must be strictly after now.
// Pure function of its inputs; the clock and timezone are injected.
func Parse(timeText, dateText string, loc *time.Location, now time.Time) (time.Time, error) {
	year, month, day := now.In(loc).Date()

	if dateText != "" {
		var err error
		year, month, day, err = parseDate(dateText)
		if err != nil {
			return time.Time{}, err
		}
	}

	hour, minute, err := parseTime(timeText)
	if err != nil {
		return time.Time{}, err
	}

	ts := time.Date(year, month, day, hour, minute, 0, 0, loc)
	if !ts.After(now.In(loc)) {
		return time.Time{}, domain.NewError(domain.KindAlreadyPassed, passedMessage,
			fmt.Errorf("%s is not after %s", ts.Format(time.RFC3339), now.In(loc).Format(time.RFC3339)))
	}

	return ts, nil
}

func parseDate(dateText string) (year int, month time.Month, day int, err error) {
	fields := strings.Split(dateText, "/")
	if len(fields) != 3 {
		return 0, 0, 0, badDate(dateText)
	}

	m, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, badDate(dateText)
	}
	d, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, badDate(dateText)
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, 0, badDate(dateText)
	}

	// time.Date normalizes out-of-range values (02/30 becomes 03/01), so an
	// invalid calendar date is caught by round-tripping the fields.
	check := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if check.Year() != y || check.Month() != time.Month(m) || check.Day() != d {
		return 0, 0, 0, badDate(dateText)
	}

	return y, time.Month(m), d, nil
}

func parseTime(timeText string) (hour, minute int, err error) {
	fields := strings.Split(timeText, ":")
	if len(fields) != 2 {
		return 0, 0, badTime(timeText)
	}

	h, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, badTime(timeText)
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, badTime(timeText)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, badTime(timeText)
	}

	return h, m, nil
}

func badDate(dateText string) error {
	return domain.NewError(domain.KindInvalidFormat, badDateMessage, fmt.Errorf("bad date %q", dateText))
}

func badTime(timeText string) error {
	return domain.NewError(domain.KindInvalidFormat, badTimeMessage, fmt.Errorf("bad time %q", timeText))
}
