package phrase

import (
	"strings"

	"github.com/go-drift/bkclock/pkg/theme"
)

// Placeholders recognised in templates. A trailing underscore denotes the
// next hour or the minutes remaining until it.
//
//	{H} {h}     hour word, capitalized / lowercase
//	{H_} {h_}   next hour word
//	{M} {M_}    minute word / minutes-until word (capitalized)
//	{HH} {HH_}  hour / next hour numerals
//	{MM} {MM_}  minute / minutes-until numerals

// Form identifies which secondary arithmetic phrase a minute carries.
type Form int

const (
	// FormNone is used on the hour, where there is nothing to add.
	FormNone Form = iota
	// FormUntil counts down to the next hour: "60 - 10 = 50 minutes until 11 o'clock".
	FormUntil
	// FormAfter counts up from the hour: "40 minutes after 10 o'clock - 60 - 40 = 20".
	FormAfter
)

func (f Form) String() string {
	switch f {
	case FormUntil:
		return "until"
	case FormAfter:
		return "after"
	default:
		return "none"
	}
}

// SecondaryForm reports the secondary form used at minute. The secondary
// phrase always offers the complementary view of the primary one: past
// the hour it counts down, towards the hour it counts up.
func SecondaryForm(minute int) Form {
	switch {
	case minute <= 0:
		return FormNone
	case minute < 30:
		return FormUntil
	default:
		return FormAfter
	}
}

// templates holds both per-minute tables for one theme.
type templates struct {
	primary   [60]string
	secondary [60]string
}

func buildTemplates(t theme.ThemeData) templates {
	var (
		tag = t.Tag
		sym = t.Symbols

		h    = tag(theme.Hour, "{h}")
		hN   = tag(theme.Hour, "{h_}")
		past = tag(theme.On, " past ") + h
		to   = tag(theme.On, " to ") + hN

		mPast = tag(theme.Minute, "{M}") + tag(theme.On, " minutes past ") + h
		mTo   = tag(theme.Minute, "{M_}") + tag(theme.On, " minutes to ") + hN
	)

	sixty := tag(theme.High, "60 "+sym.MinusSign)
	after := strings.Join([]string{
		tag(theme.Minute, "{MM}"), tag(theme.On, "minutes after"),
		tag(theme.Hour, "{HH}"), tag(theme.On, "o'clock"), tag(theme.Off, sym.EmDash),
		sixty, tag(theme.Minute, "{MM}"),
		tag(theme.High, "="), tag(theme.Minute, "{MM_}"),
	}, " ")
	until := strings.Join([]string{
		sixty, tag(theme.Minute, "{MM}"),
		tag(theme.High, "="), tag(theme.Minute, "{MM_}"), tag(theme.On, "minutes until"),
		tag(theme.Hour, "{HH_}"), tag(theme.On, "o'clock"),
	}, " ")

	return templates{
		primary: [60]string{
			0:  tag(theme.Hour, "{H}") + " " + tag(theme.Minute, "o'clock"),
			1:  tag(theme.On, "Just gone") + " " + h + " " + tag(theme.Minute, "o'clock"),
			2:  mPast,
			3:  mPast,
			4:  mPast,
			5:  tag(theme.Minute, "Five") + past,
			6:  mPast,
			7:  mPast,
			8:  mPast,
			9:  mPast,
			10: tag(theme.Minute, "Ten") + past,
			11: mPast,
			12: mPast,
			13: mPast,
			14: mPast,
			15: tag(theme.Minute, "Quarter past") + " " + h,
			16: mPast,
			17: mPast,
			18: mPast,
			19: mPast,
			20: tag(theme.Minute, "Twenty") + past,
			21: mPast,
			22: mPast,
			23: mPast,
			24: mPast,
			25: tag(theme.Minute, "Twenty-five") + past,
			26: mPast,
			27: mPast,
			28: mPast,
			29: tag(theme.On, "Almost ") + tag(theme.Minute, "half past") + " " + h,
			30: tag(theme.Minute, "Half past") + " " + h,
			31: tag(theme.On, "Just gone ") + tag(theme.Minute, "half past") + " " + h,
			32: mTo,
			33: mTo,
			34: mTo,
			35: tag(theme.Minute, "Twenty-five") + to,
			36: mTo,
			37: mTo,
			38: mTo,
			39: mTo,
			40: tag(theme.Minute, "Twenty") + to,
			41: mTo,
			42: mTo,
			43: mTo,
			44: mTo,
			45: tag(theme.Minute, "Quarter to") + " " + hN,
			46: mTo,
			47: mTo,
			48: mTo,
			49: mTo,
			50: tag(theme.Minute, "Ten") + to,
			51: mTo,
			52: mTo,
			53: mTo,
			54: mTo,
			55: tag(theme.Minute, "Five") + to,
			56: mTo,
			57: mTo,
			58: mTo,
			59: tag(theme.On, "Almost") + " " + hN + " " + tag(theme.Minute, "o'clock"),
		},
		secondary: [60]string{
			"", until, until, until, until, until,
			until, until, until, until, until, until,
			until, until, until, until, until, until,
			until, until, until, until, until, until,
			until, until, until, until, until, until,
			after, after, after, after, after, after,
			after, after, after, after, after, after,
			after, after, after, after, after, after,
			after, after, after, after, after, after,
			after, after, after, after, after, after,
		},
	}
}
