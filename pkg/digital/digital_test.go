package digital

import (
	"strings"
	"testing"
	"time"

	"github.com/go-drift/bkclock/pkg/markup"
	"github.com/go-drift/bkclock/pkg/theme"
)

func TestFormat24(t *testing.T) {
	th := theme.DefaultTheme()
	f := NewFormat24(th)

	tests := []struct {
		h, m, s int
		want    string
	}{
		{0, 0, 0, "00:00:00"},
		{9, 5, 7, "09:05:07"},
		{23, 59, 59, "23:59:59"},
	}
	for _, tt := range tests {
		if got := markup.Strip(f.Format(tt.h, tt.m, tt.s)); got != tt.want {
			t.Errorf("Format(%d, %d, %d) = %q, want %q", tt.h, tt.m, tt.s, got, tt.want)
		}
	}
}

func TestFormat24_Blink(t *testing.T) {
	th := theme.DefaultTheme()
	f := NewFormat24(th)
	on := th.Tag(theme.On, ":")
	off := th.Tag(theme.Off, ":")

	even := f.Format(10, 20, 30)
	if strings.Count(even, on) != 2 || strings.Contains(even, off) {
		t.Errorf("even second should use the on color: %q", even)
	}
	odd := f.Format(10, 20, 31)
	if strings.Count(odd, off) != 2 || strings.Contains(odd, on) {
		t.Errorf("odd second should use the off color: %q", odd)
	}
}

func TestFormat12(t *testing.T) {
	f := NewFormat12(theme.DefaultTheme())

	tests := []struct {
		h, m int
		want string
	}{
		{0, 0, "12:00am"},
		{0, 30, "12:30am"},
		{1, 5, "1:05am"},
		{11, 59, "11:59am"},
		{12, 0, "12:00pm"},
		{13, 7, "1:07pm"},
		{23, 59, "11:59pm"},
	}
	for _, tt := range tests {
		if got := markup.Strip(f.Format(tt.h, tt.m, 0)); got != tt.want {
			t.Errorf("Format(%d, %d) = %q, want %q", tt.h, tt.m, got, tt.want)
		}
	}
}

func TestFormat12_SuffixColor(t *testing.T) {
	th := theme.DefaultTheme()
	got := NewFormat12(th).Format(15, 0, 1)
	if !strings.Contains(got, th.Tag(theme.AmPm, "pm")) {
		t.Errorf("suffix not tagged with the ampm color: %q", got)
	}
	if !strings.Contains(got, th.Tag(theme.Off, ":")) {
		t.Errorf("odd second should use the off color: %q", got)
	}
}

func TestDateDisplay(t *testing.T) {
	d := NewDateDisplay(theme.DefaultTheme(), 20)

	got := d.Update(Date{Year: 2024, Month: time.March, Day: 5}, false)
	want := "Tuesday  5 March, 2024\n05/03/24"
	if plain := markup.Strip(got); plain != want {
		t.Errorf("Update() = %q, want %q", plain, want)
	}
	if !strings.Contains(got, "[size=15]") {
		t.Errorf("small line should use size 15: %q", got)
	}
}

func TestDateDisplay_SkipsSameDate(t *testing.T) {
	d := NewDateDisplay(theme.DefaultTheme(), 20)
	day := Date{Year: 2024, Month: time.December, Day: 31}

	d.Update(day, false)
	d.Update(day, false)
	if d.Builds() != 1 {
		t.Errorf("Builds() = %d after repeated date, want 1", d.Builds())
	}

	d.Update(day, true)
	if d.Builds() != 2 {
		t.Errorf("Builds() = %d after forced update, want 2", d.Builds())
	}

	d.Update(Date{Year: 2025, Month: time.January, Day: 1}, false)
	if d.Builds() != 3 {
		t.Errorf("Builds() = %d after date change, want 3", d.Builds())
	}
	if !strings.HasPrefix(markup.Strip(d.Text()), "Wednesday  1 January, 2025") {
		t.Errorf("Text() = %q", markup.Strip(d.Text()))
	}
}

func TestDateDisplay_SetFontSize(t *testing.T) {
	d := NewDateDisplay(theme.DefaultTheme(), 20)
	d.SetFontSize(40)
	if d.Builds() != 0 {
		t.Fatal("SetFontSize before any date should not build")
	}

	d.Update(Date{Year: 2024, Month: time.June, Day: 1}, false)
	d.SetFontSize(40)
	if d.Builds() != 2 {
		t.Errorf("Builds() = %d, want 2", d.Builds())
	}
	if !strings.Contains(d.Text(), "[size=30]") {
		t.Errorf("resized text = %q", d.Text())
	}
}

func TestDateDisplay_Separator(t *testing.T) {
	th := theme.DefaultTheme()
	sym := th.Symbols
	sym.DateSeparator = "."
	th = th.CopyWith(nil, &sym)

	d := NewDateDisplay(th, 10)
	got := markup.Strip(d.Update(Date{Year: 1999, Month: time.July, Day: 14}, false))
	if !strings.HasSuffix(got, "14.07.99") {
		t.Errorf("Update() = %q, want suffix 14.07.99", got)
	}
}
