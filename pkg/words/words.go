// Package words names the integers 0 through 59 in English.
package words

// Pair holds the sentence-initial and mid-sentence spellings of a number.
type Pair struct {
	Capitalized string
	Lowercase   string
}

// Max is the largest number with a name.
const Max = 59

var table = [Max + 1]Pair{
	{"Zero", "zero"},
	{"One", "one"},
	{"Two", "two"},
	{"Three", "three"},
	{"Four", "four"},
	{"Five", "five"},
	{"Six", "six"},
	{"Seven", "seven"},
	{"Eight", "eight"},
	{"Nine", "nine"},
	{"Ten", "ten"},
	{"Eleven", "eleven"},
	{"Twelve", "twelve"},
	{"Thirteen", "thirteen"},
	{"Fourteen", "fourteen"},
	{"Fifteen", "fifteen"},
	{"Sixteen", "sixteen"},
	{"Seventeen", "seventeen"},
	{"Eighteen", "eighteen"},
	{"Nineteen", "nineteen"},
	{"Twenty", "twenty"},
	{"Twenty-one", "twenty-one"},
	{"Twenty-two", "twenty-two"},
	{"Twenty-three", "twenty-three"},
	{"Twenty-four", "twenty-four"},
	{"Twenty-five", "twenty-five"},
	{"Twenty-six", "twenty-six"},
	{"Twenty-seven", "twenty-seven"},
	{"Twenty-eight", "twenty-eight"},
	{"Twenty-nine", "twenty-nine"},
	{"Thirty", "thirty"},
	{"Thirty-one", "thirty-one"},
	{"Thirty-two", "thirty-two"},
	{"Thirty-three", "thirty-three"},
	{"Thirty-four", "thirty-four"},
	{"Thirty-five", "thirty-five"},
	{"Thirty-six", "thirty-six"},
	{"Thirty-seven", "thirty-seven"},
	{"Thirty-eight", "thirty-eight"},
	{"Thirty-nine", "thirty-nine"},
	{"Forty", "forty"},
	{"Forty-one", "forty-one"},
	{"Forty-two", "forty-two"},
	{"Forty-three", "forty-three"},
	{"Forty-four", "forty-four"},
	{"Forty-five", "forty-five"},
	{"Forty-six", "forty-six"},
	{"Forty-seven", "forty-seven"},
	{"Forty-eight", "forty-eight"},
	{"Forty-nine", "forty-nine"},
	{"Fifty", "fifty"},
	{"Fifty-one", "fifty-one"},
	{"Fifty-two", "fifty-two"},
	{"Fifty-three", "fifty-three"},
	{"Fifty-four", "fifty-four"},
	{"Fifty-five", "fifty-five"},
	{"Fifty-six", "fifty-six"},
	{"Fifty-seven", "fifty-seven"},
	{"Fifty-eight", "fifty-eight"},
	{"Fifty-nine", "fifty-nine"},
}

// Of returns the names of n. n must be in [0, Max]; callers reduce hours
// and clamp minutes before asking.
func Of(n int) Pair {
	return table[n]
}
