package dedupe

import "fmt"

// NewCode returns the smallest unused code for datePrefix (YYYYMMDD): the
// prefix plus a 4-digit sequence starting at 1. Once 1-9999 are all taken the
// sequence widens to 6 digits, continuing from 10000. The caller must add
// every returned code to taken before asking for the next one.
func NewCode(datePrefix string, taken map[string]struct{}) string {
	for n := 1; n <= 9999; n++ {
		code := fmt.Sprintf("%s%04d", datePrefix, n)
		if _, ok := taken[code]; !ok {
			return code
		}
	}
	for n := 10000; ; n++ {
		code := fmt.Sprintf("%s%06d", datePrefix, n)
		if _, ok := taken[code]; !ok {
			return code
		}
	}
}
