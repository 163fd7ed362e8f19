package geometry // geometry implements pure seat-placement math for curved sections

import "strings"

// RowLabel converts a zero-based row index to an alphabetic label like A, B, AA.
func RowLabel(i int) string { // begin function to compute row label
	if i < 0 { // negative indices are invalid
		return "" // return empty string for invalid index
	}
	res := []rune{} // accumulate runes for the label
	for { // loop until all digits consumed
		rem := i % 26                    // compute remainder in base 26
		res = append(res, rune('A'+rem)) // append current letter
		i = i/26 - 1                     // reduce i for next digit
		if i < 0 { // break when no more digits
			break // exit loop
		}
	} // end for
	for j, k := 0, len(res)-1; j < k; j, k = j+1, k-1 { // reverse the runes to build the label
		res[j], res[k] = res[k], res[j] // swap positions
	}
	return string(res) // convert rune slice to string
}

// RowIndex converts a row label like A or AA into its zero-based index.
func RowIndex(label string) (int, bool) { // begin function
	s := strings.ToUpper(strings.TrimSpace(label)) // normalize the label to upper case
	if s == "" { // empty label is invalid
		return -1, false // return false indicator
	}
	n := 0 // accumulator for numeric value
	for i := 0; i < len(s); i++ { // iterate over characters
		ch := s[i] // current byte
		if ch < 'A' || ch > 'Z' { // only ASCII A-Z are valid
			return -1, false // return invalid when encountering other letters
		}
		n = n*26 + int(ch-'A'+1) // accumulate base26 representation
	}
	return n - 1, true // return zero-based index and true
}
