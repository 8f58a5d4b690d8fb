package match

// Distance returns the edit distance between a and b, counted in runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	// row[j] is the distance between the current prefix of ra and rb[:j].
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i

		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			next := min(row[j]+1, row[j-1]+1, diag+cost)
			diag, row[j] = row[j], next
		}
	}

	return row[len(rb)]
}

// Similarity scores two identifiers between 0 and 1 after folding case and
// underscores; 1 means they fold to the same word sequence.
func Similarity(a, b string) float64 {
	fa, fb := []rune(fold(a)), []rune(fold(b))

	longest := max(len(fa), len(fb))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(string(fa), string(fb)))/float64(longest)
}
