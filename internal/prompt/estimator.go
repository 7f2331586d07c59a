package prompt

// EstimateTokens estimates the token count of a text string.
// Uses the rule of thumb of ~4 characters per token, rounded up.
// The estimate is deterministic and monotonic in input length; it is a
// planning heuristic, not a match for any specific tokenizer.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + 3) / 4
}

// totalTokens sums the measured token counts of a layer set.
func totalTokens(layers []PopulatedLayer) int {
	total := 0
	for _, l := range layers {
		total += l.TokenCount
	}
	return total
}
