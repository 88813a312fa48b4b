package llm

// Price is the USD cost per million tokens of a model.
type Price struct {
	Input  float64
	Output float64
}

// Cost returns the USD cost of one request.
func (p Price) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*p.Input + float64(outputTokens)*p.Output) / 1e6
}

// LookupPrice returns the price of a model ID as reported in responses.
func LookupPrice(model string) (Price, bool) {
	p, ok := prices[model]
	return p, ok
}

// EstimateCost sums the cost of requests whose model has a known price.
// unpriced counts the rest.
func EstimateCost(reqs []PricedRequest) (usd float64, unpriced int) {
	for _, r := range reqs {
		p, ok := LookupPrice(r.Model)
		if !ok {
			unpriced++
			continue
		}
		usd += p.Cost(r.InputTokens, r.OutputTokens)
	}
	return usd, unpriced
}

// PricedRequest is the part of a recorded request that pricing needs.
type PricedRequest struct {
	Model        string
	InputTokens  int
	OutputTokens int
}

// prices covers the models the short names above resolve to plus their
// common siblings.
var prices = map[string]Price{
	"claude-haiku-4-5":          {1, 5},
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-sonnet-4-20250514":  {3, 15},
	"claude-sonnet-4-5":         {3, 15},
	"claude-3-5-haiku-latest":   {0.8, 4},

	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5-mini":   {0.25, 2},

	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-pro":        {1.25, 10},

	"google/gemini-2.0-flash-001": {0.1, 0.4},
}
