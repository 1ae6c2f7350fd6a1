package faqdoc

// FAQPage is a schema.org FAQPage object in JSON-LD form, ready for
// serialization with encoding/json and embedding by the hosting page.
type FAQPage struct {
	Context    string           `json:"@context"`
	Type       string           `json:"@type"`
	MainEntity []SchemaQuestion `json:"mainEntity"`
}

// SchemaQuestion is a schema.org Question container.
type SchemaQuestion struct {
	Type           string       `json:"@type"`
	Name           string       `json:"name"`
	AcceptedAnswer SchemaAnswer `json:"acceptedAnswer"`
}

// SchemaAnswer is a schema.org Answer container.
type SchemaAnswer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// NewFAQPage maps extracted items 1:1 into a FAQPage object.
// Pages with fewer than MinSchemaItems items are not eligible for FAQ
// structured data; the nil return (not an empty object) signals that.
func NewFAQPage(items []FAQItem) *FAQPage {
	if len(items) < MinSchemaItems {
		return nil
	}

	entities := make([]SchemaQuestion, 0, len(items))
	for _, item := range items {
		entities = append(entities, SchemaQuestion{
			Type: "Question",
			Name: item.Question,
			AcceptedAnswer: SchemaAnswer{
				Type: "Answer",
				Text: item.Answer,
			},
		})
	}

	return &FAQPage{
		Context:    "https://schema.org",
		Type:       "FAQPage",
		MainEntity: entities,
	}
}
