package model

// Annotation is a labeled span over the rendered text. Start and End are
// rune offsets into the final output; End is exclusive. Spans with no
// content (End == Start) are never emitted.
type Annotation struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}
