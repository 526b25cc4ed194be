package domain

// Debate is a debate topic with its two position labels. Debates are
// independent entities; streams reference them through an association.
type Debate struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	LeftPosition  string `json:"leftPosition"`
	RightPosition string `json:"rightPosition"`
	Active        bool   `json:"active"`
}

// Sides a flow segment can belong to.
const (
	SideLeft  = "left"
	SideRight = "right"
	SideBoth  = "both"
)

// FlowSegment is one scripted agenda item of a debate. Duration is in seconds.
type FlowSegment struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Side     string `json:"side"`
}
