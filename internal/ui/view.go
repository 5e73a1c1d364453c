package ui

import "fmt"

// View is one of the four pages reachable from the navigation control
type View int

const (
	WordOfDay View = iota
	WordDetails
	Quiz
	ProgressTracker
)

var viewLabels = map[View]string{
	WordOfDay:       "Word of the Day",
	WordDetails:     "Word Details",
	Quiz:            "Quiz",
	ProgressTracker: "Progress Tracker",
}

// Views returns all views in navigation order
func Views() []View {
	return []View{WordOfDay, WordDetails, Quiz, ProgressTracker}
}

// Labels returns the navigation labels in order
func Labels() []string {
	views := Views()
	labels := make([]string, len(views))
	for i, v := range views {
		labels[i] = v.String()
	}
	return labels
}

func (v View) String() string {
	if label, ok := viewLabels[v]; ok {
		return label
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// ParseView maps a navigation label back to its view
func ParseView(label string) (View, error) {
	for _, v := range Views() {
		if v.String() == label {
			return v, nil
		}
	}
	return WordOfDay, fmt.Errorf("unknown view: %q", label)
}

// title is the page header, as shown above each view
func (v View) title() string {
	switch v {
	case WordOfDay:
		return "🌟 Word of the Day"
	case WordDetails:
		return "🔍 Word Details"
	case Quiz:
		return "📝 Take a Quiz"
	case ProgressTracker:
		return "📈 Your Progress"
	}
	return v.String()
}
