package analysis

// Phases returns the static stroke-phase markers used to annotate the
// aligned timeline. The spans are fixed fractions of stroke progress and
// do not depend on input.
func Phases() []PhaseMarker {
	return []PhaseMarker{
		{Name: "Backswing", StartPercent: 0, EndPercent: 30, Color: "#3498db"},
		{Name: "Forward Swing", StartPercent: 30, EndPercent: 55, Color: "#2ecc71"},
		{Name: "Contact", StartPercent: 55, EndPercent: 65, Color: "#e74c3c"},
		{Name: "Follow-through", StartPercent: 65, EndPercent: 100, Color: "#9b59b6"},
	}
}
