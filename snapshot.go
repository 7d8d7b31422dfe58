package graphname

// Snapshot is a point-in-time copy of a Selection.
type Snapshot struct {
	Name        string           `json:"name" yaml:"name"`
	View        string           `json:"view" yaml:"view"`
	Initial     string           `json:"initial" yaml:"initial"`
	Subscribers SubscriberCounts `json:"subscribers" yaml:"subscribers"`
}

// SubscriberCounts reports active subscriptions on the cell and the view.
type SubscriberCounts struct {
	Name int `json:"name" yaml:"name"`
	View int `json:"view" yaml:"view"`
}

// Snapshot captures the current values and subscriber counts.
func (s *Selection) Snapshot() Snapshot {
	return Snapshot{
		Name:    s.Name.Get(),
		View:    s.View.Get(),
		Initial: s.initial,
		Subscribers: SubscriberCounts{
			Name: s.Name.Subscribers(),
			View: s.View.Subscribers(),
		},
	}
}
