package screen

// Source identifies what produced a display name.
type Source string

const (
	SourceExplicit Source = "explicit"
	SourceMarker   Source = "marker"
	SourceAuto     Source = "auto"
)

// NameChange describes a single display name transition.
type NameChange struct {
	Num      int    `json:"num"`
	Previous string `json:"previous,omitempty"`
	HadName  bool   `json:"hadName"`
	Current  string `json:"current"`
	Source   Source `json:"source"`
}
