package reservation

// ManagerCandidate is a manager returned by the availability lookup.
type ManagerCandidate struct {
	UUID          string  `json:"uuid"`
	Name          string  `json:"name"`
	ProfileImage  string  `json:"profileImage,omitempty"`
	AverageRate   float64 `json:"averageRate"`
	IntroduceText string  `json:"introduceText,omitempty"`
}

type ManagerQuery struct {
	Address       string
	StartTime     string
	EndTime       string
	ManagerChoose bool
}
