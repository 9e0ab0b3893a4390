package entities

// Metadata this struct contains extra information about a report that leaves the explorer
// + City: city which belongs the data
// + Type: type of the report, e.g. time-report
// + Stage: ID of the run that generated the report
// + Message: human readable description of the filter applied
type Metadata struct {
	City    string `json:"city"`
	Type    string `json:"type"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

func NewMetadata(city string, dataType string, stage string, message string) Metadata {
	return Metadata{
		City:    city,
		Type:    dataType,
		Stage:   stage,
		Message: message,
	}
}
