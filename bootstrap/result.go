package bootstrap

const ResultFormatVersion = "0.1"

// Outcome says what a bootstrap pass did to the target database.
type Outcome string

const (
	// OutcomeCreated means the database was missing and has been created.
	OutcomeCreated Outcome = "created"
	// OutcomeAlreadyExists means the database was already present and was
	// left untouched.
	OutcomeAlreadyExists Outcome = "already-exists"
	// OutcomeDroppedAndCreated means an existing database was dropped and
	// recreated from scratch.
	OutcomeDroppedAndCreated Outcome = "dropped-and-created"
	// OutcomeMissing means the database does not exist and creation was
	// switched off.
	OutcomeMissing Outcome = "missing"
)

// Result aggregates what a bootstrap pass found and did in a common format
// across targets
type Result struct {
	ResultFormatVersion string `json:"ResultFormatVersion"`

	RunnerConfig RunnerConfig `json:"RunnerConfig"`

	Existed bool    `json:"Existed"`
	Outcome Outcome `json:"Outcome"`

	StartTime      int64 `json:"StartTime"`
	EndTime        int64 `json:"EndTime"`
	DurationMillis int64 `json:"DurationMillis"`
}
