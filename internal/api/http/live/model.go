package live

// == live solve stream ==
type LiveQuery struct {
	Exact     string `json:"exact"`
	Correct   string `json:"correct"`
	Incorrect string `json:"incorrect"`
}

type LiveResult struct {
	Words []string `json:"words"`
	Count int      `json:"count"`
	Error string   `json:"error,omitempty"`
}
