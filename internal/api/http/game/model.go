package game

// == general letters ==
type FindLettersRequest struct {
	Exact     string `json:"exact" example:"c_t"`
	Correct   string `json:"correct" example:"a"`
	Incorrect string `json:"incorrect" example:"xz"`
}

type FindLettersResponse struct {
	Words  []string `json:"words"`
	Count  int      `json:"count"`
	Cached bool     `json:"cached"`
}
