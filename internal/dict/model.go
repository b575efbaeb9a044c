package dict

import "time"

type Snapshot struct {
	Version   string    `json:"version"`
	Source    string    `json:"source"`
	Words     []string  `json:"words"`
	UpdatedAt time.Time `json:"updatedAt"`
}
