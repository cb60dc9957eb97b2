package models

import "time"

// Resume is the single current resume artifact. The schema allows at most one
// row. Data is populated only in the embedded storage mode; in disk mode the
// bytes live under the content root and Data stays nil.
type Resume struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	URL         string    `json:"url"`
	ContentType string    `json:"contentType"`
	Data        []byte    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
