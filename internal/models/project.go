package models

import "time"

type Project struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Problem   string    `json:"problem"`
	Solution  string    `json:"solution"`
	Tech      []string  `json:"tech"`
	Github    *string   `json:"github,omitempty"`
	Demo      *string   `json:"demo,omitempty"`
	Features  []string  `json:"features"`
	Featured  bool      `json:"featured"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
