package response

import "time"

type AlertResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	RaisedAt  time.Time `json:"raised_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
