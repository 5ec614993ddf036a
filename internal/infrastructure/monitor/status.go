package monitor

import "time"

type Status struct {
	Store       bool      `json:"store"`
	Redis       bool      `json:"redis"`
	Suggestions bool      `json:"suggestions"`
	LastCheck   time.Time `json:"last_check"`
}
