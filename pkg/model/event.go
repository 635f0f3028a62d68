package model

import "time"

// RegistryEvent is published after a token factory message commits.
type RegistryEvent struct {
	Method     string            `json:"method"`
	Sender     string            `json:"sender"`
	Denom      string            `json:"denom,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Time       time.Time         `json:"time"`
}
