package entity

import "time"

// Intent is a topical category the guide can recognize. The id is the stable
// key admins assign (snake_case); only enabled intents participate in
// matching.
type Intent struct {
	Id        string
	Label     string
	Keywords  []string
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
