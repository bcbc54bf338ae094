package store

import "time"

// Interaction kinds.
const (
	KindHover   = "hover"
	KindSection = "section"
)

type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"timestamp"`
}

type Interaction struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Target    string    `json:"target"`
	HashedIP  string    `json:"-"`
	CreatedAt time.Time `json:"timestamp"`
}

type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	Delivered bool      `json:"delivered"`
	CreatedAt time.Time `json:"created_at"`
}

// TargetCount is how often one target was interacted with.
type TargetCount struct {
	Target string `json:"target"`
	Count  int64  `json:"count"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors       int64         `json:"total_visitors"`
	UniqueVisitors      int64         `json:"unique_visitors"`
	VisitorsToday       int64         `json:"visitors_today"`
	VisitorsThisWeek    int64         `json:"visitors_this_week"`
	TotalMessages       int64         `json:"total_messages"`
	UndeliveredMessages int64         `json:"undelivered_messages"`
	TopProjects         []TargetCount `json:"top_projects"`
	SectionViews        []TargetCount `json:"section_views"`
	RecentVisitors      []Visit       `json:"recent_visitors"`
}
