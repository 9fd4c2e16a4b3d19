package domain

import "time"

// Status enumerates lifecycle states for complaints. The state machine is
// deliberately permissive: any authorized non-citizen actor may move a
// complaint from any status to any other, including re-opening a resolved
// or rejected one.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusRejected   Status = "REJECTED"
)

// Valid reports membership in the closed status vocabulary.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// Category is one of the fixed request topics, used both for routing and
// for staff access scoping.
type Category string

const (
	// CategoryAll is a scope sentinel, never a complaint category.
	CategoryAll Category = "ALL"

	CategoryInfrastructure Category = "infrastructure"
	CategoryHealthcare     Category = "healthcare"
	CategoryEducation      Category = "education"
	CategorySecurity       Category = "security"
	CategoryUtilities      Category = "utilities"
	CategoryLegal          Category = "legal"
)

// Categories returns the closed category enumeration in report order.
func Categories() []Category {
	return []Category{
		CategoryInfrastructure,
		CategoryHealthcare,
		CategoryEducation,
		CategorySecurity,
		CategoryUtilities,
		CategoryLegal,
	}
}

// Valid reports whether c names a real complaint category (the ALL sentinel
// is valid only as a scope grant).
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Area is one of the fixed named localities served by the office.
type Area string

const (
	AreaQanatarCenter    Area = "qanatar_center"
	AreaVillageShalaqan  Area = "village_shalaqan"
	AreaVillageMonira    Area = "village_monira"
	AreaVillageAbughait  Area = "village_abughait"
	AreaVillageKharqania Area = "village_kharqania"
	AreaVillageBassous   Area = "village_bassous"
	AreaVillageBarada    Area = "village_barada"
)

// Areas returns the closed area enumeration in report order.
func Areas() []Area {
	return []Area{
		AreaQanatarCenter,
		AreaVillageShalaqan,
		AreaVillageMonira,
		AreaVillageAbughait,
		AreaVillageKharqania,
		AreaVillageBassous,
		AreaVillageBarada,
	}
}

// Valid reports membership in the closed area vocabulary.
func (a Area) Valid() bool {
	for _, known := range Areas() {
		if a == known {
			return true
		}
	}
	return false
}

// MessageOrigin distinguishes human correspondence from assistant-drafted
// text.
type MessageOrigin string

const (
	OriginHuman      MessageOrigin = "HUMAN"
	OriginAIAssisted MessageOrigin = "AI_ASSISTED"
)

// Message is one entry of a complaint's correspondence thread. Immutable
// once appended.
type Message struct {
	ID         string
	SenderID   string
	SenderName string
	Text       string
	Origin     MessageOrigin
	CreatedAt  time.Time
}

// Complaint is the aggregate for citizen requests. The thread is
// append-only and CreatedAt is immutable.
type Complaint struct {
	ID             string
	SubmitterID    string
	SubmitterName  string
	SubmitterPhone string
	Title          string
	Category       Category
	Description    string
	Status         Status
	Area           Area
	Address        string
	AISummary      string
	CreatedAt      time.Time
	ResolvedAt     *time.Time
	Thread         []Message
}
