package model

import "time"

// 成员审核状态。removed 为终态，不提供恢复转换。
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusExecutive = "executive"
	StatusRemoved   = "removed"
)

// 生命周期事件名，同时作为 outbox 的 event_type
const (
	EventApprove = "approve"
	EventPromote = "promote"
	EventRemove  = "remove"
)

// transitions 显式迁移表：任何界面都只能按表写状态
var transitions = map[string]map[string]string{
	StatusPending: {
		StatusApproved: EventApprove,
	},
	StatusApproved: {
		StatusExecutive: EventPromote,
		StatusRemoved:   EventRemove,
	},
	StatusExecutive: {
		StatusRemoved: EventRemove,
	},
}

// TransitionEvent 返回 from→to 对应的事件名；不允许的迁移返回 ok=false。
func TransitionEvent(from, to string) (string, bool) {
	event, ok := transitions[from][to]
	return event, ok
}

// ActiveStatuses 公开站点可见的状态
func ActiveStatuses() []string {
	return []string{StatusApproved, StatusExecutive}
}

// MemberProfile 入会申请人的档案。email 是自然主键；
// 移除只翻转 status，从不删行。
type MemberProfile struct {
	ID     uint64 `gorm:"primaryKey"`
	UserID uint64 `gorm:"index;not null"`
	Name   string `gorm:"size:100;not null"`
	Email  string `gorm:"uniqueIndex;size:64;not null"`
	Phone  string `gorm:"size:32"`

	Github     string `gorm:"size:100"`
	Linkedin   string `gorm:"size:100"`
	Codeforces string `gorm:"size:64"`
	Codechef   string `gorm:"size:64"`
	Hackerrank string `gorm:"size:64"`
	Toph       string `gorm:"size:64"`

	Session   string `gorm:"size:32"`
	Specialty string `gorm:"size:64"`

	// 晋升参考指标，仅展示，不做硬性门槛
	Rating        int `gorm:"default:0"`
	Contributions int `gorm:"default:0"`

	Status   string `gorm:"size:16;not null;default:pending;index"`
	ImageURL string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MembershipOutbox 生命周期事件表，和状态变更同事务写入，
// 由 relayer 异步投递到 kafka，兼作审计记录。
type MembershipOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:16;not null"` // approve / promote / remove
	MemberID  uint64 `gorm:"not null;index"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MembershipOutbox) TableName() string { return "membership_outbox" }
