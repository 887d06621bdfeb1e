package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// DefaultPort is the port the Programa Chamados HTTP server listens on.
	DefaultPort uint = 8000

	// DefaultRuleName identifies the rule managed by this tool. Lookups and
	// updates key on it, so changing it means a new rule will be created.
	DefaultRuleName = "Programa Chamados HTTP"

	// DefaultRuleDescription is set when a rule is created and never touched
	// again afterwards.
	DefaultRuleDescription = "Allows network access to the Programa Chamados server"
)

// ErrRuleNotFound is the normal outcome of looking up a rule name that was
// never created. It is not an I/O failure; genuine lookup failures are
// returned as-is.
var ErrRuleNotFound = errors.New("firewall rule not found")

type (
	Direction string
	Action    string
	Protocol  string
	Profile   string
	Profiles  []Profile
)

const (
	DirectionInbound  Direction = "Inbound"
	DirectionOutbound Direction = "Outbound"
)

const (
	ActionAllow Action = "Allow"
	ActionBlock Action = "Block"
)

const (
	ProtocolTCP Protocol = "TCP"
	ProtocolUDP Protocol = "UDP"
)

const (
	ProfileDomain  Profile = "Domain"
	ProfilePrivate Profile = "Private"
	ProfilePublic  Profile = "Public"
)

// AllProfiles covers every network profile the host can be on, so the rule
// applies no matter how the current network is classified.
func AllProfiles() Profiles {
	return Profiles{ProfileDomain, ProfilePrivate, ProfilePublic}
}

type (
	Rule struct {
		ID          uuid.UUID `gorm:"primaryKey" json:"id"`
		DisplayName string    `gorm:"uniqueIndex;not null" json:"display_name"`
		Port        uint      `json:"port"`
		Direction   Direction `json:"direction"`
		Action      Action    `json:"action"`
		Protocol    Protocol  `json:"protocol"`
		Profiles    Profiles  `json:"profiles"`
		Description string    `json:"description"`
		Enabled     bool      `json:"enabled"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"-"`
	}

	EnsureParams struct {
		Port     uint   `json:"port"`
		RuleName string `json:"rule_name" validate:"required"`
	}

	EnsureResult struct {
		Rule    *Rule         `json:"rule"`
		Outcome EnsureOutcome `json:"outcome"`
	}

	EnsureOutcome string
)

const (
	EnsureOutcomeCreated EnsureOutcome = "CREATED"
	EnsureOutcomeUpdated EnsureOutcome = "UPDATED"
)

func (p Profile) String() string {
	return string(p)
}

func (p Profiles) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Profiles) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Profiles: type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, p)
}
