package member

import "strings"

// Stance 委员的基线政策倾向。
type Stance string

const (
	StanceHawk    Stance = "hawk"
	StanceDove    Stance = "dove"
	StanceNeutral Stance = "neutral"
)

// Role 委员会内的职务。
type Role string

const (
	RoleChair                Role = "Chair"
	RoleViceChair            Role = "Vice Chair"
	RoleViceChairSupervision Role = "Vice Chair for Supervision"
	RoleGovernor             Role = "Governor"
	RolePresident            Role = "Reserve Bank President"
)

type CommunicationStyle string

const (
	StyleMeasured   CommunicationStyle = "measured"
	StyleDirect     CommunicationStyle = "direct"
	StyleAcademic   CommunicationStyle = "academic"
	StyleDataDriven CommunicationStyle = "data-driven"
	StylePragmatic  CommunicationStyle = "pragmatic"
)

// Member 描述一位委员：人设、基线倾向与投票资格。
type Member struct {
	ID                 string             `mapstructure:"id" yaml:"id" json:"id"`
	Name               string             `mapstructure:"name" yaml:"name" json:"name"`
	Role               Role               `mapstructure:"role" yaml:"role" json:"role"`
	Bank               string             `mapstructure:"bank" yaml:"bank" json:"bank"`
	Stance             Stance             `mapstructure:"stance" yaml:"stance" json:"stance"`
	Priorities         []string           `mapstructure:"priorities" yaml:"priorities" json:"priorities"`
	Style              CommunicationStyle `mapstructure:"style" yaml:"style" json:"style"`
	VotingYears        []int              `mapstructure:"voting_years" yaml:"voting_years" json:"votingYears,omitempty"`
	HistoricalDissents int                `mapstructure:"historical_dissents" yaml:"historical_dissents" json:"historicalDissents"`
	KeyConcerns        []string           `mapstructure:"key_concerns" yaml:"key_concerns" json:"keyConcerns,omitempty"`
	NotableQuotes      []string           `mapstructure:"notable_quotes" yaml:"notable_quotes" json:"notableQuotes,omitempty"`
	Background         string             `mapstructure:"background" yaml:"background" json:"background,omitempty"`
	ExpertiseAreas     []string           `mapstructure:"expertise_areas" yaml:"expertise_areas" json:"expertiseAreas,omitempty"`
}

// IsGovernor reports whether the member sits on the Board of Governors.
func (m Member) IsGovernor() bool {
	switch m.Role {
	case RoleChair, RoleViceChair, RoleViceChairSupervision, RoleGovernor:
		return true
	}
	return false
}

// VotesIn reports voting eligibility for the given year.
// 理事会成员常年有票；纽约联储主席常年有票；其余地区联储主席按年份轮换。
func (m Member) VotesIn(year int) bool {
	if m.IsGovernor() {
		return true
	}
	if strings.Contains(m.Bank, "New York") {
		return true
	}
	for _, y := range m.VotingYears {
		if y == year {
			return true
		}
	}
	return false
}

// DisplayTitle 渲染会议纪要里使用的称谓。
func (m Member) DisplayTitle() string {
	if m.IsGovernor() {
		return string(m.Role) + " " + m.Name
	}
	return m.Name + ", President of the " + m.Bank
}

func (s Stance) Valid() bool {
	switch s {
	case StanceHawk, StanceDove, StanceNeutral:
		return true
	}
	return false
}
