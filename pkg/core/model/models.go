package model

// PermitLevel is a rank in the CA Child Development Permit hierarchy.
// Levels form a strict total order from Assistant up to Program Director.
type PermitLevel string

const (
	LevelAssistant        PermitLevel = "Assistant"
	LevelAssociateTeacher PermitLevel = "Associate Teacher"
	LevelTeacher          PermitLevel = "Teacher"
	LevelMasterTeacher    PermitLevel = "Master Teacher"
	LevelSiteSupervisor   PermitLevel = "Site Supervisor"
	LevelProgramDirector  PermitLevel = "Program Director"
)

// permitRanks orders the permit hierarchy. Higher rank supervises lower.
var permitRanks = map[PermitLevel]int{
	LevelAssistant:        1,
	LevelAssociateTeacher: 2,
	LevelTeacher:          3,
	LevelMasterTeacher:    4,
	LevelSiteSupervisor:   5,
	LevelProgramDirector:  6,
}

// maxAssistants is how many Assistants each level can supervise at once.
var maxAssistants = map[PermitLevel]int{
	LevelAssistant:        0,
	LevelAssociateTeacher: 1,
	LevelTeacher:          2,
	LevelMasterTeacher:    3,
	LevelSiteSupervisor:   4,
	LevelProgramDirector:  4,
}

func (l PermitLevel) IsValid() bool {
	_, ok := permitRanks[l]
	return ok
}

// Rank returns the position of the level in the permit hierarchy, starting
// at 1 for Assistant. Unknown levels return 0.
func (l PermitLevel) Rank() int {
	return permitRanks[l]
}

// AtLeast reports whether l ranks at or above other in the hierarchy.
func (l PermitLevel) AtLeast(other PermitLevel) bool {
	return l.Rank() >= other.Rank()
}

// CanTeach reports whether the level may lead a group without supervision.
// Assistants must work under an Associate Teacher or above.
func (l PermitLevel) CanTeach() bool {
	return l.Rank() >= permitRanks[LevelAssociateTeacher]
}

// MaxAssistants returns how many Assistants the level can supervise
// simultaneously.
func (l PermitLevel) MaxAssistants() int {
	return maxAssistants[l]
}

// Levels returns all permit levels in ascending rank order.
func Levels() []PermitLevel {
	return []PermitLevel{
		LevelAssistant,
		LevelAssociateTeacher,
		LevelTeacher,
		LevelMasterTeacher,
		LevelSiteSupervisor,
		LevelProgramDirector,
	}
}

// StaffMember represents a member of the facility roster
type StaffMember struct {
	ID          string
	Name        string
	PermitLevel PermitLevel
	Available   bool
	HourlyRate  float64
	ECEUnits    int // completed ECE/CD units, used for aide qualification

	HasInfantSpecialization bool // 3+ units in infant care
	FullyQualified          bool // 12 units + 6 months experience

	IsDirector                bool
	DirectorCountsTowardRatio bool // director teaching vs admin only
}

// CountsTowardRatio reports whether the member can be counted against
// staffing ratios. Admin-only directors are excluded.
func (s StaffMember) CountsTowardRatio() bool {
	if s.IsDirector && !s.DirectorCountsTowardRatio {
		return false
	}
	return true
}

// EnhancedRatio is an alternative ratio an age group may run under when the
// roster has the required teacher/aide composition.
type EnhancedRatio struct {
	Ratio            int    `json:"ratio"` // children per staff member
	RequiresTeachers int    `json:"requiresTeachers"`
	RequiresAides    int    `json:"requiresAides"`
	AideMinECEUnits  int    `json:"aideMinECEUnits"`
	Description      string `json:"description,omitempty"`
}

// AgeGroup represents an age-group ratio configuration
type AgeGroup struct {
	ID             string
	Name           string
	MinAgeMonths   int
	MaxAgeMonths   int
	Ratio          int // children per one staff member, always > 0
	EnhancedRatios []EnhancedRatio
}

// IsInfant reports whether the group falls under infant licensing rules.
func (g AgeGroup) IsInfant() bool {
	return g.MinAgeMonths < 18
}

// Enrollment is one line of an ephemeral calculation request: how many
// children are enrolled in a given age group. Never persisted.
type Enrollment struct {
	AgeGroupID string
	Count      int
}
