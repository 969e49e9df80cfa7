package records

// SkillCategory 技能分類。
type SkillCategory string

const (
	CategoryFrontend      SkillCategory = "frontend"
	CategoryBackend       SkillCategory = "backend"
	CategoryDatabase      SkillCategory = "database"
	CategoryDevOps        SkillCategory = "devops"
	CategoryMobile        SkillCategory = "mobile"
	CategoryAIML          SkillCategory = "ai-ml"
	CategoryAlgorithms    SkillCategory = "algorithms"
	CategorySystemDesign  SkillCategory = "system-design"
	CategoryDataScience   SkillCategory = "data-science"
	CategoryCybersecurity SkillCategory = "cybersecurity"
	CategoryTools         SkillCategory = "tools"
	CategorySoftSkills    SkillCategory = "soft-skills"
	CategoryOther         SkillCategory = "other"
)

// SkillEntryCategories 是輸入技能紀錄時可選的 13 個分類。
// 雷達圖使用另一組較小的分類，見 charts.RadarCategories。
var SkillEntryCategories = []SkillCategory{
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryDevOps,
	CategoryMobile,
	CategoryAIML,
	CategoryAlgorithms,
	CategorySystemDesign,
	CategoryDataScience,
	CategoryCybersecurity,
	CategoryTools,
	CategorySoftSkills,
	CategoryOther,
}

// Valid 檢查是否為可輸入的分類。
func (c SkillCategory) Valid() bool {
	for _, v := range SkillEntryCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Difficulty 技能練習難度。
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// SkillLog 單次技能練習紀錄；TimeSpent 單位為分鐘。
type SkillLog struct {
	ID         string        `json:"id,omitempty"`
	Date       string        `json:"date"`
	Category   SkillCategory `json:"category"`
	TimeSpent  float64       `json:"timeSpent"`
	Difficulty Difficulty    `json:"difficulty"`
	Rating     *float64      `json:"rating,omitempty"`
	Notes      string        `json:"notes,omitempty"`
}
