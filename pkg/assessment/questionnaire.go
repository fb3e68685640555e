package assessment

// Option is one selectable answer for a question. Score runs 0..4.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Question is a single readiness question in a category
type Question struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Prompt   string   `json:"prompt"`
	Options  []Option `json:"options"`
}

// Step groups questions for one screen of the questionnaire
type Step struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Questionnaire is the full readiness assessment form
type Questionnaire struct {
	Steps []Step `json:"steps"`
}

// MaxOptionScore is the top score any option can carry
const MaxOptionScore = 4

// Assessment categories
const (
	CategoryStrategy   = "strategy"
	CategoryData       = "data"
	CategoryTalent     = "talent"
	CategoryGovernance = "governance"
	CategoryTechnology = "technology"
)

func scaleOptions(labels [5]string) []Option {
	values := [5]string{"none", "exploring", "piloting", "operational", "advanced"}
	options := make([]Option, 0, 5)
	for i, label := range labels {
		options = append(options, Option{Value: values[i], Label: label, Score: i})
	}
	return options
}

// DefaultQuestionnaire returns the built-in readiness questionnaire.
func DefaultQuestionnaire() Questionnaire {
	return Questionnaire{
		Steps: []Step{
			{
				Title: "Strategy and Leadership",
				Questions: []Question{
					{
						ID:       "strategy_vision",
						Category: CategoryStrategy,
						Prompt:   "Does your organization have a defined AI strategy?",
						Options: scaleOptions([5]string{
							"No strategy exists",
							"Informal discussions only",
							"Draft strategy under review",
							"Approved strategy with owners",
							"Strategy with budget and quarterly review",
						}),
					},
					{
						ID:       "strategy_sponsorship",
						Category: CategoryStrategy,
						Prompt:   "How engaged is executive leadership with AI initiatives?",
						Options: scaleOptions([5]string{
							"Not a leadership topic",
							"Occasional interest",
							"A named executive sponsor",
							"Sponsor with dedicated budget",
							"Board-level accountability",
						}),
					},
				},
			},
			{
				Title: "Data Foundations",
				Questions: []Question{
					{
						ID:       "data_quality",
						Category: CategoryData,
						Prompt:   "How would you rate the quality and accessibility of your core business data?",
						Options: scaleOptions([5]string{
							"Scattered and unreliable",
							"Siloed per department",
							"Centralized but inconsistent",
							"Centralized with quality checks",
							"Governed, documented, and self-serve",
						}),
					},
					{
						ID:       "data_governance",
						Category: CategoryData,
						Prompt:   "Do you have data governance policies covering AI use?",
						Options: scaleOptions([5]string{
							"No policies",
							"General data policies only",
							"AI use under review",
							"Documented AI data policies",
							"Policies enforced with audits",
						}),
					},
				},
			},
			{
				Title: "People and Skills",
				Questions: []Question{
					{
						ID:       "talent_skills",
						Category: CategoryTalent,
						Prompt:   "What AI-related skills exist in your teams today?",
						Options: scaleOptions([5]string{
							"None that we know of",
							"A few self-taught enthusiasts",
							"Trained staff in one team",
							"Trained staff in several teams",
							"Dedicated AI roles and career paths",
						}),
					},
					{
						ID:       "talent_training",
						Category: CategoryTalent,
						Prompt:   "Is there a training program for AI literacy?",
						Options: scaleOptions([5]string{
							"No training available",
							"Ad-hoc external courses",
							"Optional internal training",
							"Required training for key roles",
							"Continuous program with certification",
						}),
					},
				},
			},
			{
				Title: "Risk and Governance",
				Questions: []Question{
					{
						ID:       "governance_review",
						Category: CategoryGovernance,
						Prompt:   "How are AI systems reviewed before deployment?",
						Options: scaleOptions([5]string{
							"No review process",
							"Informal peer review",
							"Checklist-based review",
							"Formal review board",
							"Review board with ongoing monitoring",
						}),
					},
					{
						ID:       "governance_compliance",
						Category: CategoryGovernance,
						Prompt:   "How prepared are you for AI-related regulatory requirements?",
						Options: scaleOptions([5]string{
							"Not on our radar",
							"Aware but unprepared",
							"Gap analysis in progress",
							"Compliance plan in place",
							"Compliant with ongoing legal review",
						}),
					},
				},
			},
			{
				Title: "Technology and Operations",
				Questions: []Question{
					{
						ID:       "technology_platform",
						Category: CategoryTechnology,
						Prompt:   "What infrastructure do you have for running AI workloads?",
						Options: scaleOptions([5]string{
							"None",
							"Individual SaaS subscriptions",
							"Shared vendor platform",
							"Managed platform with access controls",
							"Platform with deployment pipelines and monitoring",
						}),
					},
					{
						ID:       "technology_integration",
						Category: CategoryTechnology,
						Prompt:   "How integrated is AI with your existing business systems?",
						Options: scaleOptions([5]string{
							"Not integrated",
							"Manual copy-paste workflows",
							"One or two point integrations",
							"Integrated into core workflows",
							"Integrated with automated feedback loops",
						}),
					},
				},
			},
		},
	}
}

// Questions flattens the questionnaire into a single ordered list.
func (q Questionnaire) Questions() []Question {
	var out []Question
	for _, step := range q.Steps {
		out = append(out, step.Questions...)
	}
	return out
}

// Question returns the question with the given ID.
func (q Questionnaire) Question(id string) (Question, bool) {
	for _, question := range q.Questions() {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}
