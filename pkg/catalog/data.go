package catalog

// SampleCatalog returns the built-in catalog used when no external
// content source is configured.
func SampleCatalog() []Item {
	return []Item{
		{
			ID:          "uc-invoice-processing",
			Kind:        KindUseCase,
			Name:        "Automated Invoice Processing",
			Description: "Extract line items from inbound invoices and post them to your accounting system without manual keying.",
			Industries:  []string{"Finance", "Manufacturing"},
			Departments: []string{"Finance", "Operations"},
			AITypes:     []string{"Document AI", "Automation"},
			Complexity:  ComplexityMedium,
			SetupEffort: SetupModerate,
		},
		{
			ID:          "uc-support-triage",
			Kind:        KindUseCase,
			Name:        "Customer Support Ticket Triage",
			Description: "Classify and route inbound support tickets by topic, urgency, and sentiment before an agent sees them.",
			Industries:  []string{"Technology", "Retail"},
			Departments: []string{"Customer Support"},
			AITypes:     []string{"NLP", "Automation"},
			Complexity:  ComplexityLow,
			SetupEffort: SetupMinimal,
		},
		{
			ID:          "uc-demand-forecasting",
			Kind:        KindUseCase,
			Name:        "Demand Forecasting",
			Description: "Predict weekly demand per SKU from sales history, seasonality, and promotions to reduce stockouts.",
			Industries:  []string{"Retail", "Manufacturing"},
			Departments: []string{"Operations", "Supply Chain"},
			AITypes:     []string{"Predictive Analytics"},
			Complexity:  ComplexityHigh,
			SetupEffort: SetupSignificant,
		},
		{
			ID:          "uc-contract-review",
			Kind:        KindUseCase,
			Name:        "Contract Clause Review",
			Description: "Flag non-standard clauses and missing terms in vendor contracts before legal review.",
			Industries:  []string{"Finance", "Healthcare"},
			Departments: []string{"Legal"},
			AITypes:     []string{"Document AI", "NLP"},
			Complexity:  ComplexityMedium,
			SetupEffort: SetupModerate,
		},
		{
			ID:          "at-support-agent",
			Kind:        KindAgentTemplate,
			Name:        "Support Knowledge Agent",
			Description: "A retrieval-backed agent that answers customer questions from your help center and escalates when unsure.",
			Industries:  []string{"Technology", "Retail"},
			Departments: []string{"Customer Support"},
			AITypes:     []string{"Generative AI", "NLP"},
			Complexity:  ComplexityMedium,
			SetupEffort: SetupModerate,
		},
		{
			ID:          "at-sales-researcher",
			Kind:        KindAgentTemplate,
			Name:        "Sales Account Researcher",
			Description: "Compiles a briefing on a prospect account from public sources ahead of the first sales call.",
			Industries:  []string{"Technology"},
			Departments: []string{"Sales"},
			AITypes:     []string{"Generative AI"},
			Complexity:  ComplexityLow,
			SetupEffort: SetupMinimal,
		},
		{
			ID:          "at-hr-screener",
			Kind:        KindAgentTemplate,
			Name:        "Candidate Screening Assistant",
			Description: "Summarizes applications against the role profile and drafts structured screening notes for recruiters.",
			Industries:  []string{"Technology", "Healthcare"},
			Departments: []string{"HR"},
			AITypes:     []string{"Generative AI", "NLP"},
			Complexity:  ComplexityMedium,
			SetupEffort: SetupModerate,
		},
		{
			ID:          "co-ai-foundations",
			Kind:        KindCourse,
			Name:        "AI Foundations for Business Teams",
			Description: "A non-technical introduction to what modern AI systems can and cannot do, with hands-on prompting practice.",
			Industries:  []string{"Technology", "Finance", "Retail", "Healthcare", "Manufacturing"},
			Departments: []string{"Operations", "HR", "Finance", "Sales"},
			AITypes:     []string{"Generative AI"},
			Complexity:  ComplexityLow,
			SetupEffort: SetupMinimal,
		},
		{
			ID:          "co-data-readiness",
			Kind:        KindCourse,
			Name:        "Data Readiness for AI Projects",
			Description: "How to audit, clean, and govern the data an AI initiative depends on before the first model is built.",
			Industries:  []string{"Finance", "Healthcare", "Manufacturing"},
			Departments: []string{"Operations", "IT"},
			AITypes:     []string{"Predictive Analytics"},
			Complexity:  ComplexityMedium,
			SetupEffort: SetupModerate,
		},
		{
			ID:          "co-responsible-ai",
			Kind:        KindCourse,
			Name:        "Responsible AI and Compliance",
			Description: "Regulatory obligations, bias review, and documentation practices for teams deploying AI in regulated settings.",
			Industries:  []string{"Finance", "Healthcare"},
			Departments: []string{"Legal", "IT"},
			AITypes:     []string{"Generative AI", "Predictive Analytics"},
			Complexity:  ComplexityMedium,
			SetupEffort: SetupModerate,
		},
		{
			ID:          "wf-content-pipeline",
			Kind:        KindWorkflowTemplate,
			Name:        "Marketing Content Pipeline",
			Description: "Draft, review, and publish campaign copy with AI-assisted drafting and a human approval gate.",
			Industries:  []string{"Retail", "Technology"},
			Departments: []string{"Marketing"},
			AITypes:     []string{"Generative AI"},
			Complexity:  ComplexityLow,
			SetupEffort: SetupMinimal,
		},
		{
			ID:          "wf-onboarding-docs",
			Kind:        KindWorkflowTemplate,
			Name:        "Employee Onboarding Document Flow",
			Description: "Collect, verify, and file new-hire paperwork with automated extraction and checklist tracking.",
			Industries:  []string{"Technology", "Manufacturing"},
			Departments: []string{"HR", "Operations"},
			AITypes:     []string{"Document AI", "Automation"},
			Complexity:  ComplexityMedium,
			SetupEffort: SetupModerate,
		},
		{
			ID:          "wf-incident-summary",
			Kind:        KindWorkflowTemplate,
			Name:        "Incident Postmortem Summaries",
			Description: "Turn raw incident timelines and chat logs into a structured postmortem draft for engineering review.",
			Industries:  []string{"Technology"},
			Departments: []string{"IT", "Operations"},
			AITypes:     []string{"Generative AI", "NLP"},
			Complexity:  ComplexityLow,
			SetupEffort: SetupMinimal,
		},
		{
			ID:          "wf-claims-intake",
			Kind:        KindWorkflowTemplate,
			Name:        "Insurance Claims Intake",
			Description: "Digitize claim forms, validate required fields, and route claims to the right adjuster queue.",
			Industries:  []string{"Finance", "Healthcare"},
			Departments: []string{"Operations", "Customer Support"},
			AITypes:     []string{"Document AI", "Automation"},
			Complexity:  ComplexityHigh,
			SetupEffort: SetupSignificant,
		},
	}
}
