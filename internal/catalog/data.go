package catalog

import "github.com/apteva/apteva/pkg/models"

// Default returns the built-in assessment catalogue.
func Default() Catalog {
	return Catalog{
		{
			ID:           "opq",
			Name:         "Occupational Personality Questionnaire (OPQ)",
			Category:     "Personality Assessment",
			Description:  "Align individual working preferences to business requirements with accurate, fair assessments of potential",
			DetailedInfo: "Flagship personality assessment, widely used to predict workplace behavior. Measures 32 personality dimensions.",
			UseCases:     []string{"Recruitment & Selection", "Team Building", "Development", "Succession Planning", "Transitions"},
			Benefits: []string{
				"Predicts workplace behavior patterns",
				"Science-backed with strong predictive accuracy",
				"Assesses remote work capability",
				"Reduces turnover by 25%",
				"Available in 40+ languages",
			},
			SuitableFor: models.Suitability{
				Roles:      []string{"Manager", "Professional", "Graduate", "Executive", "Sales", "Technical"},
				Levels:     []string{"Entry", "Mid", "Senior", "Executive"},
				Industries: []string{"All Industries", "Technology", "Finance", "Healthcare", "Retail", "Manufacturing"},
				Goals:      []string{"Quality of Hire", "Cultural Fit", "Team Performance", "Leadership Development", "Retention"},
			},
			KeyFeatures: []string{
				"32 personality dimensions",
				"Mobile-first design",
				"Multiple automated reports",
				"Global normative data",
				"15-25 minute completion",
			},
			Metrics: models.AssessmentMetrics{
				CompletionTime: "15-25 minutes",
				Validity:       "High predictive validity",
				Reliability:    "0.80+ reliability coefficient",
				MobileFriendly: true,
			},
			Link: "https://www.shl.com/products/assessments/personality-assessment/shl-occupational-personality-questionnaire-opq/",
		},
		{
			ID:           "verify-interactive",
			Name:         "Verify Interactive - Cognitive Assessment",
			Category:     "Cognitive Assessment",
			Description:  "Measure candidates' potential to learn, adapt, and perform with interactive cognitive assessments",
			DetailedInfo: "Interactive cognitive assessment measuring numerical reasoning, deductive reasoning, and inductive reasoning with engaging drag-and-drop interactions.",
			UseCases:     []string{"Graduate Hiring", "Technology Hiring", "Manager Development", "High Volume Hiring", "Professional Roles"},
			Benefits: []string{
				"Automated scoring and proctoring",
				"60% reduction in time-to-hire",
				"Engaging gamified experience",
				"Fewer questions with partial scoring",
				"Predicts learning potential",
			},
			SuitableFor: models.Suitability{
				Roles:      []string{"Graduate", "Technology", "Professional", "Manager", "Analyst", "Engineer"},
				Levels:     []string{"Entry", "Mid", "Senior"},
				Industries: []string{"Technology", "Finance", "Healthcare", "Manufacturing", "Consulting", "All Industries"},
				Goals:      []string{"Learning Potential", "Problem Solving", "Quality of Hire", "Adaptability", "Critical Thinking"},
			},
			KeyFeatures: []string{
				"Verify G+ (General Mental Ability)",
				"Numerical Reasoning",
				"Deductive Reasoning",
				"Inductive Reasoning",
				"Interactive drag-and-drop",
				"Remote proctoring",
			},
			Metrics: models.AssessmentMetrics{
				CompletionTime: "10-30 minutes",
				Validity:       "Strong criterion validity",
				Reliability:    "0.85+ reliability",
				MobileFriendly: true,
			},
			Link: "https://www.shl.com/products/assessments/cognitive-assessments/",
		},
		{
			ID:           "sjt",
			Name:         "Situational Judgment Tests (SJT)",
			Category:     "Behavioral Assessment",
			Description:  "Match candidate behavioral fit with immersive, interactive scenarios and effective screening at scale",
			DetailedInfo: "Interactive scenarios that evaluate how candidates would handle real workplace situations, measuring behavioral fit and judgment.",
			UseCases:     []string{"Early Stage Screening", "Behavioral Fit", "Volume Hiring", "Graduate Programs", "Customer Service"},
			Benefits: []string{
				"Reduces mis-hires by 40%",
				"Increases candidate engagement",
				"Interactive video-based scenarios",
				"Scalable for high volume",
				"89% candidate satisfaction",
			},
			SuitableFor: models.Suitability{
				Roles:      []string{"Customer Service", "Sales", "Manager", "Graduate", "Professional", "Contact Center"},
				Levels:     []string{"Entry", "Mid"},
				Industries: []string{"Retail", "BPO", "Contact Center", "Healthcare", "Finance", "All Industries"},
				Goals:      []string{"Behavioral Fit", "Cultural Alignment", "Customer Service", "Decision Making", "Teamwork"},
			},
			KeyFeatures: []string{
				"Video-based scenarios",
				"Real workplace situations",
				"Match score reporting",
				"Mobile optimized",
				"5-15 minute completion",
			},
			Metrics: models.AssessmentMetrics{
				CompletionTime: "5-15 minutes",
				Validity:       "High construct validity",
				Reliability:    "0.75+ reliability",
				MobileFriendly: true,
			},
			Link: "https://www.shl.com/products/assessments/behavioral-assessments/situation-judgement-tests-sjt/",
		},
		{
			ID:           "rjp",
			Name:         "Realistic Job Previews (RJP)",
			Category:     "Behavioral Assessment",
			Description:  "Preview roles with scenario-based quizzes that give candidates a feel for the job before they commit",
			DetailedInfo: "Interactive previews that showcase your opportunities with animation, video, and branded multimedia to increase self-selection and commitment.",
			UseCases:     []string{"Early Attraction", "Self-Selection", "Employer Branding", "Volume Hiring", "Reduce Attrition"},
			Benefits: []string{
				"Increases commitment by 30%",
				"Reduces early attrition",
				"Branded candidate experience",
				"Sets realistic expectations",
				"Improves quality of applicant pool",
			},
			SuitableFor: models.Suitability{
				Roles:      []string{"All Roles", "Entry Level", "Contact Center", "Retail", "Graduate", "Volume"},
				Levels:     []string{"Entry", "Mid"},
				Industries: []string{"Retail", "BPO", "Contact Center", "Hospitality", "Manufacturing", "All Industries"},
				Goals:      []string{"Candidate Engagement", "Self-Selection", "Reduce Attrition", "Employer Brand", "Cultural Fit"},
			},
			KeyFeatures: []string{
				"Customizable scenarios",
				"Multimedia content",
				"Brand integration",
				"Mobile-first",
				"10-15 minute experience",
			},
			Metrics: models.AssessmentMetrics{
				CompletionTime: "10-15 minutes",
				Impact:         "30% increase in commitment",
				MobileFriendly: true,
			},
			Link: "https://www.shl.com/products/assessments/behavioral-assessments/realistic-job-and-culture-previews-rjp/",
		},
		{
			ID:           "mq",
			Name:         "Motivational Questionnaire (MQ)",
			Category:     "Personality Assessment",
			Description:  "Match individual motivation to team and organizational goals to build an engaged, high-performing workforce",
			DetailedInfo: "Measures what drives and energizes individuals at work across 18 motivational dimensions aligned to organizational goals.",
			UseCases:     []string{"Employee Engagement", "Team Building", "Development", "Retention", "Career Planning"},
			Benefits: []string{
				"Identifies motivational drivers",
				"Improves engagement by 35%",
				"Predicts retention",
				"Enables personalized development",
				"Supports career conversations",
			},
			SuitableFor: models.Suitability{
				Roles:      []string{"All Roles", "Manager", "Professional", "Graduate", "Sales"},
				Levels:     []string{"Entry", "Mid", "Senior"},
				Industries: []string{"All Industries", "Technology", "Finance", "Healthcare", "Retail"},
				Goals:      []string{"Employee Engagement", "Retention", "Development", "Team Performance", "Career Development"},
			},
			KeyFeatures: []string{
				"18 motivational dimensions",
				"Team motivation reports",
				"Development recommendations",
				"Mobile accessible",
				"15-20 minute completion",
			},
			Metrics: models.AssessmentMetrics{
				CompletionTime: "15-20 minutes",
				Validity:       "High predictive validity for engagement",
				Reliability:    "0.80+ reliability",
				MobileFriendly: true,
			},
			Link: "https://www.shl.com/products/assessments/personality-assessment/shl-motivation-questionnaire-mq/",
		},
		{
			ID:           "jfa",
			Name:         "Job-Focused Assessments (JFA)",
			Category:     "Skills Assessment",
			Description:  "Comprehensive role-specific assessments measuring job-relevant hard and soft skills",
			DetailedInfo: "Predicts job success by evaluating key competencies tailored to specific roles using patented Apta technology.",
			UseCases:     []string{"Role-Specific Hiring", "Skills-Based Selection", "Fair Hiring", "Volume Hiring", "Frontline Roles"},
			Benefits: []string{
				"40% less likely to hire tardy workers",
				"73% better customer handling",
				"Reduces bias in selection",
				"Job-relevant content",
				"Fast deployment",
			},
			SuitableFor: models.Suitability{
				Roles:      []string{"Contact Center", "Retail", "Manufacturing", "Sales", "Professional", "Manager"},
				Levels:     []string{"Entry", "Mid"},
				Industries: []string{"Retail", "Contact Center", "Manufacturing", "Industrial", "BPO", "All Industries"},
				Goals:      []string{"Job Performance", "Quality of Hire", "Fair Selection", "Customer Service", "Productivity"},
			},
			KeyFeatures: []string{
				"Patented Apta technology",
				"Role-specific competencies",
				"Hard and soft skills",
				"Pre-packaged assessments",
				"Reduces faking",
			},
			Metrics: models.AssessmentMetrics{
				CompletionTime: "20-30 minutes",
				Validity:       "Strong job performance prediction",
				Reliability:    "0.80+ reliability",
				MobileFriendly: true,
			},
			Link: "https://www.shl.com/products/assessments/job-focused-assessments/",
		},
		{
			ID:           "coding-simulations",
			Name:         "Coding Simulations",
			Category:     "Skills & Simulations",
			Description:  "AI-powered online coding simulations measuring accuracy, logical correctness, and technical capability",
			DetailedInfo: "Assess tech candidates with real IDE environments covering 30+ programming languages and frameworks.",
			UseCases:     []string{"Technology Hiring", "Developer Assessment", "Technical Screening", "Graduate Tech Programs"},
			Benefits: []string{
				"Real coding environment",
				"AI-powered evaluation",
				"30+ languages supported",
				"Automated scoring",
				"Measures coding quality",
			},
			SuitableFor: models.Suitability{
				Roles:      []string{"Software Developer", "Engineer", "Data Scientist", "DevOps", "Technical Roles"},
				Levels:     []string{"Entry", "Mid", "Senior"},
				Industries: []string{"Technology", "Finance", "Consulting", "Startups", "All Industries"},
				Goals:      []string{"Technical Skills", "Code Quality", "Problem Solving", "Technical Fit"},
			},
			KeyFeatures: []string{
				"Integrated Development Environment",
				"30+ programming languages",
				"AI-powered scoring",
				"Real-world problems",
				"Plagiarism detection",
			},
			Metrics: models.AssessmentMetrics{
				CompletionTime: "30-90 minutes",
				Validity:       "High technical validity",
				MobileFriendly: false,
			},
			Link: "https://www.shl.com/products/assessments/skills-and-simulations/coding-simulations/",
		},
		{
			ID:           "technical-skills",
			Name:         "Technical Skills Assessments",
			Category:     "Skills & Simulations",
			Description:  "Comprehensive evaluation of technical concepts, knowledge, and application across 200+ IT skills",
			DetailedInfo: "Expert-validated questions covering databases, cloud, networking, cybersecurity, and more.",
			UseCases:     []string{"IT Hiring", "Technical Screening", "Skills Validation", "Upskilling Assessment"},
			Benefits: []string{
				"200+ IT skills covered",
				"Expert-validated content",
				"Automated proctoring",
				"Scalable assessment",
				"Current technology stack",
			},
			SuitableFor: models.Suitability{
				Roles:      []string{"IT Professional", "System Admin", "Network Engineer", "Cloud Architect", "Security Analyst"},
				Levels:     []string{"Entry", "Mid", "Senior"},
				Industries: []string{"Technology", "Finance", "Healthcare", "Manufacturing", "All Industries"},
				Goals:      []string{"Technical Skills", "Knowledge Validation", "Certification", "Upskilling"},
			},
			KeyFeatures: []string{
				"200+ specific IT skills",
				"Cloud technologies",
				"Database expertise",
				"Cybersecurity",
				"Network administration",
			},
			Metrics: models.AssessmentMetrics{
				CompletionTime: "20-45 minutes",
				Validity:       "Expert-validated content",
				Reliability:    "0.80+ reliability",
				MobileFriendly: true,
			},
			Link: "https://www.shl.com/products/assessments/skills-and-simulations/technical-skills/",
		},
		{
			ID:           "language-evaluation",
			Name:         "Language Evaluation",
			Category:     "Skills & Simulations",
			Description:  "AI-powered language assessments to build a strong, multilingual workforce",
			DetailedInfo: "Measures speaking, writing, reading, and listening proficiency in multiple languages with AI evaluation.",
			UseCases:     []string{"Multilingual Roles", "Customer Service", "Global Teams", "BPO Hiring"},
			Benefits: []string{
				"AI-powered scoring",
				"Multiple languages",
				"Speaking assessment",
				"Writing evaluation",
				"Fast results",
			},
			SuitableFor: models.Suitability{
				Roles:      []string{"Customer Service", "Sales", "Contact Center", "Translator", "Global Roles"},
				Levels:     []string{"Entry", "Mid", "Senior"},
				Industries: []string{"BPO", "Contact Center", "Hospitality", "Airlines", "Global Companies"},
				Goals:      []string{"Communication Skills", "Language Proficiency", "Customer Service", "Global Readiness"},
			},
			KeyFeatures: []string{
				"AI speech recognition",
				"Writing assessment",
				"Multiple languages",
				"CEFR alignment",
				"Automated scoring",
			},
			Metrics: models.AssessmentMetrics{
				CompletionTime: "15-30 minutes",
				Validity:       "CEFR-aligned",
				MobileFriendly: true,
			},
			Link: "https://www.shl.com/products/assessments/skills-and-simulations/language-evaluation/",
		},
		{
			ID:           "contact-center-simulations",
			Name:         "Contact Center Simulations",
			Category:     "Skills & Simulations",
			Description:  "Job simulations that emulate a real call center environment to pressure-test agent capability",
			DetailedInfo: "Realistic scenarios including customer calls, email responses, and chat interactions to assess readiness.",
			UseCases:     []string{"Contact Center Hiring", "Customer Service", "BPO Selection", "Agent Assessment"},
			Benefits: []string{
				"Realistic job preview",
				"Multi-channel assessment",
				"Reduces training time",
				"Predicts performance",
				"Engaging experience",
			},
			SuitableFor: models.Suitability{
				Roles:      []string{"Contact Center Agent", "Customer Service Rep", "Technical Support", "BPO Agent"},
				Levels:     []string{"Entry", "Mid"},
				Industries: []string{"BPO", "Contact Center", "Telecommunications", "E-commerce", "Financial Services"},
				Goals:      []string{"Customer Service", "Communication Skills", "Problem Solving", "Multi-tasking"},
			},
			KeyFeatures: []string{
				"Call simulations",
				"Email handling",
				"Chat scenarios",
				"Multi-tasking assessment",
				"Customer empathy",
			},
			Metrics: models.AssessmentMetrics{
				CompletionTime: "20-35 minutes",
				Validity:       "High job simulation fidelity",
				MobileFriendly: true,
			},
			Link: "https://www.shl.com/products/assessments/skills-and-simulations/call-center-simulations/",
		},
		{
			ID:           "business-skills",
			Name:         "Business Skills Assessments",
			Category:     "Skills & Simulations",
			Description:  "Assess essential business skills and computer literacy for enterprise teams",
			DetailedInfo: "Evaluates Microsoft Office proficiency, business communication, data analysis, and digital literacy.",
			UseCases:     []string{"Office Roles", "Administrative Hiring", "Graduate Programs", "Digital Literacy"},
			Benefits: []string{
				"Microsoft Office assessment",
				"Business communication",
				"Data analysis skills",
				"Digital literacy",
				"Practical application",
			},
			SuitableFor: models.Suitability{
				Roles:      []string{"Administrative", "Analyst", "Coordinator", "Graduate", "Professional"},
				Levels:     []string{"Entry", "Mid"},
				Industries: []string{"All Industries", "Corporate", "Finance", "Healthcare", "Consulting"},
				Goals:      []string{"Computer Literacy", "Business Skills", "Productivity", "Communication"},
			},
			KeyFeatures: []string{
				"MS Office (Word, Excel, PowerPoint)",
				"Email etiquette",
				"Data interpretation",
				"Business writing",
				"Practical simulations",
			},
			Metrics: models.AssessmentMetrics{
				CompletionTime: "15-40 minutes",
				Validity:       "Job-relevant content",
				MobileFriendly: true,
			},
			Link: "https://www.shl.com/products/assessments/skills-and-simulations/business-skills/",
		},
		{
			ID:           "assessment-centers",
			Name:         "Virtual Assessment & Development Centers",
			Category:     "Assessment Centers",
			Description:  "End-to-end digital assessment and development centers for identifying potential from anywhere",
			DetailedInfo: "Comprehensive multi-method assessment including exercises, simulations, interviews, and psychometrics.",
			UseCases:     []string{"Senior Hiring", "Leadership Assessment", "Development Centers", "Graduate Assessment"},
			Benefits: []string{
				"60% faster time-to-hire",
				"75% reduction in assessment time",
				"Comprehensive evaluation",
				"Remote capability",
				"Expert facilitators",
			},
			SuitableFor: models.Suitability{
				Roles:      []string{"Manager", "Senior Manager", "Executive", "Graduate", "High Potential"},
				Levels:     []string{"Mid", "Senior", "Executive"},
				Industries: []string{"All Industries", "Finance", "Corporate", "Government", "Healthcare"},
				Goals:      []string{"Leadership Assessment", "Comprehensive Evaluation", "Development", "Succession"},
			},
			KeyFeatures: []string{
				"Group exercises",
				"Role-play simulations",
				"Presentations",
				"Psychometric tests",
				"Expert assessment",
			},
			Metrics: models.AssessmentMetrics{
				CompletionTime: "Half day to 2 days",
				Validity:       "Multi-method validation",
				MobileFriendly: true,
			},
			Link: "https://www.shl.com/products/assessments/assessment-and-development-centers/",
		},
	}
}
