package assistant

import "strings"

// localRule pairs trigger keywords with a canned knowledge-base answer.
type localRule struct {
	keywords []string
	answer   string
}

var localRules = []localRule{
	{
		keywords: []string{"passport", "id", "identification"},
		answer: `I can help with passport and ID services. Here's what you need to know:

- **Passport Application**:
  - Required documents: Birth certificate, Proof of citizenship, Passport photos, Completed application form
  - Processing time: 2-6 weeks
  - Fees: Varies by country

- **National ID Card**:
  - Required documents: Birth certificate, Proof of residence, Passport photo
  - Processing time: 2-4 weeks
  - Fees: Usually free for first-time applicants

Would you like more specific information about any of these services?`,
	},
	{
		keywords: []string{"health", "hospital", "clinic", "nhis"},
		answer: `I can provide information about health services:

- **Clinic Registration**:
  - Required documents: ID document, Proof of residence
  - Processing time: Same day
  - Fees: Free for citizens

- **Health Insurance (NHIS)**:
  - Required documents: ID document, Proof of residence, Passport photo
  - Processing time: 1-2 weeks
  - Fees: From GHS 30 annually (Ghana example)

- **Chronic Medication**:
  - Required documents: ID document, Prescription
  - Processing time: Same day
  - Fees: Covered by insurance or free for citizens`,
	},
	{
		keywords: []string{"education", "school", "university", "student"},
		answer: `Here's information about education services:

- **School Registration**:
  - Required documents: Birth certificate, Previous school reports, Passport photos
  - Processing time: 1-2 weeks

- **University Applications**:
  - Required documents: High school certificate, ID document, Application form
  - Processing time: 4-8 weeks
  - Fees: Varies by institution

- **Scholarships/Bursaries**:
  - Required documents: Academic records, ID document, Proof of income
  - Processing time: 2-3 months`,
	},
	{
		keywords: []string{"business", "company", "register business", "tax"},
		answer: `Here's information about business registration and tax services:

- **Business Registration**:
  - Required documents: ID copies, Proof of address, Company name reservation
  - Processing time: 1-2 weeks
  - Fees: Varies by country and business type

- **Tax Registration**:
  - Required documents: ID document, Business registration documents
  - Processing time: 2-3 weeks
  - Fees: Usually free

- **Tax Filing**:
  - Required documents: Financial records, Previous tax returns
  - Processing time: 1-2 weeks
  - Fees: Free for e-filing`,
	},
}

const localDefaultAnswer = `I'm currently operating with limited functionality. Here are some topics I can help with:

- Passport and ID services
- Health services and insurance
- Education and student services
- Business registration and tax services

Please ask about any of these topics, and I'll provide the information I have available.`

// localResponse answers from the built-in knowledge base. The first rule
// whose keyword appears in the question wins.
func localResponse(question string) string {
	lower := strings.ToLower(question)
	for _, rule := range localRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.answer
			}
		}
	}
	return localDefaultAnswer
}
