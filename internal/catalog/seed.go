package catalog

// Default returns the curated seed catalog. Country insertion order matters:
// the first entry doubles as the fallback for unrecognized countries.
func Default() *Catalog {
	c := New()

	c.add("Nigeria", []ServiceRecord{
		{
			Name:              "National Health Insurance Scheme (NHIS) Enrollment",
			Description:       "Enroll in the national health insurance program for affordable healthcare services.",
			RequiredDocuments: []string{"Means of identification", "Passport photograph", "Proof of address"},
			ProcessingTime:    "1-2 weeks",
			Fees:              "From N15,000 annually",
			Category:          CategoryHealth,
		},
		{
			Name:              "Primary Healthcare Center Registration",
			Description:       "Register with your local primary healthcare center for basic medical services.",
			RequiredDocuments: []string{"Proof of residence", "Means of identification"},
			ProcessingTime:    "Same day",
			Fees:              "Free for basic services",
			Category:          CategoryHealth,
		},
		{
			Name:              "JAMB Registration",
			Description:       "Register for Joint Admissions and Matriculation Board examinations for tertiary education.",
			RequiredDocuments: []string{"O'Level results", "Birth certificate", "Passport photograph"},
			ProcessingTime:    "1 day",
			Fees:              "N4,700 for UTME",
			Category:          CategoryEducation,
		},
		{
			Name:              "WAEC Registration",
			Description:       "Register for West African Examinations Council (WAEC) exams.",
			RequiredDocuments: []string{"Birth certificate", "Passport photograph"},
			ProcessingTime:    "1 day",
			Fees:              "N18,000 - N25,000",
			Category:          CategoryEducation,
		},
		{
			Name:              "Corporate Affairs Commission (CAC) Business Registration",
			Description:       "Register your business with the Corporate Affairs Commission.",
			RequiredDocuments: []string{"Business name reservation", "Passport photographs", "Means of identification"},
			ProcessingTime:    "1-2 weeks",
			Fees:              "From N10,000",
			Category:          CategoryBusiness,
		},
		{
			Name:              "Business Premises Registration",
			Description:       "Register your business premises with the local government.",
			RequiredDocuments: []string{"CAC certificate", "Proof of address", "Tax identification number"},
			ProcessingTime:    "1 week",
			Fees:              "Varies by location",
			Category:          CategoryBusiness,
		},
		{
			Name:              "Tax Identification Number (TIN) Registration",
			Description:       "Register for a Tax Identification Number with the Federal Inland Revenue Service.",
			RequiredDocuments: []string{"Means of identification", "Proof of address", "Passport photograph"},
			ProcessingTime:    "24-48 hours",
			Fees:              "Free",
			Category:          CategoryTax,
		},
		{
			Name:              "Filing Annual Tax Returns",
			Description:       "File your annual tax returns with the Federal Inland Revenue Service.",
			RequiredDocuments: []string{"TIN", "Financial statements", "Previous tax returns"},
			ProcessingTime:    "1-2 days",
			Fees:              "Varies by income",
			Category:          CategoryTax,
		},
		{
			Name:              "National ID Card Registration",
			Description:       "Register for or replace your National Identity Card.",
			RequiredDocuments: []string{"Birth certificate/age declaration", "Proof of address", "Local government identification"},
			ProcessingTime:    "2-6 weeks",
			Fees:              "Free",
			Category:          CategoryNationalID,
		},
	})

	c.add("Kenya", []ServiceRecord{
		{
			Name:              "NHIF Registration",
			Description:       "Enroll in the National Hospital Insurance Fund for healthcare coverage.",
			RequiredDocuments: []string{"National ID", "Passport photo", "KRA PIN"},
			ProcessingTime:    "1-2 weeks",
			Fees:              "From KSh 500 monthly",
			Category:          CategoryHealth,
		},
		{
			Name:              "Linda Mama Maternity Program",
			Description:       "Free maternity services for expectant mothers.",
			RequiredDocuments: []string{"National ID", "NHIF card"},
			ProcessingTime:    "Same day registration",
			Fees:              "Free",
			Category:          CategoryHealth,
		},
		{
			Name:              "KUCCPS University Application",
			Description:       "Apply for university placement through the Kenya Universities and Colleges Central Placement Service.",
			RequiredDocuments: []string{"KCSE results slip", "National ID", "Passport photo"},
			ProcessingTime:    "2-4 weeks",
			Fees:              "KSh 1,500",
			Category:          CategoryEducation,
		},
		{
			Name:              "KNEC KCPE/KCSE Registration",
			Description:       "Register for national primary and secondary education examinations.",
			RequiredDocuments: []string{"Birth certificate", "Passport photo", "Previous school records"},
			ProcessingTime:    "1-2 weeks",
			Fees:              "KSh 1,000 - KSh 1,500",
			Category:          CategoryEducation,
		},
		{
			Name:              "eCitizen Business Registration",
			Description:       "Register a new business through the eCitizen portal.",
			RequiredDocuments: []string{"National ID", "KRA PIN", "Passport photo", "Business name search"},
			ProcessingTime:    "1-3 days",
			Fees:              "From KSh 10,000",
			Category:          CategoryBusiness,
		},
		{
			Name:              "Single Business Permit",
			Description:       "Obtain a business permit from the county government.",
			RequiredDocuments: []string{"Business registration certificate", "KRA PIN certificate", "Lease agreement"},
			ProcessingTime:    "1-2 weeks",
			Fees:              "Varies by business type and size",
			Category:          CategoryBusiness,
		},
		{
			Name:              "KRA PIN Registration",
			Description:       "Register for a Personal Identification Number with the Kenya Revenue Authority.",
			RequiredDocuments: []string{"National ID", "Passport photo"},
			ProcessingTime:    "24 hours",
			Fees:              "Free",
			Category:          CategoryTax,
		},
		{
			Name:              "File Tax Returns",
			Description:       "File your annual tax returns with the Kenya Revenue Authority.",
			RequiredDocuments: []string{"KRA PIN", "Monthly pay slips", "P9 form"},
			ProcessingTime:    "1-2 days",
			Fees:              "Free",
			Category:          CategoryTax,
		},
	})

	c.add("Ghana", []ServiceRecord{
		{
			Name:              "National Health Insurance Scheme (NHIS) Registration",
			Description:       "Enroll in Ghana's national health insurance program.",
			RequiredDocuments: []string{"Ghana Card", "Proof of residence", "Passport photo"},
			ProcessingTime:    "1-2 weeks",
			Fees:              "From GHS 30 annually",
			Category:          CategoryHealth,
		},
		{
			Name:              "Community-based Health Planning and Services (CHPS)",
			Description:       "Access primary healthcare services in your community.",
			RequiredDocuments: []string{"NHIS card"},
			ProcessingTime:    "Same day",
			Fees:              "Free with NHIS",
			Category:          CategoryHealth,
		},
		{
			Name:              "WASSCE Registration",
			Description:       "Register for West African Senior School Certificate Examination.",
			RequiredDocuments: []string{"BECE certificate", "Birth certificate", "Passport photo"},
			ProcessingTime:    "2 weeks",
			Fees:              "GHS 400-600",
			Category:          CategoryEducation,
		},
		{
			Name:              "University of Ghana Applications",
			Description:       "Apply for undergraduate programs at the University of Ghana.",
			RequiredDocuments: []string{"WASSCE results", "Birth certificate", "Passport photo"},
			ProcessingTime:    "4-6 weeks",
			Fees:              "GHS 200-400",
			Category:          CategoryEducation,
		},
		{
			Name:              "Registrar General's Department Business Registration",
			Description:       "Register your business with the Registrar General's Department.",
			RequiredDocuments: []string{"Business name certificate", "Form 3", "Passport photo", "ID copy"},
			ProcessingTime:    "1-2 weeks",
			Fees:              "From GHS 50",
			Category:          CategoryBusiness,
		},
		{
			Name:              "Ghana Investment Promotion Centre (GIPC) Registration",
			Description:       "Register your foreign-owned business with GIPC.",
			RequiredDocuments: []string{"Business registration certificate", "Business plan", "Passport copies"},
			ProcessingTime:    "2-3 weeks",
			Fees:              "From $1,000",
			Category:          CategoryBusiness,
		},
		{
			Name:              "Ghana Revenue Authority (GRA) TIN Registration",
			Description:       "Register for a Tax Identification Number.",
			RequiredDocuments: []string{"Ghana Card/Passport", "Proof of address"},
			ProcessingTime:    "24-48 hours",
			Fees:              "Free",
			Category:          CategoryTax,
		},
		{
			Name:              "File Annual Tax Returns",
			Description:       "File your annual tax returns with the GRA.",
			RequiredDocuments: []string{"TIN certificate", "Financial statements", "Previous tax returns"},
			ProcessingTime:    "1-2 days",
			Fees:              "Free",
			Category:          CategoryTax,
		},
		{
			Name:              "Ghana Card Registration",
			Description:       "Register for the national identification card.",
			RequiredDocuments: []string{"Birth certificate", "Proof of residence", "Passport photo"},
			ProcessingTime:    "2-4 weeks",
			Fees:              "Free",
			Category:          CategoryNationalID,
		},
	})

	c.add("South Africa", []ServiceRecord{
		{
			Name:              "Clinic Registration",
			Description:       "Register at your local clinic for primary healthcare services.",
			RequiredDocuments: []string{"ID document", "Proof of residence", "Clinic card (if applicable)"},
			ProcessingTime:    "Same day",
			Fees:              "Free for South African citizens",
			Category:          CategoryHealth,
		},
		{
			Name:              "Chronic Medication Collection",
			Description:       "Access to chronic medication at designated facilities.",
			RequiredDocuments: []string{"ID document", "Clinic card", "Prescription"},
			ProcessingTime:    "Same day",
			Fees:              "Free for South African citizens",
			Category:          CategoryHealth,
		},
		{
			Name:              "Matric Certificate Application",
			Description:       "Apply for your National Senior Certificate (NSC) or replacement certificate.",
			RequiredDocuments: []string{"ID document", "Previous school reports", "Affidavit if lost"},
			ProcessingTime:    "6-8 weeks",
			Fees:              "R141 for replacement",
			Category:          CategoryEducation,
		},
		{
			Name:              "NSFAS Bursary Application",
			Description:       "Apply for National Student Financial Aid Scheme funding for tertiary education.",
			RequiredDocuments: []string{"ID document", "Matric certificate", "Parents/guardian proof of income"},
			ProcessingTime:    "3-6 months",
			Fees:              "Free application",
			Category:          CategoryEducation,
		},
		{
			Name:              "CIPC Company Registration",
			Description:       "Register a new company with the Companies and Intellectual Property Commission.",
			RequiredDocuments: []string{"ID copies of directors", "Proof of address", "Company name reservation"},
			ProcessingTime:    "5-7 working days",
			Fees:              "From R125",
			Category:          CategoryBusiness,
		},
		{
			Name:              "SARS Business Tax Registration",
			Description:       "Register your business for tax with the South African Revenue Service.",
			RequiredDocuments: []string{"ID document", "Proof of address", "Business registration documents"},
			ProcessingTime:    "21 working days",
			Fees:              "Free",
			Category:          CategoryBusiness,
		},
		{
			Name:              "eFiling Registration",
			Description:       "Register for SARS eFiling to submit tax returns online.",
			RequiredDocuments: []string{"ID document", "Proof of residence", "Banking details"},
			ProcessingTime:    "24-48 hours",
			Fees:              "Free",
			Category:          CategoryTax,
		},
		{
			Name:              "Income Tax Return Submission",
			Description:       "File your annual income tax return with SARS.",
			RequiredDocuments: []string{"IRP5/IT3(a) certificate", "Medical aid certificate", "Retirement annuity certificates"},
			ProcessingTime:    "7-21 working days",
			Fees:              "Free",
			Category:          CategoryTax,
		},
		{
			Name:              "Smart ID Card Application",
			Description:       "Apply for the new Smart ID card.",
			RequiredDocuments: []string{"Green barcoded ID book", "Birth certificate", "Proof of residence"},
			ProcessingTime:    "10-14 working days",
			Fees:              "R140",
			Category:          CategoryNationalID,
		},
	})

	return c
}
