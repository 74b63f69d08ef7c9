// ABOUTME: Built-in seed data for the record store
// ABOUTME: Default FAQ entries, fraud cases, and the company profile
package store

import "github.com/poojareddy/voicedesk/models"

// DefaultFAQ returns the reference entries seeded when no FAQ file exists.
func DefaultFAQ() []models.ReferenceEntry {
	return []models.ReferenceEntry{
		{
			ID:       "what_is_razorpay",
			Question: "What does Razorpay do?",
			Answer:   "Razorpay allows businesses to accept online payments via UPI, cards, netbanking and wallets.",
		},
		{
			ID:       "pricing_basic",
			Question: "How does Razorpay pricing work?",
			Answer:   "No setup fee; per-transaction pricing around 2% for domestic payments on standard plan.",
		},
		{
			ID:       "free_tier",
			Question: "Do you have a free tier?",
			Answer:   "Sandbox testing is free; no setup charges for standard plan.",
		},
	}
}

// DefaultCases returns the fraud cases seeded when no case file exists.
// CASE-002 is already terminal so the pending-only lookup filter is
// observable with seed data alone.
func DefaultCases() []models.CaseRecord {
	return []models.CaseRecord{
		{
			CaseID:                 "CASE-001",
			OwnerName:              "Anita Desai",
			SharedSecretIdentifier: "security_question_v1",
			MaskedInstrument:       "SBI Credit Card ****7744",
			Amount:                 45210.00,
			Currency:               "INR",
			CounterpartyName:       "LuxeTravel Bookings",
			Location:               "New Delhi",
			Timestamp:              "2025-01-12T22:47:00+05:30",
			Category:               "travel",
			Channel:                "card_not_present",
			ChallengeQuestion:      "What is the name of your first school?",
			ChallengeAnswer:        "st marys",
			Status:                 models.StatusPendingReview,
		},
		{
			CaseID:                 "CASE-002",
			OwnerName:              "Rohan Mehta",
			SharedSecretIdentifier: "security_question_v1",
			MaskedInstrument:       "ICICI Credit Card ****9031",
			Amount:                 88400.00,
			Currency:               "INR",
			CounterpartyName:       "Apex Gold Traders",
			Location:               "Jaipur",
			Timestamp:              "2025-01-28T03:12:00+05:30",
			Category:               "jewellery",
			Channel:                "card_not_present",
			ChallengeQuestion:      "What is your mother's maiden name?",
			ChallengeAnswer:        "kulkarni",
			Status:                 models.StatusConfirmedFraud,
			OutcomeNote:            "caller denied transaction; card blocked",
		},
		{
			CaseID:                 "CASE-003",
			OwnerName:              "Karthik Iyer",
			SharedSecretIdentifier: "security_question_v1",
			MaskedInstrument:       "HDFC Debit Card ****4312",
			Amount:                 14999.00,
			Currency:               "INR",
			CounterpartyName:       "QuickKart Electronics",
			Location:               "Bengaluru",
			Timestamp:              "2025-02-03T09:15:00+05:30",
			Category:               "e_commerce",
			Channel:                "online",
			ChallengeQuestion:      "Which city were you born in?",
			ChallengeAnswer:        "chennai",
			Status:                 models.StatusPendingReview,
		},
	}
}

// DefaultProfile is the static company profile exposed as a read-only
// resource for the dialog manager to quote from.
func DefaultProfile() map[string]string {
	return map[string]string{
		"name":           "Razorpay",
		"tagline":        "Modern payments and banking for Indian businesses.",
		"what_we_do":     "Razorpay is a payments platform that helps businesses in India accept, process, and disburse payments.",
		"who_it_is_for":  "Startups, SaaS companies, e-commerce brands, D2C, freelancers, NGOs, and enterprises.",
		"pricing_basic":  "No setup or maintenance fee. Typical charge around 2% per domestic transaction.",
		"free_tier_info": "No separate free tier, but sandbox testing is free.",
	}
}
