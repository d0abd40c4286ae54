package bootstrap

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/arcuspath/backend/model"
)

func day(d int) time.Time {
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

// SampleProviders is the seed directory used in development mode and by the
// engine tests: 16 active providers across the five categories, with a
// spread of verification levels, badges, vouch counts and ratings wide
// enough to exercise every ranking tie-break.
func SampleProviders() []model.Provider {
	return []model.Provider{
		{
			ID: "prov-001", Name: "Dr. Maya Okafor", BusinessName: "Spectrum Family Medicine",
			CategoryID: "healthcare", Subcategory: "primary_care",
			Description: "Primary care with a focus on LGBTQIA+ preventative health and hormone therapy.",
			Specialties: []string{"hormone therapy", "preventative care"},
			Languages:   []string{"en"}, Pronouns: "she/her", YearEstablished: 2015,
			Location: model.Location{City: "Portland", State: "OR", Virtual: true},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationArcus, Method: "document_review"},
				Badges:                []model.TrustBadge{model.BadgeVerified, model.BadgeAffirming, model.BadgeTrained},
				InclusiveTags:         []model.InclusiveTag{model.TagTransAffirming, model.TagNonbinaryComp},
				LGBTQOwned:            true,
				CommunityEndorsements: 24,
			},
			Status: model.StatusActive, Rating: 4.9, ReviewCount: 87, CreatedAt: day(1),
		},
		{
			ID: "prov-002", Name: "Sam Delgado", BusinessName: "Delgado Counseling",
			CategoryID: "healthcare", Subcategory: "mental_health",
			Description: "Individual and couples therapy, gender identity and coming-out support.",
			Specialties: []string{"therapy", "gender identity"},
			Languages:   []string{"en", "es"}, Pronouns: "they/them", YearEstablished: 2018,
			Location: model.Location{City: "Austin", State: "TX", Virtual: true},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationCommunity, Method: "peer_review"},
				Badges:                []model.TrustBadge{model.BadgeVerified, model.BadgeAffirming},
				InclusiveTags:         []model.InclusiveTag{model.TagTransAffirming, model.TagNeuroAffirming, model.TagSlidingScale},
				LGBTQOwned:            true,
				CommunityEndorsements: 18,
			},
			Status: model.StatusActive, Rating: 4.8, ReviewCount: 52, CreatedAt: day(3),
		},
		{
			ID: "prov-003", Name: "Dr. Priya Nair", BusinessName: "Nair Endocrinology",
			CategoryID: "healthcare", Subcategory: "endocrinology",
			Description: "Endocrinology practice, HRT management and informed-consent care.",
			Specialties: []string{"HRT", "endocrinology"},
			Languages:   []string{"en", "hi"}, Pronouns: "she/her", YearEstablished: 2012,
			Location: model.Location{City: "Chicago", State: "IL", Virtual: false},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationCred, Method: "license_check"},
				Badges:                []model.TrustBadge{model.BadgeVerified},
				InclusiveTags:         []model.InclusiveTag{model.TagTransAffirming, model.TagHIVInformed},
				CommunityEndorsements: 9,
			},
			Status: model.StatusActive, Rating: 4.6, ReviewCount: 34, CreatedAt: day(5),
		},
		{
			ID: "prov-004", Name: "Harbor Health Collective",
			CategoryID: "healthcare", Subcategory: "sexual_health",
			Description: "Community clinic offering PrEP navigation, HIV testing and sexual health services.",
			Specialties: []string{"PrEP", "HIV testing"},
			Languages:   []string{"en"}, YearEstablished: 2020,
			Location: model.Location{City: "Seattle", State: "WA", Virtual: false},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationSelf},
				Badges:                []model.TrustBadge{model.BadgeAffirming},
				InclusiveTags:         []model.InclusiveTag{model.TagHIVInformed, model.TagSlidingScale},
				CommunityEndorsements: 6,
			},
			Status: model.StatusActive, Rating: 4.4, ReviewCount: 21, CreatedAt: day(8),
		},
		{
			ID: "prov-005", Name: "Jordan Wells", BusinessName: "Wells & Associates",
			CategoryID: "legal", Subcategory: "family_law",
			Description: "Family law: adoption, partnership agreements, name and gender marker changes.",
			Specialties: []string{"adoption", "name change"},
			Languages:   []string{"en"}, Pronouns: "he/him", YearEstablished: 2010,
			Location: model.Location{City: "Denver", State: "CO", Virtual: true},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationArcus, Method: "document_review"},
				Badges:                []model.TrustBadge{model.BadgeVerified, model.BadgeOwned},
				InclusiveTags:         []model.InclusiveTag{model.TagTransAffirming},
				LGBTQOwned:            true,
				CommunityEndorsements: 15,
			},
			Status: model.StatusActive, Rating: 4.7, ReviewCount: 40, CreatedAt: day(2),
		},
		{
			ID: "prov-006", Name: "Asha Brandt", BusinessName: "Brandt Immigration Law",
			CategoryID: "legal", Subcategory: "immigration",
			Description: "Asylum and immigration law for LGBTQIA+ clients.",
			Specialties: []string{"asylum", "immigration"},
			Languages:   []string{"en", "de"}, Pronouns: "she/her", YearEstablished: 2016,
			Location: model.Location{City: "New York", State: "NY", Virtual: true},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationCommunity, Method: "peer_review"},
				Badges:                []model.TrustBadge{model.BadgeVerified, model.BadgeAffirming},
				InclusiveTags:         []model.InclusiveTag{model.TagImmigrantServed},
				CommunityEndorsements: 11,
			},
			Status: model.StatusActive, Rating: 4.9, ReviewCount: 28, CreatedAt: day(10),
		},
		{
			ID: "prov-007", Name: "Miguel Santos", BusinessName: "Santos Estate Planning",
			CategoryID: "legal", Subcategory: "estate_planning",
			Description: "Wills, trusts and estate planning for chosen families.",
			Specialties: []string{"wills", "trusts"},
			Languages:   []string{"en", "pt"}, Pronouns: "he/him", YearEstablished: 2014,
			Location: model.Location{City: "Miami", State: "FL", Virtual: false},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationSelf},
				InclusiveTags:         []model.InclusiveTag{model.TagElderCompetent},
				LGBTQOwned:            true,
				CommunityEndorsements: 3,
			},
			Status: model.StatusActive, Rating: 4.2, ReviewCount: 12, CreatedAt: day(12),
		},
		{
			ID: "prov-008", Name: "Lena Kovac", BusinessName: "Kovac Financial Planning",
			CategoryID: "financial", Subcategory: "financial_planning",
			Description: "Fee-only financial planning, transition costs and chosen-family budgeting.",
			Specialties: []string{"financial planning", "budgeting"},
			Languages:   []string{"en"}, Pronouns: "she/her", YearEstablished: 2017,
			Location: model.Location{City: "Minneapolis", State: "MN", Virtual: true},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationCred, Method: "license_check"},
				Badges:                []model.TrustBadge{model.BadgeVerified, model.BadgeTrained},
				InclusiveTags:         []model.InclusiveTag{model.TagSlidingScale},
				LGBTQOwned:            true,
				CommunityEndorsements: 8,
			},
			Status: model.StatusActive, Rating: 4.5, ReviewCount: 19, CreatedAt: day(15),
		},
		{
			ID: "prov-009", Name: "True North Tax Co.",
			CategoryID: "financial", Subcategory: "tax",
			Description: "Tax preparation with experience in name-change filings and domestic partnerships.",
			Specialties: []string{"tax preparation"},
			Languages:   []string{"en"}, YearEstablished: 2019,
			Location: model.Location{City: "Phoenix", State: "AZ", Virtual: true},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationSelf},
				Badges:                []model.TrustBadge{model.BadgeOwned},
				LGBTQOwned:            true,
				CommunityEndorsements: 2,
			},
			Status: model.StatusActive, Rating: 4.1, ReviewCount: 9, CreatedAt: day(18),
		},
		{
			ID: "prov-010", Name: "Farid Haddad", BusinessName: "Haddad Mortgage Group",
			CategoryID: "financial", Subcategory: "lending",
			Description: "Mortgage brokerage welcoming all family structures.",
			Specialties: []string{"mortgages"},
			Languages:   []string{"en", "ar"}, Pronouns: "he/him", YearEstablished: 2013,
			Location: model.Location{City: "Columbus", State: "OH", Virtual: false},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationNone},
				CommunityEndorsements: 1,
			},
			Status: model.StatusActive, Rating: 3.9, ReviewCount: 7, CreatedAt: day(20),
		},
		{
			ID: "prov-011", Name: "Quinn Ashford", BusinessName: "Ashford Career Coaching",
			CategoryID: "career", Subcategory: "coaching",
			Description: "Career coaching for out professionals, workplace transition planning.",
			Specialties: []string{"career coaching", "workplace transition"},
			Languages:   []string{"en"}, Pronouns: "they/them", YearEstablished: 2021,
			Location: model.Location{City: "Portland", State: "OR", Virtual: true},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationCommunity, Method: "peer_review"},
				Badges:                []model.TrustBadge{model.BadgeAffirming, model.BadgeOwned},
				InclusiveTags:         []model.InclusiveTag{model.TagTransAffirming, model.TagNonbinaryComp},
				LGBTQOwned:            true,
				CommunityEndorsements: 13,
			},
			Status: model.StatusActive, Rating: 4.8, ReviewCount: 31, CreatedAt: day(7),
		},
		{
			ID: "prov-012", Name: "Bright Path Recruiting",
			CategoryID: "career", Subcategory: "recruiting",
			Description: "Recruiting agency partnering with inclusive employers.",
			Specialties: []string{"recruiting", "job placement"},
			Languages:   []string{"en"}, YearEstablished: 2018,
			Location: model.Location{City: "Atlanta", State: "GA", Virtual: true},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationSelf},
				Badges:                []model.TrustBadge{model.BadgeAffirming},
				CommunityEndorsements: 4,
			},
			Status: model.StatusActive, Rating: 4.0, ReviewCount: 14, CreatedAt: day(22),
		},
		{
			ID: "prov-013", Name: "Rosa Jimenez", BusinessName: "Jimenez Resume Studio",
			CategoryID: "career", Subcategory: "resume",
			Description: "Resume and interview preparation, name-change-safe document review.",
			Specialties: []string{"resumes", "interview prep"},
			Languages:   []string{"en", "es"}, Pronouns: "she/her", YearEstablished: 2022,
			Location: model.Location{City: "San Antonio", State: "TX", Virtual: true},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationNone},
				LGBTQOwned:            true,
				CommunityEndorsements: 0,
			},
			Status: model.StatusActive, Rating: 0, ReviewCount: 0, CreatedAt: day(25),
		},
		{
			ID: "prov-014", Name: "Alex Moreau", BusinessName: "Moreau Fitness",
			CategoryID: "lifestyle", Subcategory: "fitness",
			Description: "Personal training in a body-positive, gender-affirming studio.",
			Specialties: []string{"personal training", "strength"},
			Languages:   []string{"en", "fr"}, Pronouns: "he/him", YearEstablished: 2019,
			Location: model.Location{City: "Boston", State: "MA", Virtual: false},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationCred, Method: "license_check"},
				Badges:                []model.TrustBadge{model.BadgeVerified, model.BadgeAffirming, model.BadgeOwned, model.BadgeTrained},
				InclusiveTags:         []model.InclusiveTag{model.TagNonbinaryComp, model.TagAccessible},
				LGBTQOwned:            true,
				CommunityEndorsements: 9,
			},
			Status: model.StatusActive, Rating: 4.6, ReviewCount: 26, CreatedAt: day(9),
		},
		{
			ID: "prov-015", Name: "Golden Hour Photography",
			CategoryID: "lifestyle", Subcategory: "events",
			Description: "Wedding and event photography celebrating every kind of couple.",
			Specialties: []string{"weddings", "events"},
			Languages:   []string{"en"}, YearEstablished: 2016,
			Location: model.Location{City: "Nashville", State: "TN", Virtual: false},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationSelf},
				Badges:                []model.TrustBadge{model.BadgeOwned},
				LGBTQOwned:            true,
				CommunityEndorsements: 5,
			},
			Status: model.StatusActive, Rating: 4.7, ReviewCount: 44, CreatedAt: day(28),
		},
		{
			ID: "prov-016", Name: "Tomas Lindgren", BusinessName: "Lindgren Travel Design",
			CategoryID: "lifestyle", Subcategory: "travel",
			Description: "Travel planning with up-to-date safety guidance for queer travelers.",
			Specialties: []string{"travel planning", "safety research"},
			Languages:   []string{"en", "sv"}, Pronouns: "he/him", YearEstablished: 2015,
			Location: model.Location{City: "San Francisco", State: "CA", Virtual: true},
			Trust: model.TrustProfile{
				Verification:          model.Verification{Level: model.VerificationNone},
				Badges:                []model.TrustBadge{model.BadgeAffirming},
				CommunityEndorsements: 2,
			},
			Status: model.StatusActive, Rating: 4.3, ReviewCount: 16, CreatedAt: day(30),
		},
	}
}

// SeedProviders inserts the sample directory into an empty providers
// collection. Existing data is left alone so a restart never duplicates.
func SeedProviders(ctx context.Context, db *mongo.Database) error {
	col := db.Collection("providers")
	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	docs := make([]interface{}, 0, 16)
	for _, p := range SampleProviders() {
		docs = append(docs, p)
	}
	_, err = col.InsertMany(ctx, docs)
	return err
}
