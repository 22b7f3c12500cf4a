// Package okr holds the MotionVii 2026 annual action plan and lays it out
// as report sheets.
package okr

import "time"

// Revenue targets in RM.
const (
	RevenueTarget   = 1000000
	EventsRevenue   = 800000
	TrainingRevenue = 200000
)

const guideColumns = 6

// Objective is a qualitative direction with its measurable key results.
type Objective struct {
	Num  int
	Name string
	// Short is the label used on initiative rows.
	Short      string
	KeyResults []KeyResult
}

// KeyResult is a measurable outcome of an objective.
type KeyResult struct {
	ID          string
	Description string
	Metric      string
	Target      float64
	Actual      float64
	Unit        string
	Deadline    string
	Status      string
	Owner       string
	// Measure explains how the result is counted.
	Measure string
	Notes   string
}

// Initiative is an action item driving a key result.
type Initiative struct {
	ID        int
	KR        string
	Objective string
	Title     string
	// Department is the owning team.
	Department string
	Start      time.Time
	End        time.Time
	// Budget in RM; 0 when none is allocated.
	Budget      float64
	Resources   string
	PIC         string
	Accountable string
	Status      string
	Remarks     string
}

// SupportTask is recurring or ad-hoc work supporting the initiatives.
type SupportTask struct {
	ID        int
	Category  string
	Task      string
	Supports  string
	Owner     string
	Frequency string
	Priority  string
	Notes     string
}

// GuideTable is one table of the structure guide sheet.
type GuideTable struct {
	// Title is empty for the leading table, whose headers are the sheet's columns.
	Title   string
	Headers [guideColumns]string
	Rows    [][guideColumns]string
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var objectives = []Objective{
	{
		Num:   1,
		Name:  "Scale Events Business",
		Short: "Scale Events",
		KeyResults: []KeyResult{
			{
				ID:          "KR1.1",
				Description: "Win 6 event contracts generating RM800K+ combined revenue by Q4 2026",
				Metric:      "Revenue",
				Target:      800000,
				Actual:      0,
				Unit:        "RM",
				Deadline:    "Q4 2026",
				Status:      "Not Started",
				Owner:       "Khairul",
				Measure:     "Combined signed event contract value in CRM (stage = WON). ~6 contracts averaging RM130K. Includes domestic and international events.",
				Notes:       "The old KR was 'submit proposals' (activity). Revenue from signed contracts is the outcome. International event wins also count here.",
			},
			{
				ID:          "KR1.2",
				Description: "Establish 3 active event partnerships each producing at least 1 joint proposal by Q3 2026",
				Metric:      "Count",
				Target:      3,
				Actual:      0,
				Unit:        "active partnerships",
				Deadline:    "Q3 2026",
				Status:      "Not Started",
				Owner:       "Azlan",
				Measure:     "Signed MOU/agreement AND at least 1 joint proposal or referral generated. 'Active' = commercially productive, not just signed.",
				Notes:       "Partnerships multiply reach. International partnerships (e.g. through ADIPEC contacts) count.",
			},
			{
				ID:          "KR1.3",
				Description: "Secure 3 repeat bookings or referrals from existing event clients by Q4 2026",
				Metric:      "Count",
				Target:      3,
				Actual:      0,
				Unit:        "repeat/referred clients",
				Deadline:    "Q4 2026",
				Status:      "Not Started",
				Owner:       "Khairul",
				Measure:     "Clients who (a) rebook another event or (b) refer a new client. Tracked in CRM with source attribution.",
				Notes:       "Retention proves quality. Includes year-end appreciation effort to secure 2027 rebookings.",
			},
		},
	},
	{
		Num:   2,
		Name:  "Build AI Training Business",
		Short: "AI Training",
		KeyResults: []KeyResult{
			{
				ID:          "KR2.1",
				Description: "Deliver 20 paid corporate AI training sessions by Q4 2026",
				Metric:      "Count",
				Target:      20,
				Actual:      0,
				Unit:        "paid sessions",
				Deadline:    "Q4 2026",
				Status:      "Not Started",
				Owner:       "Khairul",
				Measure:     "Completed paid sessions (half-day or full-day). Free/discounted pilot workshops do NOT count. HRDCorp-claimable sessions count. International clients count.",
				Notes:       "20 sessions at ~RM10K avg = RM200K. Pilots (3 planned) are initiatives that validate content, not KR targets.",
			},
			{
				ID:          "KR2.2",
				Description: "Generate RM200K in AI training revenue by Q4 2026",
				Metric:      "Revenue",
				Target:      200000,
				Actual:      0,
				Unit:        "RM",
				Deadline:    "Q4 2026",
				Status:      "Not Started",
				Owner:       "Khairul",
				Measure:     "Total invoiced AI training revenue. HRDCorp-claimable sessions are premium-priced. 20 sessions x RM10K avg = RM200K target.",
				Notes:       "HRDCorp certification is a critical initiative — corporates can claim costs from their levy, justifying higher pricing.",
			},
			{
				ID:          "KR2.3",
				Description: "Secure 5 repeat or referred training clients by Q4 2026",
				Metric:      "Count",
				Target:      5,
				Actual:      0,
				Unit:        "repeat/referred clients",
				Deadline:    "Q4 2026",
				Status:      "Not Started",
				Owner:       "Khairul",
				Measure:     "Clients who either (a) book a second training session, or (b) were referred by a previous client. Tracked in CRM with source.",
				Notes:       "Repeat/referral = proof of quality. More sustainable than cold acquisition. NPS tracking feeds into this.",
			},
		},
	},
}

var initiatives = []Initiative{
	{ID: 1, KR: "KR1.1", Objective: "Scale Events",
		Title:      "Identify 15 potential event clients from existing network and industry contacts",
		Department: "Operations", Start: day(2026, 1, 1), End: day(2026, 2, 28),
		PIC:        "Azlan", Accountable: "Khairul", Status: "Pending",
	},
	{ID: 2, KR: "KR1.1", Objective: "Scale Events",
		Title:      "Submit 7 event proposals and set client discussions",
		Department: "Operations", Start: day(2026, 1, 1), End: day(2026, 6, 30),
		Budget:     1400, Resources: "Meetings",
		PIC:        "Azlan", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Was KR1.1 in old SAAP — now an initiative. Submitting is the work; winning is the outcome.",
	},
	{ID: 3, KR: "KR1.1", Objective: "Scale Events",
		Title:      "Follow-up with potential clients (structured cadence via CRM)",
		Department: "Operations", Start: day(2026, 1, 1), End: day(2026, 9, 30),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
	},
	{ID: 4, KR: "KR1.1", Objective: "Scale Events",
		Title:      "Implement CRM pipeline to track event proposals, follow-ups, and win/loss",
		Department: "Operations", Start: day(2026, 1, 1), End: day(2026, 3, 31),
		Budget:     1800, Resources: "Software - Pipeline",
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
		Remarks:    "SAAP can feed data back — track proposal stage, conversion rate",
	},
	{ID: 5, KR: "KR1.1", Objective: "Scale Events",
		Title:      "Conduct discussion on SUKMA 2026 opportunities with Bisabi Sdn Bhd",
		Department: "Business Dev", Start: day(2026, 1, 1), End: day(2026, 2, 28),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
	},
	{ID: 6, KR: "KR1.1", Objective: "Scale Events",
		Title:      "Attend 1 international exhibition (ADIPEC/OTC Asia) to source international event leads",
		Department: "Business Dev", Start: day(2026, 1, 1), End: day(2026, 9, 30),
		Budget:     10000, Resources: "Travel + registration",
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
		Remarks:    "International folded into events. O&G exhibitions have highest-value leads.",
	},
	{ID: 7, KR: "KR1.1", Objective: "Scale Events",
		Title:      "Follow-up with ADIPEC leads and PETRONAS Abu Dhabi on content localisation",
		Department: "Business Dev", Start: day(2026, 1, 15), End: day(2026, 3, 31),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Warmest international lead — Petronas connection in UAE",
	},
	{ID: 8, KR: "KR1.1", Objective: "Scale Events",
		Title:      "Offer pilot engagement or proof-of-concept to 3 international prospects",
		Department: "Operations", Start: day(2026, 2, 1), End: day(2026, 6, 30),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Low-commitment entry point to demonstrate quality to international market",
	},
	{ID: 9, KR: "KR1.2", Objective: "Scale Events",
		Title:      "Source and approach 5 event organisers (not logistics)",
		Department: "Business Dev", Start: day(2026, 1, 1), End: day(2026, 3, 31),
		PIC:        "Azlan", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Need 5 approaches to land 3 active partnerships",
	},
	{ID: 10, KR: "KR1.2", Objective: "Scale Events",
		Title:      "Set meetings with top 3 event organisers from sourcing list",
		Department: "Business Dev", Start: day(2026, 2, 1), End: day(2026, 4, 30),
		PIC:        "Azlan", Accountable: "Khairul", Status: "Pending",
	},
	{ID: 11, KR: "KR1.2", Objective: "Scale Events",
		Title:      "Obtain pricing from 2 event logistics companies for partnership bundling",
		Department: "Business Dev", Start: day(2026, 4, 1), End: day(2026, 6, 30),
		PIC:        "Azlan", Accountable: "Khairul", Status: "Pending",
	},
	{ID: 12, KR: "KR1.2", Objective: "Scale Events",
		Title:      "Secure 2 reliable event PIC/Account managers (freelance/contract)",
		Department: "Business Dev", Start: day(2026, 1, 1), End: day(2026, 6, 30),
		Budget:     60000, Resources: "Event manager contracts",
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
	},
	{ID: 13, KR: "KR1.2", Objective: "Scale Events",
		Title:      "Attend 2 industry events for networking and partnership development",
		Department: "Business Dev", Start: day(2026, 3, 1), End: day(2026, 9, 30),
		Budget:     2000, Resources: "Delegate passes",
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
	},
	{ID: 14, KR: "KR1.2", Objective: "Scale Events",
		Title:      "Create international marketing pack showcasing Petronas and O&G video portfolio",
		Department: "Marketing", Start: day(2026, 1, 15), End: day(2026, 3, 31),
		PIC:        "Azlan", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Leverage strongest asset to open both domestic and international partnership doors",
	},
	{ID: 15, KR: "KR1.3", Objective: "Scale Events",
		Title:      "Build event case studies for marketing (min 2 case studies)",
		Department: "Marketing", Start: day(2026, 3, 1), End: day(2026, 6, 30),
		PIC:        "Azlan", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Case studies drive both repeat bookings and new referrals",
	},
	{ID: 16, KR: "KR1.3", Objective: "Scale Events",
		Title:      "Secure repeat bookings from existing clients through proactive outreach",
		Department: "Business Dev", Start: day(2026, 6, 1), End: day(2026, 10, 31),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
	},
	{ID: 17, KR: "KR1.3", Objective: "Scale Events",
		Title:      "Year-end client appreciation and 2027 planning sessions",
		Department: "Business Dev", Start: day(2026, 10, 1), End: day(2026, 12, 31),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Lock in 2027 commitments while relationship is warm",
	},
	{ID: 18, KR: "KR1.3", Objective: "Scale Events",
		Title:      "Build 1 international portfolio piece leveraging Petronas partnership",
		Department: "Business Dev", Start: day(2026, 3, 1), End: day(2026, 9, 30),
		PIC:        "Azlan", Accountable: "Khairul", Status: "Pending",
		Remarks:    "International credibility piece that feeds both new leads and repeat trust",
	},
	{ID: 19, KR: "KR2.1", Objective: "AI Training",
		Title:      "Research corporate AI training market, competitors, and pricing in Malaysia",
		Department: "Business Dev", Start: day(2026, 1, 1), End: day(2026, 2, 15),
		PIC:        "Azlan", Accountable: "Khairul", Status: "Pending",
		Remarks:    "What would Petronas/corporate teams actually pay to learn?",
	},
	{ID: 20, KR: "KR2.1", Objective: "AI Training",
		Title:      "Define 3 AI training modules (topics, duration, pricing)",
		Department: "Business Dev", Start: day(2026, 1, 15), End: day(2026, 2, 28),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
		Remarks:    "e.g. AI for O&G, AI for Marketing, Generative AI Workflows",
	},
	{ID: 21, KR: "KR2.1", Objective: "AI Training",
		Title:      "Develop Module 1 curriculum and materials",
		Department: "Operations", Start: day(2026, 2, 1), End: day(2026, 3, 31),
		Budget:     5000, Resources: "Content development",
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
	},
	{ID: 22, KR: "KR2.1", Objective: "AI Training",
		Title:      "Develop Module 2 curriculum and materials",
		Department: "Operations", Start: day(2026, 3, 1), End: day(2026, 4, 30),
		Budget:     5000, Resources: "Content development",
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
	},
	{ID: 23, KR: "KR2.1", Objective: "AI Training",
		Title:      "Develop Module 3 curriculum and materials",
		Department: "Operations", Start: day(2026, 4, 1), End: day(2026, 5, 31),
		Budget:     5000, Resources: "Content development",
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
	},
	{ID: 24, KR: "KR2.1", Objective: "AI Training",
		Title:      "Conduct 3 pilot workshops (discounted/free) to validate content and delivery",
		Department: "Operations", Start: day(2026, 3, 1), End: day(2026, 5, 31),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Pilots do NOT count toward KR2.1 (paid sessions). They validate content and generate testimonials.",
	},
	{ID: 25, KR: "KR2.1", Objective: "AI Training",
		Title:      "Refine curriculum based on pilot feedback",
		Department: "Operations", Start: day(2026, 5, 1), End: day(2026, 6, 30),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Iterate before commercial launch — critical quality gate",
	},
	{ID: 26, KR: "KR2.2", Objective: "AI Training",
		Title:      "Apply for HRDCorp training provider certification",
		Department: "Business Dev", Start: day(2026, 1, 15), End: day(2026, 4, 30),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
		Remarks:    "CRITICAL: HRDCorp certification lets corporates claim training costs from levy. Major selling point in Malaysia.",
	},
	{ID: 27, KR: "KR2.2", Objective: "AI Training",
		Title:      "Price and package training offerings (half-day, full-day, multi-session series)",
		Department: "Operations", Start: day(2026, 2, 1), End: day(2026, 3, 31),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Target RM10K+ per corporate session. HRDCorp-claimable sessions priced at premium.",
	},
	{ID: 28, KR: "KR2.2", Objective: "AI Training",
		Title:      "Identify 20 target companies for AI training (leverage Petronas network)",
		Department: "Business Dev", Start: day(2026, 2, 1), End: day(2026, 4, 30),
		PIC:        "Azlan", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Start with warm leads — companies that already know MotionVii or Petronas ecosystem",
	},
	{ID: 29, KR: "KR2.2", Objective: "AI Training",
		Title:      "Create AI Training marketing collateral (brochure, website section)",
		Department: "Marketing", Start: day(2026, 3, 1), End: day(2026, 5, 31),
		Budget:     3000, Resources: "Design + web",
		PIC:        "Azlan", Accountable: "Khairul", Status: "Pending",
	},
	{ID: 30, KR: "KR2.2", Objective: "AI Training",
		Title:      "Launch full commercial AI training offering",
		Department: "Marketing", Start: day(2026, 5, 1), End: day(2026, 6, 30),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
		Remarks:    "After pilots are validated and HRDCorp cert is in progress",
	},
	{ID: 31, KR: "KR2.2", Objective: "AI Training",
		Title:      "Pitch AI training to top 10 corporate prospects",
		Department: "Business Dev", Start: day(2026, 4, 1), End: day(2026, 7, 31),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
	},
	{ID: 32, KR: "KR2.2", Objective: "AI Training",
		Title:      "Deliver 20 corporate workshop sessions",
		Department: "Operations", Start: day(2026, 5, 1), End: day(2026, 12, 31),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Main delivery effort — ramp up after commercial launch",
	},
	{ID: 33, KR: "KR2.2", Objective: "AI Training",
		Title:      "Explore AI training opportunities with international corporates (e.g. Petronas Abu Dhabi)",
		Department: "Business Dev", Start: day(2026, 6, 1), End: day(2026, 12, 31),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
		Remarks:    "International folded in — international training revenue also counts toward 20%",
	},
	{ID: 34, KR: "KR2.3", Objective: "AI Training",
		Title:      "Implement post-training feedback survey and NPS tracking",
		Department: "Operations", Start: day(2026, 4, 1), End: day(2026, 5, 31),
		PIC:        "Azlan", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Data to prove quality, identify improvements, and support testimonials",
	},
	{ID: 35, KR: "KR2.3", Objective: "AI Training",
		Title:      "Create AI training case study and testimonials from first sessions",
		Department: "Marketing", Start: day(2026, 6, 1), End: day(2026, 8, 31),
		PIC:        "Azlan", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Social proof drives referrals — get permission from pilot participants",
	},
	{ID: 36, KR: "KR2.3", Objective: "AI Training",
		Title:      "Follow up with all trained participants about advanced sessions and referrals",
		Department: "Business Dev", Start: day(2026, 7, 1), End: day(2026, 12, 31),
		PIC:        "Khairul", Accountable: "Khairul", Status: "Pending",
		Remarks:    "Systematic — don't rely on organic referrals. Schedule follow-ups in CRM.",
	},
	{ID: 37, KR: "KR2.3", Objective: "AI Training",
		Title:      "Offer referral incentive (discount on next session) to existing training clients",
		Department: "Marketing", Start: day(2026, 6, 1), End: day(2026, 12, 31),
		PIC:        "Azlan", Accountable: "Khairul", Status: "Pending",
	},
}

var supportTasks = []SupportTask{
	{ID: 1, Category: "Design & Creative", Task: "Design event proposal decks and pitch materials",
		Supports: "KR1.1", Owner: "Azlan", Frequency: "Per proposal", Priority: "High",
		Notes:    "Each of the 7 proposals needs a tailored deck. Template-first approach to save time."},
	{ID: 2, Category: "Design & Creative", Task: "Design event collateral (banners, backdrops, signage, badges)",
		Supports: "KR1.1", Owner: "Azlan", Frequency: "Per event won", Priority: "High",
		Notes:    "Triggered after contract signed. Budget included in event project cost."},
	{ID: 3, Category: "Design & Creative", Task: "Video production and editing for event content",
		Supports: "KR1.1, KR1.3", Owner: "Azlan", Frequency: "Per event", Priority: "High",
		Notes:    "Event recap videos, highlight reels. Also feeds case studies for KR1.3."},
	{ID: 4, Category: "Design & Creative", Task: "Design event case study layouts",
		Supports: "KR1.3", Owner: "Azlan", Frequency: "2x per year", Priority: "Medium",
		Notes:    "Supports initiative #15 — need min 2 case studies for marketing."},
	{ID: 5, Category: "Design & Creative", Task: "Design international marketing pack (portfolio, showreel)",
		Supports: "KR1.2", Owner: "Azlan", Frequency: "Once + updates", Priority: "High",
		Notes:    "Supports initiative #14. Showcase Petronas/O&G work for partnerships and intl prospects."},
	{ID: 6, Category: "Design & Creative", Task: "Update MotionVii website content and visuals",
		Supports: "KR1.2, KR2.2", Owner: "Azlan", Frequency: "Monthly", Priority: "Medium",
		Notes:    "Keep portfolio current. Add AI training section after commercial launch."},
	{ID: 7, Category: "Design & Creative", Task: "Social media content creation (posts, reels, stories)",
		Supports: "KR1.2, KR2.2", Owner: "Azlan", Frequency: "Weekly", Priority: "Medium",
		Notes:    "Maintain brand visibility across both events and AI training."},
	{ID: 8, Category: "Design & Creative", Task: "Design AI training presentation slides and handout materials",
		Supports: "KR2.1", Owner: "Azlan", Frequency: "Per module", Priority: "High",
		Notes:    "Supports Module 1/2/3 development. Professional materials = premium pricing justified."},
	{ID: 9, Category: "Design & Creative", Task: "Design AI training brochure and marketing collateral",
		Supports: "KR2.2", Owner: "Azlan", Frequency: "Once + updates", Priority: "High",
		Notes:    "Supports initiative #29. Needs to be ready before commercial launch."},
	{ID: 10, Category: "Design & Creative", Task: "Video testimonials from training participants",
		Supports: "KR2.3", Owner: "Azlan", Frequency: "After each session", Priority: "Medium",
		Notes:    "Quick video testimonials boost referral credibility. Get permission during session."},
	{ID: 11, Category: "Design & Creative", Task: "Portfolio and showreel updates (quarterly refresh)",
		Supports: "KR1.1, KR1.2", Owner: "Azlan", Frequency: "Quarterly", Priority: "Medium",
		Notes:    "Keep demo reel current with latest event and video work."},
	{ID: 12, Category: "Business & Admin", Task: "Proposal writing and quotation preparation",
		Supports: "KR1.1", Owner: "Khairul", Frequency: "Per opportunity", Priority: "High",
		Notes:    "Each proposal needs custom scope, pricing, timeline. Use templates to speed up."},
	{ID: 13, Category: "Business & Admin", Task: "Contract preparation, review, and execution",
		Supports: "KR1.1, KR2.2", Owner: "Khairul", Frequency: "Per deal", Priority: "High",
		Notes:    "Both event contracts and AI training contracts."},
	{ID: 14, Category: "Business & Admin", Task: "Invoicing and payment follow-up",
		Supports: "KR1.1, KR2.2", Owner: "Khairul", Frequency: "Per project/session", Priority: "High",
		Notes:    "Revenue only counts when invoiced. Track in SAAP project financials."},
	{ID: 15, Category: "Business & Admin", Task: "Financial reporting and budget tracking (SAAP)",
		Supports: "All KRs", Owner: "Khairul", Frequency: "Monthly", Priority: "High",
		Notes:    "Monthly review of revenue vs RM1M target. Events vs Training split."},
	{ID: 16, Category: "Business & Admin", Task: "Client relationship management and meeting notes",
		Supports: "KR1.1, KR1.3", Owner: "Khairul", Frequency: "Ongoing", Priority: "Medium",
		Notes:    "CRM updates after every client interaction. Feed data to KR tracking."},
	{ID: 17, Category: "Business & Admin", Task: "Supplier and vendor management (logistics, venues, AV)",
		Supports: "KR1.1, KR1.2", Owner: "Khairul", Frequency: "Per event", Priority: "Medium",
		Notes:    "Negotiate rates, manage relationships, ensure delivery quality."},
	{ID: 18, Category: "Business & Admin", Task: "HR — freelancer/contractor onboarding and management",
		Supports: "KR1.2", Owner: "Khairul", Frequency: "As needed", Priority: "Medium",
		Notes:    "Event PIC managers, marketing contractors. Supports initiative #12."},
	{ID: 19, Category: "Business & Admin", Task: "HRDCorp application documentation and follow-up",
		Supports: "KR2.2", Owner: "Khairul", Frequency: "Until approved", Priority: "High",
		Notes:    "Supports initiative #26. Documentation-heavy process — track milestones."},
	{ID: 20, Category: "Business & Admin", Task: "AI training session logistics (venue, equipment, catering)",
		Supports: "KR2.1", Owner: "Khairul", Frequency: "Per session", Priority: "Medium",
		Notes:    "Book venue, arrange equipment, handle logistics for each corporate session."},
	{ID: 21, Category: "Business & Admin", Task: "Partnership agreement drafting and negotiation",
		Supports: "KR1.2", Owner: "Khairul", Frequency: "Per partnership", Priority: "Medium",
		Notes:    "MOU or formal partnership agreement. Legal review if needed."},
	{ID: 22, Category: "Business & Admin", Task: "International compliance and logistics (travel, permits, banking)",
		Supports: "KR1.1", Owner: "Khairul", Frequency: "Per intl engagement", Priority: "Low",
		Notes:    "Only triggered when international work materializes. Cross-border invoicing, travel planning."},
	{ID: 23, Category: "Talenta Ideas", Task: "Design requests from Talenta Ideas (ad-hoc)",
		Supports: "Parent company", Owner: "Azlan", Frequency: "Ad-hoc", Priority: "Medium",
		Notes:    "As subsidiary, MotionVii supports Talenta's design needs. Track hours to manage capacity."},
	{ID: 24, Category: "Talenta Ideas", Task: "Video production requests from Talenta Ideas",
		Supports: "Parent company", Owner: "Azlan", Frequency: "Ad-hoc", Priority: "Medium",
		Notes:    "Corporate videos, internal comms, event coverage for Talenta's own projects."},
	{ID: 25, Category: "Talenta Ideas", Task: "Talenta Ideas brand and marketing material updates",
		Supports: "Parent company", Owner: "Azlan", Frequency: "Quarterly", Priority: "Low",
		Notes:    "Brochure updates, presentation templates, brand guideline maintenance."},
	{ID: 26, Category: "Talenta Ideas", Task: "Coordination and reporting to Talenta Ideas management",
		Supports: "Parent company", Owner: "Khairul", Frequency: "Monthly", Priority: "Medium",
		Notes:    "Monthly update on MotionVii performance, revenue, and SAAP progress to parent company."},
	{ID: 27, Category: "Operations", Task: "SAAP platform maintenance and development",
		Supports: "All KRs", Owner: "Khairul", Frequency: "Ongoing", Priority: "Medium",
		Notes:    "The tool tracking all of this. Bug fixes, new features, data integrity."},
	{ID: 28, Category: "Operations", Task: "Software subscriptions and tool management",
		Supports: "All KRs", Owner: "Khairul", Frequency: "Monthly", Priority: "Low",
		Notes:    "CRM, automation tools, design software, project management. Renewals and cost control."},
	{ID: 29, Category: "Operations", Task: "Document management and filing (contracts, proposals, invoices)",
		Supports: "All KRs", Owner: "Khairul", Frequency: "Ongoing", Priority: "Low",
		Notes:    "Keep organized for audits, HRDCorp requirements, and client records."},
	{ID: 30, Category: "Operations", Task: "Team capacity planning and workload balancing",
		Supports: "All KRs", Owner: "Khairul", Frequency: "Bi-weekly", Priority: "High",
		Notes:    "3-person team running 37 initiatives + support tasks + Talenta requests. Watch for bottlenecks on Azlan (design) and Khairul (business)."},
}

var guideTables = []GuideTable{
	{
		Headers: [guideColumns]string{"Layer", "What It Is", "Example", "Tracking", "Review Cadence", "Who Owns It"},
		Rows: [][guideColumns]string{
			{"Objective", "Aspirational direction\n(qualitative, inspiring)\n\n2 objectives for 2026:\n80% Events + 20% AI Training", "Scale Events Business", "No metric — just direction.\nSuccess = KRs achieved.", "Annual", "CEO / Leadership"},
			{"Key Result", "Measurable OUTCOME\n(specific, time-bound)\n\nMust answer: 'What changed?'\nNOT: 'What did we do?'", "Win 6 event contracts\ngenerating RM800K+ by Q4", "Target vs Actual\nProgress %\nStatus (On Track / At Risk)", "Monthly review\nQuarterly scoring", "KR Owner"},
			{"Initiative", "Action item that DRIVES a KR\n\nThis is the work you do.\nMultiple initiatives per KR.", "Submit 7 event proposals\nand set discussions", "Status (Pending → Completed)\nStart/End dates, Budget", "Weekly / Bi-weekly", "Person In Charge"},
		},
	},
	{
		Title:   "Revenue Target Breakdown:",
		Headers: [guideColumns]string{"Stream", "Target", "% of Total", "Key Revenue Logic", "", ""},
		Rows: [][guideColumns]string{
			{"Events", "RM800,000", "80%", "~6 events x RM130K avg.\nIncludes domestic + international.", "", ""},
			{"AI Training", "RM200,000", "20%", "~20 sessions x RM10K avg.\nHRDCorp-claimable = premium pricing.", "", ""},
			{"Total", "RM1,000,000", "100%", "International revenue counts\nunder whichever stream it falls.", "", ""},
		},
	},
	{
		Title:   "What Changed from Previous SAAP:",
		Headers: [guideColumns]string{"Change", "Before", "After", "Why", "", ""},
		Rows: [][guideColumns]string{
			{"3 → 2 Objectives", "Events + International B2B\n+ AI Product (3 separate)", "Events (80%) + AI Training (20%)\nInternational folded into both", "International is a market strategy,\nnot a business line. Revenue counts\nunder events or training.", "", ""},
			{"AI Product → Training", "Build product, join accelerator,\nfind investor", "Deliver paid training to corporates,\ngenerate RM200K, earn repeat clients", "Training leverages existing expertise\nand client base (Petronas network).\nNo investor needed — revenue model.", "", ""},
			{"KR = Outcome", "'Submit 7 proposals' (activity)\n'Build lead system' (task)", "'Win 6 contracts / RM800K' (outcome)\n'Deliver 20 sessions' (outcome)", "KRs measure results, not effort.\nActivities become initiatives.", "", ""},
			{"HRDCorp certification", "Not in previous SAAP", "Critical initiative under KR2.2\n(enables corporate sales)", "Corporates claim training costs\nfrom HRDCorp levy — major\nselling point in Malaysian market.", "", ""},
			{"Revenue targets", "No explicit revenue numbers\non KRs", "KR1.1: RM800K | KR2.2: RM200K\nRM1M total", "Revenue makes KRs concrete\nand ties directly to business goal.", "", ""},
		},
	},
	{
		Title:   "OKR Anti-Patterns to Avoid:",
		Headers: [guideColumns]string{"Anti-Pattern", "Example", "Fix", "Diagnostic Test", "", ""},
		Rows: [][guideColumns]string{
			{"Activity as KR", "'Submit 7 proposals'", "'Win 4 contracts'", "'Can I do this without the\nbusiness improving?'\nIf yes → it's an activity.", "", ""},
			{"Task as KR", "'Build lead capture system'", "'Generate 20 qualified leads'", "'Is this a deliverable or a result?'\nSystems/tools are deliverables.", "", ""},
			{"Vague KR", "'Develop 3 partnerships'", "'3 active partnerships each\nproducing 1+ joint proposal'", "'Would two people agree this\nis achieved?' Add qualifying criteria.", "", ""},
		},
	},
}
