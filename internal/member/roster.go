package member

// 内置名册：七位理事 + 十二位地区联储主席中的常任与轮换席位。
// roster_path 指定的 YAML 可以整体替换或按 id 覆盖这里的条目。

func BuiltinRoster() []Member {
	return []Member{
		{
			ID: "powell", Name: "Jerome H. Powell", Role: RoleChair,
			Bank: "Board of Governors", Stance: StanceNeutral, Style: StylePragmatic,
			Priorities:  []string{"price stability", "maximum employment", "financial stability"},
			KeyConcerns: []string{"inflation expectations anchoring", "labor market conditions", "data dependency", "avoiding policy error"},
			NotableQuotes: []string{
				"The time has come for policy to adjust.",
				"We will be data dependent.",
				"Price stability is the bedrock of a healthy economy.",
			},
			Background:     "Former investment banker and Treasury official. Appointed Chair in 2018, reappointed in 2022.",
			ExpertiseAreas: []string{"financial markets", "monetary policy transmission", "crisis management"},
		},
		{
			ID: "jefferson", Name: "Philip N. Jefferson", Role: RoleViceChair,
			Bank: "Board of Governors", Stance: StanceDove, Style: StyleAcademic,
			Priorities:     []string{"maximum employment", "price stability", "inclusive growth"},
			KeyConcerns:    []string{"labor market disparities", "wage growth sustainability", "inflation persistence"},
			NotableQuotes:  []string{"We must remain attentive to conditions across all segments of the labor market."},
			Background:     "Academic economist specializing in poverty and labor markets.",
			ExpertiseAreas: []string{"labor economics", "poverty research", "monetary policy"},
		},
		{
			ID: "bowman", Name: "Michelle W. Bowman", Role: RoleGovernor,
			Bank: "Board of Governors", Stance: StanceHawk, Style: StyleDirect,
			HistoricalDissents: 3,
			Priorities:         []string{"price stability", "community banking", "regulatory balance"},
			KeyConcerns:        []string{"inflation remaining elevated", "community bank regulation", "housing market conditions", "rural economy"},
			NotableQuotes: []string{
				"I see upside risks to inflation.",
				"We should not prematurely declare victory over inflation.",
			},
			Background:     "Former Kansas state bank commissioner and community banker.",
			ExpertiseAreas: []string{"banking regulation", "community banking", "rural finance"},
		},
		{
			ID: "waller", Name: "Christopher J. Waller", Role: RoleGovernor,
			Bank: "Board of Governors", Stance: StanceHawk, Style: StyleDataDriven,
			Priorities:  []string{"price stability", "credibility", "forward guidance clarity"},
			KeyConcerns: []string{"inflation expectations", "wage-price dynamics", "policy credibility", "neutral rate estimation"},
			NotableQuotes: []string{
				"I want to see more good data before supporting a rate cut.",
				"Inflation is job one.",
			},
			Background:     "Academic economist, former research director at St. Louis Fed.",
			ExpertiseAreas: []string{"monetary theory", "inflation dynamics", "central bank communication"},
		},
		{
			ID: "cook", Name: "Lisa D. Cook", Role: RoleGovernor,
			Bank: "Board of Governors", Stance: StanceDove, Style: StyleAcademic,
			Priorities:     []string{"maximum employment", "inclusive labor markets", "economic equity"},
			KeyConcerns:    []string{"labor market inclusivity", "innovation and growth", "racial economic disparities"},
			NotableQuotes:  []string{"A strong labor market benefits all Americans."},
			Background:     "Michigan State University economist.",
			ExpertiseAreas: []string{"labor markets", "innovation economics", "economic history"},
		},
		{
			ID: "kugler", Name: "Adriana D. Kugler", Role: RoleGovernor,
			Bank: "Board of Governors", Stance: StanceDove, Style: StyleAcademic,
			Priorities:     []string{"labor market health", "international perspectives", "price stability"},
			KeyConcerns:    []string{"employment dynamics", "international spillovers", "emerging market conditions"},
			NotableQuotes:  []string{"Labor markets continue to show resilience."},
			Background:     "Former World Bank chief economist.",
			ExpertiseAreas: []string{"labor economics", "international development", "policy evaluation"},
		},
		{
			ID: "barr", Name: "Michael S. Barr", Role: RoleViceChairSupervision,
			Bank: "Board of Governors", Stance: StanceNeutral, Style: StyleMeasured,
			Priorities:     []string{"financial stability", "bank supervision", "price stability"},
			KeyConcerns:    []string{"banking system resilience", "credit conditions", "financial stability risks"},
			NotableQuotes:  []string{"A resilient banking system supports the economy."},
			Background:     "Treasury official under Obama. Expert in financial regulation.",
			ExpertiseAreas: []string{"financial regulation", "banking supervision", "consumer finance"},
		},
		{
			ID: "williams", Name: "John C. Williams", Role: RolePresident,
			Bank: "Federal Reserve Bank of New York", Stance: StanceNeutral, Style: StyleAcademic,
			Priorities:     []string{"price stability", "neutral rate assessment", "communication clarity"},
			KeyConcerns:    []string{"r-star estimation", "inflation expectations", "monetary policy transmission"},
			NotableQuotes:  []string{"We need to see sustained progress on inflation."},
			Background:     "Career Fed economist, former SF Fed president.",
			ExpertiseAreas: []string{"monetary policy", "neutral rate estimation", "macroeconomic modeling"},
		},
		{
			ID: "goolsbee", Name: "Austan D. Goolsbee", Role: RolePresident,
			Bank: "Federal Reserve Bank of Chicago", Stance: StanceDove, Style: StyleDirect,
			VotingYears:    []int{2024, 2026, 2028},
			Priorities:     []string{"maximum employment", "economic growth", "innovation"},
			KeyConcerns:    []string{"real economy conditions", "supply chain normalization", "productivity growth"},
			NotableQuotes:  []string{"We need to look at the totality of the data."},
			Background:     "Former Obama economic advisor.",
			ExpertiseAreas: []string{"behavioral economics", "public policy", "technology economics"},
		},
		{
			ID: "hammack", Name: "Beth M. Hammack", Role: RolePresident,
			Bank: "Federal Reserve Bank of Cleveland", Stance: StanceNeutral, Style: StyleMeasured,
			VotingYears:    []int{2025, 2027, 2029},
			Priorities:     []string{"price stability", "banking system health", "data dependency"},
			KeyConcerns:    []string{"inflation trajectory", "banking conditions", "regional manufacturing"},
			NotableQuotes:  []string{"Policy must remain nimble as conditions evolve."},
			Background:     "Former Goldman Sachs CFO and treasurer.",
			ExpertiseAreas: []string{"financial markets", "banking", "corporate finance"},
		},
		{
			ID: "bostic", Name: "Raphael W. Bostic", Role: RolePresident,
			Bank: "Federal Reserve Bank of Atlanta", Stance: StanceNeutral, Style: StyleMeasured,
			VotingYears:    []int{2024, 2027},
			Priorities:     []string{"inclusive growth", "community development", "price stability"},
			KeyConcerns:    []string{"regional economic disparities", "housing affordability", "small business conditions"},
			NotableQuotes:  []string{"We must consider how our policies affect all communities."},
			Background:     "Former HUD official.",
			ExpertiseAreas: []string{"housing economics", "community development", "urban economics"},
		},
		{
			ID: "daly", Name: "Mary C. Daly", Role: RolePresident,
			Bank: "Federal Reserve Bank of San Francisco", Stance: StanceDove, Style: StyleDirect,
			VotingYears:    []int{2024, 2027},
			Priorities:     []string{"labor market", "price stability", "policy communication"},
			KeyConcerns:    []string{"labor market health", "wage dynamics", "West Coast economic conditions"},
			NotableQuotes:  []string{"The labor market remains our north star."},
			Background:     "Career Fed economist, rose through research ranks at SF Fed.",
			ExpertiseAreas: []string{"labor economics", "wage dynamics", "regional economics"},
		},
		{
			ID: "musalem", Name: "Alberto G. Musalem", Role: RolePresident,
			Bank: "Federal Reserve Bank of St. Louis", Stance: StanceHawk, Style: StyleDataDriven,
			VotingYears:    []int{2025, 2028},
			Priorities:     []string{"price stability", "inflation credibility", "financial conditions"},
			KeyConcerns:    []string{"inflation persistence", "policy credibility", "financial market conditions"},
			NotableQuotes:  []string{"Returning inflation to target is paramount."},
			Background:     "Former NY Fed markets group and Tudor Investment Corp.",
			ExpertiseAreas: []string{"financial markets", "monetary policy implementation", "inflation"},
		},
		{
			ID: "schmid", Name: "Jeffrey R. Schmid", Role: RolePresident,
			Bank: "Federal Reserve Bank of Kansas City", Stance: StanceHawk, Style: StyleDirect,
			VotingYears:    []int{2025, 2028},
			Priorities:     []string{"price stability", "agricultural economy", "regional banking"},
			KeyConcerns:    []string{"inflation persistence", "agricultural conditions", "energy sector"},
			NotableQuotes:  []string{"Inflation remains too high for comfort."},
			Background:     "Former banker with extensive community banking experience.",
			ExpertiseAreas: []string{"banking", "agricultural finance", "regional economics"},
		},
		{
			ID: "collins", Name: "Susan M. Collins", Role: RolePresident,
			Bank: "Federal Reserve Bank of Boston", Stance: StanceNeutral, Style: StyleAcademic,
			VotingYears:    []int{2025, 2028},
			Priorities:     []string{"price stability", "labor markets", "international trade"},
			KeyConcerns:    []string{"inflation expectations", "labor supply constraints", "global economic conditions"},
			NotableQuotes:  []string{"We need patience as policy works through the economy."},
			Background:     "Former provost at University of Michigan.",
			ExpertiseAreas: []string{"international economics", "trade policy", "labor markets"},
		},
		{
			ID: "barkin", Name: "Thomas I. Barkin", Role: RolePresident,
			Bank: "Federal Reserve Bank of Richmond", Stance: StanceNeutral, Style: StylePragmatic,
			VotingYears:    []int{2024, 2027},
			Priorities:     []string{"price stability", "business conditions", "regional economy"},
			KeyConcerns:    []string{"business sentiment", "hiring conditions", "supply chain"},
			NotableQuotes:  []string{"I talk to businesses every day - they inform my view."},
			Background:     "Former McKinsey partner.",
			ExpertiseAreas: []string{"business strategy", "management consulting", "regional economics"},
		},
		{
			ID: "harker", Name: "Patrick T. Harker", Role: RolePresident,
			Bank: "Federal Reserve Bank of Philadelphia", Stance: StanceNeutral, Style: StyleAcademic,
			VotingYears:    []int{2026, 2029},
			Priorities:     []string{"price stability", "fintech innovation", "workforce development"},
			KeyConcerns:    []string{"inflation trajectory", "technology disruption", "labor force participation"},
			NotableQuotes:  []string{"We need to be thoughtful about the path forward."},
			Background:     "Former University of Delaware president.",
			ExpertiseAreas: []string{"fintech", "workforce development", "regional economics"},
		},
		{
			ID: "logan", Name: "Lorie K. Logan", Role: RolePresident,
			Bank: "Federal Reserve Bank of Dallas", Stance: StanceHawk, Style: StyleDataDriven,
			VotingYears:    []int{2026, 2029},
			Priorities:     []string{"price stability", "balance sheet policy", "energy sector"},
			KeyConcerns:    []string{"inflation control", "balance sheet normalization", "energy markets"},
			NotableQuotes:  []string{"We should not take the progress on inflation for granted."},
			Background:     "Former NY Fed markets chief.",
			ExpertiseAreas: []string{"monetary policy operations", "financial markets", "balance sheet policy"},
		},
		{
			ID: "kashkari", Name: "Neel Kashkari", Role: RolePresident,
			Bank: "Federal Reserve Bank of Minneapolis", Stance: StanceDove, Style: StyleDirect,
			VotingYears:        []int{2026, 2029},
			HistoricalDissents: 2,
			Priorities:         []string{"maximum employment", "financial regulation", "economic inclusion"},
			KeyConcerns:        []string{"labor market health", "too-big-to-fail banks", "economic opportunity"},
			NotableQuotes: []string{
				"We should err on the side of keeping people employed.",
				"Inflation is coming down - let's not overreact.",
			},
			Background:     "Former Treasury official during the 2008 crisis.",
			ExpertiseAreas: []string{"financial crisis management", "banking regulation", "public policy"},
		},
	}
}
