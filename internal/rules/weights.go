package rules

// Rule weights from Robson, "Electional Astrology" (1937). Values are
// fixed at compile time; per-project emphasis is applied as category
// multipliers, never by editing these.
const (
	// BaseScore is the neutral starting point before contributions.
	BaseScore = 50.0

	PtsMoonWaxing   = 15.0 // ch. 4: elect a waxing Moon for growth
	PtsMoonWaning   = -10.0
	PtsVoidOfCourse = -25.0 // ch. 4: nothing comes of the matter
	PtsViaCombusta  = -20.0
	PtsMoonFall     = -10.0 // Moon in Scorpio
	PtsMoonTrade    = 8.0   // Moon in a sign favoring trade

	PtsMercuryRetrograde = -20.0
	PtsMercuryDirect     = 10.0

	PtsMoonJupiterMajor   = 15.0 // conjunction or trine
	PtsMoonJupiterSextile = 12.0
	PtsMoonJupiterHard    = -5.0
	PtsMoonVenusMajor     = 12.0
	PtsMoonVenusSextile   = 10.0

	PtsMoonMaleficConj = -12.0 // Moon conjunct Mars or Saturn
	PtsMoonMaleficHard = -15.0 // square or opposition

	PtsBeneficToSignificator = 8.0
	PtsMaleficToSignificator = -10.0

	PtsSunMoonTrine   = 10.0
	PtsSunMoonSextile = 8.0

	PtsDayRulerSympathy  = 6.0
	PtsHourRulerSympathy = 4.0
)
