package config

// Rules holds every moderation knob: report reasons and their severity
// weights, reason groups, score thresholds, credibility bounds, spam
// pipeline settings and the freeze escalation ladder. Loaded from the
// "moderation" section of the runtime config.
type Rules struct {
	Reasons     map[string]float64 `json:"reasons"`
	Groups      ReasonGroups       `json:"groups"`
	Thresholds  Thresholds         `json:"thresholds"`
	Credibility Credibility        `json:"credibility"`
	Spam        SpamRules          `json:"spam"`
	Freezing    FreezeRules        `json:"freezing"`
}

// ReasonGroups partitions report reasons into the named sets each
// restriction score is computed over. A reason missing from every group
// still counts toward raw report totals.
type ReasonGroups struct {
	Restricted  []string `json:"restricted"`
	Ideology    []string `json:"ideology"`
	Adult       []string `json:"adult"`
	ThreadImage []string `json:"threadImage"`
}

type Thresholds struct {
	Restricted float64 `json:"restricted"`
	Ideology   float64 `json:"ideology"`
	Adult      float64 `json:"adult"`
	Warn       float64 `json:"warn"`
	Freeze     float64 `json:"freeze"`
	Ban        float64 `json:"ban"`
}

type Credibility struct {
	Floor        float64 `json:"floor"`
	Ceil         float64 `json:"ceil"`
	MinReports   int     `json:"minReports"`
	WindowMonths int     `json:"windowMonths"`
	CacheSeconds int     `json:"cacheSeconds"`
}

type SpamRules struct {
	NGWords          []string `json:"ngWords"`
	Levenshtein      float64  `json:"levenshtein"`
	Trigram          float64  `json:"trigram"`
	HistoryHours     int      `json:"historyHours"`
	URLDailyLimit    int      `json:"urlDailyLimit"`
	DailyReportLimit int      `json:"dailyReportLimit"`
}

// InGroup reports whether reason belongs to the given group set.
func InGroup(group []string, reason string) bool {
	for _, r := range group {
		if r == reason {
			return true
		}
	}
	return false
}
