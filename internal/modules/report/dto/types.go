package dto

type CategoryLineOutput struct {
	Category  string
	Minutes   int
	Sessions  int
	Pomodoros int
	Words     int
}

type GoalLineOutput struct {
	Category     string
	Period       string
	TargetMin    int
	SpentMin     int
	RemainingMin int
	DailyMin     int
	TodayMin     int
	Achieved     bool
}

type DailyReportOutput struct {
	Date         string
	Path         string
	TotalMinutes int
	BreakMinutes int
	Pomodoros    int
	Words        int
	Distractions int
	Sessions     int
	Categories   []CategoryLineOutput
	Goals        []GoalLineOutput
}

type WeeklyReportOutput struct {
	Year         int
	Week         int
	From         string
	To           string
	Path         string
	TotalMinutes int
	BreakMinutes int
	Pomodoros    int
	Words        int
	Sessions     int
	Categories   []CategoryLineOutput
	Goals        []GoalLineOutput
}
