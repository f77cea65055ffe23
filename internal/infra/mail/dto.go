package mail

type LeadAlertData struct {
	Name        string
	Email       string
	Phone       string
	Experience  string
	CurrentRole string
	CareerGoals string
	Challenges  string
	Programs    string
	CapturedAt  string
}

type EmailSender struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	SalesInbox string
}
