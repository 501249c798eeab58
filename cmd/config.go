package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	ShopName               string
	EmailRelayBaseURL      string
	EmailRelayServiceID    string
	EmailRelayUserID       string
	OrderEmailTemplateID   string
	ContactEmailTemplateID string
	SnapshotTTLHours       string
	ThankYouDelaySeconds   string
}
