package config

type AppConfig struct {
	APIPort string `env:"PORT" envDefault:"11333"`
	APIKey  string `env:"API_KEY,required"`
}

type MailboxConfig struct {
	EmailAddress    string   `env:"EMAIL,required"`
	EmailPassword   string   `env:"PASSWORD,required"`
	ApprovedSenders []string `env:"APPROVED_SENDERS,required" envSeparator:","`
	ImapServer      string   `env:"IMAP_SERVER" envDefault:"imap.gmail.com"`
	ImapPort        int      `env:"IMAP_PORT" envDefault:"993"`
	SmtpServer      string   `env:"SMTP_SERVER" envDefault:"smtp.gmail.com"`
	SmtpPort        int      `env:"SMTP_PORT" envDefault:"587"`
}

type StorageConfig struct {
	BucketName      string `env:"BUCKET_NAME" envDefault:"project-ava"`
	Region          string `env:"AWS_REGION" envDefault:"ap-south-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AccessKeySecret string `env:"AWS_SECRET_ACCESS_KEY"`
}

type ExtractionConfig struct {
	ApiKey string `env:"OPENAI_API_KEY,required"`
	ApiUrl string `env:"OPENAI_API_URL" envDefault:"https://api.openai.com/v1"`
	Model  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

type InvoiceConfig struct {
	KeyPrefix  string `env:"INVOICE_KEY_PREFIX" envDefault:"cellstrat_invoices/"`
	ScratchDir string `env:"INVOICE_SCRATCH_DIR" envDefault:"/tmp"`
}
