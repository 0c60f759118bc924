package config

// 敏感配置只从环境变量读取
const (
	EnvKeyEmailSMTPIdentity = "OPENRE_SMTP_IDENTITY"
	EnvKeyEmailSMTPHost     = "OPENRE_SMTP_HOST"
	EnvKeyEmailSMTPPort     = "OPENRE_SMTP_PORT"
	EnvKeyEmailSMTPUserName = "OPENRE_SMTP_USERNAME"
	EnvKeyEmailSMTPPassword = "OPENRE_SMTP_PASSWORD"

	EnvKeyMySQLPassword    = "OPENRE_MYSQL_PASSWORD"
	EnvKeyNeo4jPassword    = "OPENRE_NEO4J_PASSWORD"
	EnvKeyRabbitMQPassword = "OPENRE_RABBITMQ_PASSWORD"
)
