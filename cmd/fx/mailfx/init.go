package mailfx

import (
	"log"

	"go.uber.org/fx"
	"planner/internal/config"
	"planner/internal/services"
)

const appName = "Planner"

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.AppConfig) services.IMailService {
	if cfg.SMTPHost == "" {
		log.Println("SMTP_HOST not set, mail previews go to the log")
		return services.NewLogMailService(appName)
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort, // 587 for STARTTLS; use 465 with UseSSL=true for SMTPS
		Username:   cfg.SMTPUsername,
		Password:   cfg.SMTPPassword,
		From:       cfg.SMTPFrom,
		FromName:   cfg.SMTPFromName,
		UseSSL:     cfg.SMTPPort == 465,
		RequireTLS: true,

		AppName: appName,
	})
}
