package bootstrap

import (
	"time"

	"saba-booking/internal/pkg/config"
	"saba-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var ResumeModule = fx.Module("resume",
	fx.Provide(
		NewResumeService,
	),
)

// NewResumeService signs the tokens of shared cart links.
func NewResumeService(cfg config.Config) *jwt.Service {
	d, err := time.ParseDuration(cfg.Resume.Duration)
	if err != nil {
		panic("invalid RESUME_DURATION: " + err.Error())
	}
	return jwt.NewService(cfg.Resume.Secret, d)
}
