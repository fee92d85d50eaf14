package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/settings"
	"github.com/fekuna/omnipos-console/internal/settings/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type settingsUseCase struct {
	repo       settings.Repository
	currencies []string
	logger     logger.ZapLogger
}

func NewSettingsUseCase(repo settings.Repository, supportedCurrencies []string, log logger.ZapLogger) settings.UseCase {
	return &settingsUseCase{
		repo:       repo,
		currencies: supportedCurrencies,
		logger:     log,
	}
}

// Defaults returns the settings a fresh session starts with.
func Defaults(currency, theme, email string) model.Settings {
	if theme != settings.ThemeLight {
		theme = settings.ThemeDark
	}
	return model.Settings{
		Currency: strings.ToUpper(currency),
		Theme:    theme,
		Profile: model.Profile{
			FullName: "Shahad Alotaibi",
			Email:    email,
			Phone:    "+966 5X XXX XXXX",
			Company:  "Alfa5men",
		},
		Preferences:   model.Preferences{Language: "English"},
		Notifications: model.Notifications{Email: true, Push: true},
		Security:      model.Security{AutoLogout: true},
	}
}

func (uc *settingsUseCase) GetSettings(ctx context.Context) (*model.Settings, error) {
	return uc.repo.Get(ctx)
}

func (uc *settingsUseCase) SetCurrency(ctx context.Context, code string) (*model.Settings, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	supported := false
	for _, c := range uc.currencies {
		if strings.EqualFold(c, code) {
			supported = true
			break
		}
	}
	if !supported {
		return nil, apperr.Validationf("unsupported currency %q", code)
	}
	if _, err := settings.ParseCurrency(code); err != nil {
		return nil, apperr.Validationf("unsupported currency %q", code)
	}

	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.Currency = code
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info("currency changed", zap.String("currency", code))
	return s, nil
}

func (uc *settingsUseCase) ToggleTheme(ctx context.Context) (*model.Settings, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s.Theme == settings.ThemeDark {
		s.Theme = settings.ThemeLight
	} else {
		s.Theme = settings.ThemeDark
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info("theme changed", zap.String("theme", s.Theme))
	return s, nil
}

func (uc *settingsUseCase) UpdateSettings(ctx context.Context, input *dto.UpdateSettingsInput) (*model.Settings, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.Language != nil {
		lang := ""
		for _, l := range model.Languages {
			if strings.EqualFold(l, strings.TrimSpace(*input.Language)) {
				lang = l
			}
		}
		if lang == "" {
			return nil, apperr.Validationf("unsupported language %q", *input.Language)
		}
		s.Preferences.Language = lang
	}

	setString(&s.Profile.FullName, input.FullName)
	setString(&s.Profile.Email, input.Email)
	setString(&s.Profile.Phone, input.Phone)
	setString(&s.Profile.Company, input.Company)
	setBool(&s.Preferences.CompactMode, input.CompactMode)
	setBool(&s.Notifications.Email, input.EmailNotifications)
	setBool(&s.Notifications.SMS, input.SMSNotifications)
	setBool(&s.Notifications.Push, input.PushNotifications)
	setBool(&s.Security.TwoFactor, input.TwoFactor)
	setBool(&s.Security.AutoLogout, input.AutoLogout)

	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Debug("settings updated")
	return s, nil
}

func (uc *settingsUseCase) FormatCurrency(ctx context.Context, amount decimal.Decimal) (string, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return "", err
	}
	return settings.FormatAmount(s.Currency, amount)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
